package game

import "time"

// StepClock 手动推进的时钟
// 无头模拟按帧推进它，使存活时间与模拟帧数一致
type StepClock struct {
	now time.Time
}

// NewStepClock 创建从 start 开始的时钟
func NewStepClock(start time.Time) *StepClock {
	return &StepClock{now: start}
}

// Now 返回当前时间
func (c *StepClock) Now() time.Time {
	return c.now
}

// Advance 推进时钟
func (c *StepClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
