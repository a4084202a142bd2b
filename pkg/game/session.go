package game

import (
	"time"

	"github.com/charmbracelet/log"
)

// State 游戏会话状态
type State int

const (
	// StateRunning 游戏进行中（初始状态）
	StateRunning State = iota
	// StatePaused 游戏暂停，下落物和计时都停止
	StatePaused
	// StateGameOver 生命值耗尽，计时冻结
	StateGameOver
)

// String 返回状态名称
func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Clock 提供当前时间，测试中替换为可控时钟
type Clock interface {
	Now() time.Time
}

// SystemClock 使用系统时间
type SystemClock struct{}

// Now 返回当前系统时间
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Session 一局游戏的状态机和计时
//
// 状态转换：
//
//	Running  -> Paused    TogglePause
//	Paused   -> Running   TogglePause
//	Running  -> GameOver  End（生命值耗尽的同一帧）
//	任意状态 -> Running   Restart
//
// 存活时间以会话开始时间为基准，不包含暂停时长，GameOver 时冻结。
type Session struct {
	clock Clock
	state State

	startedAt   time.Time     // 会话开始时间
	pausedAt    time.Time     // 本次暂停开始时间（仅 Paused 状态有效）
	pausedTotal time.Duration // 已结束的暂停累计时长
	frozen      time.Duration // GameOver 时冻结的存活时间
}

// NewSession 创建新会话，立即进入 Running 状态
func NewSession(clock Clock) *Session {
	if clock == nil {
		clock = SystemClock{}
	}
	s := &Session{clock: clock}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.state = StateRunning
	s.startedAt = s.clock.Now()
	s.pausedAt = time.Time{}
	s.pausedTotal = 0
	s.frozen = 0
}

// State 返回当前状态
func (s *Session) State() State {
	return s.state
}

// IsRunning 是否处于 Running 状态
func (s *Session) IsRunning() bool {
	return s.state == StateRunning
}

// IsGameOver 是否处于 GameOver 状态
func (s *Session) IsGameOver() bool {
	return s.state == StateGameOver
}

// Elapsed 返回本局存活时间（不含暂停时长）
func (s *Session) Elapsed() time.Duration {
	switch s.state {
	case StateGameOver:
		return s.frozen
	case StatePaused:
		return s.pausedAt.Sub(s.startedAt) - s.pausedTotal
	default:
		return s.clock.Now().Sub(s.startedAt) - s.pausedTotal
	}
}

// ElapsedSeconds 返回存活时间的整秒数（向下取整）
func (s *Session) ElapsedSeconds() int {
	return int(s.Elapsed() / time.Second)
}

// TogglePause 在 Running 与 Paused 之间切换
// GameOver 状态下不做任何事
// 返回切换后的状态
func (s *Session) TogglePause() State {
	switch s.state {
	case StateRunning:
		s.pausedAt = s.clock.Now()
		s.state = StatePaused
		log.Debugf("[Session] Paused at %.2fs", s.Elapsed().Seconds())
	case StatePaused:
		s.pausedTotal += s.clock.Now().Sub(s.pausedAt)
		s.pausedAt = time.Time{}
		s.state = StateRunning
		log.Debugf("[Session] Resumed at %.2fs", s.Elapsed().Seconds())
	}
	return s.state
}

// End 结束本局并冻结存活时间
// 只有 Running 状态可以结束，返回是否发生了状态转换
func (s *Session) End() bool {
	if s.state != StateRunning {
		return false
	}
	s.frozen = s.Elapsed()
	s.state = StateGameOver
	log.Infof("[Session] Game over, survived %d s", s.ElapsedSeconds())
	return true
}

// Restart 重新开始计时并回到 Running 状态
func (s *Session) Restart() {
	prev := s.state
	s.reset()
	log.Debugf("[Session] Restarted from %s", prev)
}
