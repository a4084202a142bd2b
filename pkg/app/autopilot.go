package app

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// retargetFrames 自动驾驶每隔多少帧换一次目标
const retargetFrames = 45

// Autopilot 无头模拟使用的脚本化输入
//
// 启用时指针一直按下，每隔 retargetFrames 帧随机换一个目标位置，
// 玩家因此在游戏区域内来回移动。禁用时没有任何指针输入。
// RequestRestart 会让下一帧的 R 键处于"刚按下"状态。
type Autopilot struct {
	rng     *rand.Rand
	enabled bool
	width   int
	height  int

	frame          int
	targetX        int
	pendingRestart bool
	restartNow     bool
}

// NewAutopilot 创建脚本化输入
// width/height 为屏幕尺寸
func NewAutopilot(rng *rand.Rand, enabled bool, width, height int) *Autopilot {
	return &Autopilot{
		rng:     rng,
		enabled: enabled,
		width:   width,
		height:  height,
		targetX: width / 2,
	}
}

// Tick 推进一帧，必须在场景 Update 之前调用
func (a *Autopilot) Tick() {
	a.restartNow = a.pendingRestart
	a.pendingRestart = false

	if a.enabled && a.frame%retargetFrames == 0 {
		a.targetX = a.rng.Intn(a.width)
	}
	a.frame++
}

// RequestRestart 在下一帧按下 R 键
func (a *Autopilot) RequestRestart() {
	a.pendingRestart = true
}

// PointerState 实现 systems.InputSource
func (a *Autopilot) PointerState() (bool, int, int) {
	if !a.enabled {
		return false, 0, 0
	}
	return true, a.targetX, a.height / 2
}

// PointerJustPressed 实现 systems.InputSource
// 自动驾驶从不点击，避免误触 Restart 区域
func (a *Autopilot) PointerJustPressed() (bool, int, int) {
	return false, 0, 0
}

// KeyJustPressed 实现 systems.InputSource
func (a *Autopilot) KeyJustPressed(key ebiten.Key) bool {
	return key == ebiten.KeyR && a.restartNow
}
