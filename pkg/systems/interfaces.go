package systems

import "github.com/hajimehoshi/ebiten/v2"

// InputSource 指针和键盘输入
// utils.EbitenInput 是运行时实现，测试中使用假输入
// 坐标均为屏幕坐标（原点左上角）
type InputSource interface {
	// PointerState 返回指针是否按下及当前位置
	PointerState() (pressed bool, x, y int)
	// PointerJustPressed 返回指针是否在本帧刚按下及按下位置
	PointerJustPressed() (bool, int, int)
	// KeyJustPressed 返回按键是否在本帧刚按下
	KeyJustPressed(key ebiten.Key) bool
}

// SoundPlayer 按资源ID播放一次性音效
// game.AudioManager 是运行时实现
type SoundPlayer interface {
	PlaySound(soundID string) bool
}
