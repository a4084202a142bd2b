// Package utils 提供坐标转换、输入和平台相关的小工具
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenInput 把鼠标和触摸合并成一个指针，触摸优先
// 实现 systems.InputSource
type EbitenInput struct {
	touchX, touchY int
	lastWasTouch   bool // 松手后光标位置无意义，沿用最后的触摸位置
}

func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

// firstTouch 返回 ids 中第一个触摸点的位置并记住它
func (in *EbitenInput) firstTouch(ids []ebiten.TouchID) (bool, int, int) {
	if len(ids) == 0 {
		return false, 0, 0
	}
	in.touchX, in.touchY = ebiten.TouchPosition(ids[0])
	in.lastWasTouch = true
	return true, in.touchX, in.touchY
}

// PointerState 指针是否按下以及当前屏幕坐标
func (in *EbitenInput) PointerState() (bool, int, int) {
	if ok, x, y := in.firstTouch(ebiten.AppendTouchIDs(nil)); ok {
		return true, x, y
	}

	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if pressed {
		in.lastWasTouch = false
	}
	if in.lastWasTouch {
		return false, in.touchX, in.touchY
	}
	x, y := ebiten.CursorPosition()
	return pressed, x, y
}

// PointerJustPressed 指针是否在本帧按下以及按下位置
func (in *EbitenInput) PointerJustPressed() (bool, int, int) {
	if ok, x, y := in.firstTouch(inpututil.AppendJustPressedTouchIDs(nil)); ok {
		return true, x, y
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false, 0, 0
	}
	in.lastWasTouch = false
	x, y := ebiten.CursorPosition()
	return true, x, y
}

func (in *EbitenInput) KeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
