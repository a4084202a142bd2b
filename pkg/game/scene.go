package game

import "github.com/hajimehoshi/ebiten/v2"

// Scene 是一个可以独立更新和绘制的画面
type Scene interface {
	// Update 推进场景逻辑，deltaTime 单位为秒
	Update(deltaTime float64)
	// Draw 把场景绘制到 screen
	Draw(screen *ebiten.Image)
}

// Disposable 场景被替换或程序退出时调用 Dispose 释放音乐等资源
type Disposable interface {
	Dispose()
}
