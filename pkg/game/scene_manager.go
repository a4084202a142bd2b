package game

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager 持有唯一的活动场景，并把每帧的 Update/Draw 转发给它
type SceneManager struct {
	active Scene
}

// NewSceneManager 创建没有活动场景的管理器
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 激活 scene，旧场景实现了 Disposable 时先释放
func (sm *SceneManager) SwitchTo(scene Scene) {
	if scene == sm.active {
		return
	}
	sm.release()
	sm.active = scene
	log.Debugf("[SceneManager] Active scene: %T", scene)
}

// GetCurrentScene 返回活动场景，可能为 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.active
}

func (sm *SceneManager) Update(deltaTime float64) {
	if sm.active == nil {
		return
	}
	sm.active.Update(deltaTime)
}

func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.active == nil {
		return
	}
	sm.active.Draw(screen)
}

// Shutdown 释放活动场景，之后 Update/Draw 不再做任何事
func (sm *SceneManager) Shutdown() {
	sm.release()
	sm.active = nil
}

func (sm *SceneManager) release() {
	if d, ok := sm.active.(Disposable); ok {
		d.Dispose()
	}
}
