package entities

import (
	"github.com/decker502/gingerrain/pkg/components"
	"github.com/decker502/gingerrain/pkg/config"
	"github.com/decker502/gingerrain/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlayerSprite 玩家图片及尺寸
// Image 为 nil 时（无头模式）只使用尺寸
type PlayerSprite struct {
	Image         *ebiten.Image
	Width, Height float64
}

// NewPlayerEntity 创建玩家（姜饼人）实体
// 玩家水平居中，固定在 cfg.Player.Y，生命值为满值
func NewPlayerEntity(manager *ecs.EntityManager, sprite PlayerSprite, cfg *config.GameplayConfig) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.PlayerComponent{})

	manager.AddComponent(id, &components.PositionComponent{
		X: (cfg.Playfield.Width - sprite.Width) / 2,
		Y: cfg.Player.Y,
	})

	manager.AddComponent(id, &components.CollisionComponent{
		Width:  sprite.Width,
		Height: sprite.Height,
	})

	manager.AddComponent(id, &components.HealthComponent{
		CurrentHealth: cfg.Player.MaxLife,
		MaxHealth:     cfg.Player.MaxLife,
	})

	manager.AddComponent(id, &components.SpriteComponent{
		Image: sprite.Image,
		Layer: components.LayerPlayer,
	})

	return id
}
