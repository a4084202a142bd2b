package entities

import (
	"github.com/decker502/gingerrain/pkg/components"
	"github.com/decker502/gingerrain/pkg/ecs"
)

// NewDropEntity 创建一个下落物实体
// 参数:
//   - manager: EntityManager 实例
//   - d: 下落物种类定义（来自 DropCatalog）
//   - x, y: 包围盒左下角的世界坐标（生成时 y 为游戏区域顶部）
//   - fallSpeed: 下落速度（世界单位/秒）
//
// 返回: 创建的实体ID
func NewDropEntity(manager *ecs.EntityManager, d *Droppable, x, y, fallSpeed float64) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.DropComponent{Kind: d.Kind})

	manager.AddComponent(id, &components.PositionComponent{X: x, Y: y})

	// 世界坐标Y轴向上，下落速度为负
	manager.AddComponent(id, &components.VelocityComponent{VX: 0, VY: -fallSpeed})

	// 碰撞盒与图片尺寸一致
	manager.AddComponent(id, &components.CollisionComponent{
		Width:  d.Width,
		Height: d.Height,
	})

	manager.AddComponent(id, &components.SpriteComponent{
		Image: d.Image,
		Layer: components.LayerDrop,
	})

	return id
}
