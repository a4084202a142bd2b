package systems

import (
	"github.com/decker502/gingerrain/pkg/components"
	"github.com/decker502/gingerrain/pkg/ecs"
)

// DropMovementSystem 管理下落物的移动和出界移除
type DropMovementSystem struct {
	entityManager *ecs.EntityManager
	expired       int
}

// NewDropMovementSystem 创建一个新的下落物移动系统
func NewDropMovementSystem(em *ecs.EntityManager) *DropMovementSystem {
	return &DropMovementSystem{
		entityManager: em,
	}
}

// Update 更新所有下落物的位置
// 完全落出游戏区域底部（y + height < 0）的下落物标记删除，本帧不再参与碰撞
func (s *DropMovementSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith3[
		*components.DropComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.entityManager)

	for _, id := range entities {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime

		height := 0.0
		if col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id); ok {
			height = col.Height
		}
		if pos.Y+height < 0 {
			s.entityManager.DestroyEntity(id)
			s.expired++
		}
	}
}

// ExpiredCount 返回累计落出底部的下落物数量
func (s *DropMovementSystem) ExpiredCount() int {
	return s.expired
}
