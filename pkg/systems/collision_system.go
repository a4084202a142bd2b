package systems

import (
	"github.com/charmbracelet/log"
	"github.com/decker502/gingerrain/pkg/components"
	"github.com/decker502/gingerrain/pkg/ecs"
	"github.com/decker502/gingerrain/pkg/entities"
	"github.com/decker502/gingerrain/pkg/types"
)

// CollisionSystem 处理玩家与下落物的碰撞
//
// 碰撞时依次：播放该种类的音效、修正玩家生命值、删除下落物。
// 生命值降到 0 时调用 onPlayerDefeated，本帧剩余的下落物不再处理。
type CollisionSystem struct {
	em               *ecs.EntityManager
	catalog          *entities.DropCatalog
	sounds           SoundPlayer
	onPlayerDefeated func()
	collisions       map[types.DropKind]int
}

// NewCollisionSystem 创建碰撞系统
//
// 参数:
//   - em: 实体管理器
//   - catalog: 下落物目录（音效和生命值修正）
//   - sounds: 音效播放器，可为 nil
func NewCollisionSystem(em *ecs.EntityManager, catalog *entities.DropCatalog, sounds SoundPlayer) *CollisionSystem {
	return &CollisionSystem{
		em:         em,
		catalog:    catalog,
		sounds:     sounds,
		collisions: make(map[types.DropKind]int),
	}
}

// SetOnPlayerDefeated 设置玩家生命值耗尽时的回调
func (s *CollisionSystem) SetOnPlayerDefeated(fn func()) {
	s.onPlayerDefeated = fn
}

// Update 检测并处理本帧的所有碰撞
func (s *CollisionSystem) Update(deltaTime float64) {
	players := ecs.GetEntitiesWith3[
		*components.PlayerComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](s.em)
	if len(players) == 0 {
		return
	}
	playerID := players[0]

	health, ok := ecs.GetComponent[*components.HealthComponent](s.em, playerID)
	if !ok || !health.IsAlive() {
		return
	}
	playerPos, _ := ecs.GetComponent[*components.PositionComponent](s.em, playerID)
	playerCol, _ := ecs.GetComponent[*components.CollisionComponent](s.em, playerID)
	playerBounds := playerCol.Bounds(playerPos)

	drops := ecs.GetEntitiesWith3[
		*components.DropComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](s.em)

	for _, id := range drops {
		// 本帧已落出底部的下落物不参与碰撞
		if s.em.IsMarkedForDestroy(id) {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.em, id)
		if !col.Bounds(pos).Overlaps(playerBounds) {
			continue
		}

		drop, _ := ecs.GetComponent[*components.DropComponent](s.em, id)
		s.resolve(id, drop.Kind, health)

		if !health.IsAlive() {
			log.Debugf("[CollisionSystem] Player defeated by %s", drop.Kind)
			if s.onPlayerDefeated != nil {
				s.onPlayerDefeated()
			}
			return
		}
	}
}

// resolve 处理单次碰撞
func (s *CollisionSystem) resolve(id ecs.EntityID, kind types.DropKind, health *components.HealthComponent) {
	s.em.DestroyEntity(id)
	s.collisions[kind]++

	d, err := s.catalog.Get(kind)
	if err != nil {
		log.Warnf("[CollisionSystem] %v", err)
		return
	}

	if s.sounds != nil {
		s.sounds.PlaySound(d.SoundID)
	}
	health.Apply(d.LifeModifier)
}

// CollisionCount 返回某种类累计碰撞次数
func (s *CollisionSystem) CollisionCount(kind types.DropKind) int {
	return s.collisions[kind]
}
