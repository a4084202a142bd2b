package systems

import (
	"github.com/charmbracelet/log"
	"github.com/decker502/gingerrain/pkg/config"
	"github.com/decker502/gingerrain/pkg/ecs"
	"github.com/decker502/gingerrain/pkg/entities"
	"github.com/decker502/gingerrain/pkg/types"
)

// DropSpawnSystem 管理下落物的定时生成
type DropSpawnSystem struct {
	entityManager *ecs.EntityManager
	spawner       *DropSpawner
	catalog       *entities.DropCatalog
	spawnTimer    float64 // 当前计时器
	spawnInterval float64 // 生成间隔(秒)
	spawnY        float64 // 生成高度（游戏区域顶部）
	fallSpeed     float64 // 下落速度
	spawned       map[types.DropKind]int
}

// NewDropSpawnSystem 创建一个新的下落物生成系统
// 参数:
//   - em: EntityManager 实例
//   - spawner: 种类和位置决策
//   - catalog: 下落物目录
//   - cfg: 玩法配置（间隔、下落速度、游戏区域高度）
func NewDropSpawnSystem(em *ecs.EntityManager, spawner *DropSpawner, catalog *entities.DropCatalog, cfg *config.GameplayConfig) *DropSpawnSystem {
	log.Debugf("[DropSpawnSystem] Initialized with interval=%.3fs, fallSpeed=%.0f", cfg.SpawnIntervalSeconds, cfg.FallSpeed)
	return &DropSpawnSystem{
		entityManager: em,
		spawner:       spawner,
		catalog:       catalog,
		spawnInterval: cfg.SpawnIntervalSeconds,
		spawnY:        cfg.Playfield.Height,
		fallSpeed:     cfg.FallSpeed,
		spawned:       make(map[types.DropKind]int),
	}
}

// Update 更新生成计时器
// 累计时间超过生成间隔时重置计时器并生成一次（每帧最多一次）
func (s *DropSpawnSystem) Update(deltaTime float64) {
	s.spawnTimer += deltaTime

	if s.spawnTimer > s.spawnInterval {
		s.spawnTimer = 0
		s.SpawnNow()
	}
}

// SpawnNow 立即生成一次（会话开始时调用）
// 附带的软糖豆先于主下落物创建
// 返回本次创建的实体ID
func (s *DropSpawnSystem) SpawnNow() []ecs.EntityID {
	decision := s.spawner.DecideNextSpawn()

	ids := make([]ecs.EntityID, 0, 2)
	if decision.Bonus {
		if id, ok := s.spawn(types.DropJellybean); ok {
			ids = append(ids, id)
		}
	}
	if id, ok := s.spawn(decision.Primary); ok {
		ids = append(ids, id)
	}
	return ids
}

func (s *DropSpawnSystem) spawn(kind types.DropKind) (ecs.EntityID, bool) {
	d, err := s.catalog.Get(kind)
	if err != nil {
		log.Warnf("[DropSpawnSystem] Cannot spawn: %v", err)
		return 0, false
	}

	x := s.spawner.PlaceX(d.Width)
	id := entities.NewDropEntity(s.entityManager, d, x, s.spawnY, s.fallSpeed)
	s.spawned[kind]++

	if kind != types.DropRaindrop {
		log.Debugf("[DropSpawnSystem] Spawned %s (entity %d) at X=%.1f", kind, id, x)
	}
	return id, true
}

// Reset 重置生成计时器（重新开始时调用）
func (s *DropSpawnSystem) Reset() {
	s.spawnTimer = 0
}

// SpawnedCount 返回某种类累计生成的数量
func (s *DropSpawnSystem) SpawnedCount(kind types.DropKind) int {
	return s.spawned[kind]
}
