package systems

import (
	"testing"

	"github.com/decker502/gingerrain/pkg/components"
	"github.com/decker502/gingerrain/pkg/config"
	"github.com/decker502/gingerrain/pkg/ecs"
	"github.com/decker502/gingerrain/pkg/types"
)

func newSpawnSystem(t *testing.T, cfg *config.GameplayConfig) (*ecs.EntityManager, *DropSpawnSystem) {
	t.Helper()
	em := ecs.NewEntityManager()
	spawner := NewDropSpawner(seeded(5), cfg.Spawn, cfg.Playfield.Width)
	return em, NewDropSpawnSystem(em, spawner, newTestCatalog(t), cfg)
}

func dropCount(em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[*components.DropComponent](em))
}

// TestDropSpawnSystem_IntervalIsStrict 测试只有超过间隔才生成
func TestDropSpawnSystem_IntervalIsStrict(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	cfg.SpawnIntervalSeconds = 0.5
	cfg.Spawn = config.SpawnChanceConfig{SugarPercent: -1, LargeRaindropPercent: -1, JellybeanBonusPercent: -1}
	em, system := newSpawnSystem(t, cfg)

	system.Update(0.25)
	system.Update(0.25) // 恰好等于间隔，不生成
	if dropCount(em) != 0 {
		t.Fatalf("Expected no spawn at exactly the interval, got %d drops", dropCount(em))
	}

	system.Update(0.01)
	if dropCount(em) != 1 {
		t.Fatalf("Expected 1 drop after exceeding interval, got %d", dropCount(em))
	}

	// 计时器已重置
	system.Update(0.4)
	if dropCount(em) != 1 {
		t.Errorf("Expected timer reset after spawn, got %d drops", dropCount(em))
	}
}

// TestDropSpawnSystem_OnePerFrame 测试每帧最多生成一次
func TestDropSpawnSystem_OnePerFrame(t *testing.T) {
	cfg := config.DefaultGameplayConfig() // 间隔 1ms
	cfg.Spawn = config.SpawnChanceConfig{SugarPercent: -1, LargeRaindropPercent: -1, JellybeanBonusPercent: -1}
	em, system := newSpawnSystem(t, cfg)

	for i := 0; i < 10; i++ {
		system.Update(1.0 / 60)
	}
	if dropCount(em) != 10 {
		t.Errorf("Expected 10 drops after 10 frames, got %d", dropCount(em))
	}
	if system.SpawnedCount(types.DropRaindrop) != 10 {
		t.Errorf("Expected 10 raindrops counted, got %d", system.SpawnedCount(types.DropRaindrop))
	}
}

// TestDropSpawnSystem_BonusSpawnsFirst 测试软糖豆先于大雨滴创建
func TestDropSpawnSystem_BonusSpawnsFirst(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	cfg.Spawn = config.SpawnChanceConfig{SugarPercent: -1, LargeRaindropPercent: 100, JellybeanBonusPercent: 100}
	em, system := newSpawnSystem(t, cfg)

	ids := system.SpawnNow()
	if len(ids) != 2 {
		t.Fatalf("Expected 2 entities, got %d", len(ids))
	}

	first, _ := ecs.GetComponent[*components.DropComponent](em, ids[0])
	second, _ := ecs.GetComponent[*components.DropComponent](em, ids[1])
	if first.Kind != types.DropJellybean || second.Kind != types.DropLargeRaindrop {
		t.Errorf("Expected jellybean then large raindrop, got %s then %s", first.Kind, second.Kind)
	}
}

// TestDropSpawnSystem_Placement 测试生成位置和速度
func TestDropSpawnSystem_Placement(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	em, system := newSpawnSystem(t, cfg)

	for i := 0; i < 200; i++ {
		system.SpawnNow()
	}

	for _, id := range ecs.GetEntitiesWith1[*components.DropComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)

		if pos.Y != cfg.Playfield.Height {
			t.Errorf("Expected spawn Y=%.0f, got %.1f", cfg.Playfield.Height, pos.Y)
		}
		if pos.X < col.Width || pos.X > cfg.Playfield.Width-col.Width {
			t.Errorf("Spawn X=%.1f out of [%.0f, %.0f]", pos.X, col.Width, cfg.Playfield.Width-col.Width)
		}
		if vel.VY != -cfg.FallSpeed {
			t.Errorf("Expected VY=%.0f, got %.1f", -cfg.FallSpeed, vel.VY)
		}
	}
}

func TestDropSpawnSystem_Reset(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	cfg.SpawnIntervalSeconds = 1
	em, system := newSpawnSystem(t, cfg)

	system.Update(0.9)
	system.Reset()
	system.Update(0.9)
	if dropCount(em) != 0 {
		t.Errorf("Expected Reset to restart the interval, got %d drops", dropCount(em))
	}
}
