package entities

import (
	"testing"

	"github.com/decker502/gingerrain/pkg/components"
	"github.com/decker502/gingerrain/pkg/config"
	"github.com/decker502/gingerrain/pkg/ecs"
	"github.com/decker502/gingerrain/pkg/types"
)

func TestNewDropEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	d := &Droppable{Kind: types.DropLargeRaindrop, Width: 40, Height: 56, LifeModifier: -3, SoundID: "SOUND_DROP_LARGE"}

	id := NewDropEntity(em, d, 100, 480, 200)

	drop, ok := ecs.GetComponent[*components.DropComponent](em, id)
	if !ok || drop.Kind != types.DropLargeRaindrop {
		t.Fatalf("Expected DropComponent with kind large_raindrop, got %+v", drop)
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok || pos.X != 100 || pos.Y != 480 {
		t.Errorf("Expected position (100, 480), got %+v", pos)
	}

	vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id)
	if !ok || vel.VY != -200 || vel.VX != 0 {
		t.Errorf("Expected velocity (0, -200), got %+v", vel)
	}

	col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok || col.Width != 40 || col.Height != 56 {
		t.Errorf("Expected collision 40x56, got %+v", col)
	}

	sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id)
	if !ok || sprite.Layer != components.LayerDrop {
		t.Errorf("Expected drop layer sprite, got %+v", sprite)
	}
}

func TestNewPlayerEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameplayConfig()

	id := NewPlayerEntity(em, PlayerSprite{Width: 64, Height: 64}, cfg)

	if !ecs.HasComponent[*components.PlayerComponent](em, id) {
		t.Fatal("Expected PlayerComponent")
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != (800-64)/2 || pos.Y != 20 {
		t.Errorf("Expected centered player at (368, 20), got (%.0f, %.0f)", pos.X, pos.Y)
	}

	health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
	if health.CurrentHealth != 100 || health.MaxHealth != 100 {
		t.Errorf("Expected full health 100/100, got %d/%d", health.CurrentHealth, health.MaxHealth)
	}

	player, _ := ecs.GetComponent[*components.PlayerComponent](em, id)
	if player.Tracking {
		t.Error("New player should not be tracking")
	}

	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if sprite.Layer != components.LayerPlayer {
		t.Errorf("Expected player layer, got %d", sprite.Layer)
	}
}
