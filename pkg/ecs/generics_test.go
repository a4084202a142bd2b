package ecs

import "testing"

func TestGenericGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{X: 3, Y: 4})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("Position component should be found")
	}
	if pos.X != 3 || pos.Y != 4 {
		t.Errorf("Expected (3, 4), got (%f, %f)", pos.X, pos.Y)
	}

	if _, ok := GetComponent[*testVelocityComponent](em, id); ok {
		t.Error("Velocity component should not be found")
	}

	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("HasComponent should report the position component")
	}
}

func TestGenericQueriesAreOrderedByCreation(t *testing.T) {
	em := NewEntityManager()

	var want []EntityID
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{X: float64(i)})
		if i%2 == 0 {
			em.AddComponent(id, &testVelocityComponent{})
			want = append(want, id)
		}
	}

	got := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(got) != len(want) {
		t.Fatalf("Expected %d entities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Index %d: expected entity %d, got %d", i, want[i], got[i])
		}
	}

	if n := len(GetEntitiesWith1[*testPositionComponent](em)); n != 50 {
		t.Errorf("Expected 50 entities with Position, got %d", n)
	}
}

func TestDestroyEntityTwiceIsSafe(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	em.DestroyEntity(id)
	em.DestroyEntity(id)

	if !em.IsMarkedForDestroy(id) {
		t.Error("Entity should be marked for destroy")
	}
	if removed := em.RemoveMarkedEntities(); removed != 1 {
		t.Errorf("Expected 1 removed entity, got %d", removed)
	}
	if em.Exists(id) {
		t.Error("Entity should not exist after cleanup")
	}
	if em.IsMarkedForDestroy(id) {
		t.Error("Removed entity should no longer be marked")
	}
}

func TestDestroyUnknownEntityIsIgnored(t *testing.T) {
	em := NewEntityManager()
	em.DestroyEntity(42)

	if removed := em.RemoveMarkedEntities(); removed != 0 {
		t.Errorf("Expected 0 removed entities, got %d", removed)
	}
}

func TestClearKeepsIDsUnique(t *testing.T) {
	em := NewEntityManager()
	first := em.CreateEntity()
	em.CreateEntity()
	em.DestroyEntity(first)

	em.Clear()

	if em.Count() != 0 {
		t.Errorf("Expected 0 entities after Clear, got %d", em.Count())
	}
	if em.IsMarkedForDestroy(first) {
		t.Error("Clear should drop pending destroy marks")
	}

	next := em.CreateEntity()
	if next <= first+1 {
		t.Errorf("IDs must not be reused after Clear, got %d", next)
	}
}
