package system

import (
	"image/color"
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const frame = 1.0 / 60.0

var (
	testPlatformColor    = color.NRGBA{R: 1, A: 255}
	testCollectibleColor = color.NRGBA{R: 2, A: 255}
	testEnemyColor       = color.NRGBA{R: 3, A: 255}
	testPlayerColor      = color.NRGBA{R: 4, A: 255}
)

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], value T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, value); err != nil {
		t.Fatalf("add %T: %v", value, err)
	}
}

func addPlayer(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	mustAdd(t, w, e, component.PlayerComponent.Kind(), component.Player{JumpsLeft: 2, MaxJumps: 2})
	mustAdd(t, w, e, component.PositionComponent.Kind(), component.Position{X: x, Y: y})
	mustAdd(t, w, e, component.VelocityComponent.Kind(), component.Velocity{})
	mustAdd(t, w, e, component.ColliderComponent.Kind(), component.Collider{Width: 12, Height: 14})
	mustAdd(t, w, e, component.PhysicsComponent.Kind(), component.Physics{Gravity: true})
	mustAdd(t, w, e, component.SpriteComponent.Kind(), component.Sprite{Color: testPlayerColor, Width: 12, Height: 14})
	return e
}

func addPlatform(t *testing.T, w *ecs.World, x, y, width, height float64, oneWay bool) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	mustAdd(t, w, e, component.PlatformComponent.Kind(), component.Platform{OneWay: oneWay})
	mustAdd(t, w, e, component.PositionComponent.Kind(), component.Position{X: x, Y: y})
	mustAdd(t, w, e, component.ColliderComponent.Kind(), component.Collider{Width: width, Height: height})
	mustAdd(t, w, e, component.SpriteComponent.Kind(), component.Sprite{Color: testPlatformColor, Width: width, Height: height})
	return e
}

func addEnemy(t *testing.T, w *ecs.World, x, y, minX, maxX, speed float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	mustAdd(t, w, e, component.EnemyComponent.Kind(), component.Enemy{MinX: minX, MaxX: maxX, Speed: speed, Direction: 1, Points: 100})
	mustAdd(t, w, e, component.PositionComponent.Kind(), component.Position{X: x, Y: y})
	mustAdd(t, w, e, component.ColliderComponent.Kind(), component.Collider{Width: 14, Height: 12})
	mustAdd(t, w, e, component.SpriteComponent.Kind(), component.Sprite{Color: testEnemyColor, Width: 14, Height: 12})
	return e
}

func addCollectible(t *testing.T, w *ecs.World, x, y float64, points int) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	mustAdd(t, w, e, component.CollectibleComponent.Kind(), component.Collectible{Points: points})
	mustAdd(t, w, e, component.PositionComponent.Kind(), component.Position{X: x, Y: y})
	mustAdd(t, w, e, component.ColliderComponent.Kind(), component.Collider{Width: 8, Height: 8})
	mustAdd(t, w, e, component.SpriteComponent.Kind(), component.Sprite{Color: testCollectibleColor, Width: 8, Height: 8})
	return e
}

func mustGet[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, kind)
	if !ok {
		var zero T
		t.Fatalf("entity %v has no %T", e, zero)
	}
	return v
}

func eventKinds(w *ecs.World) []ecs.EventKind {
	var kinds []ecs.EventKind
	for _, evt := range w.Events().Drain() {
		kinds = append(kinds, evt.Kind)
	}
	return kinds
}
