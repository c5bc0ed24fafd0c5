package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/render"
	"github.com/milk9111/platformer/prefabs"
)

// NewPlayer creates the player at x, y. maxJumps overrides the prefab when
// positive.
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec, x, y float64, maxJumps int) (ecs.Entity, error) {
	if maxJumps <= 0 {
		maxJumps = spec.MaxJumps
	}
	if maxJumps <= 0 {
		maxJumps = 1
	}

	entity := w.CreateEntity()
	if !entity.Valid() {
		return 0, fmt.Errorf("player: %w", component.ErrEntityNotAlive)
	}

	if err := ecs.Add(w, entity, component.PlayerComponent.Kind(), component.Player{
		JumpsLeft: maxJumps,
		MaxJumps:  maxJumps,
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := addBody(w, entity, x, y, spec.Collider); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := ecs.Add(w, entity, component.VelocityComponent.Kind(), component.Velocity{}); err != nil {
		return 0, fmt.Errorf("player: add velocity: %w", err)
	}
	if err := ecs.Add(w, entity, component.PhysicsComponent.Kind(), component.Physics{
		Gravity:      true,
		MaxFallSpeed: spec.MaxFallSpeed,
	}); err != nil {
		return 0, fmt.Errorf("player: add physics: %w", err)
	}
	if err := addSprite(w, entity, spec.Collider, spec.Sprite.Color.Or(render.Player), spec.Sprite.AltColor.Or(render.PlayerHurt)); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	return entity, nil
}
