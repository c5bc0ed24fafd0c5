package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/render"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

// NewEnemy creates a patrolling enemy. The placement props min_x, max_x,
// speed, points and script override the prefab; patrol bounds default to
// the spawn x.
func NewEnemy(w *ecs.World, spec prefabs.EnemySpec, at levels.Entity) (ecs.Entity, error) {
	minX := at.FloatProp("min_x", at.X)
	maxX := at.FloatProp("max_x", at.X)
	if minX > maxX {
		minX, maxX = maxX, minX
	}

	entity := w.CreateEntity()
	if !entity.Valid() {
		return 0, fmt.Errorf("enemy: %w", component.ErrEntityNotAlive)
	}

	if err := ecs.Add(w, entity, component.EnemyComponent.Kind(), component.Enemy{
		MinX:      minX,
		MaxX:      maxX,
		Speed:     at.FloatProp("speed", spec.Speed),
		Direction: 1,
		Points:    int(at.FloatProp("points", float64(spec.Points))),
		Script:    at.StringProp("script", spec.Script),
	}); err != nil {
		return 0, fmt.Errorf("enemy: add enemy: %w", err)
	}
	if err := addBody(w, entity, at.X, at.Y, spec.Collider); err != nil {
		return 0, fmt.Errorf("enemy: %w", err)
	}
	if err := addSprite(w, entity, spec.Collider, spec.Sprite.Color.Or(render.Enemy), nil); err != nil {
		return 0, fmt.Errorf("enemy: %w", err)
	}

	return entity, nil
}
