package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/render"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

func NewCollectible(w *ecs.World, spec prefabs.CollectibleSpec, at levels.Entity) (ecs.Entity, error) {
	entity := w.CreateEntity()
	if !entity.Valid() {
		return 0, fmt.Errorf("collectible: %w", component.ErrEntityNotAlive)
	}

	if err := ecs.Add(w, entity, component.CollectibleComponent.Kind(), component.Collectible{
		Points: int(at.FloatProp("points", float64(spec.Points))),
	}); err != nil {
		return 0, fmt.Errorf("collectible: add collectible: %w", err)
	}
	if err := addBody(w, entity, at.X, at.Y, spec.Collider); err != nil {
		return 0, fmt.Errorf("collectible: %w", err)
	}
	if err := addSprite(w, entity, spec.Collider, spec.Sprite.Color.Or(render.Collectible), spec.Sprite.AltColor.Or(render.CollectibleAlt)); err != nil {
		return 0, fmt.Errorf("collectible: %w", err)
	}
	if spec.Animation.FrameCount > 1 {
		if err := ecs.Add(w, entity, component.AnimationComponent.Kind(), component.Animation{
			FrameCount: spec.Animation.FrameCount,
			FrameTime:  spec.Animation.FrameTime,
		}); err != nil {
			return 0, fmt.Errorf("collectible: add animation: %w", err)
		}
	}

	return entity, nil
}
