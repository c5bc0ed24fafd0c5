package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

func addBody(w *ecs.World, e ecs.Entity, x, y float64, col prefabs.ColliderSpec) error {
	if err := ecs.Add(w, e, component.PositionComponent.Kind(), component.Position{X: x, Y: y}); err != nil {
		return fmt.Errorf("add position: %w", err)
	}
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), component.Collider{
		Width:   col.Width,
		Height:  col.Height,
		OffsetX: col.OffsetX,
		OffsetY: col.OffsetY,
	}); err != nil {
		return fmt.Errorf("add collider: %w", err)
	}
	return nil
}

func addSprite(w *ecs.World, e ecs.Entity, col prefabs.ColliderSpec, c, alt color.Color) error {
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), component.Sprite{
		Color:    c,
		AltColor: alt,
		Width:    col.Width,
		Height:   col.Height,
	}); err != nil {
		return fmt.Errorf("add sprite: %w", err)
	}
	return nil
}
