package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/render"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

// NewPlatform creates static geometry. One-way platforms are drawn
// spec.OneWayHeight tall when set, whatever their collider height.
func NewPlatform(w *ecs.World, spec prefabs.PlatformSpec, p levels.Platform) (ecs.Entity, error) {
	entity := w.CreateEntity()
	if !entity.Valid() {
		return 0, fmt.Errorf("platform: %w", component.ErrEntityNotAlive)
	}

	col := prefabs.ColliderSpec{Width: p.Width, Height: p.Height}
	if err := addBody(w, entity, p.X, p.Y, col); err != nil {
		return 0, fmt.Errorf("platform: %w", err)
	}
	if err := ecs.Add(w, entity, component.PlatformComponent.Kind(), component.Platform{OneWay: p.OneWay}); err != nil {
		return 0, fmt.Errorf("platform: add platform: %w", err)
	}

	fill := spec.Solid.Color.Or(render.PlatformSolid)
	if p.OneWay {
		fill = spec.OneWay.Color.Or(render.PlatformOneWay)
		if spec.OneWayHeight > 0 && spec.OneWayHeight < col.Height {
			col.Height = spec.OneWayHeight
		}
	}
	if err := addSprite(w, entity, col, fill, nil); err != nil {
		return 0, fmt.Errorf("platform: %w", err)
	}

	return entity, nil
}
