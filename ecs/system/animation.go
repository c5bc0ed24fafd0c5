package system

import (
	"image/color"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// advanceAnimations steps every Animation by dt, wrapping at FrameCount.
func advanceAnimations(w *ecs.World, dt float64) {
	ecs.ForEach(w, component.AnimationComponent.Kind(), func(e ecs.Entity, anim *component.Animation) {
		if anim.FrameCount <= 1 || anim.FrameTime <= 0 {
			return
		}
		anim.Timer += dt
		for anim.Timer >= anim.FrameTime {
			anim.Timer -= anim.FrameTime
			anim.Frame = (anim.Frame + 1) % anim.FrameCount
		}
	})
}

// spriteColor picks the colour for the current animation frame.
func spriteColor(w *ecs.World, e ecs.Entity, sprite *component.Sprite) color.Color {
	if sprite.AltColor == nil {
		return sprite.Color
	}
	anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok || anim.Frame%2 == 0 {
		return sprite.Color
	}
	return sprite.AltColor
}
