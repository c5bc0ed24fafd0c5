package system

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/render"
)

const (
	hudMargin     = 4
	gameOverText  = "GAME OVER"
	restartPrompt = "PRESS R TO RESTART"
)

// RenderSystem draws the world through a render.Surface. It runs last so it
// sees this frame's resolved positions.
type RenderSystem struct {
	surface render.Surface
	state   *GameState
	tuning  Tuning
}

func NewRenderSystem(surface render.Surface, state *GameState, tuning Tuning) *RenderSystem {
	return &RenderSystem{surface: surface, state: state, tuning: tuning}
}

func (r *RenderSystem) Update(w *ecs.World, dt float64) {
	if r == nil || w == nil || r.surface == nil || r.state == nil {
		return
	}

	screenW, screenH := r.surface.Size()
	r.surface.Clear(render.Background)
	r.followPlayer(w, dt, screenW, screenH)
	advanceAnimations(w, dt)

	for _, e := range w.Query(component.PlatformComponent.Kind(), component.PositionComponent.Kind(), component.SpriteComponent.Kind()) {
		r.drawEntity(w, e, screenW, screenH)
	}
	for _, e := range w.Query(component.CollectibleComponent.Kind(), component.PositionComponent.Kind(), component.SpriteComponent.Kind()) {
		if item, ok := ecs.Get(w, e, component.CollectibleComponent.Kind()); ok && item.Collected {
			continue
		}
		r.drawEntity(w, e, screenW, screenH)
	}
	for _, e := range w.Query(component.EnemyComponent.Kind(), component.PositionComponent.Kind(), component.SpriteComponent.Kind()) {
		r.drawEntity(w, e, screenW, screenH)
	}
	for _, e := range w.Query(component.PlayerComponent.Kind(), component.PositionComponent.Kind(), component.SpriteComponent.Kind()) {
		r.drawEntity(w, e, screenW, screenH)
	}

	r.drawHUD(screenW, screenH)
}

// sizeOf returns the drawn size of e: the sprite size, else the collider.
func sizeOf(w *ecs.World, e ecs.Entity) (float64, float64) {
	if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok && s.Width > 0 && s.Height > 0 {
		return s.Width, s.Height
	}
	if c, ok := ecs.Get(w, e, component.ColliderComponent.Kind()); ok {
		return c.Width, c.Height
	}
	return 0, 0
}

func (r *RenderSystem) drawEntity(w *ecs.World, e ecs.Entity, screenW, screenH int) {
	pos, ok := ecs.Get(w, e, component.PositionComponent.Kind())
	if !ok {
		return
	}
	sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok || sprite.Hidden {
		return
	}
	width, height := sizeOf(w, e)
	camera := cp.Vector{X: r.state.CameraX, Y: r.state.CameraY}
	box := cp.BB{R: width, T: height}.Offset(pos.Vector().Sub(camera))
	if !overlaps(box, cp.BB{R: float64(screenW), T: float64(screenH)}) {
		return
	}

	c := spriteColor(w, e, sprite)
	if player, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok && player.Invulnerable > 0 {
		// blink at 10Hz while invulnerable
		if int(player.Invulnerable*10)%2 == 0 {
			c = render.PlayerHurt
		}
	}
	if c == nil {
		return
	}
	r.surface.FillRect(box.L, box.B, width, height, c)
}

func (r *RenderSystem) drawHUD(screenW, screenH int) {
	r.surface.DrawString(hudMargin, hudMargin, fmt.Sprintf("SCORE %d", r.state.Score), render.HUDText, render.HUDBackground)

	lives := fmt.Sprintf("LIVES %d", r.state.Lives)
	r.surface.DrawString(float64(screenW)-render.TextWidth(lives)-hudMargin, hudMargin, lives, render.HUDText, render.HUDBackground)

	if !r.state.GameOver {
		return
	}
	cx := float64(screenW) / 2
	cy := float64(screenH) / 2
	r.surface.DrawString(cx-render.TextWidth(gameOverText)/2, cy-render.LineHeight, gameOverText, render.Banner, render.HUDBackground)
	r.surface.DrawString(cx-render.TextWidth(restartPrompt)/2, cy+2, restartPrompt, render.HUDText, render.HUDBackground)
}
