package system

import (
	"math"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// followPlayer eases the camera toward centering the first player and
// clamps it to the world bounds.
func (r *RenderSystem) followPlayer(w *ecs.World, dt float64, screenW, screenH int) {
	players := w.Query(component.PlayerComponent.Kind(), component.PositionComponent.Kind())
	if len(players) == 0 {
		return
	}
	pos, ok := ecs.Get(w, players[0], component.PositionComponent.Kind())
	if !ok {
		return
	}
	width, height := sizeOf(w, players[0])

	targetX := pos.X + width/2 - float64(screenW)/2
	targetY := pos.Y + height/2 - float64(screenH)/2

	t := math.Min(r.tuning.CameraSpeed*dt, 1)
	r.state.CameraX += (targetX - r.state.CameraX) * t
	r.state.CameraY += (targetY - r.state.CameraY) * t

	r.state.CameraX = clamp(r.state.CameraX, 0, math.Max(0, r.tuning.WorldWidth-float64(screenW)))
	r.state.CameraY = clamp(r.state.CameraY, 0, math.Max(0, r.tuning.WorldHeight-float64(screenH)))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
