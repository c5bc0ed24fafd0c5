package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/input"
	"github.com/milk9111/platformer/ecs/render"
)

// Register adds the gameplay systems to w in their fixed frame order:
// Input, EnemyAI, Physics, Collision, Render. Physics must see this frame's
// input velocity before Collision resolves it, and Render must see the
// resolved positions.
func Register(w *ecs.World, source input.Source, surface render.Surface, state *GameState, tuning Tuning) {
	if w == nil {
		return
	}
	w.AddSystem(NewInputSystem(source, state, tuning))
	w.AddSystem(NewEnemyAISystem(state))
	w.AddSystem(NewPhysicsSystem(state, tuning))
	w.AddSystem(NewCollisionSystem(state, tuning))
	w.AddSystem(NewRenderSystem(surface, state, tuning))
}
