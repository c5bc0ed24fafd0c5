package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// PhysicsSystem integrates velocity into position (semi-implicit Euler),
// keeps bodies inside the horizontal world bounds and handles the pit.
type PhysicsSystem struct {
	state  *GameState
	tuning Tuning
}

func NewPhysicsSystem(state *GameState, tuning Tuning) *PhysicsSystem {
	return &PhysicsSystem{state: state, tuning: tuning}
}

func (s *PhysicsSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil || !s.state.Playing() {
		return
	}

	for _, e := range w.Query(
		component.PositionComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.PhysicsComponent.Kind(),
	) {
		pos, ok := ecs.Get(w, e, component.PositionComponent.Kind())
		if !ok {
			continue
		}
		vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
		if !ok {
			continue
		}
		body, ok := ecs.Get(w, e, component.PhysicsComponent.Kind())
		if !ok {
			continue
		}

		if body.Gravity {
			maxFall := body.MaxFallSpeed
			if maxFall <= 0 {
				maxFall = s.tuning.MaxFallSpeed
			}
			vel.Y += s.tuning.Gravity * dt
			if maxFall > 0 && vel.Y > maxFall {
				vel.Y = maxFall
			}
		}
		pos.Set(pos.Vector().Add(vel.Vector().Mult(dt)))

		s.clampToWorld(w, e, pos, vel)

		if pos.Y > s.tuning.PitY {
			s.fellIntoPit(w, e, pos, vel)
		}
	}
}

func (s *PhysicsSystem) clampToWorld(w *ecs.World, e ecs.Entity, pos *component.Position, vel *component.Velocity) {
	var col component.Collider
	if c, ok := ecs.Get(w, e, component.ColliderComponent.Kind()); ok {
		col = *c
	}
	bb := col.Bounds(*pos)
	if bb.L < 0 {
		pos.X -= bb.L
		vel.X = 0
	} else if bb.R > s.tuning.WorldWidth {
		pos.X -= bb.R - s.tuning.WorldWidth
		vel.X = 0
	}
}

func (s *PhysicsSystem) fellIntoPit(w *ecs.World, e ecs.Entity, pos *component.Position, vel *component.Velocity) {
	if !ecs.Has(w, e, component.PlayerComponent.Kind()) {
		w.DestroyEntity(e)
		return
	}

	if s.state.LoseLife() {
		w.Events().Push(ecs.Event{Kind: ecs.EventGameOver, Entity: e})
		return
	}
	w.Events().Push(ecs.Event{Kind: ecs.EventLifeLost, Entity: e, Value: s.state.Lives})

	pos.X = s.tuning.RespawnX
	pos.Y = s.tuning.RespawnY
	vel.X = 0
	vel.Y = 0
	if player, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		player.OnGround = false
		player.JumpsLeft = player.MaxJumps
	}
}
