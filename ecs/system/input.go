package system

import (
	"math"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/input"
)

// InputSystem turns held buttons into player velocity.
type InputSystem struct {
	source input.Source
	state  *GameState
	tuning Tuning
}

func NewInputSystem(source input.Source, state *GameState, tuning Tuning) *InputSystem {
	return &InputSystem{source: source, state: state, tuning: tuning}
}

func (s *InputSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil || s.source == nil || !s.state.Playing() {
		return
	}

	players := w.Query(component.PlayerComponent.Kind(), component.VelocityComponent.Kind())
	if len(players) == 0 {
		return
	}
	e := players[0]
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	if !ok {
		return
	}

	left := s.source.Held(input.ButtonLeft)
	right := s.source.Held(input.ButtonRight)
	switch {
	case left && !right:
		vel.X = math.Max(vel.X-s.tuning.MoveAccel*dt, -s.tuning.MaxSpeed)
		player.FacingLeft = true
	case right && !left:
		vel.X = math.Min(vel.X+s.tuning.MoveAccel*dt, s.tuning.MaxSpeed)
		player.FacingLeft = false
	default:
		// friction is applied per frame, not per second
		vel.X *= s.tuning.Friction
		if math.Abs(vel.X) < s.tuning.StopThreshold {
			vel.X = 0
		}
	}

	jump := s.source.Held(input.ButtonJump)
	if jump && !player.JumpHeld && (player.OnGround || player.JumpsLeft > 0) {
		vel.Y = -s.tuning.JumpSpeed
		if player.JumpsLeft > 0 {
			player.JumpsLeft--
		}
		player.OnGround = false
	}
	player.JumpHeld = jump
}
