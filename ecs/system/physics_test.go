package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

func TestPhysicsGravityAndFallClamp(t *testing.T) {
	tuning := DefaultTuning()
	state := NewGameState(3)
	w := ecs.NewWorld()
	w.AddSystem(NewPhysicsSystem(state, tuning))
	p := addPlayer(t, w, 50, 0)

	w.Update(0.5)

	vel := mustGet(t, w, p, component.VelocityComponent.Kind())
	pos := mustGet(t, w, p, component.PositionComponent.Kind())
	if vel.Y != tuning.Gravity*0.5 {
		t.Fatalf("expected vy=%v, got %v", tuning.Gravity*0.5, vel.Y)
	}
	// semi-implicit: position uses the updated velocity
	if pos.Y != vel.Y*0.5 {
		t.Fatalf("expected y=%v, got %v", vel.Y*0.5, pos.Y)
	}

	pos.Y = 0
	w.Update(0.25)
	if vel.Y != tuning.MaxFallSpeed {
		t.Fatalf("expected fall speed clamped to %v, got %v", tuning.MaxFallSpeed, vel.Y)
	}
}

func TestPhysicsIsDeterministic(t *testing.T) {
	run := func() []component.Position {
		state := NewGameState(3)
		w := ecs.NewWorld()
		w.AddSystem(NewPhysicsSystem(state, DefaultTuning()))
		p := addPlayer(t, w, 40, 10)
		vel := mustGet(t, w, p, component.VelocityComponent.Kind())
		vel.X, vel.Y = 37.5, -210

		var trail []component.Position
		for i := 0; i < 120; i++ {
			w.Update(frame)
			trail = append(trail, *mustGet(t, w, p, component.PositionComponent.Kind()))
		}
		return trail
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("frame %d diverged: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestPhysicsClampsToWorld(t *testing.T) {
	cases := []struct {
		name     string
		x, vx    float64
		want     float64
		wantStop bool
	}{
		{"left_edge", 10, -60, 0, true},
		{"right_edge", 940, 60, 948, true},
		{"inside", 100, 60, 160, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tuning := DefaultTuning()
			tuning.Gravity = 0
			state := NewGameState(3)
			w := ecs.NewWorld()
			w.AddSystem(NewPhysicsSystem(state, tuning))
			p := addPlayer(t, w, c.x, 50)
			vel := mustGet(t, w, p, component.VelocityComponent.Kind())
			vel.X = c.vx

			w.Update(1)

			pos := mustGet(t, w, p, component.PositionComponent.Kind())
			if pos.X != c.want {
				t.Fatalf("expected x=%v, got %v", c.want, pos.X)
			}
			if stopped := vel.X == 0; stopped != c.wantStop {
				t.Fatalf("expected stopped=%v, vx=%v", c.wantStop, vel.X)
			}
		})
	}
}

func TestPitRespawnsPlayer(t *testing.T) {
	tuning := DefaultTuning()
	state := NewGameState(3)
	w := ecs.NewWorld()
	w.AddSystem(NewPhysicsSystem(state, tuning))
	p := addPlayer(t, w, 300, tuning.PitY+1)
	mustGet(t, w, p, component.PlayerComponent.Kind()).JumpsLeft = 0

	w.Update(frame)

	pos := mustGet(t, w, p, component.PositionComponent.Kind())
	vel := mustGet(t, w, p, component.VelocityComponent.Kind())
	player := mustGet(t, w, p, component.PlayerComponent.Kind())
	if state.Lives != 2 || state.GameOver {
		t.Fatalf("expected one life lost, got %+v", *state)
	}
	if pos.X != tuning.RespawnX || pos.Y != tuning.RespawnY || vel.X != 0 || vel.Y != 0 {
		t.Fatalf("expected respawn at (%v,%v) at rest, got %+v %+v", tuning.RespawnX, tuning.RespawnY, *pos, *vel)
	}
	if player.JumpsLeft != player.MaxJumps {
		t.Fatalf("respawn must refill jumps")
	}
	if got := eventKinds(w); len(got) != 1 || got[0] != ecs.EventLifeLost {
		t.Fatalf("expected life lost event, got %v", got)
	}
}

func TestPitEndsGame(t *testing.T) {
	tuning := DefaultTuning()
	state := NewGameState(1)
	w := ecs.NewWorld()
	w.AddSystem(NewPhysicsSystem(state, tuning))
	p := addPlayer(t, w, 300, tuning.PitY+1)

	w.Update(frame)

	if !state.GameOver || state.Lives != 0 {
		t.Fatalf("expected game over, got %+v", *state)
	}
	if got := eventKinds(w); len(got) != 1 || got[0] != ecs.EventGameOver {
		t.Fatalf("expected game over event, got %v", got)
	}

	// frozen while the game is over
	before := *mustGet(t, w, p, component.PositionComponent.Kind())
	w.Update(frame)
	if after := *mustGet(t, w, p, component.PositionComponent.Kind()); after != before {
		t.Fatalf("physics advanced after game over: %+v -> %+v", before, after)
	}
}

func TestPitDestroysOtherBodies(t *testing.T) {
	tuning := DefaultTuning()
	state := NewGameState(3)
	w := ecs.NewWorld()
	w.AddSystem(NewPhysicsSystem(state, tuning))

	e := w.CreateEntity()
	mustAdd(t, w, e, component.PositionComponent.Kind(), component.Position{X: 10, Y: tuning.PitY + 1})
	mustAdd(t, w, e, component.VelocityComponent.Kind(), component.Velocity{})
	mustAdd(t, w, e, component.PhysicsComponent.Kind(), component.Physics{Gravity: true})

	w.Update(frame)

	if !w.IsPendingDestroy(e) {
		t.Fatalf("expected body below the pit to be queued for destruction")
	}
	if state.Lives != 3 {
		t.Fatalf("non-player bodies must not cost lives")
	}
}
