package system

import (
	"math"
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/input"
	"github.com/milk9111/platformer/ecs/render"
)

func TestRegisterOrder(t *testing.T) {
	w := ecs.NewWorld()
	Register(w, &input.State{}, render.NewRecorder(320, 180), NewGameState(3), DefaultTuning())

	systems := w.Systems()
	if len(systems) != 5 {
		t.Fatalf("expected 5 systems, got %d", len(systems))
	}
	checks := []func(ecs.System) bool{
		func(s ecs.System) bool { _, ok := s.(*InputSystem); return ok },
		func(s ecs.System) bool { _, ok := s.(*EnemyAISystem); return ok },
		func(s ecs.System) bool { _, ok := s.(*PhysicsSystem); return ok },
		func(s ecs.System) bool { _, ok := s.(*CollisionSystem); return ok },
		func(s ecs.System) bool { _, ok := s.(*RenderSystem); return ok },
	}
	for i, check := range checks {
		if !check(systems[i]) {
			t.Fatalf("system %d has unexpected type %T", i, systems[i])
		}
	}
}

func TestPipelineJumpAndLand(t *testing.T) {
	tuning := DefaultTuning()
	state := NewGameState(3)
	var buttons input.State
	rec := render.NewRecorder(tuning.ScreenWidth, tuning.ScreenHeight)
	w := ecs.NewWorld()
	Register(w, &buttons, rec, state, tuning)

	addPlatform(t, w, 0, 160, 400, 20, false)
	p := addPlayer(t, w, 50, 146)
	player := mustGet(t, w, p, component.PlayerComponent.Kind())
	pos := mustGet(t, w, p, component.PositionComponent.Kind())

	w.Update(frame)
	if !player.OnGround {
		t.Fatalf("expected player to settle on the ground")
	}

	buttons.Set(input.ButtonJump, true)
	w.Update(frame)
	if player.OnGround || pos.Y >= 146 {
		t.Fatalf("expected player airborne after jump, y=%v", pos.Y)
	}
	buttons.Set(input.ButtonJump, false)

	peak := pos.Y
	for i := 0; i < 180 && !player.OnGround; i++ {
		w.Update(frame)
		if pos.Y < peak {
			peak = pos.Y
		}
	}
	if !player.OnGround || math.Abs(pos.Y-146) > 1e-9 {
		t.Fatalf("expected player back on the ground at y=146, got y=%v on_ground=%v", pos.Y, player.OnGround)
	}
	if peak > 100 {
		t.Fatalf("jump too low, peak y=%v", peak)
	}
	if len(rec.Filter(render.OpClear)) != 1 {
		t.Fatalf("recorder should only hold the last frame")
	}
}
