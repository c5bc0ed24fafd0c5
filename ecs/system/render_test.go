package system

import (
	"image/color"
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/render"
)

func newRenderWorld(state *GameState) (*ecs.World, *render.Recorder) {
	tuning := DefaultTuning()
	rec := render.NewRecorder(tuning.ScreenWidth, tuning.ScreenHeight)
	w := ecs.NewWorld()
	w.AddSystem(NewRenderSystem(rec, state, tuning))
	return w, rec
}

func TestRenderOrderAndCulling(t *testing.T) {
	state := NewGameState(3)
	w, rec := newRenderWorld(state)

	// created in reverse draw order to show the order is by role
	addPlayer(t, w, 50, 146)
	addEnemy(t, w, 200, 148, 200, 200, 0)
	addEnemy(t, w, 700, 148, 700, 700, 0)
	addCollectible(t, w, 100, 100, 10)
	taken := addCollectible(t, w, 120, 100, 10)
	mustGet(t, w, taken, component.CollectibleComponent.Kind()).Collected = true
	addPlatform(t, w, 0, 160, 400, 20, false)

	w.Update(frame)

	if len(rec.Ops) == 0 || rec.Ops[0].Kind != render.OpClear || rec.Ops[0].Color != render.Background {
		t.Fatalf("frame must start with a clear, got %+v", rec.Ops)
	}

	fills := rec.Filter(render.OpFillRect)
	want := []render.Op{
		{Kind: render.OpFillRect, X: 0, Y: 160, W: 400, H: 20, Color: testPlatformColor},
		{Kind: render.OpFillRect, X: 100, Y: 100, W: 8, H: 8, Color: testCollectibleColor},
		{Kind: render.OpFillRect, X: 200, Y: 148, W: 14, H: 12, Color: testEnemyColor},
		{Kind: render.OpFillRect, X: 50, Y: 146, W: 12, H: 14, Color: testPlayerColor},
	}
	if len(fills) != len(want) {
		t.Fatalf("expected %d fills, got %d: %+v", len(want), len(fills), fills)
	}
	for i := range want {
		if fills[i] != want[i] {
			t.Fatalf("fill %d: expected %+v, got %+v", i, want[i], fills[i])
		}
	}

	texts := rec.Filter(render.OpDrawString)
	if len(texts) != 2 {
		t.Fatalf("expected score and lives, got %+v", texts)
	}
	if texts[0].Text != "SCORE 0" || texts[0].X != hudMargin || texts[0].Y != hudMargin {
		t.Fatalf("unexpected score text %+v", texts[0])
	}
	if texts[1].Text != "LIVES 3" || texts[1].X != 320-render.TextWidth("LIVES 3")-hudMargin {
		t.Fatalf("unexpected lives text %+v", texts[1])
	}
	if last := rec.Ops[len(rec.Ops)-1]; last.Kind != render.OpDrawString {
		t.Fatalf("HUD must be drawn last, got %+v", last)
	}
}

func TestRenderGameOverBanner(t *testing.T) {
	state := NewGameState(1)
	state.LoseLife()
	w, rec := newRenderWorld(state)

	w.Update(frame)

	var texts []string
	for _, op := range rec.Filter(render.OpDrawString) {
		texts = append(texts, op.Text)
	}
	want := []string{"SCORE 0", "LIVES 0", gameOverText, restartPrompt}
	if len(texts) != len(want) {
		t.Fatalf("expected %v, got %v", want, texts)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, texts)
		}
	}
}

func TestCameraFollowsPlayer(t *testing.T) {
	cases := []struct {
		name    string
		x       float64
		dt      float64
		wantCam float64
	}{
		{"clamped_left", 50, 1, 0},
		{"centered", 500, 1, 346},
		{"clamped_right", 940, 1, 640},
		{"eased", 300, 0.1, 146 * 0.5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			state := NewGameState(3)
			w, rec := newRenderWorld(state)
			addPlayer(t, w, c.x, 146)

			w.Update(c.dt)

			if state.CameraX != c.wantCam {
				t.Fatalf("expected camera x=%v, got %v", c.wantCam, state.CameraX)
			}
			if state.CameraY != 0 {
				t.Fatalf("world is one screen tall, camera y=%v", state.CameraY)
			}
			fills := rec.Filter(render.OpFillRect)
			if len(fills) != 1 || fills[0].X != c.x-c.wantCam {
				t.Fatalf("player drawn at %+v, want x=%v", fills, c.x-c.wantCam)
			}
		})
	}
}

func TestRenderAnimationAndBlink(t *testing.T) {
	state := NewGameState(3)
	w, rec := newRenderWorld(state)

	alt := color.NRGBA{G: 9, A: 255}
	c := addCollectible(t, w, 100, 100, 10)
	mustGet(t, w, c, component.SpriteComponent.Kind()).AltColor = alt
	mustAdd(t, w, c, component.AnimationComponent.Kind(), component.Animation{FrameCount: 2, FrameTime: 0.25})
	p := addPlayer(t, w, 50, 146)
	mustGet(t, w, p, component.PlayerComponent.Kind()).Invulnerable = 0.85

	w.Update(0.3)

	fills := rec.Filter(render.OpFillRect)
	if len(fills) != 2 {
		t.Fatalf("expected two fills, got %+v", fills)
	}
	if fills[0].Color != alt {
		t.Fatalf("expected alt colour on odd frame, got %v", fills[0].Color)
	}
	if fills[1].Color != render.PlayerHurt {
		t.Fatalf("expected hurt colour while blinking, got %v", fills[1].Color)
	}
	if anim := mustGet(t, w, c, component.AnimationComponent.Kind()); anim.Frame != 1 {
		t.Fatalf("expected frame 1, got %d", anim.Frame)
	}
}
