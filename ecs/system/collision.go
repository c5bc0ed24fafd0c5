package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// CollisionSystem resolves players against platforms and handles enemy and
// collectible contact.
type CollisionSystem struct {
	state  *GameState
	tuning Tuning
}

func NewCollisionSystem(state *GameState, tuning Tuning) *CollisionSystem {
	return &CollisionSystem{state: state, tuning: tuning}
}

// body bundles the components a player needs for resolution.
type body struct {
	entity ecs.Entity
	pos    *component.Position
	vel    *component.Velocity
	col    *component.Collider
	player *component.Player
}

func (b body) bounds() cp.BB {
	return b.col.Bounds(*b.pos)
}

func (s *CollisionSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil || !s.state.Playing() {
		return
	}

	players := w.Query(
		component.PlayerComponent.Kind(),
		component.PositionComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.ColliderComponent.Kind(),
	)
	platforms := w.Query(component.PlatformComponent.Kind(), component.PositionComponent.Kind(), component.ColliderComponent.Kind())
	enemies := w.Query(component.EnemyComponent.Kind(), component.PositionComponent.Kind(), component.ColliderComponent.Kind())
	collectibles := w.Query(component.CollectibleComponent.Kind(), component.PositionComponent.Kind(), component.ColliderComponent.Kind())

	for _, e := range players {
		b, ok := loadBody(w, e)
		if !ok {
			continue
		}
		if b.player.Invulnerable > 0 {
			b.player.Invulnerable = math.Max(0, b.player.Invulnerable-dt)
		}

		b.player.OnGround = false
		for _, p := range platforms {
			s.resolvePlatform(w, b, p)
		}
		for _, en := range enemies {
			if w.IsPendingDestroy(en) {
				continue
			}
			s.touchEnemy(w, b, en)
			if s.state.GameOver {
				return
			}
		}
		for _, c := range collectibles {
			s.touchCollectible(w, b, c)
		}
	}
}

func loadBody(w *ecs.World, e ecs.Entity) (body, bool) {
	b := body{entity: e}
	var ok bool
	if b.pos, ok = ecs.Get(w, e, component.PositionComponent.Kind()); !ok {
		return b, false
	}
	if b.vel, ok = ecs.Get(w, e, component.VelocityComponent.Kind()); !ok {
		return b, false
	}
	if b.col, ok = ecs.Get(w, e, component.ColliderComponent.Kind()); !ok {
		return b, false
	}
	if b.player, ok = ecs.Get(w, e, component.PlayerComponent.Kind()); !ok {
		return b, false
	}
	return b, true
}

func boundsOf(w *ecs.World, e ecs.Entity) (cp.BB, bool) {
	pos, ok := ecs.Get(w, e, component.PositionComponent.Kind())
	if !ok {
		return cp.BB{}, false
	}
	col, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
	if !ok {
		return cp.BB{}, false
	}
	return col.Bounds(*pos), true
}

// overlaps reports strict overlap. Boxes that only share an edge do not
// overlap, so a body resting on a platform is not resolved every frame.
func overlaps(a, b cp.BB) bool {
	return a.Intersects(b) && a.L != b.R && b.L != a.R && a.B != b.T && b.B != a.T
}

func (s *CollisionSystem) resolvePlatform(w *ecs.World, b body, e ecs.Entity) {
	platform, ok := ecs.Get(w, e, component.PlatformComponent.Kind())
	if !ok {
		return
	}
	pb, ok := boundsOf(w, e)
	if !ok {
		return
	}
	bb := b.bounds()
	if !overlaps(bb, pb) {
		return
	}

	// B is the top edge and T the bottom edge (y grows downward)
	overlapLeft := bb.R - pb.L
	overlapRight := pb.R - bb.L
	overlapTop := bb.T - pb.B
	overlapBottom := pb.T - bb.B
	minOverlap := math.Min(math.Min(overlapLeft, overlapRight), math.Min(overlapTop, overlapBottom))

	var push cp.Vector
	switch {
	case minOverlap == overlapTop && b.vel.Y >= 0:
		push.Y = -overlapTop
		b.vel.Y = 0
		b.player.OnGround = true
		b.player.JumpsLeft = b.player.MaxJumps
	case platform.OneWay:
	case minOverlap == overlapBottom && b.vel.Y < 0:
		push.Y = overlapBottom
		b.vel.Y = 0
	case minOverlap == overlapLeft:
		push.X = -overlapLeft
		b.vel.X = 0
	case minOverlap == overlapRight:
		push.X = overlapRight
		b.vel.X = 0
	}
	b.pos.Set(b.pos.Vector().Add(push))
}

func (s *CollisionSystem) touchEnemy(w *ecs.World, b body, e ecs.Entity) {
	enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !ok {
		return
	}
	eb, ok := boundsOf(w, e)
	if !ok {
		return
	}
	bb := b.bounds()
	if !overlaps(bb, eb) {
		return
	}

	enemyCenter := eb.Center()
	if b.vel.Y > 0 && bb.T < enemyCenter.Y {
		w.DestroyEntity(e)
		s.state.Score += enemy.Points
		b.vel.Y = -s.tuning.StompBounce
		w.Events().Push(ecs.Event{Kind: ecs.EventEnemyStomped, Entity: e, Value: enemy.Points})
		return
	}

	if b.player.Invulnerable > 0 {
		return
	}
	if s.state.LoseLife() {
		w.Events().Push(ecs.Event{Kind: ecs.EventGameOver, Entity: b.entity})
		return
	}
	w.Events().Push(ecs.Event{Kind: ecs.EventPlayerDamaged, Entity: b.entity, Value: s.state.Lives})

	dir := 1.0
	if bb.Center().X < enemyCenter.X {
		dir = -1
	}
	b.vel.X = dir * s.tuning.KnockbackX
	b.vel.Y = -s.tuning.KnockbackY
	b.player.OnGround = false
	b.player.Invulnerable = s.tuning.InvulnerableTime
}

func (s *CollisionSystem) touchCollectible(w *ecs.World, b body, e ecs.Entity) {
	item, ok := ecs.Get(w, e, component.CollectibleComponent.Kind())
	if !ok || item.Collected {
		return
	}
	cb, ok := boundsOf(w, e)
	if !ok || !overlaps(b.bounds(), cb) {
		return
	}
	item.Collected = true
	s.state.Score += item.Points
	w.DestroyEntity(e)
	w.Events().Push(ecs.Event{Kind: ecs.EventCollected, Entity: e, Value: item.Points})
}
