package component

// Player holds per-player control state. OnGround is written by the
// collision system only.
type Player struct {
	OnGround     bool
	JumpsLeft    int
	MaxJumps     int
	JumpHeld     bool
	FacingLeft   bool
	Invulnerable float64
}

var PlayerComponent = NewComponent[Player]()
