package component

// Physics marks a body integrated by the physics system.
type Physics struct {
	Gravity      bool
	MaxFallSpeed float64
}

var PhysicsComponent = NewComponent[Physics]()
