package component

import "github.com/jakecoffman/cp"

// Collider is an axis-aligned box anchored at the entity Position.
type Collider struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

// Bounds returns the collider box at the given position. B is the top edge
// and T the bottom edge since world y grows downward.
func (c Collider) Bounds(p Position) cp.BB {
	box := cp.BB{R: c.Width, T: c.Height}
	return box.Offset(p.Vector().Add(cp.Vector{X: c.OffsetX, Y: c.OffsetY}))
}

var ColliderComponent = NewComponent[Collider]()
