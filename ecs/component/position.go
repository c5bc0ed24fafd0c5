package component

import "github.com/jakecoffman/cp"

// Position is the top-left corner of an entity in world space.
type Position struct {
	X float64
	Y float64
}

func (p Position) Vector() cp.Vector {
	return cp.Vector{X: p.X, Y: p.Y}
}

// Set moves the position to v.
func (p *Position) Set(v cp.Vector) {
	p.X, p.Y = v.X, v.Y
}

var PositionComponent = NewComponent[Position]()
