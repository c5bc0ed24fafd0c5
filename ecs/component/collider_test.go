package component

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestColliderBounds(t *testing.T) {
	tests := []struct {
		name       string
		col        Collider
		pos        Position
		want       cp.BB
		wantCenter cp.Vector
	}{
		{"origin", Collider{Width: 12, Height: 14}, Position{}, cp.BB{R: 12, T: 14}, cp.Vector{X: 6, Y: 7}},
		{"moved", Collider{Width: 12, Height: 14}, Position{X: 50, Y: 146}, cp.BB{L: 50, B: 146, R: 62, T: 160}, cp.Vector{X: 56, Y: 153}},
		{"offset", Collider{Width: 8, Height: 8, OffsetX: 2, OffsetY: -4}, Position{X: 10, Y: 20}, cp.BB{L: 12, B: 16, R: 20, T: 24}, cp.Vector{X: 16, Y: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.col.Bounds(tt.pos)
			if got != tt.want {
				t.Fatalf("Bounds() = %v, want %v", got, tt.want)
			}
			if c := got.Center(); !c.Equal(tt.wantCenter) {
				t.Fatalf("Center() = %v, want %v", c, tt.wantCenter)
			}
		})
	}
}

func TestPositionSet(t *testing.T) {
	p := Position{X: 1, Y: 2}
	p.Set(p.Vector().Add(Velocity{X: 3, Y: -4}.Vector().Mult(0.5)))
	if p.X != 2.5 || p.Y != 0 {
		t.Fatalf("unexpected position %+v", p)
	}
}
