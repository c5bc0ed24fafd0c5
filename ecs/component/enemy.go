package component

// Enemy patrols between MinX and MaxX. Direction is +1 or -1.
type Enemy struct {
	MinX      float64
	MaxX      float64
	Speed     float64
	Direction float64
	Points    int
	// Script optionally names a patrol script under prefabs/scripts.
	Script string
}

var EnemyComponent = NewComponent[Enemy]()
