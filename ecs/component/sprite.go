package component

import "image/color"

// Sprite is a flat coloured rectangle. AltColor is shown on odd animation
// frames when the entity also has an Animation.
type Sprite struct {
	Color    color.Color
	AltColor color.Color
	Width    float64
	Height   float64
	Hidden   bool
}

var SpriteComponent = NewComponent[Sprite]()
