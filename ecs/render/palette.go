package render

import (
	"image/color"

	"golang.org/x/image/colornames"
)

var (
	Background     color.Color = colornames.Midnightblue
	PlatformSolid  color.Color = colornames.Saddlebrown
	PlatformOneWay color.Color = colornames.Peru
	Player         color.Color = colornames.Dodgerblue
	PlayerHurt     color.Color = colornames.Lightskyblue
	Enemy          color.Color = colornames.Crimson
	Collectible    color.Color = colornames.Gold
	CollectibleAlt color.Color = colornames.Khaki
	HUDText        color.Color = colornames.White
	HUDBackground  color.Color = color.NRGBA{A: 160}
	Banner         color.Color = colornames.Red
)
