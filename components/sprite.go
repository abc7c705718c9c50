package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Image *ebiten.Image

	// Draw offset from the collision object's top-left.
	OffsetX float64
	OffsetY float64
}

var Sprite = donburi.NewComponentType[SpriteData]()
