package assets

import (
	"embed"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// RoomsDir is the directory inside GameFS holding the TMX room files.
const RoomsDir = "rooms"

// WorldManifest is the path of the world manifest inside GameFS.
const WorldManifest = "world.yaml"

//go:embed all:rooms world.yaml
var GameFS embed.FS

type solidKey struct {
	w, h int
	c    color.RGBA
}

var solidImages = map[solidKey]*ebiten.Image{}

// SolidImage returns a cached w by h image filled with c. The game ships no
// sprite sheets; every entity draws as a flat rectangle.
func SolidImage(w, h int, c color.RGBA) *ebiten.Image {
	key := solidKey{w: w, h: h, c: c}
	if img, ok := solidImages[key]; ok {
		return img
	}
	img := ebiten.NewImage(w, h)
	img.Fill(c)
	solidImages[key] = img
	return img
}
