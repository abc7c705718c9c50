package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
)

var drawOp = &ebiten.DrawImageOptions{}

// DrawRoom fills the background and draws the room's solid geometry.
func DrawRoom(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.BackgroundColor)
	room, ok := roomState(ecs)
	if !ok || room.Instance == nil {
		return
	}
	for _, s := range room.Instance.Solids {
		vector.DrawFilledRect(screen,
			float32(s.X), float32(s.Y),
			float32(s.W), float32(s.H),
			cfg.SolidColor, false)
	}
}

// DrawSprites draws every sprite stretched to its collision box, so animated
// boxes (doors mid-sweep) render at their live size. The art is flat color;
// scaling costs nothing visually.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		if sprite.Image == nil {
			return
		}
		obj := components.Object.Get(e)
		if obj == nil || obj.W <= 0 || obj.H <= 0 {
			return
		}

		drawOp.GeoM.Reset()
		bounds := sprite.Image.Bounds()
		sw := float64(bounds.Dx())
		sh := float64(bounds.Dy())
		if sw != obj.W || sh != obj.H {
			drawOp.GeoM.Scale(obj.W/sw, obj.H/sh)
		}
		drawOp.GeoM.Translate(obj.X+sprite.OffsetX, obj.Y+sprite.OffsetY)
		screen.DrawImage(sprite.Image, drawOp)
	})
}

// DrawFade covers the screen during room transitions.
func DrawFade(ecs *ecs.ECS, screen *ebiten.Image) {
	room, ok := roomState(ecs)
	if !ok || room.FadeAlpha <= 0 {
		return
	}
	a := room.FadeAlpha
	if a > 1 {
		a = 1
	}
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, w, h, color.RGBA{A: uint8(a * 255)}, false)
}
