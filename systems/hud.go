package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/fonts"
	"github.com/automoto/starlock/shared/save"
)

// UpdateHUD advances the star counter glow.
func UpdateHUD(ecs *ecs.ECS) {
	hud := getOrCreateHUD(ecs)
	if hud.StarFlash == nil {
		return
	}
	v, done := hud.StarFlash.Update(float32(dt))
	hud.FlashValue = float64(v)
	if done {
		hud.StarFlash = nil
		hud.FlashValue = 0
	}
}

// flashStarCounter makes the counter glow briefly after a star pickup.
func flashStarCounter(ecs *ecs.ECS) {
	hud := getOrCreateHUD(ecs)
	hud.StarFlash = gween.New(1, 0, float32(cfg.HUD.CounterFade), ease.Linear)
	hud.FlashValue = 1
}

// DrawHUD renders the star counter and one icon per unspent key.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	sv, ok := saveState(ecs)
	if !ok {
		return
	}
	room, ok := roomState(ecs)
	if !ok {
		return
	}
	hud := getOrCreateHUD(ecs)

	margin := cfg.HUD.Margin

	counter := fmt.Sprintf("STARS %d/%d", sv.Service.StarCount(sv.Slot), room.Manifest.StarTotal)
	c := lerpColor(cfg.HUD.TextColor, cfg.HUD.CounterColor, hud.FlashValue)
	text.Draw(screen, counter, fonts.Regular.Get(), int(margin), int(margin)+int(cfg.HUD.FontSize), c)

	keys := sv.Service.FlagCount(sv.Slot, save.KindKey) - sv.Service.FlagCount(sv.Slot, save.KindLock)
	size := float32(cfg.HUD.KeyIconSize)
	for i := 0; i < keys; i++ {
		x := float32(cfg.Screen.Width) - float32(margin) - size - float32(i)*(size+2)
		vector.DrawFilledRect(screen, x, float32(margin), size, size, cfg.KeyColor, false)
	}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}

// getOrCreateHUD returns the singleton HUD component, creating if needed.
func getOrCreateHUD(ecs *ecs.ECS) *components.HUDData {
	entry, ok := components.HUD.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.HUD))
	}
	return components.HUD.Get(entry)
}
