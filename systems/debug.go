package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/fonts"
	"github.com/automoto/starlock/shared/save"
	"github.com/automoto/starlock/tags"
)

// UpdateDebug toggles the overlay. Only active when STARLOCK_DEBUG is set.
func UpdateDebug(ecs *ecs.ECS) {
	if !cfg.Env.Debug {
		return
	}
	input := getOrCreateInput(ecs)
	if input.JustPressed(cfg.ActionDebugOverlay) {
		d := getOrCreateDebug(ecs)
		d.Visible = !d.Visible
	}
}

// DrawDebug renders collision outlines and a status readout.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Env.Debug {
		return
	}
	d := getOrCreateDebug(ecs)
	if !d.Visible {
		return
	}

	if space, ok := spaceOf(ecs); ok {
		for _, obj := range space.Objects() {
			outlineRect(screen,
				float32(obj.X), float32(obj.Y),
				float32(obj.W), float32(obj.H),
				debugColorFor(obj))
		}
	}

	lines := []string{fmt.Sprintf("TPS %0.0f", ebiten.ActualTPS())}
	if room, ok := roomState(ecs); ok {
		loads, hits := room.Cache.Stats()
		lines = append(lines,
			fmt.Sprintf("room %s", room.Current),
			fmt.Sprintf("cache %d templates, %d loads, %d hits", room.Cache.Len(), loads, hits))
	}
	if sv, ok := saveState(ecs); ok {
		lines = append(lines, fmt.Sprintf("keys %d locks %d stars %d",
			sv.Service.FlagCount(sv.Slot, save.KindKey),
			sv.Service.FlagCount(sv.Slot, save.KindLock),
			sv.Service.FlagCount(sv.Slot, save.KindStar)))
	}

	face := fonts.Small.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, 4, 24+i*10, cfg.White)
	}
}

func debugColorFor(obj *resolv.Object) color.RGBA {
	switch {
	case obj.HasTags(tags.ResolvPlayer):
		return cfg.Green
	case obj.HasTags(tags.ResolvPlatform):
		return cfg.Blue
	case obj.HasTags(tags.ResolvSolid):
		return cfg.Red
	default:
		return cfg.Yellow
	}
}

// getOrCreateDebug returns the singleton Debug component, creating if needed.
func getOrCreateDebug(ecs *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Debug))
	}
	return components.Debug.Get(entry)
}
