package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/automoto/starlock/config"
)

// UpdateWorldMap toggles the map overlay. Gameplay freezes while it is open.
func UpdateWorldMap(ecs *ecs.ECS) {
	hud := getOrCreateHUD(ecs)
	input := getOrCreateInput(ecs)
	if input.JustPressed(cfg.ActionWorldMap) {
		hud.MapOpen = !hud.MapOpen
		return
	}
	if hud.MapOpen && input.JustPressed(cfg.ActionMenuBack) {
		hud.MapOpen = false
	}
}

// DrawWorldMap renders the overlay: one cell per manifest room, explored
// ones filled, the current one outlined.
func DrawWorldMap(ecs *ecs.ECS, screen *ebiten.Image) {
	hud := getOrCreateHUD(ecs)
	if !hud.MapOpen {
		return
	}
	room, ok := roomState(ecs)
	if !ok {
		return
	}
	sv, ok := saveState(ecs)
	if !ok {
		return
	}

	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, w, h, cfg.WorldMap.OverlayColor, false)

	cell := cfg.WorldMap.CellSize
	gap := cfg.WorldMap.CellGap
	minX, minY, maxX, maxY := room.Manifest.Bounds()

	// Center the grid on screen
	gridW := float64(maxX-minX+1)*(cell+gap) - gap
	gridH := float64(maxY-minY+1)*(cell+gap) - gap
	originX := (float64(screen.Bounds().Dx()) - gridW) / 2
	originY := (float64(screen.Bounds().Dy()) - gridH) / 2

	for _, c := range room.Manifest.Rooms {
		x := float32(originX + float64(c.X-minX)*(cell+gap))
		y := float32(originY + float64(c.Y-minY)*(cell+gap))
		size := float32(cell)

		fill := cfg.WorldMap.UnknownColor
		if sv.Service.IsExplored(sv.Slot, c) {
			fill = cfg.WorldMap.ExploredColor
		}
		vector.DrawFilledRect(screen, x, y, size, size, fill, false)

		if c == room.Current {
			outlineRect(screen, x, y, size, size, cfg.WorldMap.CurrentColor)
		}
	}
}

// outlineRect draws a one-pixel rectangle border.
func outlineRect(screen *ebiten.Image, x, y, w, h float32, c color.RGBA) {
	vector.DrawFilledRect(screen, x, y, w, 1, c, false)
	vector.DrawFilledRect(screen, x, y+h-1, w, 1, c, false)
	vector.DrawFilledRect(screen, x, y, 1, h, c, false)
	vector.DrawFilledRect(screen, x+w-1, y, 1, h, c, false)
}
