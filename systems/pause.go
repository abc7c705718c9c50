package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/fonts"
)

// SceneChanger switches the active scene. Implemented by the Game in main.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// WithGameplayChecks wraps a system so it only runs during live play: not
// paused, not mid room transition, not under the world map overlay.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreatePause(e).IsPaused {
			return
		}
		if room, ok := roomState(e); ok && room.Transitioning {
			return
		}
		if getOrCreateHUD(e).MapOpen {
			return
		}
		system(e)
	}
}

// NewUpdatePause toggles the pause menu and runs its options. Leaving for
// the main menu abandons nothing; progress went to disk at the last
// checkpoint touch.
func NewUpdatePause(sceneChanger SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		pause := GetOrCreatePause(e)
		input := getOrCreateInput(e)

		if input.JustPressed(cfg.ActionPause) {
			pause.IsPaused = !pause.IsPaused
			pause.SelectedOption = components.PauseResume
			return
		}
		if !pause.IsPaused {
			return
		}
		if input.JustPressed(cfg.ActionMenuBack) {
			pause.IsPaused = false
			return
		}

		numOptions := len(cfg.Pause.MenuOptions)
		if input.JustPressed(cfg.ActionMenuUp) {
			pause.SelectedOption = (pause.SelectedOption - 1 + numOptions) % numOptions
		}
		if input.JustPressed(cfg.ActionMenuDown) {
			pause.SelectedOption = (pause.SelectedOption + 1) % numOptions
		}

		if input.JustPressed(cfg.ActionMenuSelect) {
			switch pause.SelectedOption {
			case components.PauseResume:
				pause.IsPaused = false
			case components.PauseMenu:
				sceneChanger.ChangeScene(createMenuScene())
			}
		}
	}
}

// DrawPause renders the pause overlay and menu.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	titleFont := fonts.Title.Get()
	title := "PAUSED"
	titleWidth := len(title) * 16 // Approximate width for title font
	text.Draw(screen, title, titleFont, int((width-float64(titleWidth))/2), int(cfg.Pause.TitleY), cfg.Pause.TitleColor)

	menuFont := fonts.Bold.Get()
	for i, option := range cfg.Pause.MenuOptions {
		y := cfg.Pause.MenuStartY + float64(i)*cfg.Pause.MenuItemHeight

		textColor := cfg.Pause.TextColorNormal
		if i == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		textWidth := len(option) * 8
		x := int((width - float64(textWidth)) / 2)
		text.Draw(screen, option, menuFont, x, int(y)+int(cfg.Pause.MenuItemHeight), textColor)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
