package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/systems"
	"github.com/automoto/starlock/ui"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene shows the title menu. Continue resumes the default save slot;
// New Game wipes it.
type MenuScene struct {
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once

	shouldContinue bool
	shouldNewGame  bool
}

func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	ms.menuUI.UI.Update()

	// Button handlers only set flags; the scene change happens here so the
	// UI is never torn down mid-callback.
	if ms.shouldContinue {
		ms.shouldContinue = false
		systems.SaveService().QueueLoad(cfg.Save.DefaultSlot)
		ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger))
		return
	}

	if ms.shouldNewGame {
		ms.shouldNewGame = false
		systems.SaveService().ResetAll()
		systems.FlushSave()
		ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	hasSave := systems.SaveService().HasSave(cfg.Save.DefaultSlot)

	ms.menuUI = ui.NewMenuUI(
		hasSave,
		func() { ms.shouldContinue = true },
		func() { ms.shouldNewGame = true },
		func() { os.Exit(0) },
	)
}
