package main

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/automoto/starlock/config"
	"github.com/automoto/starlock/fonts"
	"github.com/automoto/starlock/scenes"
	"github.com/automoto/starlock/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadFont(fonts.Regular, goregular.TTF)
	fonts.LoadFontWithSize(fonts.Bold, goregular.TTF, 14)
	fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 28)
	fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 8)

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Env.SkipMenu {
		g.scene = scenes.NewWorldScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.Screen.Width, config.Screen.Height)
	return config.Screen.Width, config.Screen.Height
}

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatalf("Could not read environment config: %v", err)
	}

	ebiten.SetWindowSize(config.Screen.Width*config.Screen.Scale, config.Screen.Height*config.Screen.Scale)
	ebiten.SetWindowTitle(config.Screen.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := systems.InitSaveGame(); err != nil {
		log.Printf("Warning: Continuing with in-memory saves only")
	}

	// World content is required; there is no game without it.
	if err := systems.InitRooms(); err != nil {
		log.Fatalf("Could not load world content: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
