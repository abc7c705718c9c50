package config

import "image/color"

// ScreenConfig holds the window and logical screen setup
type ScreenConfig struct {
	Width  int // logical pixels, one room fills the screen
	Height int
	Scale  int // window = logical * scale
	Title  string
}

// RoomConfig holds the room grid geometry
type RoomConfig struct {
	Width    float64 // pixels, must match the authored TMX size
	Height   float64
	TileSize int

	// Boundary crossing
	CrossThreshold float64 // fraction of the player body outside an edge
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (pixels/second; systems scale by the tick delta)
	WalkSpeed    float64
	Acceleration float64
	AirControl   float64 // acceleration multiplier while airborne
	JumpSpeed    float64 // negative = up
	Gravity      float64
	MaxFallSpeed float64

	// Jump feel
	CoyoteFrames     int // frames after leaving a ledge where jump still works
	JumpBufferFrames int // frames a jump press is remembered before landing

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// SaveConfig holds save-slot and durable-file settings
type SaveConfig struct {
	DefaultSlot    int
	RestoreEpsilon float64 // pixels; checkpoint restore position tolerance
	AppName        string  // platform data directory name
	FileKey        string  // item key of the save file within it
}

// TransitionConfig holds room transition presentation settings
type TransitionConfig struct {
	FadeSeconds float64 // fade out + fade in, each
}

// DoorConfig holds switch door timing
type DoorConfig struct {
	OpenSeconds  float64 // Closed -> Open sweep
	CloseSeconds float64 // Open -> Closed sweep
	HoldSeconds  float64 // how long a door stays open after its plate releases
}

// PlatformConfig holds moving and crumbling platform timing
type PlatformConfig struct {
	// Moving platforms (defaults; rooms override via object properties)
	TravelSeconds float64
	DefaultDX     float64
	DefaultDY     float64

	// Crumbling platforms
	ShakeSeconds   float64 // shaking before the platform gives way
	FallSeconds    float64 // fall-apart animation, already not solid
	RespawnSeconds float64 // how long it stays gone
}

// HUDConfig contains HUD layout and effect values
type HUDConfig struct {
	Margin       float64
	FontSize     float64
	CounterFade  float64 // seconds the star counter glows after a pickup
	KeyIconSize  float64
	TextColor    color.RGBA
	CounterColor color.RGBA
}

// WorldMapConfig contains the map overlay layout
type WorldMapConfig struct {
	CellSize      float64
	CellGap       float64
	OverlayColor  color.RGBA
	ExploredColor color.RGBA
	CurrentColor  color.RGBA
	UnknownColor  color.RGBA
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuOptions       []string
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuOptions       []string
}

// Global configuration instances
var Screen ScreenConfig
var Room RoomConfig
var Player PlayerConfig
var Save SaveConfig
var Transition TransitionConfig
var Door DoorConfig
var Platform PlatformConfig
var HUD HUDConfig
var WorldMap WorldMapConfig
var Menu MenuConfig
var Pause PauseConfig
var GameOver GameOverConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 220, B: 60, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 80, G: 200, B: 100, A: 255}
	Blue         = color.RGBA{R: 90, G: 150, B: 240, A: 255}
	Purple       = color.RGBA{R: 170, G: 90, B: 240, A: 255}
	Gray         = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	DarkGray     = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Entity draw colors (flat rectangles stand in for sprites)
var (
	BackgroundColor  = color.RGBA{R: 24, G: 26, B: 36, A: 255}
	SolidColor       = DarkGray
	PlayerColor      = White
	CheckpointIdle   = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	CheckpointActive = Green
	KeyColor         = Yellow
	LockColor        = color.RGBA{R: 160, G: 120, B: 40, A: 255}
	StarColor        = color.RGBA{R: 250, G: 240, B: 120, A: 255}
	PortalColor      = Purple
	DoorColor        = Blue
	PlateColor       = Gray
	PlatformColor    = color.RGBA{R: 140, G: 160, B: 200, A: 255}
	CrumbleColor     = color.RGBA{R: 180, G: 140, B: 100, A: 255}
)

func init() {
	Screen = ScreenConfig{
		Width:  320,
		Height: 240,
		Scale:  3,
		Title:  "Starlock",
	}

	Room = RoomConfig{
		Width:          320,
		Height:         240,
		TileSize:       16,
		CrossThreshold: 0.5, // half the body outside before a transition fires
	}

	Player = PlayerConfig{
		// Movement
		WalkSpeed:    120.0,
		Acceleration: 720.0,
		AirControl:   0.65,
		JumpSpeed:    -380.0, // apex ~74px, enough to clear a ceiling opening
		Gravity:      980.0,
		MaxFallSpeed: 560.0,

		// Jump feel
		CoyoteFrames:     6,
		JumpBufferFrames: 8,

		// Dimensions
		CollisionWidth:  16,
		CollisionHeight: 24,
	}

	Save = SaveConfig{
		DefaultSlot:    0,
		RestoreEpsilon: 1.0, // pixels of authoring drift a checkpoint absorbs
		AppName:        "starlock",
		FileKey:        "save",
	}

	Transition = TransitionConfig{
		FadeSeconds: 0.18,
	}

	Door = DoorConfig{
		OpenSeconds:  0.4,
		CloseSeconds: 0.4,
		HoldSeconds:  0.5,
	}

	Platform = PlatformConfig{
		TravelSeconds: 2.0,
		DefaultDX:     64.0,
		DefaultDY:     0.0,

		ShakeSeconds:   0.4,
		FallSeconds:    0.3,
		RespawnSeconds: 2.0,
	}

	HUD = HUDConfig{
		Margin:       6,
		FontSize:     10,
		CounterFade:  0.8,
		KeyIconSize:  8,
		TextColor:    White,
		CounterColor: StarColor,
	}

	WorldMap = WorldMapConfig{
		CellSize:      24,
		CellGap:       4,
		OverlayColor:  BlackOverlay,
		ExploredColor: Blue,
		CurrentColor:  White,
		UnknownColor:  DarkGray,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 18, G: 20, B: 30, A: 255},
		TitleColor:      StarColor,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TitleColor:        White,
		TextColorNormal:   Gray,
		TextColorSelected: White,
		TitleY:            70,
		MenuStartY:        120,
		MenuItemHeight:    22,
		MenuOptions:       []string{"Resume", "Main Menu"},
	}

	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 30, G: 12, B: 16, A: 255},
		TitleColor:        Red,
		TextColorNormal:   White,
		TextColorSelected: Orange,
		TitleY:            70,
		MenuStartY:        120,
		MenuItemHeight:    22,
		MenuOptions:       []string{"Continue", "Main Menu"},
	}
}
