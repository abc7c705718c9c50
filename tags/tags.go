package tags

import "github.com/yohamta/donburi"

var (
	Player            = donburi.NewTag().SetName("Player")
	Wall              = donburi.NewTag().SetName("Wall")
	Checkpoint        = donburi.NewTag().SetName("Checkpoint")
	Collectible       = donburi.NewTag().SetName("Collectible")
	Lock              = donburi.NewTag().SetName("Lock")
	Portal            = donburi.NewTag().SetName("Portal")
	SwitchDoor        = donburi.NewTag().SetName("SwitchDoor")
	PressurePlate     = donburi.NewTag().SetName("PressurePlate")
	MovingPlatform    = donburi.NewTag().SetName("MovingPlatform")
	CrumblingPlatform = donburi.NewTag().SetName("CrumblingPlatform")
	RoomEntity        = donburi.NewTag().SetName("RoomEntity")
)

// Resolv tags for physics collision
const (
	ResolvSolid       = "solid"
	ResolvPlayer      = "Player"
	ResolvCheckpoint  = "checkpoint"
	ResolvCollectible = "collectible"
	ResolvLock        = "lock"
	ResolvPortal      = "portal"
	ResolvDoor        = "door"
	ResolvPlate       = "plate"
	ResolvPlatform    = "platform"
)
