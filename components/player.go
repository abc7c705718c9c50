package components

import (
	cfg "github.com/automoto/starlock/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	State  cfg.StateID // StateIdle / StateWalk / StateJump / StateFall
	Facing float64     // -1 left, 1 right

	// Jump feel counters, in frames
	Coyote     int
	JumpBuffer int
}

var Player = donburi.NewComponentType[PlayerData]()
