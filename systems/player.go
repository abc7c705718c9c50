package systems

import (
	"math"

	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/tags"
)

// UpdatePlayer turns input into player intent: walk acceleration, jump
// buffering, and the movement state machine. Runs after UpdateInput and
// before UpdatePhysics; OnGround is whatever last tick's resolution left.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	input := getOrCreateInput(ecs)
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	handleMovementInput(input, player, physics)
	handleJumpInput(input, player, physics)
	updatePlayerState(player, physics)
}

func handleMovementInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData) {
	target := 0.0
	if input.Pressed(cfg.ActionMoveLeft) {
		target -= cfg.Player.WalkSpeed
	}
	if input.Pressed(cfg.ActionMoveRight) {
		target += cfg.Player.WalkSpeed
	}

	accel := cfg.Player.Acceleration * dt
	if physics.OnGround == nil {
		accel *= cfg.Player.AirControl
	}
	physics.SpeedX = approach(physics.SpeedX, target, accel)

	if target < 0 {
		player.Facing = -1
	} else if target > 0 {
		player.Facing = 1
	}
}

func handleJumpInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData) {
	// Coyote frames keep a jump legal just after walking off a ledge;
	// the buffer keeps a press legal just before landing.
	if physics.OnGround != nil {
		player.Coyote = cfg.Player.CoyoteFrames
	} else if player.Coyote > 0 {
		player.Coyote--
	}

	if input.JustPressed(cfg.ActionJump) {
		player.JumpBuffer = cfg.Player.JumpBufferFrames
	} else if player.JumpBuffer > 0 {
		player.JumpBuffer--
	}

	if player.JumpBuffer > 0 && player.Coyote > 0 {
		physics.SpeedY = cfg.Player.JumpSpeed
		physics.OnGround = nil
		player.JumpBuffer = 0
		player.Coyote = 0
	}
}

func updatePlayerState(player *components.PlayerData, physics *components.PhysicsData) {
	if physics.OnGround != nil {
		if physics.SpeedX != 0 {
			player.State = cfg.StateWalk
		} else {
			player.State = cfg.StateIdle
		}
		return
	}
	if physics.SpeedY < 0 {
		player.State = cfg.StateJump
	} else {
		player.State = cfg.StateFall
	}
}

// approach moves current toward target by at most maxDelta.
func approach(current, target, maxDelta float64) float64 {
	if current < target {
		return math.Min(current+maxDelta, target)
	}
	return math.Max(current-maxDelta, target)
}
