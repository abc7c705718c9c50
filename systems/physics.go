package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/tags"
)

// Fixed logic tick. Speeds are configured in pixels per second and scaled
// here; ebiten calls Update at 60 TPS.
const dt = 1.0 / 60.0

// UpdatePhysics applies gravity and resolves movement against the collision
// space. Runs after UpdatePlayer (intent) and UpdatePlatforms (carriers).
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		physics.SpeedY += cfg.Player.Gravity * dt
		if physics.SpeedY > cfg.Player.MaxFallSpeed {
			physics.SpeedY = cfg.Player.MaxFallSpeed
		}

		// Riders follow their platform before their own motion resolves,
		// so an ascending platform lifts them instead of rising through.
		if physics.CarrierDX != 0 {
			resolveHorizontal(physics, obj.Object, physics.CarrierDX)
			physics.CarrierDX = 0
		}
		if physics.CarrierDY < 0 {
			obj.Y += physics.CarrierDY
		}
		physics.CarrierDY = 0

		resolveHorizontal(physics, obj.Object, physics.SpeedX*dt)
		resolveVertical(physics, obj.Object, physics.SpeedY*dt)
	})
}

// resolveHorizontal moves the object by dx, stopping dead against solids
// that actually overlap vertically. One-way platforms never block sideways
// movement.
func resolveHorizontal(physics *components.PhysicsData, object *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}

	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		return
	}

	if shouldStopHorizontalMovement(object, check) {
		physics.SpeedX = 0
		dx = 0
	}

	object.X += dx
}

// shouldStopHorizontalMovement reports whether any solid in the check
// overlaps the object's vertical span. Solids clipped only by the check
// margin above or below do not block.
func shouldStopHorizontalMovement(object *resolv.Object, check *resolv.Collision) bool {
	solids := check.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		return false
	}

	objectBottom := object.Y + object.H

	for _, solid := range solids {
		if objectBottom > solid.Y && object.Y < solid.Y+solid.H {
			return true
		}
	}

	return false
}

// resolveVertical moves the object by dy, landing on solids and one-way
// platforms when falling and bumping against solids overhead when rising.
func resolveVertical(physics *components.PhysicsData, object *resolv.Object, dy float64) {
	physics.OnGround = nil

	// Check one pixel past the movement when falling so standing contact
	// is re-detected every tick.
	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		object.Y += dy
		return
	}

	if dy < 0 {
		object.Y += handleUpwardCollision(physics, object, check, dy)
		return
	}
	object.Y += handleDownwardCollision(physics, object, check, dy)
}

func handleUpwardCollision(physics *components.PhysicsData, object *resolv.Object, check *resolv.Collision, dy float64) float64 {
	if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
		physics.SpeedY = 0
		return check.ContactWithObject(solids[0]).Y()
	}

	// Clipping a cell corner: slide around it instead of stopping.
	if len(check.Cells) > 0 && check.Cells[0].ContainsTags(tags.ResolvSolid) {
		if slide := check.SlideAgainstCell(check.Cells[0], tags.ResolvSolid); slide != nil {
			object.X += slide.X()
		}
	}

	return dy
}

func handleDownwardCollision(physics *components.PhysicsData, object *resolv.Object, check *resolv.Collision, dy float64) float64 {
	if newDy, handled := tryPlatformCollision(physics, object, check); handled {
		return newDy
	}

	if newDy, handled := trySolidCollision(physics, check); handled {
		return newDy
	}

	return dy
}

// tryPlatformCollision lands on a one-way platform, but only from above:
// a body already sunk past the platform's top edge falls through.
func tryPlatformCollision(physics *components.PhysicsData, object *resolv.Object, check *resolv.Collision) (float64, bool) {
	platforms := check.ObjectsByTags(tags.ResolvPlatform)
	if len(platforms) == 0 {
		return 0, false
	}

	platform := platforms[0]

	if physics.SpeedY < 0 || object.Bottom() >= platform.Y+4 {
		return 0, false
	}

	physics.OnGround = platform
	physics.SpeedY = 0
	return check.ContactWithObject(platform).Y(), true
}

func trySolidCollision(physics *components.PhysicsData, check *resolv.Collision) (float64, bool) {
	solids := check.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		return 0, false
	}

	if physics.SpeedY >= 0 {
		physics.OnGround = solids[0]
		physics.SpeedY = 0
		return check.ContactWithObject(solids[0]).Y(), true
	}

	return 0, false
}
