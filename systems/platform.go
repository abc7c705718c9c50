package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/starlock/assets"
	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
)

// UpdatePlatforms advances moving platforms along their ping-pong tween and
// carries whoever stands on them by this tick's delta. Runs before
// UpdatePhysics so riders consume the delta the same tick.
func UpdatePlatforms(ecs *ecs.ECS) {
	components.MovingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		plat := components.MovingPlatform.Get(e)
		obj := components.Object.Get(e)
		seq := components.Tween.Get(e)

		v, _, seqDone := seq.Update(float32(dt))
		if seqDone {
			seq.Reset()
		}
		t := float64(v)

		newX := plat.OriginX + plat.DX*t
		newY := plat.OriginY + plat.DY*t
		dx := newX - plat.PrevX
		dy := newY - plat.PrevY

		obj.X = newX
		obj.Y = newY
		obj.Update()
		plat.PrevX = newX
		plat.PrevY = newY

		carryRiders(ecs, obj.Object, dx, dy)
	})
}

func carryRiders(ecs *ecs.ECS, platform *resolv.Object, dx, dy float64) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if physics.OnGround == platform {
			physics.CarrierDX += dx
			physics.CarrierDY += dy
		}
	})
}

// UpdateCrumblingPlatforms runs the shake, fall, respawn cycle. Stepping on
// the platform commits it: the shake never aborts when the player leaves.
func UpdateCrumblingPlatforms(ecs *ecs.ECS) {
	components.CrumblingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		crumble := components.CrumblingPlatform.Get(e)
		obj := components.Object.Get(e)
		sprite := components.Sprite.Get(e)

		switch crumble.State {
		case cfg.CrumbleIdle:
			if stoodOn(ecs, obj.Object) {
				crumble.State = cfg.CrumbleShaking
				crumble.Timer = 0
			}

		case cfg.CrumbleShaking:
			crumble.Timer += dt
			sprite.OffsetX = 1
			if int(crumble.Timer*30)%2 == 0 {
				sprite.OffsetX = -1
			}
			if crumble.Timer >= cfg.Platform.ShakeSeconds {
				crumble.State = cfg.CrumbleCrumbling
				crumble.Timer = 0
				sprite.OffsetX = 0
				// The floor is gone from here on; the fall-apart is visual.
				desolidifyObject(obj.Object)
			}

		case cfg.CrumbleCrumbling:
			crumble.Timer += dt
			sprite.OffsetY = crumble.Timer / cfg.Platform.FallSeconds * 6
			if crumble.Timer >= cfg.Platform.FallSeconds {
				crumble.State = cfg.CrumbleFallen
				crumble.Timer = 0
				sprite.Image = nil
				sprite.OffsetY = 0
			}

		case cfg.CrumbleFallen:
			crumble.Timer += dt
			if crumble.Timer >= cfg.Platform.RespawnSeconds {
				crumble.State = cfg.CrumbleIdle
				crumble.Timer = 0
				obj.X = crumble.HomeX
				obj.Y = crumble.HomeY
				solidifyObject(ecs, obj.Object)
				obj.Update()
				sprite.Image = assets.SolidImage(int(obj.W), int(obj.H), cfg.CrumbleColor)
			}
		}
	})
}

func stoodOn(ecs *ecs.ECS, platform *resolv.Object) bool {
	found := false
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if components.Physics.Get(e).OnGround == platform {
			found = true
		}
	})
	return found
}
