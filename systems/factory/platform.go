package factory

import (
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/starlock/archetypes"
	"github.com/automoto/starlock/assets"
	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/shared/rooms"
	"github.com/automoto/starlock/tags"
)

// CreateMovingPlatform creates a one-way platform that ping-pongs between
// its authored position and the offset in its dx/dy properties.
func CreateMovingPlatform(ecs *ecs.ECS, s rooms.EntitySpawn) *donburi.Entry {
	platform := archetypes.MovingPlatform.Spawn(ecs)

	obj := resolv.NewObject(s.X, s.Y, s.W, s.H, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, s.W, s.H))
	obj.Data = platform

	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	components.MovingPlatform.SetValue(platform, components.MovingPlatformData{
		OriginX: s.X,
		OriginY: s.Y,
		DX:      s.Props.Float("dx", cfg.Platform.DefaultDX),
		DY:      s.Props.Float("dy", cfg.Platform.DefaultDY),
		PrevX:   s.X,
		PrevY:   s.Y,
	})

	// The platform moves using a *gween.Sequence of two tweens, carrying it
	// out along the path and back, easing at both ends.
	duration := float32(s.Props.Float("duration", cfg.Platform.TravelSeconds))
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, 1, duration, ease.InOutSine),
		gween.New(1, 0, duration, ease.InOutSine),
	)
	components.Tween.Set(platform, tw)

	components.Sprite.SetValue(platform, components.SpriteData{
		Image: assets.SolidImage(int(s.W), int(s.H), cfg.PlatformColor),
	})

	addToSpace(ecs, obj)

	return platform
}

// CreateCrumblingPlatform creates a one-way platform that gives way shortly
// after being stood on and respawns later.
func CreateCrumblingPlatform(ecs *ecs.ECS, s rooms.EntitySpawn) *donburi.Entry {
	platform := archetypes.CrumblingPlatform.Spawn(ecs)

	obj := resolv.NewObject(s.X, s.Y, s.W, s.H, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, s.W, s.H))
	obj.Data = platform

	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	components.CrumblingPlatform.SetValue(platform, components.CrumblingPlatformData{
		State: cfg.CrumbleIdle,
		HomeX: s.X,
		HomeY: s.Y,
	})
	components.Sprite.SetValue(platform, components.SpriteData{
		Image: assets.SolidImage(int(s.W), int(s.H), cfg.CrumbleColor),
	})

	addToSpace(ecs, obj)

	return platform
}
