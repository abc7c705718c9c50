package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/starlock/assets"
	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/tags"
)

// UpdatePressurePlates presses a plate while the player stands on it. Plates
// are not solid; a standing body simply overlaps the strip. Runs before
// UpdateSwitchDoors so doors see this tick's state.
func UpdatePressurePlates(ecs *ecs.ECS) {
	components.PressurePlate.Each(ecs.World, func(e *donburi.Entry) {
		plate := components.PressurePlate.Get(e)
		obj := components.Object.Get(e)

		pressed := obj.Check(0, 0, tags.ResolvPlayer) != nil
		if pressed == plate.Pressed {
			return
		}
		plate.Pressed = pressed
		setPlateSprite(e, pressed)
	})
}

func setPlateSprite(entry *donburi.Entry, pressed bool) {
	sprite := components.Sprite.Get(entry)
	obj := components.Object.Get(entry)
	if sprite == nil || obj == nil {
		return
	}
	c := cfg.PlateColor
	if pressed {
		c = cfg.Green
	}
	sprite.Image = assets.SolidImage(int(obj.W), int(obj.H), c)
}
