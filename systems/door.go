package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/tags"
)

// UpdateSwitchDoors runs each door's open/close sweep from the state of the
// plates sharing its name. The solid's height follows Progress; the object
// leaves the collision space only while fully open and is solid again the
// moment it starts closing. A door never closes onto the player: the sweep
// holds while the doorway is blocked.
func UpdateSwitchDoors(ecs *ecs.ECS) {
	components.SwitchDoor.Each(ecs.World, func(e *donburi.Entry) {
		door := components.SwitchDoor.Get(e)
		obj := components.Object.Get(e)

		want := plateWantsOpen(ecs, door.Name)
		if want {
			door.Hold = cfg.Door.HoldSeconds
		} else if door.Hold > 0 {
			door.Hold -= dt
			want = door.Hold > 0
		}

		switch door.State {
		case cfg.DoorClosed:
			if want {
				door.State = cfg.DoorOpening
			}

		case cfg.DoorOpening:
			if !want {
				door.State = cfg.DoorClosing
				break
			}
			door.Progress += dt / door.OpenSeconds
			if door.Progress >= 1 {
				door.Progress = 1
				door.State = cfg.DoorOpen
				desolidifyObject(obj.Object)
			}

		case cfg.DoorOpen:
			if want || doorwayBlocked(ecs, obj, door.FullH) {
				break
			}
			door.State = cfg.DoorClosing
			solidifyObject(ecs, obj.Object)

		case cfg.DoorClosing:
			if want {
				door.State = cfg.DoorOpening
				break
			}
			next := door.Progress - dt/cfg.Door.CloseSeconds
			if next < 0 {
				next = 0
			}
			if doorwayBlocked(ecs, obj, door.FullH*(1-next)) {
				break
			}
			door.Progress = next
			if door.Progress == 0 {
				door.State = cfg.DoorClosed
			}
		}

		obj.H = door.FullH * (1 - door.Progress)
		obj.Update()
	})
}

func plateWantsOpen(ecs *ecs.ECS, name string) bool {
	want := false
	components.PressurePlate.Each(ecs.World, func(e *donburi.Entry) {
		plate := components.PressurePlate.Get(e)
		if plate.Pressed && plate.Target == name {
			want = true
		}
	})
	return want
}

// doorwayBlocked reports whether the player overlaps the door's footprint at
// the given height.
func doorwayBlocked(ecs *ecs.ECS, obj *components.ObjectData, h float64) bool {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return false
	}
	p := components.Object.Get(playerEntry)
	return p.X < obj.X+obj.W && p.X+p.W > obj.X &&
		p.Y < obj.Y+h && p.Y+p.H > obj.Y
}
