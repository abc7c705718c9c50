package components

import "github.com/yohamta/donburi"

// PressurePlateData opens every switch door whose Name matches Target while
// something stands on the plate.
type PressurePlateData struct {
	Target  string
	Pressed bool
}

var PressurePlate = donburi.NewComponentType[PressurePlateData]()
