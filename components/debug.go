package components

import "github.com/yohamta/donburi"

// DebugData toggles the debug overlay.
type DebugData struct {
	Visible bool
}

var Debug = donburi.NewComponentType[DebugData]()
