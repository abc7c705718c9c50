package components

import "github.com/yohamta/donburi"

// Pause menu option indices.
const (
	PauseResume = iota
	PauseMenu
)

type PauseData struct {
	IsPaused       bool
	SelectedOption int
}

var Pause = donburi.NewComponentType[PauseData]()
