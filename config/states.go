package config

// StateID identifies one state of an entity state machine
type StateID int

// Player movement states
const (
	StateIdle StateID = iota
	StateWalk
	StateJump
	StateFall
)

// Switch door states
const (
	DoorClosed StateID = iota
	DoorOpening
	DoorOpen
	DoorClosing
)

// Crumbling platform states
const (
	CrumbleIdle StateID = iota
	CrumbleShaking
	CrumbleCrumbling
	CrumbleFallen
)

// Room transition phases
const (
	TransitionNone StateID = iota
	TransitionFadeOut
	TransitionFadeIn
)
