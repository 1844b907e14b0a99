package components

import (
	cfg "github.com/bryce26550/bullethell/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputSnapshot is the held state of every action at the moment input was polled.
type InputSnapshot [cfg.ActionCount]bool

// Held returns a snapshot with the given actions held.
func Held(actions ...cfg.ActionID) InputSnapshot {
	var s InputSnapshot
	for _, a := range actions {
		s[a] = true
	}
	return s
}

// InputData stores the current and previous frame's snapshots.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         InputSnapshot
	Previous        InputSnapshot
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()
