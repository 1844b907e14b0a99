package systems

import (
	"github.com/bryce26550/bullethell/components"
	cfg "github.com/bryce26550/bullethell/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// PollInput reads keyboard and gamepad state into a snapshot.
// The returned method is the device that produced input this frame, or last if none did.
func PollInput(last components.InputMethod) (components.InputSnapshot, components.InputMethod) {
	var snap components.InputSnapshot

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	analogLeft, analogRight, analogUp, analogDown := getAnalogStickState(gamepadIDs)

	var keyboardUsed, gamepadUsed bool

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				snap[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					snap[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	// Merge analog stick into directional actions
	if analogLeft {
		snap[cfg.ActionMoveLeft] = true
		gamepadUsed = true
	}
	if analogRight {
		snap[cfg.ActionMoveRight] = true
		gamepadUsed = true
	}
	if analogUp {
		snap[cfg.ActionMoveUp] = true
		snap[cfg.ActionMenuUp] = true
		gamepadUsed = true
	}
	if analogDown {
		snap[cfg.ActionMoveDown] = true
		snap[cfg.ActionMenuDown] = true
		gamepadUsed = true
	}

	method := last
	if gamepadUsed {
		method = components.InputGamepad
	} else if keyboardUsed {
		method = components.InputKeyboard
	}
	return snap, method
}

// UpdateInput polls raw input into the Input singleton.
// Scenes that drive the simulation through Tick poll once and pass the snapshot instead.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	snap, method := PollInput(input.LastInputMethod)
	input.Previous = input.Current
	input.Current = snap
	input.LastInputMethod = method
}

// ApplyInput makes snap the current frame's input; the old current becomes previous.
func ApplyInput(ecs *ecs.ECS, snap components.InputSnapshot) {
	input := getOrCreateInput(ecs)
	input.Previous = input.Current
	input.Current = snap
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			left = true
		}
		if horizontal > deadzone {
			right = true
		}
		if vertical < -deadzone {
			up = true
		}
		if vertical > deadzone {
			down = true
		}
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// LastInputMethod returns the device most recently used.
func LastInputMethod(ecs *ecs.ECS) components.InputMethod {
	return getOrCreateInput(ecs).LastInputMethod
}

// SetInputMethod records the device that produced the latest snapshot.
func SetInputMethod(ecs *ecs.ECS, method components.InputMethod) {
	getOrCreateInput(ecs).LastInputMethod = method
}
