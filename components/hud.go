package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CounterData is one HUD counter with its highlight pulse.
type CounterData struct {
	Label string
	Value int
	Pulse *gween.Tween // nil when idle
	Glow  float32      // 1 right after a change, fading to 0
}

type HUDData struct {
	Score CounterData
	Lives CounterData
	Best  int
}

var HUD = donburi.NewComponentType[HUDData]()
