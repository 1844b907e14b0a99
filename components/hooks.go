package components

import "github.com/yohamta/donburi"

// HooksData holds the sinks notified when displayed counters change.
type HooksData struct {
	OnScore    []func(score int)
	OnLives    []func(lives int)
	OnGameOver []func(finalScore int)
}

var Hooks = donburi.NewComponentType[HooksData]()
