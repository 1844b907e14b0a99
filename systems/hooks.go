package systems

import (
	"github.com/bryce26550/bullethell/components"
	"github.com/yohamta/donburi/ecs"
)

// OnScoreChanged registers a sink called with the new score after every change.
func OnScoreChanged(e *ecs.ECS, fn func(score int)) {
	h := getHooks(e)
	h.OnScore = append(h.OnScore, fn)
}

// OnLivesChanged registers a sink called with the remaining lives after every change.
func OnLivesChanged(e *ecs.ECS, fn func(lives int)) {
	h := getHooks(e)
	h.OnLives = append(h.OnLives, fn)
}

// OnGameOver registers a sink called with the final score when the game ends.
func OnGameOver(e *ecs.ECS, fn func(finalScore int)) {
	h := getHooks(e)
	h.OnGameOver = append(h.OnGameOver, fn)
}

func getHooks(e *ecs.ECS) *components.HooksData {
	GetGame(e)
	entry, _ := components.Hooks.First(e.World)
	return components.Hooks.Get(entry)
}

func notifyScore(e *ecs.ECS, score int) {
	for _, fn := range getHooks(e).OnScore {
		fn(score)
	}
}

func notifyLives(e *ecs.ECS, lives int) {
	for _, fn := range getHooks(e).OnLives {
		fn(lives)
	}
}
