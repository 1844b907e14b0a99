package systems

import (
	"github.com/bryce26550/bullethell/components"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}

// TrackBestScore keeps the game over panel's best score up to date and persists
// new records.
func TrackBestScore(e *ecs.ECS) {
	OnGameOver(e, func(finalScore int) {
		best, isNew := RecordScore(finalScore)
		gameOver := GetOrCreateGameOver(e)
		gameOver.FinalScore = finalScore
		gameOver.BestScore = best
		gameOver.NewBest = isNew
		SetHUDBest(e, best)
	})
}
