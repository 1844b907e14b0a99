package components

import "github.com/yohamta/donburi"

// GameOverData stores what the game over panel shows
type GameOverData struct {
	FinalScore int
	BestScore  int
	NewBest    bool
}

// GameOver is the component type for game over panel state
var GameOver = donburi.NewComponentType[GameOverData]()
