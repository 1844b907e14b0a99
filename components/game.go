package components

import (
	"math/rand/v2"

	cfg "github.com/bryce26550/bullethell/config"
	"github.com/yohamta/donburi"
)

// GameData is the world state shared by every system.
type GameData struct {
	State      cfg.GameStateID
	Score      int
	Lives      int
	SpawnTimer float64 // ms accumulated since the last enemy spawn
	NextSeq    uint64  // next spawn sequence number
}

var Game = donburi.NewComponentType[GameData]()

// FrameData carries the elapsed time of the tick being simulated.
type FrameData struct {
	DeltaMs float64
	Count   uint64
}

var Frame = donburi.NewComponentType[FrameData]()

// RandomData is the random source used for spawns and particles.
type RandomData struct {
	*rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()
