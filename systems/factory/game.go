package factory

import (
	"math/rand/v2"

	"github.com/bryce26550/bullethell/archetypes"
	"github.com/bryce26550/bullethell/components"
	cfg "github.com/bryce26550/bullethell/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGame creates the world-state singleton. rng may be nil, in which case
// a randomly seeded source is used.
func CreateGame(ecs *ecs.ECS, rng *rand.Rand) *donburi.Entry {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	game := archetypes.Game.Spawn(ecs)
	components.Game.SetValue(game, components.GameData{
		State: cfg.StateRunning,
		Lives: cfg.Player.StartingLives,
	})
	components.Random.SetValue(game, components.RandomData{Rand: rng})
	return game
}

// nextSeq hands out spawn sequence numbers in creation order.
func nextSeq(ecs *ecs.ECS) uint64 {
	entry, ok := components.Game.First(ecs.World)
	if !ok {
		return 0
	}
	game := components.Game.Get(entry)
	seq := game.NextSeq
	game.NextSeq++
	return seq
}

func random(ecs *ecs.ECS) *rand.Rand {
	if entry, ok := components.Random.First(ecs.World); ok {
		if r := components.Random.Get(entry); r.Rand != nil {
			return r.Rand
		}
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
