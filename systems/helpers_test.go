package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/bryce26550/bullethell/components"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestECS builds a running game with a fixed random seed and the full
// simulation pipeline registered.
func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	StartGame(e, rand.New(rand.NewPCG(1, 2)))
	RegisterSimulation(e)
	return e
}

func playerObject(t *testing.T, e *ecs.ECS) *components.ObjectData {
	t.Helper()
	entry, ok := GetPlayer(e)
	require.True(t, ok, "player should exist")
	return components.Object.Get(entry)
}

func idle() components.InputSnapshot {
	return components.InputSnapshot{}
}
