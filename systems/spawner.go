package systems

import (
	cfg "github.com/bryce26550/bullethell/config"
	"github.com/bryce26550/bullethell/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner accumulates elapsed time and spawns one enemy each time the
// timer exceeds the spawn interval.
func UpdateSpawner(ecs *ecs.ECS) {
	game := GetGame(ecs)
	game.SpawnTimer += GetFrame(ecs).DeltaMs
	if game.SpawnTimer > cfg.Enemy.SpawnInterval {
		factory.SpawnEnemy(ecs)
		game.SpawnTimer = 0
	}
}
