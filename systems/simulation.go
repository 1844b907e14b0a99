package systems

import (
	"math/rand/v2"

	"github.com/bryce26550/bullethell/components"
	cfg "github.com/bryce26550/bullethell/config"
	"github.com/bryce26550/bullethell/systems/factory"
	"github.com/bryce26550/bullethell/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RegisterSimulation adds the per-frame update pipeline to e in its fixed order:
// player movement, enemy spawning, bullets, enemies, particles, collisions, shooting.
func RegisterSimulation(e *ecs.ECS) {
	e.AddSystem(WithRunningCheck(UpdatePlayer))
	e.AddSystem(WithRunningCheck(UpdateSpawner))
	e.AddSystem(WithRunningCheck(UpdateBullets))
	e.AddSystem(WithRunningCheck(UpdateEnemies))
	e.AddSystem(WithRunningCheck(UpdateParticles))
	e.AddSystem(WithRunningCheck(UpdateCollisions))
	e.AddSystem(WithRunningCheck(UpdateShooting))
	e.AddSystem(UpdateRestart)
}

// StartGame creates the world state and the player. rng may be nil.
func StartGame(e *ecs.ECS, rng *rand.Rand) {
	factory.CreateGame(e, rng)
	x, y := factory.PlayerSpawnPoint()
	factory.CreatePlayer(e, x, y)
}

// Tick advances the simulation by deltaMs with the given input snapshot.
// Negative deltas are treated as zero.
func Tick(e *ecs.ECS, deltaMs float64, input components.InputSnapshot) {
	ApplyInput(e, input)

	frame := GetFrame(e)
	if deltaMs < 0 {
		deltaMs = 0
	}
	frame.DeltaMs = deltaMs
	frame.Count++

	e.Update()
}

// WithRunningCheck skips a system unless the game is running.
func WithRunningCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsRunning(e) {
			return
		}
		system(e)
	}
}

// GetGame returns the world-state singleton.
func GetGame(e *ecs.ECS) *components.GameData {
	entry, ok := components.Game.First(e.World)
	if !ok {
		entry = factory.CreateGame(e, nil)
	}
	return components.Game.Get(entry)
}

// GetFrame returns the frame singleton.
func GetFrame(e *ecs.ECS) *components.FrameData {
	entry, ok := components.Frame.First(e.World)
	if !ok {
		factory.CreateGame(e, nil)
		entry, _ = components.Frame.First(e.World)
	}
	return components.Frame.Get(entry)
}

func IsRunning(e *ecs.ECS) bool {
	return GetGame(e).State == cfg.StateRunning
}

func IsGameOver(e *ecs.ECS) bool {
	return GetGame(e).State == cfg.StateGameOver
}

// AddScore increases the score and notifies score sinks.
func AddScore(e *ecs.ECS, points int) {
	if points <= 0 {
		return
	}
	game := GetGame(e)
	game.Score += points
	notifyScore(e, game.Score)
}

// LoseLife removes one life, notifies lives sinks and ends the game at zero.
// It reports whether the game is over.
func LoseLife(e *ecs.ECS) bool {
	game := GetGame(e)
	if game.Lives <= 0 {
		return true
	}
	game.Lives--
	notifyLives(e, game.Lives)
	if game.Lives == 0 {
		endGame(e)
		return true
	}
	return false
}

func endGame(e *ecs.ECS) {
	game := GetGame(e)
	game.State = cfg.StateGameOver

	gameOver := GetOrCreateGameOver(e)
	gameOver.FinalScore = game.Score

	for _, fn := range getHooks(e).OnGameOver {
		fn(game.Score)
	}
}

// Restart clears every entity collection, resets score and lives, and places a
// fresh player at the spawn point.
func Restart(e *ecs.ECS) {
	var toRemove []*donburi.Entry
	collect := func(entry *donburi.Entry) {
		toRemove = append(toRemove, entry)
	}
	tags.Player.Each(e.World, collect)
	tags.Bullet.Each(e.World, collect)
	tags.Enemy.Each(e.World, collect)
	tags.Particle.Each(e.World, collect)
	for _, entry := range toRemove {
		entry.Remove()
	}

	game := GetGame(e)
	game.State = cfg.StateRunning
	game.Score = 0
	game.Lives = cfg.Player.StartingLives
	game.SpawnTimer = 0

	x, y := factory.PlayerSpawnPoint()
	factory.CreatePlayer(e, x, y)

	notifyScore(e, game.Score)
	notifyLives(e, game.Lives)
}

// UpdateRestart restarts a finished game when the restart action is pressed.
func UpdateRestart(e *ecs.ECS) {
	if !IsGameOver(e) {
		return
	}
	if GetAction(getOrCreateInput(e), cfg.ActionRestart).JustPressed {
		Restart(e)
	}
}
