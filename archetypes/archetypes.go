package archetypes

import (
	"github.com/bryce26550/bullethell/components"
	cfg "github.com/bryce26550/bullethell/config"
	"github.com/bryce26550/bullethell/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
		components.Object,
		components.Order,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Order,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
		components.Object,
	)
	Game = newArchetype(
		components.Game,
		components.Frame,
		components.Random,
		components.Hooks,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
