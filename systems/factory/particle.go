package factory

import (
	"github.com/bryce26550/bullethell/archetypes"
	"github.com/bryce26550/bullethell/components"
	cfg "github.com/bryce26550/bullethell/config"
	"github.com/bryce26550/bullethell/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateParticle(ecs *ecs.ECS, x, y, vx, vy float64) *donburi.Entry {
	particle := archetypes.Particle.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Particle.Size, cfg.Particle.Size, tags.ResolvParticle)
	obj.Data = particle
	components.Object.SetValue(particle, components.ObjectData{Object: obj})
	components.Particle.SetValue(particle, components.ParticleData{
		VX:      vx,
		VY:      vy,
		Life:    cfg.Particle.MaxLife,
		MaxLife: cfg.Particle.MaxLife,
	})

	return particle
}

// SpawnExplosion creates a burst of particles at (x, y) flying in random directions.
func SpawnExplosion(ecs *ecs.ECS, x, y float64) {
	rng := random(ecs)
	for i := 0; i < cfg.Particle.BurstCount; i++ {
		vx := (rng.Float64() - 0.5) * cfg.Particle.Spread
		vy := (rng.Float64() - 0.5) * cfg.Particle.Spread
		CreateParticle(ecs, x, y, vx, vy)
	}
}
