package systems

import (
	"github.com/bryce26550/bullethell/components"
	"github.com/bryce26550/bullethell/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles moves particles, burns their life and removes the expired ones.
func UpdateParticles(ecs *ecs.ECS) {
	dt := GetFrame(ecs).DeltaMs
	var toDestroy []*donburi.Entry

	tags.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		obj := components.Object.Get(e)

		obj.X += p.VX * dt
		obj.Y += p.VY * dt
		p.Life -= dt

		if p.Life <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}
