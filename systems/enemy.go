package systems

import (
	"github.com/bryce26550/bullethell/components"
	cfg "github.com/bryce26550/bullethell/config"
	"github.com/bryce26550/bullethell/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies moves every enemy down and drops the ones that passed the bottom.
func UpdateEnemies(ecs *ecs.ECS) {
	dt := GetFrame(ecs).DeltaMs
	limit := float64(cfg.C.Height) + cfg.Enemy.CullMargin
	var toRemove []*donburi.Entry

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		obj := components.Object.Get(e)

		obj.Y += enemy.SpeedY * dt

		if obj.Y >= limit {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.Remove()
	}
}
