package systems

import (
	"github.com/bryce26550/bullethell/components"
	cfg "github.com/bryce26550/bullethell/config"
	"github.com/bryce26550/bullethell/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBullets moves every bullet and drops the ones that left the playfield.
func UpdateBullets(ecs *ecs.ECS) {
	dt := GetFrame(ecs).DeltaMs
	var toRemove []*donburi.Entry

	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		bullet := components.Bullet.Get(e)
		obj := components.Object.Get(e)

		obj.Y += bullet.SpeedY * dt

		if !bulletInBounds(obj.Y) {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.Remove()
	}
}

// bulletInBounds reports whether a bullet at y is still inside the vertical bounds.
// Player bullets only ever leave through the top.
func bulletInBounds(y float64) bool {
	return y > cfg.Bullet.TopCull && y < float64(cfg.C.Height)+cfg.Bullet.BottomMargin
}
