package systems

import (
	"slices"

	"github.com/bryce26550/bullethell/components"
	cfg "github.com/bryce26550/bullethell/config"
	"github.com/bryce26550/bullethell/systems/factory"
	"github.com/bryce26550/bullethell/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// collider is an entity taking part in a collision scan.
type collider struct {
	entry *donburi.Entry
	obj   *resolv.Object
	seq   uint64
	dead  bool
}

// Overlaps reports whether two axis-aligned boxes intersect. Touching edges do not count.
func Overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// UpdateCollisions resolves bullet/enemy hits and then player/enemy hits.
// Both scans walk entities newest-first; each bullet destroys at most one enemy.
func UpdateCollisions(ecs *ecs.ECS) {
	bullets := collectColliders(ecs.World, tags.Bullet, func(e *donburi.Entry) bool {
		return components.Bullet.Get(e).IsPlayer
	})
	enemies := collectColliders(ecs.World, tags.Enemy, nil)

	resolveBulletHits(ecs, bullets, enemies)
	resolvePlayerHits(ecs, enemies)

	for _, c := range bullets {
		if c.dead {
			c.entry.Remove()
		}
	}
	for _, c := range enemies {
		if c.dead {
			c.entry.Remove()
		}
	}
}

func resolveBulletHits(ecs *ecs.ECS, bullets, enemies []*collider) {
	for i := len(bullets) - 1; i >= 0; i-- {
		b := bullets[i]
		for j := len(enemies) - 1; j >= 0; j-- {
			en := enemies[j]
			if en.dead || !Overlaps(b.obj, en.obj) {
				continue
			}

			factory.SpawnExplosion(ecs, en.obj.X, en.obj.Y)
			b.dead = true
			en.dead = true
			AddScore(ecs, cfg.Score.PerKill)
			break
		}
	}
}

func resolvePlayerHits(ecs *ecs.ECS, enemies []*collider) {
	playerEntry, ok := GetPlayer(ecs)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry).Object

	for j := len(enemies) - 1; j >= 0; j-- {
		en := enemies[j]
		if en.dead || !Overlaps(playerObj, en.obj) {
			continue
		}

		factory.SpawnExplosion(ecs, en.obj.X, en.obj.Y)
		en.dead = true
		if LoseLife(ecs) {
			return
		}
	}
}

// collectColliders gathers tagged entities in spawn order. keep may be nil.
func collectColliders(w donburi.World, tag *donburi.ComponentType[donburi.Tag], keep func(*donburi.Entry) bool) []*collider {
	var out []*collider
	tag.Each(w, func(e *donburi.Entry) {
		if keep != nil && !keep(e) {
			return
		}
		out = append(out, &collider{
			entry: e,
			obj:   components.Object.Get(e).Object,
			seq:   components.Order.Get(e).Seq,
		})
	})
	slices.SortFunc(out, func(a, b *collider) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		}
		return 0
	})
	return out
}
