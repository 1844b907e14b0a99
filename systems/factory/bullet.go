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

// CreateBullet creates a bullet whose top-left corner is at (x, y).
// Player bullets travel up, hostile bullets travel down.
func CreateBullet(ecs *ecs.ECS, x, y float64, isPlayer bool) *donburi.Entry {
	bullet := archetypes.Bullet.Spawn(ecs)

	speed := cfg.Bullet.HostileSpeed
	tag := tags.ResolvHostile
	if isPlayer {
		speed = cfg.Bullet.PlayerSpeed
		tag = tags.ResolvPlayer
	}

	obj := resolv.NewObject(x, y, cfg.Bullet.Width, cfg.Bullet.Height, tags.ResolvBullet, tag)
	obj.Data = bullet
	components.Object.SetValue(bullet, components.ObjectData{Object: obj})
	components.Bullet.SetValue(bullet, components.BulletData{
		SpeedY:   speed,
		IsPlayer: isPlayer,
	})
	components.Order.SetValue(bullet, components.OrderData{Seq: nextSeq(ecs)})

	return bullet
}
