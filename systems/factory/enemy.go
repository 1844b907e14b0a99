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

func CreateEnemy(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Enemy.Width, cfg.Enemy.Height, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	components.Enemy.SetValue(enemy, components.EnemyData{
		SpeedY: cfg.Enemy.Speed,
	})
	components.Order.SetValue(enemy, components.OrderData{Seq: nextSeq(ecs)})

	return enemy
}

// SpawnEnemy creates an enemy at a random column above the top edge.
func SpawnEnemy(ecs *ecs.ECS) *donburi.Entry {
	span := float64(cfg.C.Width) - cfg.Enemy.SpawnMarginX
	if span < 0 {
		span = 0
	}
	x := random(ecs).Float64() * span
	return CreateEnemy(ecs, x, cfg.Enemy.SpawnY)
}
