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

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{
		Speed:         cfg.Player.Speed,
		ShootCooldown: 0,
	})

	return player
}

// PlayerSpawnPoint returns the bottom-center spawn position.
func PlayerSpawnPoint() (x, y float64) {
	return float64(cfg.C.Width) / 2, float64(cfg.C.Height) - cfg.Player.SpawnOffsetY
}
