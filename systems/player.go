package systems

import (
	"math"

	"github.com/bryce26550/bullethell/components"
	cfg "github.com/bryce26550/bullethell/config"
	"github.com/bryce26550/bullethell/systems/factory"
	"github.com/bryce26550/bullethell/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer moves the player by the held directions, clamped to the playfield,
// and counts down the shoot cooldown.
func UpdatePlayer(ecs *ecs.ECS) {
	dt := GetFrame(ecs).DeltaMs
	input := getOrCreateInput(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		obj := components.Object.Get(e)

		step := player.Speed * dt
		maxX := float64(cfg.C.Width) - obj.W
		maxY := float64(cfg.C.Height) - obj.H

		if input.Current[cfg.ActionMoveLeft] {
			obj.X = math.Max(0, obj.X-step)
		}
		if input.Current[cfg.ActionMoveRight] {
			obj.X = math.Min(maxX, obj.X+step)
		}
		if input.Current[cfg.ActionMoveUp] {
			obj.Y = math.Max(0, obj.Y-step)
		}
		if input.Current[cfg.ActionMoveDown] {
			obj.Y = math.Min(maxY, obj.Y+step)
		}

		player.ShootCooldown = math.Max(0, player.ShootCooldown-dt)
	})
}

// UpdateShooting fires one bullet from the player's horizontal center while the
// shoot action is held and the cooldown has elapsed.
func UpdateShooting(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if !input.Current[cfg.ActionShoot] {
		return
	}

	var shooters []*donburi.Entry
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		shooters = append(shooters, e)
	})

	for _, e := range shooters {
		shoot(ecs, e)
	}
}

// shoot is rate-limited by the player's cooldown. It reports whether a bullet was fired.
func shoot(ecs *ecs.ECS, e *donburi.Entry) bool {
	player := components.Player.Get(e)
	if player.ShootCooldown > 0 {
		return false
	}
	obj := components.Object.Get(e)
	factory.CreateBullet(ecs, obj.X+obj.W/2, obj.Y, true)
	player.ShootCooldown = cfg.Player.ShootCooldown
	return true
}

// GetPlayer returns the player entry, if one exists.
func GetPlayer(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(ecs.World)
}
