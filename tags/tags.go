package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Bullet   = donburi.NewTag().SetName("Bullet")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Particle = donburi.NewTag().SetName("Particle")
)

// Resolv tags carried by entity geometry
const (
	ResolvPlayer   = "Player"
	ResolvBullet   = "Bullet"
	ResolvHostile  = "Hostile"
	ResolvEnemy    = "Enemy"
	ResolvParticle = "Particle"
)
