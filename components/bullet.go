package components

import "github.com/yohamta/donburi"

// BulletData is a projectile travelling vertically.
type BulletData struct {
	SpeedY   float64 // pixels per millisecond; negative travels up
	IsPlayer bool
}

var Bullet = donburi.NewComponentType[BulletData]()
