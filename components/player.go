package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Speed         float64 // pixels per millisecond
	ShootCooldown float64 // ms until the next shot is allowed
}

var Player = donburi.NewComponentType[PlayerData]()
