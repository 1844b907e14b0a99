package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	SpeedY float64 // pixels per millisecond, downward
}

var Enemy = donburi.NewComponentType[EnemyData]()
