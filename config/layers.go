package config

import "github.com/yohamta/donburi/ecs"

const (
	// Default is the only render layer; draw order follows renderer registration.
	Default ecs.LayerID = iota
)
