package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData holds the position and size of an entity.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// OrderData records when an entity was spawned relative to its siblings.
// Collision scans walk entities newest-first using Seq.
type OrderData struct {
	Seq uint64
}

var Order = donburi.NewComponentType[OrderData]()
