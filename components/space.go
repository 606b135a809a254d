package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the broad-phase spatial hash shared by all colliders.
var Space = donburi.NewComponentType[resolv.Space]()
