package components

import (
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// RetractorData slides a collider down into its entity and back. Sequence
// yields how far the collider is retracted, 0 extended and 1 hidden.
type RetractorData struct {
	Sequence  *gween.Sequence
	Extended  gamemath.Vec // collider offset when fully out
	Depth     float64
	Retracted float64
}

var Retractor = donburi.NewComponentType[RetractorData]().SetName("Retractor")
