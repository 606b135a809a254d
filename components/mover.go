package components

import (
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MoverData drives an entity along Travel from Origin. Sequence yields the
// progress along the path in [0,1].
type MoverData struct {
	Sequence *gween.Sequence
	Origin   gamemath.Vec
	Travel   gamemath.Vec
	Progress float64
}

var Mover = donburi.NewComponentType[MoverData]().SetName("Mover")
