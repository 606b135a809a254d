package components

import (
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData is the entity's world position. Position is what the host
// renders; Proposed is this frame's candidate and is settled by the commit
// step at the end of the frame.
type TransformData struct {
	Position gamemath.Vec
	Proposed gamemath.Vec
}

// Delta is how far the entity has proposed to move this frame.
func (t *TransformData) Delta() gamemath.Vec {
	return t.Proposed.Sub(t.Position)
}

var Transform = donburi.NewComponentType[TransformData]().SetName("Transform")
