package components

import (
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CameraData is the demo view centre in world space.
type CameraData struct {
	Position   gamemath.Vec
	LookAheadX float64
}

var Camera = donburi.NewComponentType[CameraData]().SetName("Camera")
