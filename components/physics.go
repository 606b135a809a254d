package components

import (
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	Velocity     gamemath.Vec
	Gravity      float64
	MaxFallSpeed float64
	MaxSpeed     float64
	Acceleration float64
	Friction     float64
	JumpSpeed    float64
	ClimbSpeed   float64

	// OnGround is set by terrain and ride contacts during the frame and read
	// on the next one.
	OnGround    bool
	WasOnGround bool
}

var Physics = donburi.NewComponentType[PhysicsData]().SetName("Physics")
