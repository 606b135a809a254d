package components

import (
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/yohamta/donburi"
)

type CheckpointData struct {
	ID        int
	Activated bool
	Spawn     gamemath.Vec
	LaidOut   bool // collider already reaches the top of the level
}

var Checkpoint = donburi.NewComponentType[CheckpointData]().SetName("Checkpoint")

// ActiveCheckpointData is stored on the level to track the last activated checkpoint
type ActiveCheckpointData struct {
	ID    int
	Spawn gamemath.Vec
}
