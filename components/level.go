package components

import (
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name     string
	Size     gamemath.TiledSize
	TileSize gamemath.Vec
	Bounds   gamemath.Rect // collision map bounds in world space
	Spawn    gamemath.Vec

	ActiveCheckpoint *ActiveCheckpointData // Last activated checkpoint for respawn
}

var Level = donburi.NewComponentType[LevelData]().SetName("Level")
