package components

import (
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/yohamta/donburi"
)

// TileData is a ground tile. Sloped tiles carry their slope shape.
type TileData struct {
	Coord  gamemath.TiledPoint
	ID     uint32
	Slope  gamemath.Slope
	Sloped bool
}

var Tile = donburi.NewComponentType[TileData]().SetName("Tile")
