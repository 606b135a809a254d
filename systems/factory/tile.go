package factory

import (
	"github.com/automoto/snapengine/archetypes"
	"github.com/automoto/snapengine/components"
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/automoto/snapengine/shared/leveldata"
	"github.com/automoto/snapengine/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTile spawns one static ground tile.
func CreateTile(ecs *ecs.ECS, tile leveldata.Tile, tileSize gamemath.Vec) *donburi.Entry {
	e := archetypes.Tile.Spawn(ecs)

	data := components.TileData{Coord: tile.Coord, ID: tile.ID}
	resolvTag := tags.ResolvSolid
	if tile.Slope != nil {
		data.Slope = *tile.Slope
		data.Sloped = true
		resolvTag = tags.ResolvSlope
	}
	components.Tile.SetValue(e, data)

	attachBody(ecs, e, tile.Coord.ToPixels(tileSize), components.ColliderData{
		Size:     tileSize,
		Category: components.CategoryGround,
		Static:   true,
	}, resolvTag)
	return e
}
