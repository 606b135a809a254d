// Package leveldata provides TMX level parsing for the collision core.
// It has no dependencies on ebitengine, donburi, or resolv, pure data only.
// Everything it returns is in world space: pixels, y-up, origin at the
// bottom-left of the map.
package leveldata

import "github.com/automoto/snapengine/shared/gamemath"

// Level holds all collision-relevant data parsed from a TMX level file.
type Level struct {
	Name     string
	Size     gamemath.TiledSize
	TileSize gamemath.Vec

	Tiles       []Tile
	Spawn       gamemath.Vec
	HasSpawn    bool
	Platforms   []Platform
	Ladders     []gamemath.Rect
	Hazards     []Hazard
	Spikes      []Spikes
	Checkpoints []Checkpoint
	Debris      []Debris
}

// Bounds is the collision map rectangle.
func (l *Level) Bounds() gamemath.Rect {
	return gamemath.TiledRect{Size: l.Size}.ToPixels(l.TileSize)
}

// Tile is one non-empty cell of the ground layer. Row 0 is the bottom row.
type Tile struct {
	Coord gamemath.TiledPoint
	ID    uint32
	Slope *gamemath.Slope // nil for full tiles
}

// Platform is a rideable platform. Travel is zero for static platforms.
type Platform struct {
	Rect     gamemath.Rect
	Travel   gamemath.Vec // up-positive
	Duration float64      // seconds per leg, 0 for the configured default
}

type Hazard struct {
	Rect       gamemath.Rect
	Damage     int
	Continuous bool
}

type Spikes struct {
	Rect   gamemath.Rect
	Damage int
	Cycle  float64 // seconds, 0 for the configured default
}

type Checkpoint struct {
	Rect gamemath.Rect
	ID   int
}

type Debris struct {
	Rect     gamemath.Rect
	Lifetime float64 // seconds, 0 for the configured default
}
