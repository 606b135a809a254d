package gamemath

import "math/bits"

// SlopeResolution is the number of sub-cells per tile edge in a slope bitmap.
const SlopeResolution = 16

// Slope describes a sloped tile by the surface height at its left and right
// edges, in sixteenths of a tile. Both heights are in [0,15].
type Slope struct {
	Left, Right int
}

// SlopeBitmap holds one occupancy mask per tile column. Bit y of column x is
// set when sub-cell (x,y) is solid; y counts up from the tile bottom.
type SlopeBitmap [SlopeResolution]uint16

// BitmapFor returns the bitmap for a tabulated slope. Untabulated pairs have
// no slope data.
func BitmapFor(s Slope) (*SlopeBitmap, bool) {
	b, ok := slopeBitmaps[s]
	if !ok {
		return nil, false
	}
	cp := *b
	return &cp, true
}

// Slopes returns every tabulated slope descriptor in table order.
func Slopes() []Slope {
	out := make([]Slope, len(slopeOrder))
	copy(out, slopeOrder)
	return out
}

// Occupied reports whether sub-cell (x,y) is solid.
func (b *SlopeBitmap) Occupied(x, y int) bool {
	if x < 0 || x >= SlopeResolution || y < 0 || y >= SlopeResolution {
		return false
	}
	return b[x]&(1<<uint(y)) != 0
}

// ColumnTop returns the highest occupied y in column x.
func (b *SlopeBitmap) ColumnTop(x int) (int, bool) {
	if x < 0 || x >= SlopeResolution || b[x] == 0 {
		return 0, false
	}
	return bits.Len16(b[x]) - 1, true
}

// Points lists the occupied sub-cells column by column, bottom to top.
func (b *SlopeBitmap) Points() []TiledPoint {
	var pts []TiledPoint
	for x := 0; x < SlopeResolution; x++ {
		for y := 0; y < SlopeResolution; y++ {
			if b.Occupied(x, y) {
				pts = append(pts, TiledPoint{X: x, Y: y})
			}
		}
	}
	return pts
}

// SlopeContactOffset returns how far the slope surface sits above a tile-local
// intersection point, in sub-cells: the topmost occupied cell in the point's
// column minus the point's y. Unknown slopes and empty columns yield 0.
func SlopeContactOffset(p TiledPoint, s Slope) int {
	b, ok := slopeBitmaps[s]
	if !ok {
		return 0
	}
	top, ok := b.ColumnTop(p.X)
	if !ok {
		return 0
	}
	return top - p.Y
}

// SubCellAt converts a tile-local world offset into slope sub-cell
// coordinates, clamped to the tile.
func SubCellAt(local Vec, tileSize Vec) TiledPoint {
	x := int(local.X * SlopeResolution / tileSize.X)
	y := int(local.Y * SlopeResolution / tileSize.Y)
	return TiledPoint{X: clampInt(x, 0, SlopeResolution-1), Y: clampInt(y, 0, SlopeResolution-1)}
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
