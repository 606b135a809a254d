package gamemath

import "math"

// TiledPoint is a position in whole tiles.
type TiledPoint struct {
	X, Y int
}

// TiledSize is a size in whole tiles. Both dimensions are >= 0.
type TiledSize struct {
	W, H int
}

// TiledRect is a rectangle in whole tiles anchored at its bottom-left tile.
type TiledRect struct {
	Origin TiledPoint
	Size   TiledSize
}

// NewTiledSize clamps negative dimensions to zero.
func NewTiledSize(w, h int) TiledSize {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return TiledSize{W: w, H: h}
}

func NewTiledRect(x, y, w, h int) TiledRect {
	return TiledRect{Origin: TiledPoint{X: x, Y: y}, Size: NewTiledSize(w, h)}
}

func (p TiledPoint) Add(o TiledPoint) TiledPoint {
	return TiledPoint{X: p.X + o.X, Y: p.Y + o.Y}
}

// ToPixels returns the world position of the tile's bottom-left corner.
func (p TiledPoint) ToPixels(tileSize Vec) Vec {
	return Vec{X: float64(p.X) * tileSize.X, Y: float64(p.Y) * tileSize.Y}
}

func (s TiledSize) ToPixels(tileSize Vec) Vec {
	return Vec{X: float64(s.W) * tileSize.X, Y: float64(s.H) * tileSize.Y}
}

func (r TiledRect) ToPixels(tileSize Vec) Rect {
	min := r.Origin.ToPixels(tileSize)
	return Rect{Min: min, Max: min.Add(r.Size.ToPixels(tileSize))}
}

// Contains reports whether p lies inside r. The max edges are exclusive.
func (r TiledRect) Contains(p TiledPoint) bool {
	return p.X >= r.Origin.X && p.X < r.Origin.X+r.Size.W &&
		p.Y >= r.Origin.Y && p.Y < r.Origin.Y+r.Size.H
}

// TiledPointAt returns the tile containing a world position.
func TiledPointAt(v Vec, tileSize Vec) TiledPoint {
	return TiledPoint{
		X: int(math.Floor(v.X / tileSize.X)),
		Y: int(math.Floor(v.Y / tileSize.Y)),
	}
}
