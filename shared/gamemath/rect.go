package gamemath

import "math"

// Vec is a point or displacement in world space (pixels, y-up).
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Rect is an axis-aligned rectangle. Min is the bottom-left corner.
type Rect struct {
	Min, Max Vec
}

// RectXYWH builds a rectangle from its bottom-left corner and size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Min: Vec{X: x, Y: y}, Max: Vec{X: x + w, Y: y + h}}
}

func (r Rect) W() float64 { return r.Max.X - r.Min.X }
func (r Rect) H() float64 { return r.Max.Y - r.Min.Y }

func (r Rect) Center() Vec {
	return Vec{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

func (r Rect) Translate(v Vec) Rect {
	return Rect{Min: r.Min.Add(v), Max: r.Max.Add(v)}
}

// Overlap returns the penetration depth on each axis. Negative values mean
// the rectangles are separated on that axis.
func (r Rect) Overlap(o Rect) (dx, dy float64) {
	dx = math.Min(r.Max.X, o.Max.X) - math.Max(r.Min.X, o.Min.X)
	dy = math.Min(r.Max.Y, o.Max.Y) - math.Max(r.Min.Y, o.Min.Y)
	return dx, dy
}

// Touches reports whether the rectangles overlap or share an edge. Corner-only
// contact does not count.
func (r Rect) Touches(o Rect) bool {
	dx, dy := r.Overlap(o)
	if dx < 0 || dy < 0 {
		return false
	}
	return dx > 0 || dy > 0
}

// Intersects reports whether the rectangles share a region of positive area.
func (r Rect) Intersects(o Rect) bool {
	dx, dy := r.Overlap(o)
	return dx > 0 && dy > 0
}

// SpanOverlaps reports whether [aMin,aMax] and [bMin,bMax] share more than a point.
func SpanOverlaps(aMin, aMax, bMin, bMax float64) bool {
	return math.Min(aMax, bMax)-math.Max(aMin, bMin) > 0
}
