package components

import (
	"sync/atomic"

	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Category is a collision category bitmask.
type Category uint32

const (
	CategoryGround Category = 1 << iota
	CategoryPlayer
	CategoryPlatform
	CategoryLadder
	CategoryHazard
	CategoryCheckpoint
)

const CategoryNone Category = 0

// Side is a set of rectangle sides.
type Side uint8

const (
	SideTop Side = 1 << iota
	SideBottom
	SideLeft
	SideRight
)

const SideAny = SideTop | SideBottom | SideLeft | SideRight

func (s Side) Has(o Side) bool { return s&o != 0 }

// Opposite maps every side in the set to the side facing it.
func (s Side) Opposite() Side {
	var out Side
	if s.Has(SideTop) {
		out |= SideBottom
	}
	if s.Has(SideBottom) {
		out |= SideTop
	}
	if s.Has(SideLeft) {
		out |= SideRight
	}
	if s.Has(SideRight) {
		out |= SideLeft
	}
	return out
}

func (s Side) String() string {
	if s == 0 {
		return "none"
	}
	var out string
	for _, n := range []struct {
		side Side
		name string
	}{{SideTop, "top"}, {SideBottom, "bottom"}, {SideLeft, "left"}, {SideRight, "right"}} {
		if s.Has(n.side) {
			if out != "" {
				out += "|"
			}
			out += n.name
		}
	}
	return out
}

// HitPoints pulls the two sample points of one side in from the corners.
// Near is measured from the side's low-coordinate corner, Far from its
// high-coordinate corner.
type HitPoints struct {
	Near float64
	Far  float64
}

// Insets holds the hit points of all four sides.
type Insets struct {
	Top    HitPoints
	Bottom HitPoints
	Left   HitPoints
	Right  HitPoints
}

// BodyInsets returns insets for a walking body: feet and head narrower than
// the box, flanks shorter than the box.
func BodyInsets(foot, side float64) Insets {
	return Insets{
		Top:    HitPoints{Near: foot, Far: foot},
		Bottom: HitPoints{Near: foot, Far: foot},
		Left:   HitPoints{Near: side, Far: side},
		Right:  HitPoints{Near: side, Far: side},
	}
}

func (in Insets) forSide(s Side) HitPoints {
	switch s {
	case SideTop:
		return in.Top
	case SideBottom:
		return in.Bottom
	case SideLeft:
		return in.Left
	default:
		return in.Right
	}
}

type ColliderData struct {
	ID       uint64
	Size     gamemath.Vec
	Offset   gamemath.Vec // from the transform position to the collider's bottom-left corner
	Insets   Insets
	Category Category
	Mask     Category // categories this collider wants contacts with
	Enabled  bool
	Static   bool // never moves; never starts a broad-phase query

	// OutsideMapBounds is derived each frame by the collision pass.
	OutsideMapBounds bool

	Proxy *resolv.Object
}

var nextColliderID atomic.Uint64

// NextColliderID hands out process-unique collider ids.
func NextColliderID() uint64 {
	return nextColliderID.Add(1)
}

// SetEnabled toggles contact participation from the next collision pass on.
func (c *ColliderData) SetEnabled(enabled bool) {
	c.Enabled = enabled
}

func (c *ColliderData) SetOffset(offset gamemath.Vec) {
	c.Offset = offset
}

// SetSize resizes the collider. Negative dimensions are clamped to zero.
func (c *ColliderData) SetSize(size gamemath.Vec) {
	if size.X < 0 {
		size.X = 0
	}
	if size.Y < 0 {
		size.Y = 0
	}
	c.Size = size
}

// Rect is the collider's world rectangle for an entity at pos.
func (c *ColliderData) Rect(pos gamemath.Vec) gamemath.Rect {
	min := pos.Add(c.Offset)
	return gamemath.Rect{Min: min, Max: min.Add(c.Size)}
}

// TopOffset is the height of the collider's top edge above the entity origin.
func (c *ColliderData) TopOffset() float64 {
	return c.Offset.Y + c.Size.Y
}

// Interacts reports whether either collider asks for contacts with the other.
func (c *ColliderData) Interacts(o *ColliderData) bool {
	return c.Mask&o.Category != 0 || o.Mask&c.Category != 0
}

// HitSegment returns the span covered by the hit points of one side of rect:
// an x range for top/bottom, a y range for left/right.
func (c *ColliderData) HitSegment(side Side, rect gamemath.Rect) (min, max float64) {
	hp := c.Insets.forSide(side)
	if side == SideTop || side == SideBottom {
		return rect.Min.X + hp.Near, rect.Max.X - hp.Far
	}
	return rect.Min.Y + hp.Near, rect.Max.Y - hp.Far
}

var Collider = donburi.NewComponentType[ColliderData]().SetName("Collider")
