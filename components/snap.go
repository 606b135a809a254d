package components

import (
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/yohamta/donburi"
)

type SnapKind int

const (
	SnapRide SnapKind = iota
	SnapClimb
)

func (k SnapKind) String() string {
	if k == SnapClimb {
		return "climb"
	}
	return "ride"
}

type SnapState int

const (
	SnapNotContacting SnapState = iota
	SnapEligible
	SnapSnapped
)

func (s SnapState) String() string {
	switch s {
	case SnapEligible:
		return "eligible"
	case SnapSnapped:
		return "snapped"
	}
	return "not-contacting"
}

// SnapOverride is a snappable's claim on a snapper for the current frame.
type SnapOverride struct {
	Source donburi.Entity
	Kind   SnapKind

	Surface float64      // ride: world y of the snappable's top this frame
	CenterX float64      // climb: world x of the snappable's centre
	Delta   gamemath.Vec // snappable displacement this frame
}

// Resolve computes the snapper position for this frame from its own proposed
// position. carried reports whether the snapper was already moved by the
// snappable's displacement earlier in the frame.
func (o SnapOverride) Resolve(proposed gamemath.Vec, c *ColliderData, carried bool) gamemath.Vec {
	switch o.Kind {
	case SnapClimb:
		return gamemath.Vec{X: o.CenterX - c.Offset.X - c.Size.X/2, Y: proposed.Y}
	default:
		x := proposed.X
		if !carried {
			x += o.Delta.X
		}
		return gamemath.Vec{X: x, Y: o.Surface - c.Offset.Y}
	}
}

// SnapperData marks an entity that snappables may reposition. Everything
// except the Was* and Last* fields is frame-local.
type SnapperData struct {
	Pending    *SnapOverride
	Contacting bool
	Snapped    bool

	// Carried is set when the snapper was moved along with last frame's
	// snappable before contacts were known. Commit undoes the carry if that
	// snappable does not claim the snapper again.
	Carried    bool
	CarryDelta gamemath.Vec

	WasSnapped bool
	LastKind   SnapKind
	LastSource donburi.Entity
}

// Claim installs o as this frame's override. The last claim wins.
func (s *SnapperData) Claim(o SnapOverride) {
	s.Pending = &o
	s.Contacting = true
}

// BeginFrame drops last frame's claim and remembers whether there was one.
func (s *SnapperData) BeginFrame() {
	s.WasSnapped = s.Snapped
	s.Pending = nil
	s.Contacting = false
	s.Snapped = false
	s.Carried = false
	s.CarryDelta = gamemath.Vec{}
}

func (s *SnapperData) State() SnapState {
	switch {
	case s.Snapped || s.Pending != nil:
		return SnapSnapped
	case s.Contacting:
		return SnapEligible
	}
	return SnapNotContacting
}

// RidingOn reports whether the snapper ended last frame riding source.
func (s *SnapperData) RidingOn(source donburi.Entity) bool {
	return s.WasSnapped && s.LastKind == SnapRide && s.LastSource == source
}

// ClimbingOn reports whether the snapper ended last frame on ladder source.
func (s *SnapperData) ClimbingOn(source donburi.Entity) bool {
	return s.WasSnapped && s.LastKind == SnapClimb && s.LastSource == source
}

// Climbing reports whether the snapper ended last frame on any ladder.
func (s *SnapperData) Climbing() bool {
	return s.WasSnapped && s.LastKind == SnapClimb
}

// SnappableData marks an entity that snappers can ride or climb.
type SnappableData struct {
	Kind SnapKind

	// RequiredSide is the side of the snappable the snapper must touch.
	// Zero accepts any side.
	RequiredSide Side
}

var Snapper = donburi.NewComponentType[SnapperData]().SetName("Snapper")
var Snappable = donburi.NewComponentType[SnappableData]().SetName("Snappable")
