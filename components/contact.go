package components

import (
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/yohamta/donburi"
)

type ContactPhase int

const (
	ContactNew ContactPhase = iota
	ContactExisting
	ContactFinished
)

func (p ContactPhase) String() string {
	switch p {
	case ContactNew:
		return "new"
	case ContactExisting:
		return "existing"
	case ContactFinished:
		return "finished"
	}
	return "unknown"
}

// ContactBody is one participant of a contact, snapshotted when the contact
// was computed.
type ContactBody struct {
	Entity     donburi.Entity
	ColliderID uint64
	Category   Category
	Rect       gamemath.Rect
	Slope      gamemath.Slope
	Sloped     bool
}

// Contact is the per-frame record of two touching colliders, seen from Self.
// Handlers receive it by value and must treat it as read-only.
type Contact struct {
	Self  ContactBody
	Other ContactBody

	SelfSides  Side // sides of Self that touch Other
	OtherSides Side // sides of Other that touch Self

	Depth gamemath.Vec

	// OnSlope is set when Other is a sloped tile under Self. SlopeOffset is
	// then the distance from Self's foot up to the slope surface.
	OnSlope     bool
	SlopeOffset float64
}

// Flip returns the same contact seen from Other.
func (c Contact) Flip() Contact {
	c.Self, c.Other = c.Other, c.Self
	c.SelfSides, c.OtherSides = c.OtherSides, c.SelfSides
	if c.OnSlope {
		c.SlopeOffset = -c.SlopeOffset
	}
	return c
}

// PairKey identifies a collider pair independent of order.
type PairKey struct {
	A, B uint64
}

func MakePairKey(a, b uint64) PairKey {
	if a > b {
		a, b = b, a
	}
	return PairKey{A: a, B: b}
}

type ContactEvent struct {
	Phase   ContactPhase
	Contact Contact
}

// ContactsData is the collision pass's memory between frames.
type ContactsData struct {
	Active map[PairKey]Contact
	Events []ContactEvent // classified contacts of the last pass, in dispatch pair order
}

var Contacts = donburi.NewComponentType[ContactsData]().SetName("Contacts")
