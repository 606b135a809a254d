package systems

import (
	"math"
	"sort"

	"github.com/automoto/snapengine/components"
	cfg "github.com/automoto/snapengine/config"
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// proxyMargin grows broad-phase proxies so that resting contacts across a
// cell boundary still share a cell.
const proxyMargin = 1.0

type body struct {
	entity   donburi.Entity
	collider *components.ColliderData
	rect     gamemath.Rect
	prev     gamemath.Rect // at the committed position
	slope    *gamemath.Slope
}

func (b body) contactBody() components.ContactBody {
	cb := components.ContactBody{
		Entity:     b.entity,
		ColliderID: b.collider.ID,
		Category:   b.collider.Category,
		Rect:       b.rect,
	}
	if b.slope != nil {
		cb.Slope = *b.slope
		cb.Sloped = true
	}
	return cb
}

// UpdateCollisions finds every touching collider pair for the proposed
// positions, classifies each against last frame and dispatches the contacts
// to the components of both entities in priority order.
func UpdateCollisions(ecs *ecs.ECS) {
	w := ecs.World
	contactsEntry, ok := components.Contacts.First(w)
	if !ok {
		return
	}
	contacts := components.Contacts.Get(contactsEntry)

	level, hasLevel := levelData(w)
	tileSize := gamemath.Vec{X: float64(cfg.Collision.TileSize), Y: float64(cfg.Collision.TileSize)}
	if hasLevel {
		tileSize = level.TileSize
	}

	components.Collider.Each(w, func(e *donburi.Entry) {
		c := components.Collider.Get(e)
		rect := c.Rect(components.Transform.Get(e).Proposed)
		if hasLevel {
			c.OutsideMapBounds = !rect.Intersects(level.Bounds)
		}
		syncProxy(c, rect)
	})

	found := map[components.PairKey]components.Contact{}
	components.Collider.Each(w, func(e *donburi.Entry) {
		c := components.Collider.Get(e)
		if !c.Enabled || c.Static || c.Proxy == nil {
			return
		}
		check := c.Proxy.Check(0, 0)
		if check == nil {
			return
		}
		self := bodyOf(e)
		for _, obj := range check.Objects {
			entity, ok := obj.Data.(donburi.Entity)
			if !ok || !w.Valid(entity) {
				continue
			}
			other := w.Entry(entity)
			if !other.HasComponent(components.Collider) {
				continue
			}
			oc := components.Collider.Get(other)
			if !oc.Enabled || oc.ID == c.ID || !c.Interacts(oc) {
				continue
			}
			key := components.MakePairKey(c.ID, oc.ID)
			if _, seen := found[key]; seen {
				continue
			}
			a, b := self, bodyOf(other)
			if a.collider.ID > b.collider.ID {
				a, b = b, a
			}
			if contact, ok := narrowPhase(a, b, tileSize); ok {
				found[key] = contact
			}
		}
	})

	events := classify(contacts.Active, found)
	contacts.Active = found
	contacts.Events = events

	dispatchContacts(ecs, events)
}

func bodyOf(e *donburi.Entry) body {
	c := components.Collider.Get(e)
	t := components.Transform.Get(e)
	b := body{
		entity:   e.Entity(),
		collider: c,
		rect:     c.Rect(t.Proposed),
		prev:     c.Rect(t.Position),
	}
	if e.HasComponent(components.Tile) {
		if tile := components.Tile.Get(e); tile.Sloped {
			slope := tile.Slope
			b.slope = &slope
		}
	}
	return b
}

func syncProxy(c *components.ColliderData, rect gamemath.Rect) {
	if c.Proxy == nil {
		return
	}
	c.Proxy.X = rect.Min.X - proxyMargin
	c.Proxy.Y = rect.Min.Y - proxyMargin
	c.Proxy.W = rect.W() + 2*proxyMargin
	c.Proxy.H = rect.H() + 2*proxyMargin
	c.Proxy.Update()
}

// narrowPhase builds the contact between a and b seen from a, or reports
// that they do not touch.
func narrowPhase(a, b body, tileSize gamemath.Vec) (components.Contact, bool) {
	switch {
	case b.slope != nil && a.slope == nil:
		if _, known := gamemath.BitmapFor(*b.slope); known {
			return slopeContact(a, b, tileSize)
		}
	case a.slope != nil && b.slope == nil:
		if _, known := gamemath.BitmapFor(*a.slope); known {
			c, ok := slopeContact(b, a, tileSize)
			return c.Flip(), ok
		}
	}

	if !a.rect.Touches(b.rect) {
		return components.Contact{}, false
	}
	dx, dy := a.rect.Overlap(b.rect)
	sides := contactSides(a, b, dx, dy)
	if sides == 0 {
		return components.Contact{}, false
	}
	return components.Contact{
		Self:       a.contactBody(),
		Other:      b.contactBody(),
		SelfSides:  sides,
		OtherSides: sides.Opposite(),
		Depth:      gamemath.Vec{X: dx, Y: dy},
	}, true
}

// contactSides picks the sides of a touching b. Bodies that were apart on
// one axis last frame and overlapping on the other meet across the axis they
// were apart on, however deep they are now. Otherwise the axis with the
// shallower penetration wins, both on a tie. A side only counts when the hit
// segments of both facing sides overlap; if the chosen axis has none the
// other axis is tried.
func contactSides(a, b body, dx, dy float64) components.Side {
	vertical := func() components.Side {
		side := components.SideBottom
		if a.rect.Center().Y < b.rect.Center().Y {
			side = components.SideTop
		}
		if hitsAlong(a, b, side) {
			return side
		}
		return 0
	}
	horizontal := func() components.Side {
		side := components.SideLeft
		if a.rect.Center().X < b.rect.Center().X {
			side = components.SideRight
		}
		if hitsAlong(a, b, side) {
			return side
		}
		return 0
	}
	either := func(first, second func() components.Side) components.Side {
		if s := first(); s != 0 {
			return s
		}
		return second()
	}

	px, py := a.prev.Overlap(b.prev)
	switch {
	case py <= 0 && px > 0:
		return either(vertical, horizontal)
	case px <= 0 && py > 0:
		return either(horizontal, vertical)
	case dx < dy:
		return either(horizontal, vertical)
	case dy < dx:
		return either(vertical, horizontal)
	default:
		return vertical() | horizontal()
	}
}

func hitsAlong(a, b body, side components.Side) bool {
	aMin, aMax := a.collider.HitSegment(side, a.rect)
	bMin, bMax := b.collider.HitSegment(side.Opposite(), b.rect)
	return gamemath.SpanOverlaps(aMin, aMax, bMin, bMax)
}

// slopeContact tests a's bottom hit segment against the slope surface of
// tile b, taking the highest surface under it. The foot may hover up to the
// snap tolerance above the surface and still count.
func slopeContact(a, b body, tileSize gamemath.Vec) (components.Contact, bool) {
	minX, maxX := a.collider.HitSegment(components.SideBottom, a.rect)
	surface, ok := slopeSurface(b.rect, *b.slope, minX, maxX, tileSize)
	if !ok {
		return components.Contact{}, false
	}
	footY := a.rect.Min.Y
	if footY > surface+cfg.Collision.SnapTolerance || footY < b.rect.Min.Y-cfg.Collision.SnapTolerance {
		return components.Contact{}, false
	}
	dx, _ := a.rect.Overlap(b.rect)
	offset := surface - footY
	return components.Contact{
		Self:        a.contactBody(),
		Other:       b.contactBody(),
		SelfSides:   components.SideBottom,
		OtherSides:  components.SideTop,
		Depth:       gamemath.Vec{X: dx, Y: offset},
		OnSlope:     true,
		SlopeOffset: offset,
	}, true
}

// slopeSurface returns the world y of the highest slope surface over the
// span [minX, maxX). It fails when the span misses the tile or every column
// under it is empty.
func slopeSurface(tileRect gamemath.Rect, slope gamemath.Slope, minX, maxX float64, tileSize gamemath.Vec) (float64, bool) {
	lo, hi := math.Max(minX, tileRect.Min.X), math.Min(maxX, tileRect.Max.X)
	if hi <= lo {
		return 0, false
	}
	bitmap, ok := gamemath.BitmapFor(slope)
	if !ok {
		return 0, false
	}
	cellW := tileSize.X / gamemath.SlopeResolution
	first := gamemath.SubCellAt(gamemath.Vec{X: lo - tileRect.Min.X}, tileSize).X
	last := clampColumn(int(math.Ceil((hi-tileRect.Min.X)/cellW)) - 1)

	top, found := 0, false
	for x := first; x <= last; x++ {
		if _, filled := bitmap.ColumnTop(x); !filled {
			continue
		}
		if h := gamemath.SlopeContactOffset(gamemath.TiledPoint{X: x}, slope); !found || h > top {
			top, found = h, true
		}
	}
	if !found {
		return 0, false
	}
	cellH := tileSize.Y / gamemath.SlopeResolution
	return tileRect.Min.Y + float64(top+1)*cellH, true
}

func clampColumn(x int) int {
	return int(gamemath.Clamp(float64(x), 0, gamemath.SlopeResolution-1))
}

// classify labels this frame's contacts against last frame's. Events come
// out in pair-key order.
func classify(previous, current map[components.PairKey]components.Contact) []components.ContactEvent {
	keys := make([]components.PairKey, 0, len(previous)+len(current))
	for k := range current {
		keys = append(keys, k)
	}
	for k := range previous {
		if _, still := current[k]; !still {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].A != keys[j].A {
			return keys[i].A < keys[j].A
		}
		return keys[i].B < keys[j].B
	})

	events := make([]components.ContactEvent, 0, len(keys))
	for _, k := range keys {
		if c, ok := current[k]; ok {
			phase := components.ContactNew
			if _, was := previous[k]; was {
				phase = components.ContactExisting
			}
			events = append(events, components.ContactEvent{Phase: phase, Contact: c})
			continue
		}
		events = append(events, components.ContactEvent{Phase: components.ContactFinished, Contact: previous[k]})
	}
	return events
}

type contactCall struct {
	priority int
	order    int
	seq      int
	behavior Behavior
	entity   donburi.Entity
	phase    components.ContactPhase
	contact  components.Contact
}

// dispatchContacts calls every contact hook of both participants. Calls are
// ordered by priority, then declaration order, then pair order.
func dispatchContacts(ecs *ecs.ECS, events []components.ContactEvent) {
	w := ecs.World
	var calls []contactCall
	for seq, ev := range events {
		for _, view := range [2]components.Contact{ev.Contact, ev.Contact.Flip()} {
			if !w.Valid(view.Self.Entity) {
				continue
			}
			e := w.Entry(view.Self.Entity)
			for _, b := range Behaviors() {
				if b.OnContact == nil || !e.HasComponent(b.Kind) {
					continue
				}
				priority, order := components.Priorities.Order(b.Kind)
				calls = append(calls, contactCall{
					priority: priority,
					order:    order,
					seq:      seq,
					behavior: b,
					entity:   view.Self.Entity,
					phase:    ev.Phase,
					contact:  view,
				})
			}
		}
	}

	sort.SliceStable(calls, func(i, j int) bool {
		a, b := calls[i], calls[j]
		if a.priority != b.priority {
			return a.priority < b.priority
		}
		if a.order != b.order {
			return a.order < b.order
		}
		return a.seq < b.seq
	})

	for _, call := range calls {
		if !w.Valid(call.entity) {
			continue
		}
		e := w.Entry(call.entity)
		if !e.HasComponent(call.behavior.Kind) {
			continue
		}
		call := call
		safeCall(call.behavior.Kind, "contact", func() {
			call.behavior.OnContact(ecs, e, call.phase, call.contact)
		})
	}
}
