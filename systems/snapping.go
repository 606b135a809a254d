package systems

import (
	"github.com/automoto/snapengine/components"
	cfg "github.com/automoto/snapengine/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// snappableContact lets a platform or ladder claim the snapper touching it.
// Claims are frame-local; the last one installed wins.
func snappableContact(ecs *ecs.ECS, e *donburi.Entry, phase components.ContactPhase, c components.Contact) {
	if phase == components.ContactFinished || !ecs.World.Valid(c.Other.Entity) {
		return
	}
	other := ecs.World.Entry(c.Other.Entity)
	if !other.HasComponent(components.Snapper) ||
		!other.HasComponent(components.Transform) ||
		!other.HasComponent(components.Collider) {
		return
	}

	snappable := components.Snappable.Get(e)
	snapper := components.Snapper.Get(other)
	snapper.Contacting = true
	if snappable.RequiredSide != 0 && !c.SelfSides.Has(snappable.RequiredSide) {
		return
	}

	switch snappable.Kind {
	case components.SnapRide:
		claimRide(e, other, snapper)
	case components.SnapClimb:
		claimClimb(e, other, snapper)
	}
}

// claimRide snaps a rider that came down on the platform from above. A rider
// moving up is left alone so it can jump off.
func claimRide(platform, rider *donburi.Entry, snapper *components.SnapperData) {
	pt := components.Transform.Get(platform)
	pc := components.Collider.Get(platform)
	rt := components.Transform.Get(rider)
	rc := components.Collider.Get(rider)

	if rc.Rect(rt.Position).Min.Y < pc.Rect(pt.Position).Max.Y-cfg.Collision.SnapTolerance {
		return
	}
	if rider.HasComponent(components.Physics) && components.Physics.Get(rider).Velocity.Y > 0 {
		return
	}

	snapper.Claim(components.SnapOverride{
		Source:  platform.Entity(),
		Kind:    components.SnapRide,
		Surface: pc.Rect(pt.Proposed).Max.Y,
		Delta:   pt.Delta(),
	})
	debugf(components.Snappable, "ride claim on %v surface %.2f", rider.Entity(), pc.Rect(pt.Proposed).Max.Y)
}

// claimClimb attaches a climber that asks to climb, and keeps one that is
// already on this ladder until it jumps.
func claimClimb(ladder, climber *donburi.Entry, snapper *components.SnapperData) {
	var intent components.Intent
	if climber.HasComponent(components.Input) {
		intent = components.Input.Get(climber).Intent
	}
	if intent.Jump {
		return
	}
	if intent.Climb == 0 && !snapper.ClimbingOn(ladder.Entity()) {
		return
	}

	lt := components.Transform.Get(ladder)
	lc := components.Collider.Get(ladder)
	snapper.Claim(components.SnapOverride{
		Source:  ladder.Entity(),
		Kind:    components.SnapClimb,
		CenterX: lc.Rect(lt.Proposed).Center().X,
		Delta:   lt.Delta(),
	})
}

// carrySnapper moves a rider along with the platform it rode last frame so
// that a descending platform stays in contact.
func carrySnapper(ecs *ecs.ECS, e *donburi.Entry, dt float64) {
	snapper := components.Snapper.Get(e)
	if !snapper.WasSnapped || snapper.LastKind != components.SnapRide {
		return
	}
	if !ecs.World.Valid(snapper.LastSource) {
		return
	}
	source := ecs.World.Entry(snapper.LastSource)
	if !source.HasComponent(components.Transform) {
		return
	}
	delta := components.Transform.Get(source).Delta()
	t := components.Transform.Get(e)
	t.Proposed = t.Proposed.Add(delta)
	snapper.Carried = true
	snapper.CarryDelta = delta
}

// CommitPositions resolves pending snap claims against each snapper's own
// proposal and then makes every proposal the committed position.
func CommitPositions(ecs *ecs.ECS) {
	components.Snapper.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Transform) {
			return
		}
		snapper := components.Snapper.Get(e)
		t := components.Transform.Get(e)

		claim := snapper.Pending
		carried := snapper.Carried && claim != nil && claim.Source == snapper.LastSource
		if snapper.Carried && !carried {
			t.Proposed = t.Proposed.Sub(snapper.CarryDelta)
		}
		if claim == nil {
			return
		}
		if !e.HasComponent(components.Collider) {
			return
		}

		t.Proposed = claim.Resolve(t.Proposed, components.Collider.Get(e), carried)
		snapper.Snapped = true
		snapper.LastKind = claim.Kind
		snapper.LastSource = claim.Source
		snapper.Pending = nil

		if claim.Kind == components.SnapRide && e.HasComponent(components.Physics) {
			land(components.Physics.Get(e))
		}
	})

	components.Transform.Each(ecs.World, func(e *donburi.Entry) {
		t := components.Transform.Get(e)
		t.Position = t.Proposed
		if e.HasComponent(components.Collider) {
			c := components.Collider.Get(e)
			syncProxy(c, c.Rect(t.Position))
		}
	})
}
