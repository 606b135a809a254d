package systems

import (
	"github.com/automoto/snapengine/components"
	cfg "github.com/automoto/snapengine/config"
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// updatePhysics integrates velocity into the proposed position.
func updatePhysics(ecs *ecs.ECS, e *donburi.Entry, dt float64) {
	physics := components.Physics.Get(e)
	t := components.Transform.Get(e)

	var intent components.Intent
	if e.HasComponent(components.Input) {
		intent = components.Input.Get(e).Intent
	}

	climbing, riding := false, false
	if e.HasComponent(components.Snapper) {
		snapper := components.Snapper.Get(e)
		climbing = snapper.Climbing()
		riding = snapper.WasSnapped
	}
	grounded := physics.WasOnGround || riding

	if intent.MoveX != 0 {
		physics.Velocity.X += intent.MoveX * physics.Acceleration * dt
		physics.Velocity.X = gamemath.ClampSpeed(physics.Velocity.X, physics.MaxSpeed)
	} else {
		physics.Velocity.X = gamemath.ApplyFriction(physics.Velocity.X, physics.Friction*dt)
	}

	switch {
	case intent.Jump && grounded:
		physics.Velocity.Y = physics.JumpSpeed
		debugf(components.Physics, "jump from %.1f,%.1f", t.Position.X, t.Position.Y)
	case climbing:
		physics.Velocity.Y = intent.Climb * physics.ClimbSpeed
	default:
		physics.Velocity.Y -= physics.Gravity * dt
		if physics.MaxFallSpeed > 0 && physics.Velocity.Y < -physics.MaxFallSpeed {
			physics.Velocity.Y = -physics.MaxFallSpeed
		}
	}

	t.Proposed = t.Proposed.Add(physics.Velocity.Scale(dt))
}

// terrainContact pushes the entity out of ground it has moved into. The
// depth is measured again from the current proposal since earlier contacts
// this frame may already have moved it.
func terrainContact(ecs *ecs.ECS, e *donburi.Entry, phase components.ContactPhase, c components.Contact) {
	if phase == components.ContactFinished || c.Other.Category&components.CategoryGround == 0 {
		return
	}
	if !e.HasComponent(components.Transform) || !e.HasComponent(components.Collider) {
		return
	}
	physics := components.Physics.Get(e)
	t := components.Transform.Get(e)
	rect := components.Collider.Get(e).Rect(t.Proposed)

	if c.OnSlope {
		tileSize := gamemath.Vec{X: float64(cfg.Collision.TileSize), Y: float64(cfg.Collision.TileSize)}
		if level, ok := levelData(ecs.World); ok {
			tileSize = level.TileSize
		}
		minX, maxX := components.Collider.Get(e).HitSegment(components.SideBottom, rect)
		surface, ok := slopeSurface(c.Other.Rect, c.Other.Slope, minX, maxX, tileSize)
		if !ok {
			return
		}
		// Rising entities, and those already held up by higher ground this
		// frame, are not pulled down.
		lift := surface - rect.Min.Y
		if lift < -cfg.Collision.SnapTolerance || (lift < 0 && (physics.Velocity.Y > 0 || physics.OnGround)) {
			return
		}
		t.Proposed.Y += lift
		land(physics)
		return
	}

	dx, dy := rect.Overlap(c.Other.Rect)
	if dx < 0 || dy < 0 {
		return
	}
	if c.SelfSides.Has(components.SideLeft) || c.SelfSides.Has(components.SideRight) {
		step := c.Other.Rect.Max.Y - rect.Min.Y
		if dx > 0 && !c.SelfSides.Has(components.SideBottom) && canStepUp(ecs, e, physics, rect, step) {
			t.Proposed.Y += step
			land(physics)
			debugf(components.Physics, "step up %.1f to %.1f", step, c.Other.Rect.Max.Y)
			return
		}
	}
	switch {
	case c.SelfSides.Has(components.SideBottom):
		t.Proposed.Y += dy
		land(physics)
	case c.SelfSides.Has(components.SideTop):
		t.Proposed.Y -= dy
		if physics.Velocity.Y > 0 {
			physics.Velocity.Y = 0
		}
	}
	switch {
	case c.SelfSides.Has(components.SideLeft):
		t.Proposed.X += dx
		if physics.Velocity.X < 0 {
			physics.Velocity.X = 0
		}
	case c.SelfSides.Has(components.SideRight):
		t.Proposed.X -= dx
		if physics.Velocity.X > 0 {
			physics.Velocity.X = 0
		}
	}
}

// canStepUp reports whether a grounded entity may climb a ledge step pixels
// high instead of being stopped by it.
func canStepUp(ecs *ecs.ECS, e *donburi.Entry, physics *components.PhysicsData, rect gamemath.Rect, step float64) bool {
	if step <= 0 || step > cfg.Collision.StepHeight || physics.Velocity.Y > 0 {
		return false
	}
	if !physics.WasOnGround && !physics.OnGround {
		return false
	}
	return !groundOverlaps(ecs, e, rect.Translate(gamemath.Vec{Y: step}))
}

// groundOverlaps reports whether rect cuts into flat ground other than e.
// Slopes are left out; their contacts lift the entity on their own.
func groundOverlaps(ecs *ecs.ECS, e *donburi.Entry, rect gamemath.Rect) bool {
	c := components.Collider.Get(e)
	if c.Proxy == nil {
		return false
	}
	check := c.Proxy.Check(rect.Min.X-(c.Proxy.X+proxyMargin), rect.Min.Y-(c.Proxy.Y+proxyMargin))
	if check == nil {
		return false
	}
	for _, obj := range check.Objects {
		entity, ok := obj.Data.(donburi.Entity)
		if !ok || !ecs.World.Valid(entity) || entity == e.Entity() {
			continue
		}
		other := ecs.World.Entry(entity)
		if !other.HasComponent(components.Collider) {
			continue
		}
		oc := components.Collider.Get(other)
		if !oc.Enabled || oc.Category&components.CategoryGround == 0 {
			continue
		}
		if other.HasComponent(components.Tile) && components.Tile.Get(other).Sloped {
			continue
		}
		if rect.Intersects(oc.Rect(components.Transform.Get(other).Proposed)) {
			return true
		}
	}
	return false
}

func land(physics *components.PhysicsData) {
	if physics.Velocity.Y < 0 {
		physics.Velocity.Y = 0
	}
	physics.OnGround = true
}
