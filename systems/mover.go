package systems

import (
	"github.com/automoto/snapengine/components"
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// updateMover proposes the next point along a mover's path. Sequences loop.
func updateMover(ecs *ecs.ECS, e *donburi.Entry, dt float64) {
	mover := components.Mover.Get(e)
	if mover.Sequence == nil {
		return
	}
	progress, _, done := mover.Sequence.Update(float32(dt))
	if done {
		mover.Sequence.Reset()
	}
	mover.Progress = float64(progress)

	t := components.Transform.Get(e)
	t.Proposed = mover.Origin.Add(mover.Travel.Scale(mover.Progress))
}

// updateRetractor slides a collider into its entity and back out. The
// collider stops taking contacts while fully retracted.
func updateRetractor(ecs *ecs.ECS, e *donburi.Entry, dt float64) {
	r := components.Retractor.Get(e)
	if r.Sequence == nil || !e.HasComponent(components.Collider) {
		return
	}
	retracted, _, done := r.Sequence.Update(float32(dt))
	if done {
		r.Sequence.Reset()
	}
	r.Retracted = gamemath.Clamp(float64(retracted), 0, 1)

	c := components.Collider.Get(e)
	c.SetOffset(gamemath.Vec{X: r.Extended.X, Y: r.Extended.Y - r.Depth*r.Retracted})
	enabled := r.Retracted < 1
	if enabled != c.Enabled {
		debugf(components.Retractor, "%v collider enabled=%v", e.Entity(), enabled)
	}
	c.SetEnabled(enabled)
}
