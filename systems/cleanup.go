package systems

import (
	"github.com/automoto/snapengine/components"
	"github.com/automoto/snapengine/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func updateTimeLimit(ecs *ecs.ECS, e *donburi.Entry, dt float64) {
	tl := components.TimeLimit.Get(e)
	if tl.Expired {
		return
	}
	tl.Remaining -= dt
	if tl.Remaining <= 0 {
		tl.Remaining = 0
		tl.Expired = true
	}
}

// CleanupExpired removes time-limited entities whose time is up, but only
// once their collider has left the collision map.
func CleanupExpired(ecs *ecs.ECS) {
	var doomed []*donburi.Entry
	components.TimeLimit.Each(ecs.World, func(e *donburi.Entry) {
		if !components.TimeLimit.Get(e).Expired {
			return
		}
		if e.HasComponent(components.Collider) && !components.Collider.Get(e).OutsideMapBounds {
			return
		}
		doomed = append(doomed, e)
	})

	for _, e := range doomed {
		debugf(components.TimeLimit, "removing %v", e.Entity())
		factory.Destroy(ecs, e)
	}
}
