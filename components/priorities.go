package components

import "github.com/automoto/snapengine/registry"

// Component priorities. Lower runs first, both for per-frame updates and for
// contact callbacks. Snappables resolve before anything that depends on the
// snapper's position.
const (
	PriorityInput      = -30
	PrioritySnappable  = -20
	PriorityMover      = -10
	PriorityRetractor  = -10
	PrioritySnapper    = -5
	PriorityPhysics    = 10
	PriorityHazard     = 20
	PriorityCheckpoint = 30
)

func declarations() []registry.Declaration {
	return []registry.Declaration{
		{Kind: Input, Priority: PriorityInput},
		{Kind: Snappable, Priority: PrioritySnappable},
		{Kind: Mover, Priority: PriorityMover},
		{Kind: Retractor, Priority: PriorityRetractor},
		{Kind: Snapper, Priority: PrioritySnapper},
		{Kind: Physics, Priority: PriorityPhysics},
		{Kind: Hazard, Priority: PriorityHazard},
		{Kind: Checkpoint, Priority: PriorityCheckpoint},
	}
}

// Priorities is the process-wide priority registry.
var Priorities = registry.New(declarations)
