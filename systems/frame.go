package systems

import (
	"github.com/automoto/snapengine/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Pipeline is the ordered list of systems that make up one frame.
var Pipeline = []func(*ecs.ECS){
	BeginFrame,
	UpdateBehaviors,
	UpdateCollisions,
	ApplyDamage,
	CommitPositions,
	CleanupExpired,
}

// AdvanceClock records the time step the next frame simulates.
func AdvanceClock(ecs *ecs.ECS, dt float64) {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)
	clock.Delta = dt
	clock.Elapsed += dt
	clock.Frame++
}

// Step runs one frame outside of an ecs.ECS update loop.
func Step(ecs *ecs.ECS, dt float64) {
	AdvanceClock(ecs, dt)
	for _, system := range Pipeline {
		system(ecs)
	}
}

// BeginFrame resets every frame-local value: proposals start from the
// committed position and last frame's snap claims are dropped.
func BeginFrame(ecs *ecs.ECS) {
	components.Transform.Each(ecs.World, func(e *donburi.Entry) {
		t := components.Transform.Get(e)
		t.Proposed = t.Position
	})
	components.Snapper.Each(ecs.World, func(e *donburi.Entry) {
		components.Snapper.Get(e).BeginFrame()
	})
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		physics.WasOnGround = physics.OnGround
		physics.OnGround = false
	})
}

func frameDelta(w donburi.World) float64 {
	entry, ok := components.Clock.First(w)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Delta
}

func frameTime(w donburi.World) float64 {
	entry, ok := components.Clock.First(w)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Elapsed
}

func levelData(w donburi.World) (*components.LevelData, bool) {
	entry, ok := components.Level.First(w)
	if !ok {
		return nil, false
	}
	return components.Level.Get(entry), true
}
