package systems

import (
	"log"

	"github.com/automoto/snapengine/components"
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/automoto/snapengine/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// layoutCheckpoint stretches a checkpoint's collider up to the top of the
// level the first time it runs, so the player cannot jump over it.
func layoutCheckpoint(ecs *ecs.ECS, e *donburi.Entry, dt float64) {
	checkpoint := components.Checkpoint.Get(e)
	if checkpoint.LaidOut || !e.HasComponent(components.Collider) {
		return
	}
	level, ok := levelData(ecs.World)
	if !ok {
		return
	}
	checkpoint.LaidOut = true

	c := components.Collider.Get(e)
	bottom := components.Transform.Get(e).Position.Y + c.Offset.Y
	if top := level.Bounds.Max.Y; top > bottom+c.Size.Y {
		c.SetSize(gamemath.Vec{X: c.Size.X, Y: top - bottom})
	}
}

// checkpointContact activates a checkpoint the first time the player reaches
// it and records it on the level.
func checkpointContact(ecs *ecs.ECS, e *donburi.Entry, phase components.ContactPhase, c components.Contact) {
	if phase != components.ContactNew || !ecs.World.Valid(c.Other.Entity) {
		return
	}
	if !ecs.World.Entry(c.Other.Entity).HasComponent(tags.Player) {
		return
	}

	checkpoint := components.Checkpoint.Get(e)
	// Only activate if not already activated
	if checkpoint.Activated {
		return
	}
	level, ok := levelData(ecs.World)
	if !ok {
		return
	}
	checkpoint.Activated = true
	level.ActiveCheckpoint = &components.ActiveCheckpointData{
		ID:    checkpoint.ID,
		Spawn: checkpoint.Spawn,
	}
	log.Printf("[checkpoint] %s: checkpoint %d activated", level.Name, checkpoint.ID)

	if err := SaveGameProgress(level.Name, level.ActiveCheckpoint); err != nil {
		log.Printf("[checkpoint] %s: progress not saved: %v", level.Name, err)
	}
}
