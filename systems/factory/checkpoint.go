package factory

import (
	"github.com/automoto/snapengine/archetypes"
	"github.com/automoto/snapengine/components"
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/automoto/snapengine/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCheckpoint creates a checkpoint entity. Its collider is stretched to
// the top of the level on the first frame.
func CreateCheckpoint(ecs *ecs.ECS, rect gamemath.Rect, checkpointID int) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)
	attachBody(ecs, checkpoint, rect.Min, components.ColliderData{
		Size:     gamemath.Vec{X: rect.W(), Y: rect.H()},
		Category: components.CategoryCheckpoint,
	}, tags.ResolvCheckpoint)

	// Respawn with the player's feet at the bottom centre of the checkpoint
	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		ID:    checkpointID,
		Spawn: gamemath.Vec{X: rect.Center().X, Y: rect.Min.Y},
	})
	return checkpoint
}
