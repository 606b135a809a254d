package systems

import (
	"testing"

	"github.com/automoto/snapengine/components"
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/automoto/snapengine/systems/factory"
)

func TestCheckpointStretchesToLevelTop(t *testing.T) {
	e := newTestECS(t)
	withLevel(e, 10, 8)
	checkpoint := factory.CreateCheckpoint(e, gamemath.RectXYWH(64, 16, 16, 32), 1)

	Step(e, 1.0/60)

	c := components.Collider.Get(checkpoint)
	if got := c.Rect(position(checkpoint)); got.Max.Y != 128 || got.Min.Y != 16 {
		t.Errorf("checkpoint rect: got %+v, want y 16..128", got)
	}

	// Laid out once only.
	c.SetSize(gamemath.Vec{X: 16, Y: 10})
	Step(e, 1.0/60)
	if c.Size.Y != 10 {
		t.Errorf("checkpoint resized twice: %v", c.Size)
	}
}

func TestCheckpointActivatesOnPlayerContact(t *testing.T) {
	e := newTestECS(t)
	level := withLevel(e, 10, 8)
	checkpoint := factory.CreateCheckpoint(e, gamemath.RectXYWH(64, 16, 16, 32), 7)
	player := floatingPlayer(e, 20, 16)

	Step(e, 1.0/60)
	if level.ActiveCheckpoint != nil {
		t.Fatal("checkpoint active before the player reached it")
	}

	// High above the original box still counts once it is stretched.
	components.Transform.Get(player).Position = gamemath.Vec{X: 66, Y: 80}
	Step(e, 1.0/60)

	if !components.Checkpoint.Get(checkpoint).Activated {
		t.Fatal("checkpoint not activated")
	}
	if level.ActiveCheckpoint == nil || level.ActiveCheckpoint.ID != 7 {
		t.Fatalf("active checkpoint: got %+v", level.ActiveCheckpoint)
	}
	if want := (gamemath.Vec{X: 72, Y: 16}); level.ActiveCheckpoint.Spawn != want {
		t.Errorf("spawn: got %+v, want %+v", level.ActiveCheckpoint.Spawn, want)
	}
}

func TestCheckpointIgnoresNonPlayers(t *testing.T) {
	e := newTestECS(t)
	level := withLevel(e, 10, 8)
	factory.CreateCheckpoint(e, gamemath.RectXYWH(64, 16, 16, 32), 1)
	debris := factory.CreateDebris(e, gamemath.RectXYWH(66, 20, 8, 8), 10)
	components.Physics.Get(debris).Gravity = 0
	// Let the debris ask for checkpoints so the pair is tested at all.
	components.Collider.Get(debris).Mask |= components.CategoryCheckpoint

	Step(e, 1.0/60)

	if level.ActiveCheckpoint != nil {
		t.Errorf("debris activated checkpoint: %+v", level.ActiveCheckpoint)
	}
}

func TestRestoreProgress(t *testing.T) {
	e := newTestECS(t)
	level := withLevel(e, 10, 8)
	checkpoint := factory.CreateCheckpoint(e, gamemath.RectXYWH(64, 16, 16, 32), 3)

	if RestoreProgress(e, &SavedGameProgress{Level: "other", CheckpointID: 3}) {
		t.Error("progress for another level applied")
	}
	if RestoreProgress(e, nil) {
		t.Error("nil progress applied")
	}
	if !RestoreProgress(e, &SavedGameProgress{Level: "test", CheckpointID: 3, SpawnX: 72, SpawnY: 16}) {
		t.Fatal("progress not applied")
	}
	if level.ActiveCheckpoint == nil || level.ActiveCheckpoint.ID != 3 {
		t.Errorf("active checkpoint: got %+v", level.ActiveCheckpoint)
	}
	if !components.Checkpoint.Get(checkpoint).Activated {
		t.Error("restored checkpoint should be marked active")
	}
}

func TestCheckpointWithoutLevelStaysInactive(t *testing.T) {
	e := newTestECS(t)
	checkpoint := factory.CreateCheckpoint(e, gamemath.RectXYWH(64, 16, 16, 32), 2)
	floatingPlayer(e, 66, 16)

	Step(e, 1.0/60)

	if components.Checkpoint.Get(checkpoint).Activated {
		t.Error("checkpoint activated with no level to record it on")
	}
}
