package core

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/snapengine/assets"
	"github.com/automoto/snapengine/components"
	cfg "github.com/automoto/snapengine/config"
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/automoto/snapengine/shared/leveldata"
	"github.com/automoto/snapengine/systems"
)

// floorLevel is a 20x10 level with a solid bottom row and a checkpoint.
func floorLevel() *leveldata.Level {
	level := &leveldata.Level{
		Name:     "floor",
		Size:     gamemath.TiledSize{W: 20, H: 10},
		TileSize: gamemath.Vec{X: 16, Y: 16},
		Spawn:    gamemath.Vec{X: 32, Y: 16},
		HasSpawn: true,
		Checkpoints: []leveldata.Checkpoint{
			{Rect: gamemath.RectXYWH(160, 16, 16, 32), ID: 1},
		},
	}
	for x := 0; x < level.Size.W; x++ {
		level.Tiles = append(level.Tiles, leveldata.Tile{Coord: gamemath.TiledPoint{X: x}, ID: 1})
	}
	return level
}

func newTestScene(t *testing.T) *Scene {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	return NewScene(floorLevel())
}

func TestSceneStandsOnFloor(t *testing.T) {
	s := newTestScene(t)
	for i := 0; i < 30; i++ {
		s.Update(1.0 / 60)
	}

	player, ok := s.Player()
	if !ok {
		t.Fatal("player missing")
	}
	if got := components.Transform.Get(player).Position; got.Y != 16 || got.X != 32 {
		t.Errorf("player: got %+v, want standing at spawn", got)
	}
	if !components.Physics.Get(player).OnGround {
		t.Error("player should be on the ground")
	}
	if s.Frame() != 30 {
		t.Errorf("frames: got %d, want 30", s.Frame())
	}
}

func TestSceneWalksRight(t *testing.T) {
	s := newTestScene(t)
	s.SetIntent(components.Intent{MoveX: 1})
	for i := 0; i < 30; i++ {
		s.Update(1.0 / 60)
	}

	player, _ := s.Player()
	if got := components.Transform.Get(player).Position; got.X <= 32 || got.Y != 16 {
		t.Errorf("player: got %+v, want walked right on the floor", got)
	}
}

func TestSceneWalksAcrossDemoRamps(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	s := NewScene(assets.NewLevelLoader().MustLoadLevel("demo"))
	s.SetIntent(components.Intent{MoveX: 1})
	player, _ := s.Player()

	// Both ramp groups sit between the spawn and x=400.
	last := components.Transform.Get(player).Position
	for i := 0; i < 150; i++ {
		s.Update(1.0 / 60)
		got := components.Transform.Get(player).Position
		if got.X <= last.X {
			t.Fatalf("frame %d: player stalled at %+v", i, got)
		}
		last = got
	}

	if last.X < 400 {
		t.Errorf("player only reached x=%v", last.X)
	}
	if math.Abs(last.Y-16) > 1e-6 {
		t.Errorf("player y: got %v, want back on the floor at 16", last.Y)
	}
}

func TestSceneCheckpointRespawn(t *testing.T) {
	s := newTestScene(t)
	s.Update(1.0 / 60)

	player, _ := s.Player()
	components.Transform.Get(player).Position = gamemath.Vec{X: 162, Y: 16}
	s.Update(1.0 / 60)

	level, _ := components.Level.First(s.World())
	active := components.Level.Get(level).ActiveCheckpoint
	if active == nil || active.ID != 1 {
		t.Fatalf("checkpoint not active: %+v", active)
	}

	components.Transform.Get(player).Position = gamemath.Vec{X: 40, Y: 100}
	hp := components.Health.Get(player)
	hp.Remaining, hp.Dead = 0, true
	s.Respawn()

	want := gamemath.Vec{X: 168 - cfg.Player.CollisionWidth/2, Y: 16}
	if got := components.Transform.Get(player).Position; got != want {
		t.Errorf("respawn: got %+v, want %+v", got, want)
	}
	if hp.Dead || hp.Remaining != hp.Max {
		t.Errorf("health not restored: %+v", hp)
	}
}

func TestScenePauseFreezesSimulation(t *testing.T) {
	s := newTestScene(t)
	s.Update(1.0 / 60)
	systems.SetPaused(s.ECS(), true)

	s.Update(1.0 / 60)
	if s.Frame() != 1 {
		t.Errorf("paused scene advanced to frame %d", s.Frame())
	}

	systems.SetPaused(s.ECS(), false)
	s.Update(1.0 / 60)
	if s.Frame() != 2 {
		t.Errorf("frame after resume: got %d, want 2", s.Frame())
	}
}

func TestSceneRestoreProgress(t *testing.T) {
	s := newTestScene(t)
	if s.RestoreProgress(&systems.SavedGameProgress{Level: "elsewhere", CheckpointID: 1}) {
		t.Error("restored progress of another level")
	}
	if !s.RestoreProgress(&systems.SavedGameProgress{Level: "floor", CheckpointID: 1, SpawnX: 168, SpawnY: 16}) {
		t.Fatal("progress not restored")
	}
	s.Respawn()

	player, _ := s.Player()
	if got := components.Transform.Get(player).Position.X; got != 168-cfg.Player.CollisionWidth/2 {
		t.Errorf("respawn x: got %v", got)
	}
}

func TestGameLoopStopsAtFrameLimit(t *testing.T) {
	s := newTestScene(t)
	loop := NewGameLoop(s, 1000, 5)
	ticks := 0
	loop.OnTick(func(*Scene) { ticks++ })

	done := make(chan struct{})
	go func() {
		loop.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		loop.Stop()
		t.Fatal("loop did not stop at the frame limit")
	}
	if ticks != 5 || s.Frame() != 5 {
		t.Errorf("got %d ticks at frame %d, want 5", ticks, s.Frame())
	}
}

func TestGameLoopStop(t *testing.T) {
	s := newTestScene(t)
	loop := NewGameLoop(s, 1000, 0)

	done := make(chan struct{})
	go func() {
		loop.Run()
		close(done)
	}()
	loop.Stop()
	loop.Stop()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop")
	}
}
