package core

import (
	"log"

	"github.com/automoto/snapengine/components"
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/automoto/snapengine/shared/leveldata"
	"github.com/automoto/snapengine/systems"
	"github.com/automoto/snapengine/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Scene is one loaded level and the world simulating it. A host calls Update
// once per frame and reads transforms and colliders afterwards.
type Scene struct {
	ecs    *ecs.ECS
	level  *leveldata.Level
	player donburi.Entity
}

func NewScene(level *leveldata.Level) *Scene {
	s := &Scene{
		ecs:   ecs.NewECS(donburi.NewWorld()),
		level: level,
	}
	for _, system := range systems.Pipeline {
		s.ecs.AddSystem(system)
	}
	components.Priorities.Init()

	s.player = factory.PopulateLevel(s.ecs, level).Entity()
	return s
}

// Update simulates one frame of dt seconds. Nothing moves while paused.
func (s *Scene) Update(dt float64) {
	if systems.IsPaused(s.ecs) {
		return
	}
	systems.AdvanceClock(s.ecs, dt)
	s.ecs.Update()
}

// Touch forwards a host touch to the touch receivers.
func (s *Scene) Touch(ev components.TouchEvent) {
	systems.ForwardTouch(s.ecs, ev)
}

// SetIntent queues player intent for the next frame.
func (s *Scene) SetIntent(in components.Intent) {
	systems.SetIntent(s.ecs, in)
}

func (s *Scene) ECS() *ecs.ECS           { return s.ecs }
func (s *Scene) World() donburi.World    { return s.ecs.World }
func (s *Scene) Level() *leveldata.Level { return s.level }

// Player returns the player entry, if it is still alive in the world.
func (s *Scene) Player() (*donburi.Entry, bool) {
	if !s.ecs.World.Valid(s.player) {
		return nil, false
	}
	return s.ecs.World.Entry(s.player), true
}

// Frame returns the number of frames simulated so far.
func (s *Scene) Frame() uint64 {
	entry, ok := components.Clock.First(s.ecs.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Frame
}

// Respawn puts the player back at the active checkpoint, or at the level
// spawn, with full health.
func (s *Scene) Respawn() {
	player, ok := s.Player()
	if !ok {
		return
	}
	spawn := s.level.Spawn
	if entry, ok := components.Level.First(s.ecs.World); ok {
		if active := components.Level.Get(entry).ActiveCheckpoint; active != nil {
			spawn = active.Spawn
			if player.HasComponent(components.Collider) {
				spawn.X -= components.Collider.Get(player).Size.X / 2
			}
		}
	}

	t := components.Transform.Get(player)
	t.Position, t.Proposed = spawn, spawn
	physics := components.Physics.Get(player)
	physics.Velocity = gamemath.Vec{}
	hp := components.Health.Get(player)
	hp.Remaining, hp.Dead, hp.Invuln = hp.Max, false, 0

	log.Printf("[scene] %s: player respawned at %.1f,%.1f", s.level.Name, spawn.X, spawn.Y)
}

// RestoreProgress applies saved checkpoint progress if it belongs to this
// level.
func (s *Scene) RestoreProgress(progress *systems.SavedGameProgress) bool {
	return systems.RestoreProgress(s.ecs, progress)
}
