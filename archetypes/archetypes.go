package archetypes

import (
	"github.com/automoto/snapengine/components"
	cfg "github.com/automoto/snapengine/config"
	"github.com/automoto/snapengine/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Contacts = newArchetype(
		components.Contacts,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Tile = newArchetype(
		tags.Tile,
		components.Tile,
		components.Transform,
		components.Collider,
	)
	Player = newArchetype(
		tags.Player,
		components.Transform,
		components.Collider,
		components.Physics,
		components.Snapper,
		components.Health,
		components.Input,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Transform,
		components.Collider,
		components.Snappable,
	)
	MovingPlatform = newArchetype(
		tags.Platform,
		components.Transform,
		components.Collider,
		components.Snappable,
		components.Mover,
	)
	Ladder = newArchetype(
		tags.Ladder,
		components.Transform,
		components.Collider,
		components.Snappable,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Transform,
		components.Collider,
		components.Hazard,
	)
	Spikes = newArchetype(
		tags.Spikes,
		components.Transform,
		components.Collider,
		components.Hazard,
		components.Retractor,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		components.Transform,
		components.Collider,
		components.Checkpoint,
	)
	Debris = newArchetype(
		tags.Debris,
		components.Transform,
		components.Collider,
		components.Physics,
		components.Hazard,
		components.TimeLimit,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}
