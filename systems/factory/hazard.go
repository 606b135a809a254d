package factory

import (
	"github.com/automoto/snapengine/archetypes"
	"github.com/automoto/snapengine/components"
	cfg "github.com/automoto/snapengine/config"
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/automoto/snapengine/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func hazardCollider(rect gamemath.Rect) components.ColliderData {
	return components.ColliderData{
		Size:     gamemath.Vec{X: rect.W(), Y: rect.H()},
		Category: components.CategoryHazard,
		Mask:     components.CategoryPlayer,
	}
}

// CreateHazard spawns a static hazard. Continuous hazards keep hurting while
// touched; the others hurt once per contact.
func CreateHazard(ecs *ecs.ECS, rect gamemath.Rect, damage int, continuous bool) *donburi.Entry {
	if damage <= 0 {
		damage = cfg.Hazard.Damage
	}
	hazard := archetypes.Hazard.Spawn(ecs)
	attachBody(ecs, hazard, rect.Min, hazardCollider(rect), tags.ResolvHazard)

	data := components.HazardData{Damage: damage, Policy: components.DamageOnNewContact}
	if continuous {
		data.Policy = components.DamageContinuous
		data.Interval = cfg.Hazard.ContinuousInterval
	}
	components.Hazard.SetValue(hazard, data)
	return hazard
}

// CreateSpikes spawns spikes that stay out for a cycle, sink into the
// ground, stay hidden for a cycle and come back up.
func CreateSpikes(ecs *ecs.ECS, rect gamemath.Rect, damage int, cycle float64) *donburi.Entry {
	if damage <= 0 {
		damage = cfg.Spikes.Damage
	}
	if cycle <= 0 {
		cycle = cfg.Spikes.CycleSeconds
	}
	spikes := archetypes.Spikes.Spawn(ecs)
	attachBody(ecs, spikes, rect.Min, hazardCollider(rect), tags.ResolvHazard)
	components.Hazard.SetValue(spikes, components.HazardData{
		Damage: damage,
		Policy: components.DamageOnNewContact,
	})

	hold, slide := float32(cycle), float32(cycle/4)
	components.Retractor.SetValue(spikes, components.RetractorData{
		Sequence: gween.NewSequence(
			gween.New(0, 0, hold, ease.Linear),
			gween.New(0, 1, slide, ease.Linear),
			gween.New(1, 1, hold, ease.Linear),
			gween.New(1, 0, slide, ease.Linear),
		),
		Depth: rect.H(),
	})
	return spikes
}

// CreateDebris spawns a falling hazard that is removed once its lifetime is
// over and it has left the map.
func CreateDebris(ecs *ecs.ECS, rect gamemath.Rect, lifetime float64) *donburi.Entry {
	if lifetime <= 0 {
		lifetime = cfg.Debris.LifetimeSeconds
	}
	debris := archetypes.Debris.Spawn(ecs)
	attachBody(ecs, debris, rect.Min, hazardCollider(rect), tags.ResolvHazard)
	components.Hazard.SetValue(debris, components.HazardData{
		Damage: cfg.Debris.Damage,
		Policy: components.DamageOnNewContact,
	})
	components.Physics.SetValue(debris, components.PhysicsData{
		Gravity:      cfg.Debris.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})
	components.TimeLimit.SetValue(debris, components.TimeLimitData{Remaining: lifetime})
	return debris
}
