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

func platformCollider(rect gamemath.Rect) components.ColliderData {
	return components.ColliderData{
		Size:     gamemath.Vec{X: rect.W(), Y: rect.H()},
		Category: components.CategoryPlatform,
	}
}

// CreatePlatform spawns a static platform riders snap onto from above.
func CreatePlatform(ecs *ecs.ECS, rect gamemath.Rect) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	attachBody(ecs, platform, rect.Min, platformCollider(rect), tags.ResolvPlatform)
	components.Snappable.SetValue(platform, components.SnappableData{
		Kind:         components.SnapRide,
		RequiredSide: components.SideTop,
	})
	return platform
}

// CreateMovingPlatform spawns a platform that travels by travel and back,
// taking duration seconds for each leg.
func CreateMovingPlatform(ecs *ecs.ECS, rect gamemath.Rect, travel gamemath.Vec, duration float64) *donburi.Entry {
	if duration <= 0 {
		duration = cfg.Platform.DurationSeconds
	}
	platform := archetypes.MovingPlatform.Spawn(ecs)
	attachBody(ecs, platform, rect.Min, platformCollider(rect), tags.ResolvPlatform)
	components.Snappable.SetValue(platform, components.SnappableData{
		Kind:         components.SnapRide,
		RequiredSide: components.SideTop,
	})

	// The platform moves using a *gween.Sequence of tweens over path progress, back and forth.
	d := float32(duration)
	components.Mover.SetValue(platform, components.MoverData{
		Sequence: gween.NewSequence(
			gween.New(0, 1, d, ease.Linear),
			gween.New(1, 0, d, ease.Linear),
		),
		Origin: rect.Min,
		Travel: travel,
	})
	return platform
}

// CreateLadder spawns a ladder. Touching it from any side lets the player
// climb.
func CreateLadder(ecs *ecs.ECS, rect gamemath.Rect) *donburi.Entry {
	ladder := archetypes.Ladder.Spawn(ecs)
	attachBody(ecs, ladder, rect.Min, components.ColliderData{
		Size:     gamemath.Vec{X: rect.W(), Y: rect.H()},
		Category: components.CategoryLadder,
	}, tags.ResolvLadder)
	components.Snappable.SetValue(ladder, components.SnappableData{
		Kind: components.SnapClimb,
	})
	return ladder
}
