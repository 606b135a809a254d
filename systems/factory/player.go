package factory

import (
	"github.com/automoto/snapengine/archetypes"
	"github.com/automoto/snapengine/components"
	cfg "github.com/automoto/snapengine/config"
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/automoto/snapengine/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its feet at (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	attachBody(ecs, player, gamemath.Vec{X: x, Y: y}, components.ColliderData{
		Size:     gamemath.Vec{X: cfg.Player.CollisionWidth, Y: cfg.Player.CollisionHeight},
		Insets:   components.BodyInsets(cfg.Player.FootInset, cfg.Player.SideInset),
		Category: components.CategoryPlayer,
		Mask: components.CategoryGround | components.CategoryPlatform | components.CategoryLadder |
			components.CategoryHazard | components.CategoryCheckpoint,
	}, tags.ResolvPlayer)

	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
		MaxSpeed:     cfg.Physics.MaxSpeed,
		Acceleration: cfg.Physics.Acceleration,
		Friction:     cfg.Physics.Friction,
		JumpSpeed:    cfg.Physics.JumpSpeed,
		ClimbSpeed:   cfg.Physics.ClimbSpeed,
	})
	components.Health.SetValue(player, components.HealthData{
		Remaining:     cfg.Player.Health,
		Max:           cfg.Player.Health,
		InvulnSeconds: cfg.Player.InvulnSeconds,
	})

	return player
}
