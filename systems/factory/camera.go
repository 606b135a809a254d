package factory

import (
	"github.com/automoto/snapengine/archetypes"
	"github.com/automoto/snapengine/components"
	"github.com/automoto/snapengine/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera adds the view entity, centred on the player when there is one.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Camera.Spawn(ecs)
	camera := components.CameraData{}
	if player, ok := tags.Player.First(ecs.World); ok {
		camera.Position = components.Transform.Get(player).Position
	}
	components.Camera.SetValue(entry, camera)
	return entry
}
