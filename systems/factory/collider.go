package factory

import (
	"github.com/automoto/snapengine/components"
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// attachBody places e at pos and gives it collider c with a broad-phase
// proxy in the space.
func attachBody(ecs *ecs.ECS, e *donburi.Entry, pos gamemath.Vec, c components.ColliderData, resolvTags ...string) {
	c.ID = components.NextColliderID()
	c.Enabled = true

	rect := c.Rect(pos)
	obj := resolv.NewObject(rect.Min.X, rect.Min.Y, rect.W(), rect.H(), resolvTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, rect.W(), rect.H()))
	obj.Data = e.Entity()
	c.Proxy = obj

	components.Transform.SetValue(e, components.TransformData{Position: pos, Proposed: pos})
	components.Collider.SetValue(e, c)

	// Add to physics space
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// Destroy removes an entity and its broad-phase proxy.
func Destroy(ecs *ecs.ECS, e *donburi.Entry) {
	if e.HasComponent(components.Collider) {
		if proxy := components.Collider.Get(e).Proxy; proxy != nil && proxy.Space != nil {
			proxy.Space.Remove(proxy)
		}
	}
	ecs.World.Remove(e.Entity())
}
