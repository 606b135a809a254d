package systems

import (
	"github.com/automoto/snapengine/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// updateInput makes the intent queued by the host since last frame current.
func updateInput(ecs *ecs.ECS, e *donburi.Entry, dt float64) {
	components.Input.Get(e).Advance()
}

// ForwardTouch hands a host touch to every entity that accepts touches.
func ForwardTouch(ecs *ecs.ECS, ev components.TouchEvent) {
	components.Input.Each(ecs.World, func(e *donburi.Entry) {
		var receiver components.TouchReceiver = components.Input.Get(e)
		receiver.ReceiveTouch(ev)
	})
}

// SetIntent queues intent on every input-driven entity.
func SetIntent(ecs *ecs.ECS, in components.Intent) {
	components.Input.Each(ecs.World, func(e *donburi.Entry) {
		components.Input.Get(e).SetIntent(in)
	})
}
