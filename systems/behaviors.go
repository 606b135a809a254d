package systems

import (
	"log"
	"sort"
	"sync"

	"github.com/automoto/snapengine/components"
	cfg "github.com/automoto/snapengine/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// Behavior is the per-kind logic of a component: an optional update hook
// run once per frame for every entity carrying Kind, and an optional contact
// hook run for every contact such an entity takes part in.
type Behavior struct {
	Kind      donburi.IComponentType
	Update    func(ecs *ecs.ECS, e *donburi.Entry, dt float64)
	OnContact func(ecs *ecs.ECS, e *donburi.Entry, phase components.ContactPhase, c components.Contact)
}

var behaviors = []Behavior{
	{Kind: components.Input, Update: updateInput},
	{Kind: components.Snappable, OnContact: snappableContact},
	{Kind: components.Mover, Update: updateMover},
	{Kind: components.Retractor, Update: updateRetractor},
	{Kind: components.Snapper, Update: carrySnapper},
	{Kind: components.Physics, Update: updatePhysics, OnContact: terrainContact},
	{Kind: components.Health, Update: updateHealth},
	{Kind: components.TimeLimit, Update: updateTimeLimit},
	{Kind: components.Hazard, OnContact: hazardContact},
	{Kind: components.Checkpoint, Update: layoutCheckpoint, OnContact: checkpointContact},
}

var (
	orderOnce sync.Once
	ordered   []Behavior
)

// Behaviors returns every behavior in priority order.
func Behaviors() []Behavior {
	orderOnce.Do(func() {
		ordered = append([]Behavior(nil), behaviors...)
		sort.SliceStable(ordered, func(i, j int) bool {
			return components.Priorities.Less(ordered[i].Kind, ordered[j].Kind)
		})
	})
	return ordered
}

// UpdateBehaviors runs the update hook of every behavior, lowest priority
// first.
func UpdateBehaviors(ecs *ecs.ECS) {
	dt := frameDelta(ecs.World)
	for _, b := range Behaviors() {
		if b.Update == nil {
			continue
		}
		b := b
		donburi.NewQuery(filter.Contains(b.Kind)).Each(ecs.World, func(e *donburi.Entry) {
			safeCall(b.Kind, "update", func() {
				b.Update(ecs, e, dt)
			})
		})
	}
}

// safeCall isolates one hook so a panic only costs that component its frame.
func safeCall(kind donburi.IComponentType, hook string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[behavior] %s %s failed: %v", kind.Name(), hook, r)
		}
	}()
	fn()
}

func debugf(kind donburi.IComponentType, format string, args ...interface{}) {
	if !cfg.DebugEnabled(kind.Name()) {
		return
	}
	log.Printf("["+kind.Name()+"] "+format, args...)
}
