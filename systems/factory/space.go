package factory

import (
	"github.com/automoto/snapengine/archetypes"
	"github.com/automoto/snapengine/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateFrameState spawns the singletons the frame pipeline keeps between
// frames: the clock and the contact memory.
func CreateFrameState(ecs *ecs.ECS) {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{})

	contacts := archetypes.Contacts.Spawn(ecs)
	components.Contacts.SetValue(contacts, components.ContactsData{
		Active: map[components.PairKey]components.Contact{},
	})
}
