package components

import "github.com/yohamta/donburi"

// TimeLimitData marks an entity for removal once its time is up. Removal
// waits until the entity is outside the collision map.
type TimeLimitData struct {
	Remaining float64
	Expired   bool
}

var TimeLimit = donburi.NewComponentType[TimeLimitData]().SetName("TimeLimit")
