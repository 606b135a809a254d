package components

import "github.com/yohamta/donburi"

// DamageEventData is queued on an entity by hazards and consumed once per
// frame by the damage step. Amounts from several hazards accumulate.
type DamageEventData struct {
	Amount int
	Source donburi.Entity
}

var DamageEvent = donburi.NewComponentType[DamageEventData]().SetName("DamageEvent")
