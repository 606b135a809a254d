package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Remaining     int
	Max           int
	Dead          bool
	Invuln        float64 // seconds left
	InvulnSeconds float64
	Hits          int
}

var Health = donburi.NewComponentType[HealthData]().SetName("Health")
