package components

import "github.com/yohamta/donburi"

type DamagePolicy int

const (
	// DamageOnNewContact hits once per contact.
	DamageOnNewContact DamagePolicy = iota
	// DamageContinuous hits again every Interval seconds while contact lasts.
	DamageContinuous
)

func (p DamagePolicy) String() string {
	if p == DamageContinuous {
		return "continuous"
	}
	return "on-new-contact"
}

type HazardData struct {
	Damage   int
	Policy   DamagePolicy
	Interval float64

	// LastHit holds the clock time of the last hit per target.
	LastHit map[donburi.Entity]float64
}

var Hazard = donburi.NewComponentType[HazardData]().SetName("Hazard")
