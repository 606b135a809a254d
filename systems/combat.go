package systems

import (
	"log"

	"github.com/automoto/snapengine/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// hazardContact queues damage on whatever healthy entity touches a hazard.
// Whether a lasting contact hits again is the hazard's policy.
func hazardContact(ecs *ecs.ECS, e *donburi.Entry, phase components.ContactPhase, c components.Contact) {
	hazard := components.Hazard.Get(e)
	target := c.Other.Entity

	if phase == components.ContactFinished {
		delete(hazard.LastHit, target)
		return
	}
	if !ecs.World.Valid(target) {
		return
	}
	victim := ecs.World.Entry(target)
	if !victim.HasComponent(components.Health) {
		return
	}

	now := frameTime(ecs.World)
	switch hazard.Policy {
	case components.DamageOnNewContact:
		if phase != components.ContactNew {
			return
		}
	case components.DamageContinuous:
		if last, ok := hazard.LastHit[target]; ok && phase == components.ContactExisting && now-last < hazard.Interval {
			return
		}
	}

	if hazard.LastHit == nil {
		hazard.LastHit = map[donburi.Entity]float64{}
	}
	hazard.LastHit[target] = now
	queueDamage(victim, hazard.Damage, e.Entity())
	debugf(components.Hazard, "%v hits %v for %d (%s)", e.Entity(), target, hazard.Damage, phase)
}

func queueDamage(e *donburi.Entry, amount int, source donburi.Entity) {
	if e.HasComponent(components.DamageEvent) {
		components.DamageEvent.Get(e).Amount += amount
		return
	}
	donburi.Add(e, components.DamageEvent, &components.DamageEventData{
		Amount: amount,
		Source: source,
	})
}

// ApplyDamage consumes queued damage events. Entities inside their
// invulnerability window or already dead ignore the hit.
func ApplyDamage(ecs *ecs.ECS) {
	var hit []*donburi.Entry
	components.DamageEvent.Each(ecs.World, func(e *donburi.Entry) {
		hit = append(hit, e)
	})

	for _, e := range hit {
		dmg := components.DamageEvent.Get(e)
		if e.HasComponent(components.Health) {
			hp := components.Health.Get(e)
			if !hp.Dead && hp.Invuln <= 0 && dmg.Amount > 0 {
				hp.Remaining -= dmg.Amount
				hp.Hits++
				if hp.Remaining <= 0 {
					hp.Remaining = 0
					hp.Dead = true
					log.Printf("[combat] %v died", e.Entity())
				} else {
					hp.Invuln = hp.InvulnSeconds
				}
			}
		}
		// Remove the damage event component so it is processed only once.
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
	}
}

func updateHealth(ecs *ecs.ECS, e *donburi.Entry, dt float64) {
	hp := components.Health.Get(e)
	if hp.Invuln > 0 {
		hp.Invuln -= dt
		if hp.Invuln < 0 {
			hp.Invuln = 0
		}
	}
}
