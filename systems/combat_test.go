package systems

import (
	"testing"

	"github.com/automoto/snapengine/components"
	cfg "github.com/automoto/snapengine/config"
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/automoto/snapengine/systems/factory"
)

func TestHazardHitsOncePerContact(t *testing.T) {
	e := newTestECS(t)
	factory.CreateHazard(e, gamemath.RectXYWH(0, 0, 20, 32), 1, false)
	player := floatingPlayer(e, 4, 4)
	hp := components.Health.Get(player)
	hp.Remaining, hp.Max = 1, 1

	for i := 0; i < 5; i++ {
		Step(e, 1.0/60)
	}

	if !hp.Dead || hp.Remaining != 0 {
		t.Errorf("player should be dead: %+v", hp)
	}
	if hp.Hits != 1 {
		t.Errorf("hits: got %d, want 1", hp.Hits)
	}
	if player.HasComponent(components.DamageEvent) {
		t.Error("damage event should be consumed")
	}
}

func TestContinuousHazardRepeatsAfterInterval(t *testing.T) {
	e := newTestECS(t)
	cfg.Hazard.ContinuousInterval = 0.5
	factory.CreateHazard(e, gamemath.RectXYWH(0, 0, 20, 32), 1, true)
	player := floatingPlayer(e, 4, 4)
	hp := components.Health.Get(player)
	hp.Remaining, hp.Max, hp.InvulnSeconds = 10, 10, 0

	for i := 0; i < 5; i++ {
		Step(e, 0.25)
	}

	// Hits at 0.25, 0.75 and 1.25.
	if hp.Hits != 3 || hp.Remaining != 7 {
		t.Errorf("got %d hits, %d remaining; want 3 hits, 7 remaining", hp.Hits, hp.Remaining)
	}
}

func TestInvulnerabilityBlocksDamage(t *testing.T) {
	e := newTestECS(t)
	hazard := factory.CreateHazard(e, gamemath.RectXYWH(0, 0, 20, 32), 1, false)
	player := floatingPlayer(e, 4, 4)
	hp := components.Health.Get(player)
	hp.Remaining, hp.Max, hp.InvulnSeconds = 3, 3, 1

	Step(e, 0.25)
	if hp.Remaining != 2 || hp.Invuln != 1 {
		t.Fatalf("first hit: got %+v", hp)
	}

	// Leave and come back inside the invulnerability window.
	components.Transform.Get(player).Position = gamemath.Vec{X: 200, Y: 200}
	Step(e, 0.25)
	components.Transform.Get(player).Position = gamemath.Vec{X: 4, Y: 4}
	Step(e, 0.25)
	if hp.Remaining != 2 {
		t.Errorf("hit while invulnerable: got %+v", hp)
	}
	if _, tracked := components.Hazard.Get(hazard).LastHit[player.Entity()]; !tracked {
		t.Error("new contact should still be recorded")
	}
}

func TestDamageAccumulatesWithinFrame(t *testing.T) {
	e := newTestECS(t)
	factory.CreateHazard(e, gamemath.RectXYWH(0, 0, 20, 32), 1, false)
	factory.CreateHazard(e, gamemath.RectXYWH(0, 0, 20, 32), 2, false)
	player := floatingPlayer(e, 4, 4)
	hp := components.Health.Get(player)
	hp.Remaining, hp.Max = 5, 5

	Step(e, 1.0/60)

	if hp.Remaining != 2 || hp.Hits != 1 {
		t.Errorf("got %+v, want 3 damage in one hit", hp)
	}
}
