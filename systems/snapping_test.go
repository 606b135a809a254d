package systems

import (
	"testing"

	"github.com/automoto/snapengine/components"
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/automoto/snapengine/systems/factory"
)

func TestRiderFollowsRisingPlatformThenFalls(t *testing.T) {
	e := newTestECS(t)
	platform := factory.CreateMovingPlatform(e, gamemath.RectXYWH(0, 0, 32, 16), gamemath.Vec{Y: 5}, 1)
	rider := factory.CreatePlayer(e, 8, 16)
	components.Physics.Get(rider).Gravity = 0.1

	Step(e, 1)

	if got := position(rider); !approx(got.X, 8) || !approx(got.Y, 21) {
		t.Fatalf("rider after rise: got %+v, want (8,21)", got)
	}
	snapper := components.Snapper.Get(rider)
	if snapper.State() != components.SnapSnapped || snapper.LastKind != components.SnapRide {
		t.Fatalf("rider state: got %s/%s, want snapped ride", snapper.State(), snapper.LastKind)
	}
	if !components.Physics.Get(rider).OnGround {
		t.Error("riding should count as standing on ground")
	}

	// The platform heads back down but no longer takes contacts.
	components.Collider.Get(platform).SetEnabled(false)
	Step(e, 1)

	if got := position(rider); !approx(got.Y, 20.9) {
		t.Errorf("rider after release: got y=%v, want 20.9", got.Y)
	}
	if state := snapper.State(); state == components.SnapSnapped {
		t.Errorf("rider still snapped after release")
	}
}

func TestRiderIsCarriedDown(t *testing.T) {
	e := newTestECS(t)
	factory.CreateMovingPlatform(e, gamemath.RectXYWH(0, 0, 32, 16), gamemath.Vec{Y: 5}, 1)
	rider := factory.CreatePlayer(e, 8, 16)
	components.Physics.Get(rider).Gravity = 0.1

	Step(e, 1)
	if got := position(rider); !approx(got.Y, 21) {
		t.Fatalf("rider after rise: got y=%v, want 21", got.Y)
	}

	// Going back down the rider is carried by the platform's delta and
	// then snapped to its proposed top.
	Step(e, 1)
	if got := position(rider); !approx(got.X, 8) || !approx(got.Y, 16) {
		t.Errorf("rider after descent: got %+v, want (8,16)", got)
	}
	if components.Snapper.Get(rider).State() != components.SnapSnapped {
		t.Error("rider should still be snapped")
	}
}

func TestRisingRiderIsNotSnapped(t *testing.T) {
	e := newTestECS(t)
	factory.CreatePlatform(e, gamemath.RectXYWH(0, 0, 32, 16))
	rider := floatingPlayer(e, 8, 14)
	components.Physics.Get(rider).Velocity.Y = 30

	Step(e, 1.0/60)

	if state := components.Snapper.Get(rider).State(); state != components.SnapEligible {
		t.Errorf("jumping rider: got %s, want %s", state, components.SnapEligible)
	}
	if got := position(rider); !approx(got.Y, 14.5) {
		t.Errorf("rider y: got %v, want 14.5", got.Y)
	}
}

func TestPlatformSideContactDoesNotSnap(t *testing.T) {
	e := newTestECS(t)
	factory.CreatePlatform(e, gamemath.RectXYWH(20, 0, 32, 16))
	walker := floatingPlayer(e, 8, 2)

	Step(e, 1.0/60)

	snapper := components.Snapper.Get(walker)
	if snapper.State() != components.SnapEligible {
		t.Errorf("side contact: got %s, want %s", snapper.State(), components.SnapEligible)
	}
}

func TestClimbLadder(t *testing.T) {
	e := newTestECS(t)
	ladder := factory.CreateLadder(e, gamemath.RectXYWH(0, 0, 16, 96))
	climber := factory.CreatePlayer(e, 3, 10)
	SetIntent(e, components.Intent{Climb: 1})

	Step(e, 1.0/60)

	snapper := components.Snapper.Get(climber)
	if snapper.State() != components.SnapSnapped || snapper.LastKind != components.SnapClimb || snapper.LastSource != ladder.Entity() {
		t.Fatalf("climber state: got %s/%s", snapper.State(), snapper.LastKind)
	}
	if got := position(climber); !approx(got.X, 2) {
		t.Errorf("climber not centred: got x=%v, want 2", got.X)
	}
	first := position(climber).Y

	Step(e, 1.0/60)
	if got := position(climber).Y; got <= first {
		t.Errorf("climber did not rise: %v -> %v", first, got)
	}

	SetIntent(e, components.Intent{Jump: true})
	Step(e, 1.0/60)
	if snapper.State() == components.SnapSnapped {
		t.Error("jumping climber should leave the ladder")
	}
	if vy := components.Physics.Get(climber).Velocity.Y; vy <= 0 {
		t.Errorf("jump off ladder: got vy=%v", vy)
	}
}

func TestLadderIgnoredWithoutClimbIntent(t *testing.T) {
	e := newTestECS(t)
	factory.CreateLadder(e, gamemath.RectXYWH(0, 0, 16, 96))
	walker := floatingPlayer(e, 3, 10)

	Step(e, 1.0/60)

	if state := components.Snapper.Get(walker).State(); state != components.SnapEligible {
		t.Errorf("got %s, want %s", state, components.SnapEligible)
	}
}

func TestFastPlatformStillCarriesRider(t *testing.T) {
	e := newTestECS(t)
	// The platform rises further in one frame than the rider is wide.
	factory.CreateMovingPlatform(e, gamemath.RectXYWH(0, 0, 32, 16), gamemath.Vec{Y: 14}, 1)
	rider := factory.CreatePlayer(e, 8, 16)
	components.Physics.Get(rider).Gravity = 0.1

	Step(e, 1)

	if got := position(rider); !approx(got.Y, 30) {
		t.Errorf("rider y: got %v, want 30 on the platform top", got.Y)
	}
	if state := components.Snapper.Get(rider).State(); state != components.SnapSnapped {
		t.Errorf("rider state: got %s, want %s", state, components.SnapSnapped)
	}
}
