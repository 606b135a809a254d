package systems

import (
	"testing"

	"github.com/automoto/snapengine/components"
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/automoto/snapengine/systems/factory"
)

func TestExpiredDebrisStaysUntilOffMap(t *testing.T) {
	e := newTestECS(t)
	withLevel(e, 10, 10)
	debris := factory.CreateDebris(e, gamemath.RectXYWH(16, 100, 8, 8), 0.5)
	components.Physics.Get(debris).Gravity = 0

	for i := 0; i < 3; i++ {
		Step(e, 0.25)
	}
	if !e.World.Valid(debris.Entity()) {
		t.Fatal("debris removed while still inside the map")
	}
	if !components.TimeLimit.Get(debris).Expired {
		t.Fatal("debris lifetime should be over")
	}

	components.Transform.Get(debris).Position = gamemath.Vec{X: 16, Y: -100}
	Step(e, 0.25)
	if e.World.Valid(debris.Entity()) {
		t.Error("expired debris outside the map should be removed")
	}
}

func TestLiveDebrisOffMapIsKept(t *testing.T) {
	e := newTestECS(t)
	withLevel(e, 10, 10)
	debris := factory.CreateDebris(e, gamemath.RectXYWH(16, -100, 8, 8), 5)

	Step(e, 0.25)

	if !e.World.Valid(debris.Entity()) {
		t.Fatal("debris removed before its lifetime ended")
	}
	if !components.Collider.Get(debris).OutsideMapBounds {
		t.Error("debris should be flagged outside the map")
	}
}

func TestDebrisFalls(t *testing.T) {
	e := newTestECS(t)
	withLevel(e, 10, 10)
	debris := factory.CreateDebris(e, gamemath.RectXYWH(16, 100, 8, 8), 5)

	Step(e, 0.1)

	if got := position(debris); got.Y >= 100 {
		t.Errorf("debris did not fall: %+v", got)
	}
}
