package systems

import (
	"testing"

	"github.com/automoto/snapengine/components"
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/automoto/snapengine/systems/factory"
)

func TestMovingPlatformPingPongs(t *testing.T) {
	e := newTestECS(t)
	platform := factory.CreateMovingPlatform(e, gamemath.RectXYWH(10, 20, 32, 8), gamemath.Vec{X: 40}, 1)

	steps := []struct {
		dt   float64
		want float64
	}{
		{0.5, 30},
		{0.5, 50},
		{0.5, 30},
		{0.5, 10},
		{0.5, 30},
	}
	for i, s := range steps {
		Step(e, s.dt)
		if got := position(platform); !approx(got.X, s.want) || got.Y != 20 {
			t.Errorf("step %d: got %+v, want x=%v", i, got, s.want)
		}
	}
}

func TestSpikesRetractAndDisable(t *testing.T) {
	e := newTestECS(t)
	spikes := factory.CreateSpikes(e, gamemath.RectXYWH(0, 0, 16, 8), 1, 1)
	c := components.Collider.Get(spikes)

	Step(e, 1)
	if !c.Enabled || c.Offset.Y != 0 {
		t.Fatalf("after hold: enabled=%v offset=%v", c.Enabled, c.Offset)
	}

	Step(e, 0.25)
	if c.Enabled {
		t.Error("fully retracted spikes should not take contacts")
	}
	if !approx(c.Offset.Y, -8) {
		t.Errorf("retracted offset: got %v, want -8", c.Offset.Y)
	}

	Step(e, 1)
	Step(e, 0.25)
	if !c.Enabled || !approx(c.Offset.Y, 0) {
		t.Errorf("after extending: enabled=%v offset=%v", c.Enabled, c.Offset)
	}
}

func TestRetractedSpikesDoNotHurt(t *testing.T) {
	e := newTestECS(t)
	spikes := factory.CreateSpikes(e, gamemath.RectXYWH(0, 0, 16, 8), 1, 1)
	player := floatingPlayer(e, 40, 0)
	hp := components.Health.Get(player)

	Step(e, 1)
	Step(e, 0.25)
	if components.Collider.Get(spikes).Enabled {
		t.Fatal("setup: spikes should be retracted")
	}

	components.Transform.Get(player).Position = gamemath.Vec{X: 2, Y: 0}
	Step(e, 0.25)
	if hp.Hits != 0 {
		t.Errorf("retracted spikes hit the player: %+v", hp)
	}
}
