package systems

import (
	"math"
	"testing"

	"github.com/automoto/snapengine/components"
	cfg "github.com/automoto/snapengine/config"
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/automoto/snapengine/shared/leveldata"
	"github.com/automoto/snapengine/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	components.Priorities.Init()

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 640, 32, 32)
	factory.CreateFrameState(e)
	return e
}

// withLevel adds a level singleton of w by h tiles of 16px.
func withLevel(e *ecs.ECS, w, h int) *components.LevelData {
	entry := factory.CreateLevel(e, &leveldata.Level{
		Name:     "test",
		Size:     gamemath.TiledSize{W: w, H: h},
		TileSize: gamemath.Vec{X: 16, Y: 16},
	})
	return components.Level.Get(entry)
}

// floatingPlayer creates a player that ignores gravity.
func floatingPlayer(e *ecs.ECS, x, y float64) *donburi.Entry {
	p := factory.CreatePlayer(e, x, y)
	components.Physics.Get(p).Gravity = 0
	return p
}

func position(e *donburi.Entry) gamemath.Vec {
	return components.Transform.Get(e).Position
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func phasesOf(e *ecs.ECS) []components.ContactPhase {
	entry, _ := components.Contacts.First(e.World)
	var out []components.ContactPhase
	for _, ev := range components.Contacts.Get(entry).Events {
		out = append(out, ev.Phase)
	}
	return out
}
