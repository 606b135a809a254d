package systems

import (
	"testing"

	"github.com/automoto/snapengine/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestBehaviorsRunInPriorityOrder(t *testing.T) {
	components.Priorities.Init()

	want := []donburi.IComponentType{
		components.Input,
		components.Snappable,
		components.Mover,
		components.Retractor,
		components.Snapper,
		components.Health,
		components.TimeLimit,
		components.Physics,
		components.Hazard,
		components.Checkpoint,
	}
	got := Behaviors()
	if len(got) != len(want) {
		t.Fatalf("got %d behaviors, want %d", len(got), len(want))
	}
	for i, b := range got {
		if b.Kind != want[i] {
			t.Errorf("behavior %d: got %s, want %s", i, b.Kind.Name(), want[i].Name())
		}
	}
}

func TestSafeCallRecovers(t *testing.T) {
	ran := false
	safeCall(components.Hazard, "contact", func() {
		ran = true
		panic("boom")
	})
	if !ran {
		t.Error("hook did not run")
	}
}

func TestPauseSkipsWrappedSystems(t *testing.T) {
	e := newTestECS(t)
	calls := 0
	system := WithPauseCheck(func(*ecs.ECS) { calls++ })

	system(e)
	if !TogglePause(e) || !IsPaused(e) {
		t.Fatal("expected paused")
	}
	system(e)
	SetPaused(e, false)
	system(e)

	if calls != 2 {
		t.Errorf("calls: got %d, want 2", calls)
	}
}
