package components

import (
	"testing"

	"github.com/automoto/snapengine/shared/gamemath"
)

func TestSideOpposite(t *testing.T) {
	tests := []struct {
		in, want Side
	}{
		{SideTop, SideBottom},
		{SideLeft, SideRight},
		{SideTop | SideRight, SideBottom | SideLeft},
		{SideAny, SideAny},
		{0, 0},
	}
	for _, tt := range tests {
		if got := tt.in.Opposite(); got != tt.want {
			t.Errorf("%s.Opposite(): got %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestSideString(t *testing.T) {
	if got := (SideBottom | SideLeft).String(); got != "bottom|left" {
		t.Errorf("got %q", got)
	}
	if got := Side(0).String(); got != "none" {
		t.Errorf("got %q", got)
	}
}

func TestContactFlip(t *testing.T) {
	c := Contact{
		Self:        ContactBody{ColliderID: 1},
		Other:       ContactBody{ColliderID: 2},
		SelfSides:   SideBottom,
		OtherSides:  SideTop,
		OnSlope:     true,
		SlopeOffset: 3,
	}
	f := c.Flip()
	if f.Self.ColliderID != 2 || f.Other.ColliderID != 1 {
		t.Errorf("bodies not swapped: %+v", f)
	}
	if f.SelfSides != SideTop || f.OtherSides != SideBottom {
		t.Errorf("sides not swapped: %s %s", f.SelfSides, f.OtherSides)
	}
	if f.SlopeOffset != -3 {
		t.Errorf("slope offset: got %v, want -3", f.SlopeOffset)
	}
	if back := f.Flip(); back != c {
		t.Errorf("double flip: got %+v, want %+v", back, c)
	}
}

func TestColliderGeometry(t *testing.T) {
	c := &ColliderData{
		Size:   gamemath.Vec{X: 12, Y: 28},
		Offset: gamemath.Vec{X: -6, Y: 0},
		Insets: BodyInsets(2, 3),
	}
	r := c.Rect(gamemath.Vec{X: 100, Y: 50})
	if r.Min != (gamemath.Vec{X: 94, Y: 50}) || r.Max != (gamemath.Vec{X: 106, Y: 78}) {
		t.Fatalf("rect: got %+v", r)
	}
	if c.TopOffset() != 28 {
		t.Errorf("top offset: got %v", c.TopOffset())
	}

	if min, max := c.HitSegment(SideBottom, r); min != 96 || max != 104 {
		t.Errorf("bottom segment: got %v..%v", min, max)
	}
	if min, max := c.HitSegment(SideLeft, r); min != 53 || max != 75 {
		t.Errorf("left segment: got %v..%v", min, max)
	}

	c.SetSize(gamemath.Vec{X: -1, Y: 4})
	if c.Size != (gamemath.Vec{X: 0, Y: 4}) {
		t.Errorf("negative size not clamped: %+v", c.Size)
	}
}

func TestColliderInteracts(t *testing.T) {
	player := &ColliderData{Category: CategoryPlayer, Mask: CategoryGround | CategoryHazard}
	ground := &ColliderData{Category: CategoryGround}
	hazard := &ColliderData{Category: CategoryHazard, Mask: CategoryPlayer}
	ladder := &ColliderData{Category: CategoryLadder}

	if !player.Interacts(ground) || !ground.Interacts(player) {
		t.Error("player and ground should interact both ways")
	}
	if !hazard.Interacts(player) {
		t.Error("hazard should interact with player")
	}
	if player.Interacts(ladder) || ground.Interacts(hazard) {
		t.Error("unmasked pairs should not interact")
	}
}

func TestSnapOverrideResolve(t *testing.T) {
	c := &ColliderData{Size: gamemath.Vec{X: 12, Y: 28}, Offset: gamemath.Vec{Y: 2}}
	proposed := gamemath.Vec{X: 10, Y: 40}

	ride := SnapOverride{Kind: SnapRide, Surface: 32, Delta: gamemath.Vec{X: 3, Y: -1}}
	if got := ride.Resolve(proposed, c, false); got != (gamemath.Vec{X: 13, Y: 30}) {
		t.Errorf("ride: got %+v", got)
	}
	if got := ride.Resolve(proposed, c, true); got != (gamemath.Vec{X: 10, Y: 30}) {
		t.Errorf("carried ride: got %+v", got)
	}

	climb := SnapOverride{Kind: SnapClimb, CenterX: 50, Delta: gamemath.Vec{X: 3}}
	if got := climb.Resolve(proposed, c, false); got != (gamemath.Vec{X: 44, Y: 40}) {
		t.Errorf("climb: got %+v", got)
	}
}

func TestSnapperStates(t *testing.T) {
	var s SnapperData
	if s.State() != SnapNotContacting {
		t.Fatalf("initial: got %s", s.State())
	}
	s.Contacting = true
	if s.State() != SnapEligible {
		t.Fatalf("contacting: got %s", s.State())
	}
	s.Claim(SnapOverride{Kind: SnapClimb})
	if s.State() != SnapSnapped {
		t.Fatalf("claimed: got %s", s.State())
	}

	s.Snapped, s.LastKind = true, SnapClimb
	s.BeginFrame()
	if s.State() != SnapNotContacting || !s.WasSnapped || !s.Climbing() {
		t.Errorf("after begin frame: %+v", s)
	}
	s.BeginFrame()
	if s.WasSnapped || s.Climbing() {
		t.Errorf("snap should not outlive a frame without a claim: %+v", s)
	}
}

func TestTouchZones(t *testing.T) {
	tests := []struct {
		name string
		ev   TouchEvent
		want Intent
	}{
		{"left third walks left", TouchEvent{ID: 1, Phase: TouchMoved, X: 0.1, Y: 0.2}, Intent{MoveX: -1}},
		{"right third walks right", TouchEvent{ID: 1, Phase: TouchMoved, X: 0.9, Y: 0.9}, Intent{MoveX: 1}},
		{"upper middle climbs up", TouchEvent{ID: 1, Phase: TouchMoved, X: 0.5, Y: 0.8}, Intent{Climb: 1}},
		{"lower middle climbs down", TouchEvent{ID: 1, Phase: TouchMoved, X: 0.5, Y: 0.2}, Intent{Climb: -1}},
		{"upper middle tap jumps", TouchEvent{ID: 1, Phase: TouchBegan, X: 0.5, Y: 0.8}, Intent{Climb: 1, Jump: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in InputData
			in.ReceiveTouch(tt.ev)
			in.Advance()
			if in.Intent != tt.want {
				t.Errorf("got %+v, want %+v", in.Intent, tt.want)
			}
		})
	}
}

func TestTouchEndReleasesIntent(t *testing.T) {
	var in InputData
	in.ReceiveTouch(TouchEvent{ID: 1, Phase: TouchBegan, X: 0.1, Y: 0.5})
	in.ReceiveTouch(TouchEvent{ID: 2, Phase: TouchBegan, X: 0.5, Y: 0.2})
	in.ReceiveTouch(TouchEvent{ID: 1, Phase: TouchEnded, X: 0.1, Y: 0.5})
	in.Advance()

	if in.Intent != (Intent{Climb: -1}) {
		t.Errorf("got %+v, want climb down only", in.Intent)
	}
}

func TestJumpIsConsumedOnce(t *testing.T) {
	var in InputData
	in.SetIntent(Intent{MoveX: 1, Jump: true})
	in.SetIntent(Intent{MoveX: 1})

	in.Advance()
	if !in.Intent.Jump || in.Intent.MoveX != 1 {
		t.Fatalf("first frame: got %+v", in.Intent)
	}
	in.Advance()
	if in.Intent.Jump {
		t.Error("jump repeated on second frame")
	}
}
