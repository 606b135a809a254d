package components

import "github.com/yohamta/donburi"

type TouchPhase int

const (
	TouchBegan TouchPhase = iota
	TouchMoved
	TouchEnded
)

// TouchEvent is a host touch in normalized screen space: x to the right and
// y up, both in [0,1].
type TouchEvent struct {
	ID    int
	Phase TouchPhase
	X, Y  float64
}

// TouchReceiver is implemented by components that accept forwarded touches.
type TouchReceiver interface {
	ReceiveTouch(ev TouchEvent)
}

// Intent is what the player wants to do this frame.
type Intent struct {
	MoveX float64 // -1..1
	Climb float64 // -1..1
	Jump  bool    // edge triggered
}

type InputData struct {
	Intent Intent

	next       Intent
	jumpQueued bool
	touches    map[int]TouchEvent
}

// SetIntent replaces the intent for the next frame. A jump stays queued until
// a frame consumes it.
func (i *InputData) SetIntent(in Intent) {
	i.next = in
	if in.Jump {
		i.jumpQueued = true
	}
}

// ReceiveTouch maps touches to intent: the left and right thirds of the
// screen walk, the middle third climbs, and a touch starting in the upper
// middle also jumps.
func (i *InputData) ReceiveTouch(ev TouchEvent) {
	if i.touches == nil {
		i.touches = map[int]TouchEvent{}
	}
	if ev.Phase == TouchEnded {
		delete(i.touches, ev.ID)
	} else {
		i.touches[ev.ID] = ev
	}
	if ev.Phase == TouchBegan && isMiddle(ev.X) && ev.Y > 0.5 {
		i.jumpQueued = true
	}

	i.next.MoveX, i.next.Climb = 0, 0
	for _, t := range i.touches {
		switch {
		case t.X < 1.0/3:
			i.next.MoveX = -1
		case t.X > 2.0/3:
			i.next.MoveX = 1
		case t.Y > 0.5:
			i.next.Climb = 1
		default:
			i.next.Climb = -1
		}
	}
}

// Advance makes the queued intent current.
func (i *InputData) Advance() {
	i.Intent = i.next
	i.Intent.Jump = i.jumpQueued
	i.jumpQueued = false
}

func isMiddle(x float64) bool {
	return x >= 1.0/3 && x <= 2.0/3
}

var Input = donburi.NewComponentType[InputData]().SetName("Input")
