package systems

import (
	"image/color"

	"github.com/automoto/snapengine/components"
	"github.com/automoto/snapengine/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var pauseOverlay = color.RGBA{0, 0, 0, 160}

// TogglePause flips the pause flag and reports the new state.
func TogglePause(ecs *ecs.ECS) bool {
	pause := GetOrCreatePause(ecs)
	pause.IsPaused = !pause.IsPaused
	return pause.IsPaused
}

func SetPaused(ecs *ecs.ECS, paused bool) {
	GetOrCreatePause(ecs).IsPaused = paused
}

func IsPaused(ecs *ecs.ECS) bool {
	entry, ok := components.Pause.First(ecs.World)
	return ok && components.Pause.Get(entry).IsPaused
}

// DrawPause dims the world while paused. The menu itself is drawn by the
// host's UI layer.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !IsPaused(ecs) {
		return
	}
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, pauseOverlay, false)

	hint := "Esc: Resume"
	text.Draw(screen, hint, fonts.Regular.Get(), 8, int(height)-8, color.White)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system func(*ecs.ECS)) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
