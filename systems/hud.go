package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/snapengine/components"
	"github.com/automoto/snapengine/fonts"
	"github.com/automoto/snapengine/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
	hudLineGap   = 12
)

// DrawHUD renders the player's health bar with its snap state and the
// active checkpoint underneath.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)

	// Background (dark gray)
	vector.FillRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth), float32(hudBarHeight),
		color.RGBA{40, 40, 40, 255}, false)

	ratio := float32(0)
	if hp.Max > 0 && hp.Remaining > 0 {
		ratio = float32(hp.Remaining) / float32(hp.Max)
	}
	barColor := color.RGBA{40, 220, 40, 255}
	if hp.Invuln > 0 {
		barColor = color.RGBA{220, 220, 40, 255}
	}
	vector.FillRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth)*ratio, float32(hudBarHeight),
		barColor, false)

	face := fonts.Mono.Get()
	y := hudMargin + hudBarHeight + hudLineGap
	if playerEntry.HasComponent(components.Snapper) {
		snapper := components.Snapper.Get(playerEntry)
		line := snapper.State().String()
		if snapper.State() == components.SnapSnapped {
			line += " " + snapper.LastKind.String()
		}
		text.Draw(screen, line, face, hudMargin, y, color.White)
		y += hudLineGap
	}

	if level, ok := levelData(ecs.World); ok {
		line := "checkpoint: none"
		if level.ActiveCheckpoint != nil {
			line = fmt.Sprintf("checkpoint: %d", level.ActiveCheckpoint.ID)
		}
		text.Draw(screen, line, face, hudMargin, y, color.White)
	}
}
