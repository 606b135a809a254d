package systems

import (
	"math"

	"github.com/automoto/snapengine/components"
	"github.com/automoto/snapengine/config"
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/automoto/snapengine/tags"
	"github.com/yohamta/donburi/ecs"
)

// lookAheadSpeed is the horizontal speed above which the camera leads the
// player.
const lookAheadSpeed = 10.0

// UpdateCamera eases the view towards the player, leading in the direction
// of travel and clamped so the level always fills the screen.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	level, ok := levelData(e.World)
	if !ok {
		return
	}

	if playerEntry.HasComponent(components.Physics) {
		vx := components.Physics.Get(playerEntry).Velocity.X
		if math.Abs(vx) > lookAheadSpeed {
			target := math.Copysign(config.Camera.LookAheadDistanceX, vx)
			camera.LookAheadX += (target - camera.LookAheadX) * config.Camera.LookAheadSmoothing
		}
	}

	target := components.Transform.Get(playerEntry).Position
	if playerEntry.HasComponent(components.Collider) {
		target = components.Collider.Get(playerEntry).Rect(target).Center()
	}
	target.X += camera.LookAheadX
	target = clampView(target, level.Bounds, float64(config.C.Width), float64(config.C.Height))

	camera.Position.X += (target.X - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampView keeps a view of w by h centred on p inside bounds. A level
// smaller than the view is centred instead.
func clampView(p gamemath.Vec, bounds gamemath.Rect, w, h float64) gamemath.Vec {
	clamp := func(v, lo, hi float64) float64 {
		if lo > hi {
			return (lo + hi) / 2
		}
		return math.Max(lo, math.Min(hi, v))
	}
	return gamemath.Vec{
		X: clamp(p.X, bounds.Min.X+w/2, bounds.Max.X-w/2),
		Y: clamp(p.Y, bounds.Min.Y+h/2, bounds.Max.Y-h/2),
	}
}

// WorldToScreen maps a world point, y-up, to screen pixels for a view of
// the given size centred on the camera.
func WorldToScreen(camera *components.CameraData, p gamemath.Vec, w, h float64) (float64, float64) {
	return p.X - camera.Position.X + w/2, camera.Position.Y - p.Y + h/2
}
