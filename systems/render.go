package systems

import (
	"image/color"

	"github.com/automoto/snapengine/components"
	cfg "github.com/automoto/snapengine/config"
	"github.com/automoto/snapengine/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	backgroundColor = color.RGBA{24, 26, 36, 255}
	snappedColor    = color.RGBA{80, 220, 240, 255}
	disabledColor   = color.RGBA{90, 90, 90, 255}

	categoryColors = map[components.Category]color.RGBA{
		components.CategoryGround:     {120, 110, 100, 255},
		components.CategoryPlayer:     {240, 240, 240, 255},
		components.CategoryPlatform:   {200, 160, 60, 255},
		components.CategoryLadder:     {150, 100, 50, 255},
		components.CategoryHazard:     {220, 50, 50, 255},
		components.CategoryCheckpoint: {60, 200, 90, 255},
	}
)

// cullPadding keeps colliders near the view edge from popping in and out.
const cullPadding = 32.0

type view struct {
	camera *components.CameraData
	w, h   float64
}

func viewOf(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false
	}
	return view{
		camera: components.Camera.Get(cameraEntry),
		w:      float64(screen.Bounds().Dx()),
		h:      float64(screen.Bounds().Dy()),
	}, true
}

func (v view) visible(r gamemath.Rect) bool {
	c := v.camera.Position
	return r.Max.X >= c.X-v.w/2-cullPadding && r.Min.X <= c.X+v.w/2+cullPadding &&
		r.Max.Y >= c.Y-v.h/2-cullPadding && r.Min.Y <= c.Y+v.h/2+cullPadding
}

// screenRect converts a world rect to a screen-space top-left corner and
// size.
func (v view) screenRect(r gamemath.Rect) (x, y, w, h float32) {
	sx, sy := WorldToScreen(v.camera, gamemath.Vec{X: r.Min.X, Y: r.Max.Y}, v.w, v.h)
	return float32(sx), float32(sy), float32(r.W()), float32(r.H())
}

// DrawLevel clears the screen and fills the collision map bounds.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(color.Black)
	v, ok := viewOf(ecs, screen)
	if !ok {
		return
	}
	level, ok := levelData(ecs.World)
	if !ok {
		return
	}
	x, y, w, h := v.screenRect(level.Bounds)
	vector.FillRect(screen, x, y, w, h, backgroundColor, false)
}

// DrawColliders draws every collider in its category colour. Sloped tiles
// are drawn column by column from their bitmap.
func DrawColliders(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawColliders {
		return
	}
	v, ok := viewOf(ecs, screen)
	if !ok {
		return
	}

	components.Collider.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Collider.Get(e)
		rect := c.Rect(components.Transform.Get(e).Position)
		if !v.visible(rect) {
			return
		}

		clr, ok := categoryColors[c.Category]
		if !ok {
			clr = color.RGBA{255, 0, 255, 255}
		}
		if !c.Enabled {
			x, y, w, h := v.screenRect(rect)
			vector.StrokeRect(screen, x, y, w, h, 1, disabledColor, false)
			return
		}
		if e.HasComponent(components.Snapper) && components.Snapper.Get(e).State() == components.SnapSnapped {
			clr = snappedColor
		}

		if e.HasComponent(components.Tile) {
			if tile := components.Tile.Get(e); tile.Sloped {
				if drawSlope(screen, v, rect, tile.Slope, clr) {
					return
				}
			}
		}
		x, y, w, h := v.screenRect(rect)
		vector.FillRect(screen, x, y, w, h, clr, false)
	})
}

func drawSlope(screen *ebiten.Image, v view, tile gamemath.Rect, slope gamemath.Slope, clr color.RGBA) bool {
	bitmap, ok := gamemath.BitmapFor(slope)
	if !ok {
		return false
	}
	cellW := tile.W() / gamemath.SlopeResolution
	cellH := tile.H() / gamemath.SlopeResolution
	for col := 0; col < gamemath.SlopeResolution; col++ {
		top, filled := bitmap.ColumnTop(col)
		if !filled {
			continue
		}
		column := gamemath.RectXYWH(tile.Min.X+float64(col)*cellW, tile.Min.Y, cellW, float64(top+1)*cellH)
		x, y, w, h := v.screenRect(column)
		vector.FillRect(screen, x, y, w, h, clr, false)
	}
	return true
}
