package scenes

import (
	"log"
	"sync"

	"github.com/automoto/snapengine/components"
	cfg "github.com/automoto/snapengine/config"
	"github.com/automoto/snapengine/core"
	"github.com/automoto/snapengine/shared/leveldata"
	"github.com/automoto/snapengine/systems"
	"github.com/automoto/snapengine/systems/factory"
	"github.com/automoto/snapengine/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PlatformerScene hosts one level in an ebiten window: it turns keys and
// touches into intent, steps the simulation and draws the colliders.
type PlatformerScene struct {
	scene      *core.Scene
	level      *leveldata.Level
	pauseUI    *ui.PauseUI
	watcher    *cfg.Watcher
	configPath string
	touchIDs   []ebiten.TouchID
	touching   bool
	once       sync.Once
}

func NewPlatformerScene(level *leveldata.Level, configPath string) *PlatformerScene {
	return &PlatformerScene{level: level, configPath: configPath}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.reloadConfig()

	world := ps.scene.ECS()
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		systems.TogglePause(world)
	}
	if systems.IsPaused(world) {
		ps.pauseUI.Update()
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ps.scene.Respawn()
	}
	ps.readTouches()
	if !ps.touching {
		ps.scene.SetIntent(keyboardIntent())
	}

	ps.scene.Update(1 / float64(cfg.C.TPS))

	if player, ok := ps.scene.Player(); ok && components.Health.Get(player).Dead {
		ps.scene.Respawn()
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	if ps.scene == nil {
		return
	}
	ps.scene.ECS().Draw(screen)
	if systems.IsPaused(ps.scene.ECS()) {
		ps.pauseUI.Draw(screen)
	}
}

// Close stops watching the tuning file.
func (ps *PlatformerScene) Close() {
	if ps.watcher != nil {
		_ = ps.watcher.Close()
	}
}

func (ps *PlatformerScene) configure() {
	ps.scene = core.NewScene(ps.level)
	world := ps.scene.ECS()

	if progress, err := systems.LoadGameProgress(); err != nil {
		log.Printf("[scene] could not load progress: %v", err)
	} else if ps.scene.RestoreProgress(progress) {
		ps.scene.Respawn()
	}

	factory.CreateCamera(world)
	world.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	world.AddRenderer(cfg.Default, systems.DrawLevel)
	world.AddRenderer(cfg.Default, systems.DrawColliders)
	world.AddRenderer(cfg.Default, systems.DrawHUD)
	world.AddRenderer(cfg.Default, systems.DrawPause)

	ps.pauseUI = ui.NewPauseUI(
		func() { systems.SetPaused(world, false) },
		func() {
			ps.scene.Respawn()
			systems.SetPaused(world, false)
		},
		func() {
			if err := systems.ClearGameProgress(); err != nil {
				ps.pauseUI.SetStatus("clear failed: " + err.Error())
				return
			}
			ps.pauseUI.SetStatus("progress cleared")
		},
	)

	if ps.configPath != "" {
		w, err := cfg.NewWatcher(ps.configPath)
		if err != nil {
			log.Printf("[config] not watching %s: %v", ps.configPath, err)
			return
		}
		ps.watcher = w
	}
}

func (ps *PlatformerScene) reloadConfig() {
	if ps.watcher == nil {
		return
	}
	select {
	case path := <-ps.watcher.Events:
		if err := cfg.LoadFile(path); err != nil {
			log.Printf("[config] reload %s: %v", path, err)
			return
		}
		log.Printf("[config] reloaded %s", path)
	case err := <-ps.watcher.Errors:
		log.Printf("[config] watch error: %v", err)
	default:
	}
}

// readTouches forwards this tick's touches in normalized y-up screen space.
func (ps *PlatformerScene) readTouches() {
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)
	forward := func(id ebiten.TouchID, phase components.TouchPhase, x, y int) {
		ps.scene.Touch(components.TouchEvent{
			ID:    int(id),
			Phase: phase,
			X:     float64(x) / w,
			Y:     1 - float64(y)/h,
		})
	}

	ps.touchIDs = inpututil.AppendJustReleasedTouchIDs(ps.touchIDs[:0])
	for _, id := range ps.touchIDs {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		forward(id, components.TouchEnded, x, y)
	}

	ps.touchIDs = ebiten.AppendTouchIDs(ps.touchIDs[:0])
	for _, id := range ps.touchIDs {
		x, y := ebiten.TouchPosition(id)
		phase := components.TouchMoved
		if inpututil.TouchPressDuration(id) == 1 {
			phase = components.TouchBegan
		}
		forward(id, phase, x, y)
	}
	ps.touching = len(ps.touchIDs) > 0
}

func keyboardIntent() components.Intent {
	var in components.Intent
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.MoveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.MoveX++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		in.Climb++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		in.Climb--
	}
	in.Jump = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	return in
}
