package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/automoto/snapengine/assets"
	"github.com/automoto/snapengine/components"
	"github.com/automoto/snapengine/config"
	"github.com/automoto/snapengine/core"
	"github.com/automoto/snapengine/systems"
)

func main() {
	levelName := flag.String("level", "demo", "Level to load (name without .tmx)")
	levelsDir := flag.String("levels", "", "Load levels from this directory instead of the embedded ones")
	frames := flag.Uint64("frames", 600, "Frames to simulate (0 = until interrupted)")
	tickRate := flag.Int("tickrate", 0, "Frames per second (0 = config tps)")
	configPath := flag.String("config", "", "YAML tuning file")
	debugKinds := flag.String("debug", "", "Comma-separated component kinds to log verbosely")
	moveX := flag.Float64("move", 1, "Constant horizontal intent in [-1,1]")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	for _, kind := range strings.Split(*debugKinds, ",") {
		if kind = strings.TrimSpace(kind); kind != "" {
			config.Debug.Kinds[kind] = true
		}
	}
	if *tickRate <= 0 {
		*tickRate = config.C.TPS
	}

	loader := assets.NewLevelLoader()
	if *levelsDir != "" {
		loader = assets.NewDirLevelLoader(os.DirFS(*levelsDir))
	}
	level, err := loader.LoadLevel(*levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	scene := core.NewScene(level)
	if err := systems.InitPersistence(); err == nil {
		if progress, _ := systems.LoadGameProgress(); scene.RestoreProgress(progress) {
			scene.Respawn()
		}
	}
	run(scene, *tickRate, *frames, *moveX)
}

func run(scene *core.Scene, tickRate int, frames uint64, moveX float64) {
	loop := core.NewGameLoop(scene, tickRate, frames)
	loop.OnTick(func(s *core.Scene) {
		s.SetIntent(components.Intent{MoveX: moveX})
		report(s, uint64(tickRate))
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down simulation...")
		loop.Stop()
	}()

	log.Printf("Simulating level %q (tick rate: %d/s, frames: %d)", scene.Level().Name, tickRate, frames)
	loop.Run()
	report(scene, 1)
}

// report logs the player state every interval frames and respawns a dead
// player.
func report(s *core.Scene, interval uint64) {
	player, ok := s.Player()
	if !ok {
		return
	}
	hp := components.Health.Get(player)
	if interval > 0 && s.Frame()%interval == 0 {
		t := components.Transform.Get(player)
		physics := components.Physics.Get(player)
		snapper := components.Snapper.Get(player)
		log.Printf("[sim] frame %d: pos %.1f,%.1f vel %.1f,%.1f ground=%v snap=%s hp=%d/%d",
			s.Frame(), t.Position.X, t.Position.Y, physics.Velocity.X, physics.Velocity.Y,
			physics.OnGround, snapper.State(), hp.Remaining, hp.Max)
	}
	if hp.Dead {
		s.Respawn()
	}
}
