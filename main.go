package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/automoto/snapengine/assets"
	"github.com/automoto/snapengine/config"
	"github.com/automoto/snapengine/fonts"
	"github.com/automoto/snapengine/scenes"
	"github.com/automoto/snapengine/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(scene Scene) *Game {
	return &Game{scene: scene}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	levelName := flag.String("level", "demo", "Level to load (name without .tmx)")
	levelsDir := flag.String("levels", "", "Load levels from this directory instead of the embedded ones")
	configPath := flag.String("config", "", "YAML tuning file, reloaded on save")
	debugKinds := flag.String("debug", "", "Comma-separated component kinds to log verbosely")
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

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	loader := assets.NewLevelLoader()
	if *levelsDir != "" {
		loader = assets.NewDirLevelLoader(os.DirFS(*levelsDir))
	}
	level, err := loader.LoadLevel(*levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	// Initialize persistence; progress is restored when the scene starts
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*config.C.Scale, config.C.Height*config.C.Scale)
	ebiten.SetWindowTitle("snapengine - " + level.Name)
	ebiten.SetTPS(config.C.TPS)

	scene := scenes.NewPlatformerScene(level, *configPath)
	defer scene.Close()

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal(err)
	}
}
