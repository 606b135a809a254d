package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyPath = errors.New("config: empty path")
	ErrInvalid   = errors.New("config: invalid value")
)

// File is the on-disk tuning overlay. Keys that are absent keep their
// current values.
type File struct {
	Window      Config            `yaml:"window"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Collision   CollisionConfig   `yaml:"collision"`
	Player      PlayerConfig      `yaml:"player"`
	Platform    PlatformConfig    `yaml:"platform"`
	Hazard      HazardConfig      `yaml:"hazard"`
	Spikes      SpikesConfig      `yaml:"spikes"`
	Debris      DebrisConfig      `yaml:"debris"`
	Camera      CameraConfig      `yaml:"camera"`
	Debug       DebugConfig       `yaml:"debug"`
	Persistence PersistenceConfig `yaml:"persistence"`
}

// LoadFile applies a YAML tuning overlay from disk.
func LoadFile(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := Load(f); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load applies a YAML tuning overlay. Nothing is applied when the overlay
// fails to parse or validate.
func Load(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	kinds := make(map[string]bool, len(Debug.Kinds))
	for k, v := range Debug.Kinds {
		kinds[k] = v
	}

	file := File{
		Window:      *C,
		Physics:     Physics,
		Collision:   Collision,
		Player:      Player,
		Platform:    Platform,
		Hazard:      Hazard,
		Spikes:      Spikes,
		Debris:      Debris,
		Camera:      Camera,
		Debug:       DebugConfig{Kinds: kinds, DrawColliders: Debug.DrawColliders},
		Persistence: Persistence,
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if err := file.validate(); err != nil {
		return err
	}

	window := file.Window
	C = &window
	Physics = file.Physics
	Collision = file.Collision
	Player = file.Player
	Platform = file.Platform
	Hazard = file.Hazard
	Spikes = file.Spikes
	Debris = file.Debris
	Camera = file.Camera
	Debug = file.Debug
	Persistence = file.Persistence
	return nil
}

func (f *File) validate() error {
	switch {
	case f.Window.TPS <= 0:
		return fmt.Errorf("window.tps %d: %w", f.Window.TPS, ErrInvalid)
	case f.Collision.TileSize <= 0:
		return fmt.Errorf("collision.tileSize %d: %w", f.Collision.TileSize, ErrInvalid)
	case f.Collision.CellSize <= 0:
		return fmt.Errorf("collision.cellSize %d: %w", f.Collision.CellSize, ErrInvalid)
	case f.Player.CollisionWidth <= 0 || f.Player.CollisionHeight <= 0:
		return fmt.Errorf("player collision size: %w", ErrInvalid)
	case f.Collision.StepHeight < 0 || f.Collision.StepHeight > float64(f.Collision.TileSize):
		return fmt.Errorf("collision.stepHeight %g: %w", f.Collision.StepHeight, ErrInvalid)
	case f.Camera.FollowSmoothing <= 0 || f.Camera.FollowSmoothing > 1:
		return fmt.Errorf("camera.followSmoothing %g: %w", f.Camera.FollowSmoothing, ErrInvalid)
	}
	if f.Debug.Kinds == nil {
		f.Debug.Kinds = map[string]bool{}
	}
	return nil
}
