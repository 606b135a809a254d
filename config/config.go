package config

import "github.com/yohamta/donburi/ecs"

// Default is the single ECS layer every entity lives on.
const Default ecs.LayerID = iota

// Config contains host window and frame-rate settings
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Scale  int `yaml:"scale"`
	TPS    int `yaml:"tps"` // frames simulated per second
}

// PhysicsConfig contains movement integration values. Units are pixels and
// seconds, y-up.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed"`
	MaxSpeed     float64 `yaml:"maxSpeed"`
	Acceleration float64 `yaml:"acceleration"`
	Friction     float64 `yaml:"friction"`
	JumpSpeed    float64 `yaml:"jumpSpeed"`
	ClimbSpeed   float64 `yaml:"climbSpeed"`
}

// CollisionConfig contains collision map and snapping values
type CollisionConfig struct {
	TileSize      int     `yaml:"tileSize"`
	CellSize      int     `yaml:"cellSize"`      // broad-phase grid cell
	SnapTolerance float64 `yaml:"snapTolerance"` // pixels a rider may sink below a platform top and still ride
	StepHeight    float64 `yaml:"stepHeight"`    // ledge a grounded walker climbs without being stopped
}

// PlayerConfig contains player body values
type PlayerConfig struct {
	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`
	FootInset       float64 `yaml:"footInset"` // bottom hit points pulled in from the corners
	SideInset       float64 `yaml:"sideInset"` // left/right hit points pulled in from the corners
	Health          int     `yaml:"health"`
	InvulnSeconds   float64 `yaml:"invulnSeconds"`
}

// PlatformConfig contains moving platform defaults
type PlatformConfig struct {
	DurationSeconds float64 `yaml:"durationSeconds"` // one leg of the ping-pong
}

// HazardConfig contains static hazard defaults
type HazardConfig struct {
	Damage             int     `yaml:"damage"`
	ContinuousInterval float64 `yaml:"continuousInterval"` // seconds between hits for continuous hazards
}

// SpikesConfig contains retracting spike defaults
type SpikesConfig struct {
	Damage       int     `yaml:"damage"`
	CycleSeconds float64 `yaml:"cycleSeconds"` // time to retract, and again to extend
}

// DebrisConfig contains time-limited falling hazard defaults
type DebrisConfig struct {
	Damage          int     `yaml:"damage"`
	LifetimeSeconds float64 `yaml:"lifetimeSeconds"`
	Gravity         float64 `yaml:"gravity"`
}

// CameraConfig contains demo camera follow values
type CameraConfig struct {
	FollowSmoothing    float64 `yaml:"followSmoothing"`    // fraction of the gap closed per frame
	LookAheadDistanceX float64 `yaml:"lookAheadDistanceX"` // pixels ahead of a moving player
	LookAheadSmoothing float64 `yaml:"lookAheadSmoothing"`
}

// DebugConfig contains debug toggles set by the host at startup
type DebugConfig struct {
	Kinds         map[string]bool `yaml:"kinds"` // component kind name -> verbose logging
	DrawColliders bool            `yaml:"drawColliders"`
}

// PersistenceConfig contains save-data settings
type PersistenceConfig struct {
	AppName string `yaml:"appName"`
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Collision CollisionConfig
var Player PlayerConfig
var Platform PlatformConfig
var Hazard HazardConfig
var Spikes SpikesConfig
var Debris DebrisConfig
var Camera CameraConfig
var Debug DebugConfig
var Persistence PersistenceConfig

func init() {
	Reset()
}

// Reset restores every configuration value to its default.
func Reset() {
	C = &Config{
		Width:  640,
		Height: 360,
		Scale:  2,
		TPS:    60,
	}

	Physics = PhysicsConfig{
		Gravity:      1200.0,
		MaxFallSpeed: 600.0,
		MaxSpeed:     180.0,
		Acceleration: 1200.0,
		Friction:     900.0,
		JumpSpeed:    420.0,
		ClimbSpeed:   90.0,
	}

	Collision = CollisionConfig{
		TileSize:      16,
		CellSize:      32,
		SnapTolerance: 4.0,
		StepHeight:    8.0,
	}

	Player = PlayerConfig{
		CollisionWidth:  12,
		CollisionHeight: 28,
		FootInset:       2,
		SideInset:       2,
		Health:          3,
		InvulnSeconds:   1.0,
	}

	Platform = PlatformConfig{
		DurationSeconds: 2.0,
	}

	Hazard = HazardConfig{
		Damage:             1,
		ContinuousInterval: 0.5,
	}

	Spikes = SpikesConfig{
		Damage:       1,
		CycleSeconds: 1.5,
	}

	Debris = DebrisConfig{
		Damage:          1,
		LifetimeSeconds: 3.0,
		Gravity:         600.0,
	}

	Camera = CameraConfig{
		FollowSmoothing:    0.15,
		LookAheadDistanceX: 40,
		LookAheadSmoothing: 0.05,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Kinds:         map[string]bool{},
		DrawColliders: true,
	}

	Persistence = PersistenceConfig{
		AppName: "snapengine",
	}
}

// DebugEnabled reports whether verbose logging is on for a component kind.
func DebugEnabled(kind string) bool {
	return Debug.Kinds[kind]
}
