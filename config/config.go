package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer all entities and renderers live on.
const Default = ecs.LayerDefault

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Placement
	StartX float64 // fixed horizontal position in the corridor
	Width  float64
	Height float64

	// Physics
	Gravity     float64 // per-tick vertical acceleration magnitude
	FlipImpulse float64 // vertical speed set on a gravity flip, toward the new floor
	MaxSpeed    float64 // vertical speed clamp magnitude

	// Flip window
	FlipWindow time.Duration // further flips suppressed while active
}

// ObstacleConfig contains obstacle spawner and sweep configuration
type ObstacleConfig struct {
	Width  float64
	Height float64

	SpawnInterval time.Duration // minimum wall-clock time between spawns

	// Speed ramp: GameSpeed = BaseSpeed + Score*SpeedPerPoint, capped at MaxSpeed
	BaseSpeed     float64
	SpeedPerPoint float64
	MaxSpeed      float64

	PointsPerClear int // score awarded when an obstacle exits the left edge
}

// ParticleConfig contains flip/crash particle burst configuration
type ParticleConfig struct {
	BurstCount int     // particles per gravity flip
	CrashCount int     // particles on round-ending collision
	MaxSpeed   float64 // initial velocity components drawn from [-MaxSpeed, MaxSpeed]
	Damping    float64 // multiplicative velocity decay per tick
	LifeDecay  float64 // life decrement per tick, life starts at 1.0
	Size       float64 // rendered square size in pixels
}

// CorridorConfig describes the playfield geometry
type CorridorConfig struct {
	BarHeight float64 // thickness of the floor and ceiling bars

	BackgroundColor color.RGBA
	BarColor        color.RGBA
	PlayerColor     color.RGBA
	ObstacleColor   color.RGBA
	ParticleColor   color.RGBA
}

// SquashStretchConfig contains the flip squash/stretch effect configuration
type SquashStretchConfig struct {
	FlipScaleX float64 // horizontal scale at flip start (< 1 = narrower)
	FlipScaleY float64 // vertical scale at flip start (> 1 = taller)
	Duration   float64 // seconds to tween back to normal scale
}

// RoundConfig contains round flow configuration
type RoundConfig struct {
	OverDelayFrames int // frames to linger on the frozen field before the game over screen
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	ScoreY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// MessageConfig contains toast popup configuration
type MessageConfig struct {
	DisplayDuration int // frames to display a toast
	BoxPadding      float64
	BoxColor        color.RGBA
	TextColor       color.RGBA
	TopMargin       float64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Obstacle ObstacleConfig
var Particle ParticleConfig
var Corridor CorridorConfig
var SquashStretch SquashStretchConfig
var Round RoundConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Message MessageConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Player = PlayerConfig{
		StartX: 120,
		Width:  26,
		Height: 26,

		Gravity:     0.6,
		FlipImpulse: 9.0,
		MaxSpeed:    12.0,

		FlipWindow: 300 * time.Millisecond,
	}

	Obstacle = ObstacleConfig{
		Width:  36,
		Height: 90,

		SpawnInterval: 2000 * time.Millisecond,

		BaseSpeed:     3.0,
		SpeedPerPoint: 0.01,
		MaxSpeed:      8.0,

		PointsPerClear: 10,
	}

	Particle = ParticleConfig{
		BurstCount: 8,
		CrashCount: 8,
		MaxSpeed:   3.0,
		Damping:    0.98,
		LifeDecay:  0.02,
		Size:       4,
	}

	Corridor = CorridorConfig{
		BarHeight: 24,

		BackgroundColor: color.RGBA{R: 15, G: 20, B: 40, A: 255},
		BarColor:        color.RGBA{R: 70, G: 85, B: 130, A: 255},
		PlayerColor:     color.RGBA{R: 255, G: 200, B: 60, A: 255},
		ObstacleColor:   color.RGBA{R: 220, G: 70, B: 90, A: 255},
		ParticleColor:   color.RGBA{R: 255, G: 230, B: 150, A: 255},
	}

	SquashStretch = SquashStretchConfig{
		FlipScaleX: 0.7,
		FlipScaleY: 1.35,
		Duration:   0.3,
	}

	Round = RoundConfig{
		OverDelayFrames: 45,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        BrightOrange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            80,
		MenuStartY:        150,
		MenuItemHeight:    30,
		MenuItemGap:       12,
	}

	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 40, G: 10, B: 10, A: 255},
		TitleColor:        LightRed,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            90,
		ScoreY:            140,
		MenuStartY:        210,
		MenuItemHeight:    30,
		MenuItemGap:       15,
	}

	Message = MessageConfig{
		DisplayDuration: 120, // 2 seconds at 60fps
		BoxPadding:      8.0,
		BoxColor:        color.RGBA{R: 0, G: 0, B: 0, A: 200},
		TextColor:       White,
		TopMargin:       40.0,
	}
}
