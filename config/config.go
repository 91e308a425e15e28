package config

import "image/color"

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// DemoConfig contains settings for the top-down debug scene
type DemoConfig struct {
	PixelsPerUnit float64 // Screen scale of the top-down view
	ArenaWidth    float64 // Arena size in world units
	ArenaDepth    float64
	TargetSize    float64 // Collision box size of the target in world units
	PatrolRadius  float64 // Radius of the patrolling marker's loop
	PatrolSeconds float32 // Time for one leg of the patrol
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHUD bool
}

// Global configuration instances
var C *Config
var Camera CameraConfig
var Controller ControllerConfig
var Demo DemoConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Background   = color.RGBA{R: 24, G: 26, B: 32, A: 255}
	GridLine     = color.RGBA{R: 40, G: 44, B: 54, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "Third Person Camera",
	}

	Camera = DefaultCamera()
	Controller = DefaultController()

	Demo = DemoConfig{
		PixelsPerUnit: 24,
		ArenaWidth:    36,
		ArenaDepth:    20,
		TargetSize:    0.8,
		PatrolRadius:  4,
		PatrolSeconds: 3,
	}

	Debug = DebugConfig{
		ShowHUD: true,
	}
}

// Apply replaces the global camera and controller configuration.
func Apply(f File) {
	Camera = f.Camera
	Controller = f.Controller
}
