package config

import (
	"github.com/automoto/thirdperson/input"
	"github.com/go-gl/mathgl/mgl32"
)

// OffsetMode selects the two end points the shoulder offset slides between.
type OffsetMode string

const (
	// OffsetModeMirror swaps between the right and left shoulder.
	OffsetModeMirror OffsetMode = "mirror"
	// OffsetModeCenter swaps between the right shoulder and directly behind.
	OffsetModeCenter OffsetMode = "center"
)

// ZoomConfig contains distance control settings
type ZoomConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Min         float32 `yaml:"min"`          // Closest allowed orbit radius
	Max         float32 `yaml:"max"`          // Farthest allowed orbit radius
	Sensitivity float32 `yaml:"sensitivity"`  // Scales wheel/d-pad zoom
	GamepadStep float32 `yaml:"gamepad_step"` // Zoom amount per frame while a d-pad zoom button is held
}

// AimConfig contains the temporary aim zoom settings
type AimConfig struct {
	Enabled       bool                `yaml:"enabled"`
	Speed         float32             `yaml:"speed"`  // How fast the radius moves toward the aim distance
	Factor        float32             `yaml:"factor"` // Aim distance as a fraction of the minimum radius
	MouseButton   input.MouseButton   `yaml:"mouse_button"`
	GamepadButton input.GamepadButton `yaml:"gamepad_button"`
}

// OffsetConfig contains the over-the-shoulder offset settings
type OffsetConfig struct {
	Enabled             bool                `yaml:"enabled"`
	X                   float32             `yaml:"x"` // Horizontal offset in camera space
	Y                   float32             `yaml:"y"` // Vertical offset in camera space
	ToggleEnabled       bool                `yaml:"toggle_enabled"`
	ToggleSpeed         float32             `yaml:"toggle_speed"` // Units per second while sliding
	ToggleKey           input.Key           `yaml:"toggle_key"`
	ToggleGamepadButton input.GamepadButton `yaml:"toggle_gamepad_button"`
	Mode                OffsetMode          `yaml:"mode"`
}

// OrbitConfig contains mouse orbit settings
type OrbitConfig struct {
	MouseSensitivity mgl32.Vec2          `yaml:"mouse_sensitivity,flow"`
	RequiresButton   bool                `yaml:"requires_button"` // Only orbit while the orbit button is held
	MouseButton      input.MouseButton   `yaml:"mouse_button"`
	GamepadButton    input.GamepadButton `yaml:"gamepad_button"`
}

// CursorLockConfig contains cursor capture settings
type CursorLockConfig struct {
	ToggleEnabled bool      `yaml:"toggle_enabled"`
	StartActive   bool      `yaml:"start_active"`
	Key           input.Key `yaml:"key"`
}

// GamepadConfig contains right stick and d-pad settings
type GamepadConfig struct {
	Sensitivity   mgl32.Vec2          `yaml:"sensitivity,flow"`
	Deadzone      float32             `yaml:"deadzone"` // Radial dead zone for the right stick (0.0 to 1.0)
	ZoomInButton  input.GamepadButton `yaml:"zoom_in_button"`
	ZoomOutButton input.GamepadButton `yaml:"zoom_out_button"`
}

// CameraConfig contains every tunable of the follow camera
type CameraConfig struct {
	Zoom       ZoomConfig       `yaml:"zoom"`
	Aim        AimConfig        `yaml:"aim"`
	Offset     OffsetConfig     `yaml:"offset"`
	Orbit      OrbitConfig      `yaml:"orbit"`
	CursorLock CursorLockConfig `yaml:"cursor_lock"`
	Gamepad    GamepadConfig    `yaml:"gamepad"`
}

// DefaultCamera returns the stock camera configuration.
func DefaultCamera() CameraConfig {
	return CameraConfig{
		Zoom: ZoomConfig{
			Enabled:     true,
			Min:         1.5,
			Max:         3.0,
			Sensitivity: 1.0,
			GamepadStep: 0.1,
		},
		Aim: AimConfig{
			Enabled:       false,
			Speed:         3.0,
			Factor:        0.7,
			MouseButton:   input.MouseButtonRight,
			GamepadButton: input.GamepadButtonLeftTrigger,
		},
		Offset: OffsetConfig{
			Enabled:             false,
			X:                   0.5,
			Y:                   0.4,
			ToggleEnabled:       false,
			ToggleSpeed:         5.0,
			ToggleKey:           input.KeyE,
			ToggleGamepadButton: input.GamepadButtonDPadRight,
			Mode:                OffsetModeMirror,
		},
		Orbit: OrbitConfig{
			MouseSensitivity: mgl32.Vec2{1.0, 1.0},
			RequiresButton:   false,
			MouseButton:      input.MouseButtonMiddle,
			GamepadButton:    input.GamepadButtonLeftBumper,
		},
		CursorLock: CursorLockConfig{
			ToggleEnabled: true,
			StartActive:   true,
			Key:           input.KeySpace,
		},
		Gamepad: GamepadConfig{
			Sensitivity:   mgl32.Vec2{7.0, 4.0},
			Deadzone:      0.5,
			ZoomInButton:  input.GamepadButtonDPadUp,
			ZoomOutButton: input.GamepadButtonDPadDown,
		},
	}
}

// InitialRadius is the midpoint of the zoom bounds.
func (c CameraConfig) InitialRadius() float32 {
	return (c.Zoom.Min + c.Zoom.Max) / 2
}
