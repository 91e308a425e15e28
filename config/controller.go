package config

import "github.com/automoto/thirdperson/input"

// MovementKeys are the keyboard bindings for camera-relative movement
type MovementKeys struct {
	Forward input.Key `yaml:"forward"`
	Back    input.Key `yaml:"back"`
	Left    input.Key `yaml:"left"`
	Right   input.Key `yaml:"right"`
	Sprint  input.Key `yaml:"sprint"`
}

// ControllerConfig contains settings for turning input into a movement
// intent for the followed target.
type ControllerConfig struct {
	Enabled             bool                `yaml:"enabled"`
	Speed               float32             `yaml:"speed"` // Units per second
	SprintEnabled       bool                `yaml:"sprint_enabled"`
	SprintMultiplier    float32             `yaml:"sprint_multiplier"`
	Kinematic           bool                `yaml:"kinematic"` // Move the target directly instead of leaving it to physics
	Keys                MovementKeys        `yaml:"keys"`
	GamepadSprintButton input.GamepadButton `yaml:"gamepad_sprint_button"`
	GamepadDeadzone     float32             `yaml:"gamepad_deadzone"` // Radial dead zone for the left stick
}

// DefaultController returns the stock controller configuration.
func DefaultController() ControllerConfig {
	return ControllerConfig{
		Enabled:          true,
		Speed:            2.5,
		SprintEnabled:    true,
		SprintMultiplier: 2.0,
		Kinematic:        true,
		Keys: MovementKeys{
			Forward: input.KeyW,
			Back:    input.KeyS,
			Left:    input.KeyA,
			Right:   input.KeyD,
			Sprint:  input.KeyShiftLeft,
		},
		GamepadSprintButton: input.GamepadButtonLeftBumper,
		GamepadDeadzone:     0.5,
	}
}
