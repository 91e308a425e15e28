package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate reports every out-of-range field at once.
func (c CameraConfig) Validate() error {
	var errs []error

	if c.Zoom.Min <= 0 {
		errs = append(errs, invalid("zoom.min must be positive, got %v", c.Zoom.Min))
	}
	if c.Zoom.Min > c.Zoom.Max {
		errs = append(errs, invalid("zoom.min %v is greater than zoom.max %v", c.Zoom.Min, c.Zoom.Max))
	}
	if c.Zoom.Sensitivity <= 0 {
		errs = append(errs, invalid("zoom.sensitivity must be positive, got %v", c.Zoom.Sensitivity))
	}
	if c.Zoom.GamepadStep < 0 {
		errs = append(errs, invalid("zoom.gamepad_step must not be negative, got %v", c.Zoom.GamepadStep))
	}

	if c.Aim.Speed <= 0 {
		errs = append(errs, invalid("aim.speed must be positive, got %v", c.Aim.Speed))
	}
	if c.Aim.Factor <= 0 {
		errs = append(errs, invalid("aim.factor must be positive, got %v", c.Aim.Factor))
	}

	if c.Offset.ToggleSpeed <= 0 {
		errs = append(errs, invalid("offset.toggle_speed must be positive, got %v", c.Offset.ToggleSpeed))
	}
	switch c.Offset.Mode {
	case OffsetModeMirror, OffsetModeCenter:
	default:
		errs = append(errs, invalid("offset.mode must be %q or %q, got %q", OffsetModeMirror, OffsetModeCenter, c.Offset.Mode))
	}

	if c.Orbit.MouseSensitivity.X() <= 0 || c.Orbit.MouseSensitivity.Y() <= 0 {
		errs = append(errs, invalid("orbit.mouse_sensitivity must be positive, got %v", c.Orbit.MouseSensitivity))
	}
	if c.Gamepad.Sensitivity.X() <= 0 || c.Gamepad.Sensitivity.Y() <= 0 {
		errs = append(errs, invalid("gamepad.sensitivity must be positive, got %v", c.Gamepad.Sensitivity))
	}
	if c.Gamepad.Deadzone < 0 || c.Gamepad.Deadzone >= 1 {
		errs = append(errs, invalid("gamepad.deadzone must be in [0, 1), got %v", c.Gamepad.Deadzone))
	}

	return errors.Join(errs...)
}

// Validate reports every out-of-range field at once.
func (c ControllerConfig) Validate() error {
	var errs []error

	if c.Speed <= 0 {
		errs = append(errs, invalid("controller.speed must be positive, got %v", c.Speed))
	}
	if c.SprintMultiplier <= 0 {
		errs = append(errs, invalid("controller.sprint_multiplier must be positive, got %v", c.SprintMultiplier))
	}
	if c.GamepadDeadzone < 0 || c.GamepadDeadzone >= 1 {
		errs = append(errs, invalid("controller.gamepad_deadzone must be in [0, 1), got %v", c.GamepadDeadzone))
	}

	return errors.Join(errs...)
}
