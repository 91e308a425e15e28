package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// UpdateOffsetToggle slides the shoulder offset between its two end points.
// Each press of the toggle reverses the direction of travel; clamping holds
// the offset at whichever end point it reaches.
func UpdateOffsetToggle(w donburi.World, in *input.FrameInput) {
	r, ok := lookupRig(w)
	if !ok {
		return
	}
	control := r.control
	settings := control.Settings.Offset
	if !settings.Enabled || !settings.ToggleEnabled {
		return
	}

	if offsetTogglePressed(w, settings, in) {
		control.Offset.Transitioning = !control.Offset.Transitioning
	}

	off := &control.Offset
	speed := settings.ToggleSpeed
	if off.Transitioning {
		speed = -speed
	}
	lo, hi := offsetBounds(settings.Mode, off.Extreme.X())
	x := mgl32.Clamp(off.Current.X()+speed*in.DeltaSeconds, lo, hi)
	off.Current = mgl32.Vec2{x, off.Extreme.Y()}
}

func offsetTogglePressed(w donburi.World, settings config.OffsetConfig, in *input.FrameInput) bool {
	if in.Keyboard.Keys.JustPressed(settings.ToggleKey) {
		return true
	}
	pad, ok := activeGamepad(w, in)
	return ok && pad.Buttons.JustPressed(settings.ToggleGamepadButton)
}

// offsetBounds returns the end points of the horizontal offset for a mode.
func offsetBounds(mode config.OffsetMode, extreme float32) (lo, hi float32) {
	if extreme < 0 {
		extreme = -extreme
	}
	if mode == config.OffsetModeCenter {
		return 0, extreme
	}
	return -extreme, extreme
}

// OffsetSide reports which end point the offset is moving toward, for HUDs.
func OffsetSide(c *components.CameraData) string {
	switch {
	case !c.Settings.Offset.Enabled:
		return "off"
	case !c.Offset.Transitioning:
		return "right"
	case c.Settings.Offset.Mode == config.OffsetModeCenter:
		return "center"
	default:
		return "left"
	}
}
