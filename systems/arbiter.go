package systems

import (
	"math"

	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// CameraIntent is the combined look and zoom request for one frame.
// Look is in radians: X yaws, Y pitches. Positive Zoom moves closer.
type CameraIntent struct {
	Look mgl32.Vec2
	Zoom float32
}

// ReadCameraInput merges mouse and gamepad input into a CameraIntent. It
// never writes to the world.
func ReadCameraInput(w donburi.World, in *input.FrameInput) CameraIntent {
	var intent CameraIntent

	entry, ok := lookupCamera(w)
	if !ok {
		return intent
	}
	control := components.Camera.Get(entry)
	settings := control.Settings

	intent.Zoom = in.Mouse.Wheel

	pad, hasPad := activeGamepad(w, in)
	if hasPad {
		if pad.Buttons.Pressed(settings.Gamepad.ZoomInButton) {
			intent.Zoom += settings.Zoom.GamepadStep
		}
		if pad.Buttons.Pressed(settings.Gamepad.ZoomOutButton) {
			intent.Zoom -= settings.Zoom.GamepadStep
		}
	}

	if !in.Viewport.Valid() {
		return intent
	}
	width, height := in.Viewport.Width, in.Viewport.Height

	if mouseOrbitActive(control, in) {
		sens := settings.Orbit.MouseSensitivity
		intent.Look = intent.Look.Add(mgl32.Vec2{
			in.Mouse.Motion.X() / width * math.Pi * sens.X(),
			in.Mouse.Motion.Y() / height * math.Pi * sens.Y(),
		})
	}

	if hasPad && gamepadOrbitActive(control, pad) {
		stick := pad.Stick(input.GamepadAxisRightStickX, input.GamepadAxisRightStickY)
		if stick.Len() > settings.Gamepad.Deadzone {
			sens := settings.Gamepad.Sensitivity
			intent.Look = intent.Look.Add(mgl32.Vec2{
				stick.X() / width * 2 * math.Pi * sens.X(),
				-stick.Y() / height * math.Pi * sens.Y(),
			})
		}
	}

	return intent
}

// The mouse only orbits while the cursor is captured.
func mouseOrbitActive(control *components.CameraData, in *input.FrameInput) bool {
	if !control.CursorLockActive {
		return false
	}
	orbit := control.Settings.Orbit
	return !orbit.RequiresButton || in.Mouse.Buttons.Pressed(orbit.MouseButton)
}

func gamepadOrbitActive(control *components.CameraData, pad input.GamepadState) bool {
	orbit := control.Settings.Orbit
	return !orbit.RequiresButton || pad.Buttons.Pressed(orbit.GamepadButton)
}
