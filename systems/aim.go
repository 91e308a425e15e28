package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/input"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateAim pulls the camera in while the aim control is held and restores
// the previous radius once it is released.
//
// ZoomState.SavedRadius carries the state: nil while idle, set from the
// first aiming frame until the radius is back at the saved value.
func UpdateAim(w donburi.World, in *input.FrameInput) {
	r, ok := lookupRig(w)
	if !ok {
		return
	}
	control := r.control
	aim := control.Settings.Aim
	z := &control.Zoom

	// A restore owed when aim was disabled still unwinds.
	if !aim.Enabled && z.SavedRadius == nil {
		return
	}

	if aim.Enabled && aimHeld(w, control, in) {
		if z.SavedRadius == nil {
			saved := z.Radius
			z.SavedRadius = &saved
		}
		step := aimRate(*z.SavedRadius, aim.Factor, aim.Speed) * in.DeltaSeconds
		z.Radius, _ = gamemath.Approach(z.Radius, z.Min*aim.Factor, step)

		faceCameraForward(r)
		return
	}

	if z.SavedRadius == nil {
		return
	}
	saved := *z.SavedRadius
	step := aimRate(saved, aim.Factor, aim.Speed) * in.DeltaSeconds
	var restored bool
	z.Radius, restored = gamemath.Approach(z.Radius, saved, step)
	if restored {
		z.SavedRadius = nil
	}
}

func aimRate(saved, factor, speed float32) float32 {
	return saved / factor * speed
}

func aimHeld(w donburi.World, control *components.CameraData, in *input.FrameInput) bool {
	aim := control.Settings.Aim
	if in.Mouse.Buttons.Pressed(aim.MouseButton) {
		return true
	}
	pad, ok := activeGamepad(w, in)
	return ok && pad.Buttons.Pressed(aim.GamepadButton)
}

// faceCameraForward turns the target to look where the camera looks.
func faceCameraForward(r rig) {
	FaceDirection(r.targetTf, gamemath.Forward(r.cameraTf.Rotation))
}
