package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/input"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// UpdateMovement turns movement input into a camera-relative intent on the
// target's Movement component. Kinematic controllers also move and turn the
// target; otherwise the intent is left for a physics step to consume.
func UpdateMovement(w donburi.World, in *input.FrameInput) {
	r, ok := lookupRig(w)
	if !ok {
		return
	}
	if !r.target.HasComponent(components.Controller) || !r.target.HasComponent(components.Movement) {
		return
	}
	ctrl := components.Controller.Get(r.target)
	move := components.Movement.Get(r.target)
	*move = components.MovementData{}
	if !ctrl.Enabled {
		return
	}

	rot := r.cameraTf.Rotation
	forward, right := gamemath.Forward(rot), gamemath.Right(rot)

	var dir mgl32.Vec3
	var sprint bool
	if pad, ok := activeGamepad(w, in); ok {
		stick := pad.Stick(input.GamepadAxisLeftStickX, input.GamepadAxisLeftStickY)
		if stick.Len() > ctrl.GamepadDeadzone {
			dir = forward.Mul(stick.Y()).Add(right.Mul(stick.X()))
		}
		sprint = pad.Buttons.Pressed(ctrl.GamepadSprintButton)
	} else if _, connected := ConnectedGamepad(w); !connected {
		keys := in.Keyboard.Keys
		if keys.Pressed(ctrl.Keys.Forward) {
			dir = dir.Add(forward)
		}
		if keys.Pressed(ctrl.Keys.Back) {
			dir = dir.Sub(forward)
		}
		if keys.Pressed(ctrl.Keys.Left) {
			dir = dir.Sub(right)
		}
		if keys.Pressed(ctrl.Keys.Right) {
			dir = dir.Add(right)
		}
		sprint = keys.Pressed(ctrl.Keys.Sprint)
	}

	move.Direction = gamemath.Flatten(dir)
	move.Speed = ctrl.Speed
	if ctrl.SprintEnabled && sprint {
		move.Speed *= ctrl.SprintMultiplier
		move.Sprinting = true
	}

	move.FaceMovement = r.control.Zoom.SavedRadius == nil

	if !ctrl.Kinematic || move.Direction == (mgl32.Vec3{}) {
		return
	}
	r.targetTf.Position = r.targetTf.Position.Add(move.Velocity().Mul(in.DeltaSeconds))
	if move.FaceMovement {
		FaceDirection(r.targetTf, move.Direction)
	}
}

// FaceDirection turns a transform to look along dir. A zero or vertical
// direction leaves the rotation unchanged.
func FaceDirection(tf *components.TransformData, dir mgl32.Vec3) {
	if rot, ok := gamemath.LookRotation(dir, gamemath.WorldUp); ok {
		tf.Rotation = rot
	}
}
