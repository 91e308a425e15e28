package systems

import (
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

var localRight = mgl32.Vec3{1, 0, 0}

// UpdateOrbit rotates the camera by the frame's look delta. Yaw turns about
// the world up axis; pitch turns about the camera's own right axis and is
// dropped for the frame if it would tip the camera over a pole.
func UpdateOrbit(w donburi.World, intent CameraIntent) {
	r, ok := lookupRig(w)
	if !ok {
		return
	}

	look := intent.Look
	if look == (mgl32.Vec2{}) {
		return
	}
	r.cameraTf.Rotation = orbit(r.cameraTf.Rotation, look)
}

func orbit(rot mgl32.Quat, look mgl32.Vec2) mgl32.Quat {
	if look.X() != 0 {
		yaw := mgl32.QuatRotate(-look.X(), gamemath.WorldUp)
		rot = yaw.Mul(rot)
	}
	if look.Y() != 0 {
		pitch := mgl32.QuatRotate(-look.Y(), localRight)
		pitched := rot.Mul(pitch)
		if gamemath.Up(pitched).Y() > 0 {
			rot = pitched
		}
	}
	return rot.Normalize()
}
