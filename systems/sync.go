package systems

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// SyncCamera places the camera on its orbit around the target. It must run
// after every other stage and after anything that moves the target.
func SyncCamera(w donburi.World) {
	r, ok := lookupRig(w)
	if !ok {
		return
	}
	r.cameraTf.Position = orbitPosition(r.targetTf.Position, r.cameraTf.Rotation, r.control.Zoom.Radius, shoulderOffset(r))
}

func shoulderOffset(r rig) mgl32.Vec2 {
	if !r.control.Settings.Offset.Enabled {
		return mgl32.Vec2{}
	}
	return r.control.Offset.Current
}

func orbitPosition(target mgl32.Vec3, rot mgl32.Quat, radius float32, offset mgl32.Vec2) mgl32.Vec3 {
	back := rot.Rotate(mgl32.Vec3{0, 0, radius})
	side := rot.Rotate(mgl32.Vec3{offset.X(), offset.Y(), 0})
	return target.Add(back).Add(side)
}
