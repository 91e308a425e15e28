package gamemath

import "github.com/go-gl/mathgl/mgl32"

// Local axes of a rotation. Cameras and targets look down -Z with +Y up.
var (
	WorldUp      = mgl32.Vec3{0, 1, 0}
	localForward = mgl32.Vec3{0, 0, -1}
	localRight   = mgl32.Vec3{1, 0, 0}
	localUp      = mgl32.Vec3{0, 1, 0}
)

func Forward(q mgl32.Quat) mgl32.Vec3 { return q.Rotate(localForward) }
func Right(q mgl32.Quat) mgl32.Vec3   { return q.Rotate(localRight) }
func Up(q mgl32.Quat) mgl32.Vec3      { return q.Rotate(localUp) }

// NormalizeOrZero returns v scaled to unit length, or the zero vector when v
// is too short to normalize.
func NormalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l <= 1e-6 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// Flatten drops the vertical component and renormalizes.
func Flatten(v mgl32.Vec3) mgl32.Vec3 {
	return NormalizeOrZero(mgl32.Vec3{v.X(), 0, v.Z()})
}

// LookRotation returns the rotation whose forward axis points along dir with
// up as the approximate up vector. ok is false when dir is zero or parallel
// to up.
func LookRotation(dir, up mgl32.Vec3) (q mgl32.Quat, ok bool) {
	f := NormalizeOrZero(dir)
	if f == (mgl32.Vec3{}) {
		return mgl32.QuatIdent(), false
	}
	r := NormalizeOrZero(f.Cross(up))
	if r == (mgl32.Vec3{}) {
		return mgl32.QuatIdent(), false
	}
	u := r.Cross(f)
	m := mgl32.Mat4FromCols(r.Vec4(0), u.Vec4(0), f.Mul(-1).Vec4(0), mgl32.Vec4{0, 0, 0, 1})
	return mgl32.Mat4ToQuat(m).Normalize(), true
}
