package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BodyScale is the number of collision-space units per world unit. resolv
// works on a pixel-sized grid, so world distances are scaled up before they
// reach it.
const BodyScale = 16

// ObjectData is a collision body on the ground plane. resolv's X/Y axes map
// to world X/Z.
type ObjectData struct {
	*resolv.Object
}

// NewBody returns a square body of size world units centered on p.
func NewBody(p mgl32.Vec3, size float64, tags ...string) *resolv.Object {
	s := size * BodyScale
	obj := resolv.NewObject(float64(p.X())*BodyScale-s/2, float64(p.Z())*BodyScale-s/2, s, s, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, s, s))
	return obj
}

// Ground returns the body's center in world units at height y.
func (o ObjectData) Ground(y float32) mgl32.Vec3 {
	return mgl32.Vec3{
		float32((o.X + o.W/2) / BodyScale),
		y,
		float32((o.Y + o.H/2) / BodyScale),
	}
}

// PlaceAt centers the body on p, ignoring height.
func (o ObjectData) PlaceAt(p mgl32.Vec3) {
	o.X = float64(p.X())*BodyScale - o.W/2
	o.Y = float64(p.Z())*BodyScale - o.H/2
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
