package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// TransformData is a world-space pose. Rotation maps local -Z to forward.
type TransformData struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// NewTransform returns an unrotated transform at pos.
func NewTransform(pos mgl32.Vec3) TransformData {
	return TransformData{Position: pos, Rotation: mgl32.QuatIdent()}
}

var Transform = donburi.NewComponentType[TransformData]()
