package components

import (
	"github.com/automoto/thirdperson/config"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

type ControllerData struct {
	config.ControllerConfig
}

var Controller = donburi.NewComponentType[ControllerData]()

// MovementData is the camera-relative movement intent for this frame.
// Direction is horizontal and either unit length or zero.
type MovementData struct {
	Direction    mgl32.Vec3
	Speed        float32
	Sprinting    bool
	FaceMovement bool // false while aiming, when the camera owns the facing
}

// Velocity returns the intended displacement per second.
func (m MovementData) Velocity() mgl32.Vec3 {
	return m.Direction.Mul(m.Speed)
}

var Movement = donburi.NewComponentType[MovementData]()
