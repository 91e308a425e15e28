package components

import (
	"github.com/automoto/thirdperson/input"
	"github.com/yohamta/donburi"
)

// GamepadData identifies the gamepad the camera listens to. At most one
// entity carries it.
type GamepadData struct {
	ID input.GamepadID
}

var Gamepad = donburi.NewComponentType[GamepadData]()
