package components

import (
	"github.com/automoto/thirdperson/input"
	"github.com/yohamta/donburi"
)

// InputData stores the input snapshot for the current frame. The host writes
// it once per tick before any system runs.
type InputData struct {
	Frame input.FrameInput
}

var Input = donburi.NewComponentType[InputData]()
