package systems

import (
	"github.com/automoto/thirdperson/input"
	"github.com/yohamta/donburi"
)

// UpdateControls runs every stage that reads input, in order, and returns
// the frame's camera intent. Hosts with a physics step run it, step physics,
// then call SyncCamera.
func UpdateControls(w donburi.World, in *input.FrameInput) CameraIntent {
	UpdateGamepadConnections(w, in)
	UpdateCursorLock(w, in)

	intent := ReadCameraInput(w, in)
	UpdateOrbit(w, intent)
	UpdateZoom(w, intent)
	UpdateAim(w, in)
	UpdateOffsetToggle(w, in)
	UpdateMovement(w, in)
	return intent
}

// UpdateFrame runs the whole camera pipeline for one frame.
func UpdateFrame(w donburi.World, in *input.FrameInput) {
	UpdateControls(w, in)
	SyncCamera(w)
}
