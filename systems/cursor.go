package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/input"
	"github.com/yohamta/donburi"
)

// UpdateCursorLock flips cursor capture when the lock key goes down.
func UpdateCursorLock(w donburi.World, in *input.FrameInput) {
	entry, ok := lookupCamera(w)
	if !ok {
		return
	}
	control := components.Camera.Get(entry)
	lock := control.Settings.CursorLock
	if !lock.ToggleEnabled {
		return
	}
	if in.Keyboard.Keys.JustPressed(lock.Key) {
		control.CursorLockActive = !control.CursorLockActive
	}
}

// CursorLocked reports whether the host should capture the cursor. Without
// a camera there is nothing to steer, so the cursor is left free.
func CursorLocked(w donburi.World) bool {
	entry, ok := lookupCamera(w)
	if !ok {
		return false
	}
	return components.Camera.Get(entry).CursorLockActive
}
