package systems

import (
	"github.com/yohamta/donburi"
)

// zoomRate scales one wheel line into a fraction of the current radius.
const zoomRate = 0.1

// UpdateZoom changes the orbit radius in proportion to its current value.
// It leaves the radius alone while an aim zoom owns it, while zoom is
// disabled and while the cursor is released.
func UpdateZoom(w donburi.World, intent CameraIntent) {
	r, ok := lookupRig(w)
	if !ok {
		return
	}
	control := r.control
	if control.Zoom.SavedRadius != nil || !control.Settings.Zoom.Enabled || !control.CursorLockActive {
		return
	}

	z := &control.Zoom
	if intent.Zoom != 0 {
		z.Radius -= intent.Zoom * z.Radius * zoomRate * control.Settings.Zoom.Sensitivity
	}
	z.Radius = z.Clamp(z.Radius)
}
