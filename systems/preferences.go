package systems

import (
	"log"

	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// UpdatePreferences handles the preference hotkeys. Any change is applied to
// the camera immediately and saved. It reports whether anything changed.
func UpdatePreferences(w donburi.World, in *input.FrameInput) bool {
	entry, ok := lookupCamera(w)
	if !ok {
		return false
	}
	control := components.Camera.Get(entry)
	settings := control.Settings
	keys := in.Keyboard.Keys
	prefs := cfg.Preferences

	changed := false
	if keys.JustPressed(prefs.SensitivityKey) && len(prefs.SensitivitySteps) > 0 {
		next := nextStep(prefs.SensitivitySteps, settings.Orbit.MouseSensitivity.X())
		settings.Orbit.MouseSensitivity = mgl32.Vec2{next, next}
		changed = true
	}
	if keys.JustPressed(prefs.AimKey) {
		settings.Aim.Enabled = !settings.Aim.Enabled
		changed = true
	}
	if keys.JustPressed(prefs.OffsetKey) {
		settings.Offset.Enabled = !settings.Offset.Enabled
		changed = true
	}
	if keys.JustPressed(prefs.OrbitButtonKey) {
		settings.Orbit.RequiresButton = !settings.Orbit.RequiresButton
		changed = true
	}
	if !changed {
		return false
	}

	if err := settings.Validate(); err != nil {
		log.Printf("Warning: Ignoring preference change: %v", err)
		return false
	}
	control.Reconfigure(settings)
	SaveCurrentPreferences(w)
	return true
}

// nextStep returns the first step above current, wrapping to the smallest.
func nextStep(steps []float32, current float32) float32 {
	for _, s := range steps {
		if s > current+1e-4 {
			return s
		}
	}
	return steps[0]
}
