package config

import "github.com/automoto/thirdperson/input"

// PreferencesConfig contains the choices offered for stored user preferences
type PreferencesConfig struct {
	AppName          string
	StorageKey       string
	SensitivitySteps []float32 // Mouse sensitivity values cycled through by SensitivityKey
	SensitivityKey   input.Key
	AimKey           input.Key // Toggles aim zoom on and off
	OffsetKey        input.Key // Toggles the shoulder offset on and off
	OrbitButtonKey   input.Key // Toggles whether orbiting needs the orbit button held
}

// Preferences is the global preferences configuration
var Preferences PreferencesConfig

func init() {
	Preferences = PreferencesConfig{
		AppName:          "thirdperson",
		StorageKey:       "preferences",
		SensitivitySteps: []float32{0.25, 0.5, 0.75, 1.0, 1.5, 2.0, 3.0},
		SensitivityKey:   input.KeyTab,
		AimKey:           input.KeyG,
		OffsetKey:        input.KeyT,
		OrbitButtonKey:   input.KeyR,
	}
}
