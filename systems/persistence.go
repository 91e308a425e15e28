package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

// SavedPreferences represents the user preferences stored on disk. Camera
// pose and zoom are deliberately absent; only feel settings persist.
type SavedPreferences struct {
	MouseSensitivity    [2]float32 `json:"mouseSensitivity"`
	GamepadSensitivity  [2]float32 `json:"gamepadSensitivity"`
	ZoomSensitivity     float32    `json:"zoomSensitivity"`
	OrbitRequiresButton bool       `json:"orbitRequiresButton"`
	AimEnabled          bool       `json:"aimEnabled"`
	OffsetEnabled       bool       `json:"offsetEnabled"`
	OffsetMode          string     `json:"offsetMode"`
}

// itemStore is the part of *gdata.Manager persistence needs.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence initializes the gdata manager for preference storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Preferences.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	store = m
	return nil
}

// LoadPreferences loads preferences from disk. It returns nil when nothing
// has been saved yet or persistence is unavailable.
func LoadPreferences() (*SavedPreferences, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(cfg.Preferences.StorageKey)
	if err != nil {
		log.Printf("Warning: Could not load preferences: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var prefs SavedPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		log.Printf("Warning: Could not parse saved preferences: %v", err)
		return nil, err
	}
	return &prefs, nil
}

// SavePreferences saves preferences to disk
func SavePreferences(p *SavedPreferences) error {
	if store == nil || p == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("Warning: Could not serialize preferences: %v", err)
		return err
	}
	if err := store.SaveItem(cfg.Preferences.StorageKey, data); err != nil {
		log.Printf("Warning: Could not save preferences: %v", err)
		return err
	}
	return nil
}

// PreferencesFrom captures the persisted subset of a camera configuration.
func PreferencesFrom(c cfg.CameraConfig) SavedPreferences {
	return SavedPreferences{
		MouseSensitivity:    c.Orbit.MouseSensitivity,
		GamepadSensitivity:  c.Gamepad.Sensitivity,
		ZoomSensitivity:     c.Zoom.Sensitivity,
		OrbitRequiresButton: c.Orbit.RequiresButton,
		AimEnabled:          c.Aim.Enabled,
		OffsetEnabled:       c.Offset.Enabled,
		OffsetMode:          string(c.Offset.Mode),
	}
}

// ApplyTo returns c with the saved preferences applied. The result is
// validated so a corrupt or outdated file cannot produce an unusable camera.
func (p SavedPreferences) ApplyTo(c cfg.CameraConfig) (cfg.CameraConfig, error) {
	c.Orbit.MouseSensitivity = p.MouseSensitivity
	c.Gamepad.Sensitivity = p.GamepadSensitivity
	c.Zoom.Sensitivity = p.ZoomSensitivity
	c.Orbit.RequiresButton = p.OrbitRequiresButton
	c.Aim.Enabled = p.AimEnabled
	c.Offset.Enabled = p.OffsetEnabled
	c.Offset.Mode = cfg.OffsetMode(p.OffsetMode)
	if err := c.Validate(); err != nil {
		return cfg.CameraConfig{}, fmt.Errorf("systems: saved preferences: %w", err)
	}
	return c, nil
}

// ApplySavedPreferences applies loaded preferences to the global camera
// configuration and to the camera entity, if one exists.
func ApplySavedPreferences(w donburi.World, saved *SavedPreferences) {
	if saved == nil {
		return
	}
	c, err := saved.ApplyTo(cfg.Camera)
	if err != nil {
		log.Printf("Warning: Ignoring saved preferences: %v", err)
		return
	}
	cfg.Camera = c

	if w == nil {
		return
	}
	if entry, ok := lookupCamera(w); ok {
		components.Camera.Get(entry).Reconfigure(c)
	}
}

// SaveCurrentPreferences saves the preferences of the camera entity, or of
// the global configuration when there is no camera.
func SaveCurrentPreferences(w donburi.World) {
	c := cfg.Camera
	if w != nil {
		if entry, ok := lookupCamera(w); ok {
			c = components.Camera.Get(entry).Settings
		}
	}
	prefs := PreferencesFrom(c)
	_ = SavePreferences(&prefs)
}
