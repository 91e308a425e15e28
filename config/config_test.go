package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/automoto/thirdperson/input"
	"github.com/go-gl/mathgl/mgl32"
)

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultCamera().Validate(); err != nil {
		t.Fatalf("default camera config invalid: %v", err)
	}
	if err := DefaultController().Validate(); err != nil {
		t.Fatalf("default controller config invalid: %v", err)
	}
	if got := DefaultCamera().InitialRadius(); got != 2.25 {
		t.Fatalf("expected initial radius 2.25, got %v", got)
	}
}

func TestCameraValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *CameraConfig)
		want   []string
	}{
		{"min_above_max", func(c *CameraConfig) { c.Zoom.Min, c.Zoom.Max = 4, 3 }, []string{"zoom.min 4 is greater"}},
		{"non_positive_min", func(c *CameraConfig) { c.Zoom.Min = 0 }, []string{"zoom.min must be positive"}},
		{"aim_factor", func(c *CameraConfig) { c.Aim.Factor = 0 }, []string{"aim.factor"}},
		{"deadzone_one", func(c *CameraConfig) { c.Gamepad.Deadzone = 1 }, []string{"gamepad.deadzone"}},
		{"offset_mode", func(c *CameraConfig) { c.Offset.Mode = "left" }, []string{"offset.mode"}},
		{
			"several",
			func(c *CameraConfig) {
				c.Orbit.MouseSensitivity = mgl32.Vec2{0, 1}
				c.Zoom.Sensitivity = -1
			},
			[]string{"orbit.mouse_sensitivity", "zoom.sensitivity"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultCamera()
			tt.mutate(&c)
			err := c.Validate()
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(err.Error(), w) {
					t.Errorf("error %q does not mention %q", err, w)
				}
			}
		})
	}
}

func TestControllerValidate(t *testing.T) {
	c := DefaultController()
	c.Speed = 0
	c.GamepadDeadzone = -0.1
	err := c.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if !strings.Contains(err.Error(), "controller.speed") || !strings.Contains(err.Error(), "controller.gamepad_deadzone") {
		t.Fatalf("expected both fields reported, got %v", err)
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	src := `
camera:
  zoom:
    min: 2
    max: 6
  aim:
    enabled: true
    mouse_button: left
  offset:
    enabled: true
    mode: center
  orbit:
    mouse_sensitivity: [0.5, 0.25]
  cursor_lock:
    key: tab
controller:
  kinematic: false
  keys:
    sprint: control_left
`
	f, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	c := f.Camera
	if c.Zoom.Min != 2 || c.Zoom.Max != 6 {
		t.Errorf("zoom bounds not applied: %+v", c.Zoom)
	}
	if c.Zoom.Sensitivity != 1 {
		t.Errorf("zoom sensitivity should keep its default, got %v", c.Zoom.Sensitivity)
	}
	if !c.Aim.Enabled || c.Aim.MouseButton != input.MouseButtonLeft || c.Aim.Factor != 0.7 {
		t.Errorf("aim overlay wrong: %+v", c.Aim)
	}
	if !c.Offset.Enabled || c.Offset.Mode != OffsetModeCenter || c.Offset.X != 0.5 {
		t.Errorf("offset overlay wrong: %+v", c.Offset)
	}
	if c.Orbit.MouseSensitivity != (mgl32.Vec2{0.5, 0.25}) {
		t.Errorf("mouse sensitivity not applied: %v", c.Orbit.MouseSensitivity)
	}
	if c.CursorLock.Key != input.KeyTab || !c.CursorLock.StartActive {
		t.Errorf("cursor lock overlay wrong: %+v", c.CursorLock)
	}
	if f.Controller.Kinematic || f.Controller.Keys.Sprint != input.KeyControlLeft || f.Controller.Keys.Forward != input.KeyW {
		t.Errorf("controller overlay wrong: %+v", f.Controller)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	_, err := Parse([]byte("camera:\n  zoom:\n    min: 5\n    max: 1\n"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}

	if _, err := Parse([]byte("camera:\n  aim:\n    mouse_button: thumb\n")); err == nil {
		t.Fatalf("expected unknown button name to fail")
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	want := DefaultFile()
	want.Camera.Offset.Mode = OffsetModeCenter
	want.Camera.Gamepad.ZoomInButton = input.GamepadButtonNorth

	data, err := want.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v\n%s", err, data)
	}
	if got != want {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "camera.yaml")
	if err := os.WriteFile(path, []byte("camera:\n  zoom:\n    max: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCameraConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Zoom.Max != 4 || c.Zoom.Min != 1.5 {
		t.Fatalf("unexpected zoom %+v", c.Zoom)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "camera.yaml")
	if err := os.WriteFile(path, []byte("camera:\n  zoom:\n    max: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("camera:\n  zoom:\n    max: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case f := <-w.Updates:
		if f.Camera.Zoom.Max != 5 {
			t.Fatalf("expected reloaded max 5, got %v", f.Camera.Zoom.Max)
		}
	case err := <-w.Errors:
		t.Fatalf("unexpected watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for reload")
	}
}
