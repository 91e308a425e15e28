package systems

import (
	"math"
	"testing"

	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/input"
	"github.com/go-gl/mathgl/mgl32"
)

func TestMouseLookScaling(t *testing.T) {
	r := newTestRig(t, func(c *config.CameraConfig) { c.Orbit.MouseSensitivity = mgl32.Vec2{2, 0.5} })
	in := newFrame(1.0 / 60)
	in.Mouse.Motion = mgl32.Vec2{80, 60}

	got := ReadCameraInput(r.world, in).Look
	want := mgl32.Vec2{80.0 / 800 * math.Pi * 2, 60.0 / 600 * math.Pi * 0.5}
	if !vec2Approx(got, want) {
		t.Fatalf("look %v, want %v", got, want)
	}
}

func TestMouseLookGates(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *config.CameraConfig)
		unlocked bool
		button   bool
		wantLook bool
	}{
		{"free_orbit", nil, false, false, true},
		{"cursor_released", nil, true, false, false},
		{"button_required_not_held", func(c *config.CameraConfig) { c.Orbit.RequiresButton = true }, false, false, false},
		{"button_required_held", func(c *config.CameraConfig) { c.Orbit.RequiresButton = true }, false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRig(t, tt.mutate)
			r.control().CursorLockActive = !tt.unlocked
			in := newFrame(1.0 / 60)
			in.Mouse.Motion = mgl32.Vec2{30, 30}
			if tt.button {
				in.Mouse.Buttons.Hold(input.MouseButtonMiddle)
			}

			look := ReadCameraInput(r.world, in).Look
			if got := look != (mgl32.Vec2{}); got != tt.wantLook {
				t.Fatalf("look %v, want non-zero=%v", look, tt.wantLook)
			}
		})
	}
}

func TestGamepadDeadzoneIsJoint(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float32
		wantZero bool
	}{
		{"centered", 0, 0, true},
		{"inside_diagonal", 0.3, 0.3, true},
		{"inside_axis", 0.49, 0, true},
		{"outside_diagonal", 0.4, 0.4, false},
		// Y alone is below the threshold but the stick is outside the circle.
		{"outside_with_small_y", 0.6, 0.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRig(t, nil)
			r.connectGamepad(0)
			in := newFrame(1.0 / 60)
			in.SetGamepad(0, stick(tt.x, tt.y))

			look := ReadCameraInput(r.world, in).Look
			if tt.wantZero {
				if look != (mgl32.Vec2{}) {
					t.Fatalf("expected zero look inside the dead zone, got %v", look)
				}
				return
			}
			if look.X() == 0 || look.Y() == 0 {
				t.Fatalf("expected both axes to contribute, got %v", look)
			}
		})
	}
}

func TestGamepadLookScaling(t *testing.T) {
	r := newTestRig(t, nil)
	r.connectGamepad(0)
	in := newFrame(1.0 / 60)
	in.SetGamepad(0, stick(0.8, 0.6))

	got := ReadCameraInput(r.world, in).Look
	want := mgl32.Vec2{
		0.8 / 800 * 2 * math.Pi * 7,
		-0.6 / 600 * math.Pi * 4,
	}
	if !vec2Approx(got, want) {
		t.Fatalf("look %v, want %v", got, want)
	}
}

func TestGamepadIgnoredWithoutConnection(t *testing.T) {
	r := newTestRig(t, nil)
	in := newFrame(1.0 / 60)
	pad := stick(1, 1)
	pad.Buttons.Hold(input.GamepadButtonDPadUp)
	in.SetGamepad(0, pad)

	intent := ReadCameraInput(r.world, in)
	if intent.Look != (mgl32.Vec2{}) || intent.Zoom != 0 {
		t.Fatalf("unconnected gamepad should be ignored, got %+v", intent)
	}
}

func TestGamepadOrbitButton(t *testing.T) {
	r := newTestRig(t, func(c *config.CameraConfig) { c.Orbit.RequiresButton = true })
	r.connectGamepad(0)

	in := newFrame(1.0 / 60)
	in.SetGamepad(0, stick(1, 0))
	if look := ReadCameraInput(r.world, in).Look; look != (mgl32.Vec2{}) {
		t.Fatalf("stick should not orbit without the orbit button, got %v", look)
	}

	pad := stick(1, 0)
	pad.Buttons.Hold(input.GamepadButtonLeftBumper)
	in.SetGamepad(0, pad)
	if look := ReadCameraInput(r.world, in).Look; look.X() == 0 {
		t.Fatalf("stick should orbit with the orbit button held")
	}
}

func TestZoomInputCombinesDevices(t *testing.T) {
	r := newTestRig(t, nil)
	r.connectGamepad(2)

	in := newFrame(1.0 / 60)
	in.Mouse.Wheel = 1
	pad := input.GamepadState{}
	pad.Buttons.Hold(input.GamepadButtonDPadUp)
	in.SetGamepad(2, pad)
	if got := ReadCameraInput(r.world, in).Zoom; !approx(got, 1.1) {
		t.Fatalf("expected wheel plus one d-pad step, got %v", got)
	}

	pad = input.GamepadState{}
	pad.Buttons.Hold(input.GamepadButtonDPadDown)
	in.SetGamepad(2, pad)
	in.Mouse.Wheel = 0
	if got := ReadCameraInput(r.world, in).Zoom; !approx(got, -0.1) {
		t.Fatalf("expected one zoom-out step, got %v", got)
	}
}

func TestMissingViewportGivesNoLook(t *testing.T) {
	r := newTestRig(t, nil)
	in := newFrame(1.0 / 60)
	in.Viewport = input.Viewport{}
	in.Mouse.Motion = mgl32.Vec2{100, 100}
	in.Mouse.Wheel = 1

	intent := ReadCameraInput(r.world, in)
	if intent.Look != (mgl32.Vec2{}) {
		t.Fatalf("expected zero look without a window, got %v", intent.Look)
	}
	if intent.Zoom != 1 {
		t.Fatalf("wheel zoom does not depend on the window, got %v", intent.Zoom)
	}
}
