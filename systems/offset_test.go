package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/input"
)

func offsetRig(t *testing.T, mode config.OffsetMode) testRig {
	return newTestRig(t, func(c *config.CameraConfig) {
		c.Offset.Enabled = true
		c.Offset.ToggleEnabled = true
		c.Offset.Mode = mode
	})
}

func offsetFrame(dt float32, toggle bool) *input.FrameInput {
	in := newFrame(dt)
	if toggle {
		in.Keyboard.Keys.Press(input.KeyE)
	}
	return in
}

func TestOffsetStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, mode := range []config.OffsetMode{config.OffsetModeMirror, config.OffsetModeCenter} {
		r := offsetRig(t, mode)
		lo, hi := offsetBounds(mode, 0.5)
		for i := 0; i < 2000; i++ {
			dt := rng.Float32() * 0.2
			UpdateOffsetToggle(r.world, offsetFrame(dt, rng.Intn(10) == 0))

			x := r.control().Offset.Current.X()
			if x < lo || x > hi || x < -0.5 || x > 0.5 {
				t.Fatalf("%s frame %d: offset x %v outside [%v, %v]", mode, i, x, lo, hi)
			}
			if y := r.control().Offset.Current.Y(); y != 0.4 {
				t.Fatalf("%s frame %d: offset y changed to %v", mode, i, y)
			}
		}
	}
}

func TestOffsetConverges(t *testing.T) {
	tests := []struct {
		mode config.OffsetMode
		away float32
	}{
		{config.OffsetModeMirror, -0.5},
		{config.OffsetModeCenter, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			r := offsetRig(t, tt.mode)

			UpdateOffsetToggle(r.world, offsetFrame(1.0/60, true))
			if !r.control().Offset.Transitioning {
				t.Fatalf("press should start the transition")
			}
			for i := 0; i < 60; i++ {
				UpdateOffsetToggle(r.world, offsetFrame(1.0/60, false))
			}
			if got := r.control().Offset.Current.X(); got != tt.away {
				t.Fatalf("expected offset to settle at %v, got %v", tt.away, got)
			}

			UpdateOffsetToggle(r.world, offsetFrame(1.0/60, true))
			for i := 0; i < 60; i++ {
				UpdateOffsetToggle(r.world, offsetFrame(1.0/60, false))
			}
			if got := r.control().Offset.Current.X(); got != 0.5 {
				t.Fatalf("expected offset back at 0.5, got %v", got)
			}
		})
	}
}

func TestOffsetHeldKeyTogglesOnce(t *testing.T) {
	r := offsetRig(t, config.OffsetModeMirror)
	UpdateOffsetToggle(r.world, offsetFrame(1.0/60, true))

	held := newFrame(1.0 / 60)
	held.Keyboard.Keys.Hold(input.KeyE)
	for i := 0; i < 10; i++ {
		UpdateOffsetToggle(r.world, held)
	}
	if !r.control().Offset.Transitioning {
		t.Fatalf("holding the key must not toggle again")
	}
}

func TestOffsetToggleGamepad(t *testing.T) {
	r := offsetRig(t, config.OffsetModeMirror)
	r.connectGamepad(0)

	in := newFrame(1.0 / 60)
	pad := input.GamepadState{}
	pad.Buttons.Press(input.GamepadButtonDPadRight)
	in.SetGamepad(0, pad)
	UpdateOffsetToggle(r.world, in)

	if !r.control().Offset.Transitioning {
		t.Fatalf("gamepad toggle button should flip the offset")
	}
}

func TestOffsetToggleDisabled(t *testing.T) {
	for name, mutate := range map[string]func(c *config.CameraConfig){
		"offset_disabled": func(c *config.CameraConfig) { c.Offset.ToggleEnabled = true },
		"toggle_disabled": func(c *config.CameraConfig) { c.Offset.Enabled = true },
	} {
		t.Run(name, func(t *testing.T) {
			r := newTestRig(t, mutate)
			for i := 0; i < 30; i++ {
				UpdateOffsetToggle(r.world, offsetFrame(1.0/60, true))
			}
			if r.control().Offset.Transitioning || r.control().Offset.Current.X() != 0.5 {
				t.Fatalf("offset changed while the toggle is off: %+v", r.control().Offset)
			}
		})
	}
}
