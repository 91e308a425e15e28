package host

import (
	"testing"

	"github.com/automoto/thirdperson/input"
)

func TestEveryIdentifierIsMapped(t *testing.T) {
	for k := input.KeyA; k <= input.KeyArrowRight; k++ {
		if _, ok := keyMap[k]; !ok {
			t.Errorf("key %s has no ebiten mapping", k)
		}
	}
	for b := input.MouseButtonLeft; b <= input.MouseButtonMiddle; b++ {
		if _, ok := mouseButtonMap[b]; !ok {
			t.Errorf("mouse button %s has no ebiten mapping", b)
		}
	}
	for b := input.GamepadButtonSouth; b <= input.GamepadButtonDPadRight; b++ {
		if _, ok := gamepadButtonMap[b]; !ok {
			t.Errorf("gamepad button %s has no ebiten mapping", b)
		}
	}
	for a := input.GamepadAxisLeftStickX; a <= input.GamepadAxisRightStickY; a++ {
		if _, ok := gamepadAxisMap[a]; !ok {
			t.Errorf("gamepad axis %d has no ebiten mapping", a)
		}
	}
}

func TestVerticalAxesAreInverted(t *testing.T) {
	if !gamepadAxisMap[input.GamepadAxisLeftStickY].invert || !gamepadAxisMap[input.GamepadAxisRightStickY].invert {
		t.Fatalf("vertical stick axes should be flipped to +Y up")
	}
	if gamepadAxisMap[input.GamepadAxisLeftStickX].invert || gamepadAxisMap[input.GamepadAxisRightStickX].invert {
		t.Fatalf("horizontal stick axes should not be flipped")
	}
}
