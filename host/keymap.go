package host

import (
	"github.com/automoto/thirdperson/input"
	"github.com/hajimehoshi/ebiten/v2"
)

var keyMap = map[input.Key]ebiten.Key{
	input.KeyA:           ebiten.KeyA,
	input.KeyB:           ebiten.KeyB,
	input.KeyC:           ebiten.KeyC,
	input.KeyD:           ebiten.KeyD,
	input.KeyE:           ebiten.KeyE,
	input.KeyF:           ebiten.KeyF,
	input.KeyG:           ebiten.KeyG,
	input.KeyQ:           ebiten.KeyQ,
	input.KeyR:           ebiten.KeyR,
	input.KeyS:           ebiten.KeyS,
	input.KeyT:           ebiten.KeyT,
	input.KeyW:           ebiten.KeyW,
	input.KeyX:           ebiten.KeyX,
	input.KeyZ:           ebiten.KeyZ,
	input.KeySpace:       ebiten.KeySpace,
	input.KeyEscape:      ebiten.KeyEscape,
	input.KeyTab:         ebiten.KeyTab,
	input.KeyEnter:       ebiten.KeyEnter,
	input.KeyShiftLeft:   ebiten.KeyShiftLeft,
	input.KeyControlLeft: ebiten.KeyControlLeft,
	input.KeyArrowUp:     ebiten.KeyArrowUp,
	input.KeyArrowDown:   ebiten.KeyArrowDown,
	input.KeyArrowLeft:   ebiten.KeyArrowLeft,
	input.KeyArrowRight:  ebiten.KeyArrowRight,
}

var mouseButtonMap = map[input.MouseButton]ebiten.MouseButton{
	input.MouseButtonLeft:   ebiten.MouseButtonLeft,
	input.MouseButtonRight:  ebiten.MouseButtonRight,
	input.MouseButtonMiddle: ebiten.MouseButtonMiddle,
}

// Standard layout buttons, Xbox naming on the left.
var gamepadButtonMap = map[input.GamepadButton]ebiten.StandardGamepadButton{
	input.GamepadButtonSouth:        ebiten.StandardGamepadButtonRightBottom,
	input.GamepadButtonEast:         ebiten.StandardGamepadButtonRightRight,
	input.GamepadButtonWest:         ebiten.StandardGamepadButtonRightLeft,
	input.GamepadButtonNorth:        ebiten.StandardGamepadButtonRightTop,
	input.GamepadButtonLeftBumper:   ebiten.StandardGamepadButtonFrontTopLeft,
	input.GamepadButtonRightBumper:  ebiten.StandardGamepadButtonFrontTopRight,
	input.GamepadButtonLeftTrigger:  ebiten.StandardGamepadButtonFrontBottomLeft,
	input.GamepadButtonRightTrigger: ebiten.StandardGamepadButtonFrontBottomRight,
	input.GamepadButtonSelect:       ebiten.StandardGamepadButtonCenterLeft,
	input.GamepadButtonStart:        ebiten.StandardGamepadButtonCenterRight,
	input.GamepadButtonLeftStick:    ebiten.StandardGamepadButtonLeftStick,
	input.GamepadButtonRightStick:   ebiten.StandardGamepadButtonRightStick,
	input.GamepadButtonDPadUp:       ebiten.StandardGamepadButtonLeftTop,
	input.GamepadButtonDPadDown:     ebiten.StandardGamepadButtonLeftBottom,
	input.GamepadButtonDPadLeft:     ebiten.StandardGamepadButtonLeftLeft,
	input.GamepadButtonDPadRight:    ebiten.StandardGamepadButtonLeftRight,
}

// ebiten reports stick Y as down-positive; FrameInput wants up-positive.
var gamepadAxisMap = map[input.GamepadAxis]struct {
	axis   ebiten.StandardGamepadAxis
	invert bool
}{
	input.GamepadAxisLeftStickX:  {ebiten.StandardGamepadAxisLeftStickHorizontal, false},
	input.GamepadAxisLeftStickY:  {ebiten.StandardGamepadAxisLeftStickVertical, true},
	input.GamepadAxisRightStickX: {ebiten.StandardGamepadAxisRightStickHorizontal, false},
	input.GamepadAxisRightStickY: {ebiten.StandardGamepadAxisRightStickVertical, true},
}
