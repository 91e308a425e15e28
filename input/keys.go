package input

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Key identifies a keyboard key independently of the windowing library.
// The host layer translates these into its own key codes.
type Key int

const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyW
	KeyX
	KeyZ
	KeySpace
	KeyEscape
	KeyTab
	KeyEnter
	KeyShiftLeft
	KeyControlLeft
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
)

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonUnknown MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// GamepadButton follows the standard gamepad layout (Xbox naming).
type GamepadButton int

const (
	GamepadButtonUnknown GamepadButton = iota
	GamepadButtonSouth                 // A / Cross
	GamepadButtonEast                  // B / Circle
	GamepadButtonWest                  // X / Square
	GamepadButtonNorth                 // Y / Triangle
	GamepadButtonLeftBumper
	GamepadButtonRightBumper
	GamepadButtonLeftTrigger
	GamepadButtonRightTrigger
	GamepadButtonSelect
	GamepadButtonStart
	GamepadButtonLeftStick
	GamepadButtonRightStick
	GamepadButtonDPadUp
	GamepadButtonDPadDown
	GamepadButtonDPadLeft
	GamepadButtonDPadRight
)

// GamepadAxis identifies an analog stick axis. Values are in [-1, 1] with
// +X to the right and +Y up.
type GamepadAxis int

const (
	GamepadAxisLeftStickX GamepadAxis = iota
	GamepadAxisLeftStickY
	GamepadAxisRightStickX
	GamepadAxisRightStickY
)

// GamepadID identifies a connected gamepad.
type GamepadID int

var keyNames = map[Key]string{
	KeyA: "a", KeyB: "b", KeyC: "c", KeyD: "d", KeyE: "e", KeyF: "f", KeyG: "g",
	KeyQ: "q", KeyR: "r", KeyS: "s", KeyT: "t", KeyW: "w", KeyX: "x", KeyZ: "z",
	KeySpace:       "space",
	KeyEscape:      "escape",
	KeyTab:         "tab",
	KeyEnter:       "enter",
	KeyShiftLeft:   "shift_left",
	KeyControlLeft: "control_left",
	KeyArrowUp:     "arrow_up",
	KeyArrowDown:   "arrow_down",
	KeyArrowLeft:   "arrow_left",
	KeyArrowRight:  "arrow_right",
}

var mouseButtonNames = map[MouseButton]string{
	MouseButtonLeft:   "left",
	MouseButtonRight:  "right",
	MouseButtonMiddle: "middle",
}

var gamepadButtonNames = map[GamepadButton]string{
	GamepadButtonSouth:        "south",
	GamepadButtonEast:         "east",
	GamepadButtonWest:         "west",
	GamepadButtonNorth:        "north",
	GamepadButtonLeftBumper:   "left_bumper",
	GamepadButtonRightBumper:  "right_bumper",
	GamepadButtonLeftTrigger:  "left_trigger",
	GamepadButtonRightTrigger: "right_trigger",
	GamepadButtonSelect:       "select",
	GamepadButtonStart:        "start",
	GamepadButtonLeftStick:    "left_stick",
	GamepadButtonRightStick:   "right_stick",
	GamepadButtonDPadUp:       "dpad_up",
	GamepadButtonDPadDown:     "dpad_down",
	GamepadButtonDPadLeft:     "dpad_left",
	GamepadButtonDPadRight:    "dpad_right",
}

func (k Key) String() string           { return nameOf(keyNames, k) }
func (b MouseButton) String() string   { return nameOf(mouseButtonNames, b) }
func (b GamepadButton) String() string { return nameOf(gamepadButtonNames, b) }

// ParseKey resolves a key by its configuration name, e.g. "space" or "e".
func ParseKey(name string) (Key, error) {
	return parseName(keyNames, "key", name)
}

// ParseMouseButton resolves a mouse button by name.
func ParseMouseButton(name string) (MouseButton, error) {
	return parseName(mouseButtonNames, "mouse button", name)
}

// ParseGamepadButton resolves a gamepad button by name.
func ParseGamepadButton(name string) (GamepadButton, error) {
	return parseName(gamepadButtonNames, "gamepad button", name)
}

func (k Key) MarshalYAML() (interface{}, error)           { return k.String(), nil }
func (b MouseButton) MarshalYAML() (interface{}, error)   { return b.String(), nil }
func (b GamepadButton) MarshalYAML() (interface{}, error) { return b.String(), nil }

func (k *Key) UnmarshalYAML(value *yaml.Node) error {
	v, err := ParseKey(value.Value)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

func (b *MouseButton) UnmarshalYAML(value *yaml.Node) error {
	v, err := ParseMouseButton(value.Value)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func (b *GamepadButton) UnmarshalYAML(value *yaml.Node) error {
	v, err := ParseGamepadButton(value.Value)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func nameOf[T comparable](names map[T]string, id T) string {
	if n, ok := names[id]; ok {
		return n
	}
	return "unknown"
}

func parseName[T comparable](names map[T]string, kind, name string) (T, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for id, n := range names {
		if n == want {
			return id, nil
		}
	}
	var zero T
	known := make([]string, 0, len(names))
	for _, n := range names {
		known = append(known, n)
	}
	sort.Strings(known)
	return zero, fmt.Errorf("input: unknown %s %q (known: %s)", kind, name, strings.Join(known, ", "))
}
