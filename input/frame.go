package input

import "github.com/go-gl/mathgl/mgl32"

// Buttons holds the decoded state of one class of buttons for a single frame.
// Held is true while a button is down; Just is true only on the frame it went down.
type Buttons[T comparable] struct {
	Held map[T]bool
	Just map[T]bool
}

// Pressed reports whether id is currently held.
func (b Buttons[T]) Pressed(id T) bool {
	return b.Held[id]
}

// JustPressed reports whether id went down this frame.
func (b Buttons[T]) JustPressed(id T) bool {
	return b.Just[id]
}

// Hold marks id as held without a rising edge.
func (b *Buttons[T]) Hold(id T) {
	if b.Held == nil {
		b.Held = make(map[T]bool)
	}
	b.Held[id] = true
}

// Press marks id as held with a rising edge this frame.
func (b *Buttons[T]) Press(id T) {
	b.Hold(id)
	if b.Just == nil {
		b.Just = make(map[T]bool)
	}
	b.Just[id] = true
}

// Viewport is the primary window size in pixels. A zero size means no window
// is available this frame.
type Viewport struct {
	Width  float32
	Height float32
}

func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

type MouseState struct {
	Motion  mgl32.Vec2 // accumulated pixel motion this frame, +Y down
	Wheel   float32    // accumulated wheel lines this frame, +Y away from the user
	Buttons Buttons[MouseButton]
}

type KeyboardState struct {
	Keys Buttons[Key]
}

type GamepadState struct {
	Buttons Buttons[GamepadButton]
	Axes    map[GamepadAxis]float32
}

// Axis returns the value of an axis, zero when the axis was not reported.
func (g GamepadState) Axis(a GamepadAxis) float32 {
	return g.Axes[a]
}

// Stick returns a stick's (x, y) pair.
func (g GamepadState) Stick(x, y GamepadAxis) mgl32.Vec2 {
	return mgl32.Vec2{g.Axis(x), g.Axis(y)}
}

// GamepadEvent reports a gamepad connecting or disconnecting this frame.
type GamepadEvent struct {
	ID        GamepadID
	Connected bool
}

// FrameInput is everything the camera pipeline reads from the host for one
// frame. The host builds it once per tick and passes it down explicitly.
type FrameInput struct {
	DeltaSeconds  float32
	Viewport      Viewport
	Mouse         MouseState
	Keyboard      KeyboardState
	Gamepads      map[GamepadID]GamepadState
	GamepadEvents []GamepadEvent
}

// Gamepad returns the state of a gamepad, if it reported any this frame.
func (f *FrameInput) Gamepad(id GamepadID) (GamepadState, bool) {
	g, ok := f.Gamepads[id]
	return g, ok
}

// SetGamepad stores the state reported for a gamepad.
func (f *FrameInput) SetGamepad(id GamepadID, g GamepadState) {
	if f.Gamepads == nil {
		f.Gamepads = make(map[GamepadID]GamepadState)
	}
	f.Gamepads[id] = g
}
