package host

import (
	"slices"

	"github.com/automoto/thirdperson/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Poller reads ebiten's input state into a FrameInput once per tick.
type Poller struct {
	cursorX, cursorY int
	hasCursor        bool

	// Reusable slices to avoid allocations
	gamepadIDs   []ebiten.GamepadID
	connectedIDs []ebiten.GamepadID
	knownIDs     []ebiten.GamepadID
}

func NewPoller() *Poller {
	return &Poller{}
}

// Poll builds the input snapshot for this tick. viewport is the logical
// screen size from the game's Layout, the space cursor positions are in.
func (p *Poller) Poll(viewport input.Viewport) input.FrameInput {
	in := input.FrameInput{
		DeltaSeconds: 1 / float32(ebiten.TPS()),
		Viewport:     viewport,
	}
	p.pollMouse(&in)
	p.pollKeyboard(&in)
	p.pollGamepads(&in)
	return in
}

// ResetCursor drops the remembered cursor position so the next poll reports
// no motion. Call it after changing the cursor mode, which makes the cursor
// jump.
func (p *Poller) ResetCursor() {
	p.hasCursor = false
}

func (p *Poller) pollMouse(in *input.FrameInput) {
	x, y := ebiten.CursorPosition()
	if p.hasCursor {
		in.Mouse.Motion = mgl32.Vec2{float32(x - p.cursorX), float32(y - p.cursorY)}
	}
	p.cursorX, p.cursorY, p.hasCursor = x, y, true

	_, wheelY := ebiten.Wheel()
	in.Mouse.Wheel = float32(wheelY)

	for id, btn := range mouseButtonMap {
		if inpututil.IsMouseButtonJustPressed(btn) {
			in.Mouse.Buttons.Press(id)
		} else if ebiten.IsMouseButtonPressed(btn) {
			in.Mouse.Buttons.Hold(id)
		}
	}
}

func (p *Poller) pollKeyboard(in *input.FrameInput) {
	for id, key := range keyMap {
		if inpututil.IsKeyJustPressed(key) {
			in.Keyboard.Keys.Press(id)
		} else if ebiten.IsKeyPressed(key) {
			in.Keyboard.Keys.Hold(id)
		}
	}
}

func (p *Poller) pollGamepads(in *input.FrameInput) {
	for _, id := range p.knownIDs {
		if inpututil.IsGamepadJustDisconnected(id) {
			in.GamepadEvents = append(in.GamepadEvents, input.GamepadEvent{ID: input.GamepadID(id)})
		}
	}
	p.connectedIDs = inpututil.AppendJustConnectedGamepadIDs(p.connectedIDs[:0])
	for _, id := range p.connectedIDs {
		in.GamepadEvents = append(in.GamepadEvents, input.GamepadEvent{ID: input.GamepadID(id), Connected: true})
	}

	p.gamepadIDs = ebiten.AppendGamepadIDs(p.gamepadIDs[:0])
	p.knownIDs = append(p.knownIDs[:0], p.gamepadIDs...)
	slices.Sort(p.knownIDs)

	for _, id := range p.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		in.SetGamepad(input.GamepadID(id), readGamepad(id))
	}
}

func readGamepad(id ebiten.GamepadID) input.GamepadState {
	state := input.GamepadState{Axes: make(map[input.GamepadAxis]float32, len(gamepadAxisMap))}
	for btnID, btn := range gamepadButtonMap {
		if inpututil.IsStandardGamepadButtonJustPressed(id, btn) {
			state.Buttons.Press(btnID)
		} else if ebiten.IsStandardGamepadButtonPressed(id, btn) {
			state.Buttons.Hold(btnID)
		}
	}
	for axisID, m := range gamepadAxisMap {
		v := float32(ebiten.StandardGamepadAxisValue(id, m.axis))
		if m.invert {
			v = -v
		}
		state.Axes[axisID] = v
	}
	return state
}
