package systems

import (
	"testing"

	"github.com/automoto/thirdperson/input"
	"github.com/yohamta/donburi"
)

func TestGamepadResourceLifecycle(t *testing.T) {
	w := donburi.NewWorld()
	event := func(id input.GamepadID, connected bool) {
		UpdateGamepadConnections(w, &input.FrameInput{
			GamepadEvents: []input.GamepadEvent{{ID: id, Connected: connected}},
		})
	}
	expect := func(step string, wantID input.GamepadID, wantOK bool) {
		t.Helper()
		id, ok := ConnectedGamepad(w)
		if ok != wantOK || (ok && id != wantID) {
			t.Fatalf("%s: got (%d, %v), want (%d, %v)", step, id, ok, wantID, wantOK)
		}
	}

	expect("start", 0, false)
	event(3, true)
	expect("first connect", 3, true)
	event(4, true)
	expect("second connect keeps the first", 3, true)
	event(4, false)
	expect("other pad disconnects", 3, true)
	event(3, false)
	expect("held pad disconnects", 0, false)
	event(4, true)
	expect("reconnect", 4, true)
}

func TestGamepadEventsInOneFrame(t *testing.T) {
	w := donburi.NewWorld()
	UpdateGamepadConnections(w, &input.FrameInput{GamepadEvents: []input.GamepadEvent{
		{ID: 1, Connected: true},
		{ID: 1, Connected: false},
		{ID: 2, Connected: true},
	}})
	if id, ok := ConnectedGamepad(w); !ok || id != 2 {
		t.Fatalf("expected gamepad 2, got (%d, %v)", id, ok)
	}
}
