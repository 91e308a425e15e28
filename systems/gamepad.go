package systems

import (
	"log"

	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/input"
	"github.com/yohamta/donburi"
)

// UpdateGamepadConnections applies this frame's connect and disconnect
// events to the gamepad resource. The first gamepad to connect is adopted
// while none is held; disconnecting that gamepad releases it.
func UpdateGamepadConnections(w donburi.World, in *input.FrameInput) {
	for _, ev := range in.GamepadEvents {
		entry, ok := components.Gamepad.First(w)
		if ev.Connected {
			if ok {
				continue
			}
			pad := archetypes.Gamepad.Spawn(w)
			components.Gamepad.SetValue(pad, components.GamepadData{ID: ev.ID})
			log.Printf("Gamepad %d connected", ev.ID)
			continue
		}

		if ok && components.Gamepad.Get(entry).ID == ev.ID {
			w.Remove(entry.Entity())
			log.Printf("Gamepad %d disconnected", ev.ID)
		}
	}
}

// ConnectedGamepad returns the ID of the gamepad the camera listens to.
func ConnectedGamepad(w donburi.World) (input.GamepadID, bool) {
	entry, ok := components.Gamepad.First(w)
	if !ok {
		return 0, false
	}
	return components.Gamepad.Get(entry).ID, true
}

// activeGamepad returns the state of the connected gamepad, if it reported
// any this frame.
func activeGamepad(w donburi.World, in *input.FrameInput) (input.GamepadState, bool) {
	id, ok := ConnectedGamepad(w)
	if !ok {
		return input.GamepadState{}, false
	}
	return in.Gamepad(id)
}
