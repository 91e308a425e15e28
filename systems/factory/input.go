package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/yohamta/donburi"
)

// CreateInputState spawns the singleton that holds the current frame's
// input snapshot.
func CreateInputState(w donburi.World) *donburi.Entry {
	return archetypes.Input.Spawn(w)
}
