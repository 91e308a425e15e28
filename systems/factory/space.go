package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace creates the collision space for a width x depth area of the
// ground plane, starting at the world origin. One cell covers one world unit.
func CreateSpace(w donburi.World, width, depth float64) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	cell := components.BodyScale
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(int(width)*cell, int(depth)*cell, cell, cell),
	})
	return space
}

// addToSpace registers obj with the collision space, if there is one.
func addToSpace(w donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
