package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateWall adds a solid box on the ground plane. x and z are the box's
// minimum corner in world units.
func CreateWall(w donburi.World, x, z, width, depth float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)

	s := float64(components.BodyScale)
	obj := resolv.NewObject(x*s, z*s, width*s, depth*s, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, width*s, depth*s))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	return wall
}

// AttachBody gives an existing entity a square collision box centered on its
// transform, so a physics step can resolve its movement intent.
func AttachBody(w donburi.World, e *donburi.Entry, size float64) {
	pos := components.Transform.Get(e).Position
	obj := components.NewBody(pos, size, tags.ResolvTarget)
	obj.Data = e

	if !e.HasComponent(components.Object) {
		e.AddComponent(components.Object)
	}
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	addToSpace(w, obj)
}
