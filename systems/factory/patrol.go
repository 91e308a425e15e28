package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/tags"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CreatePatrol spawns a solid block that slides back and forth between from
// and to, taking legSeconds per leg.
func CreatePatrol(w donburi.World, from, to mgl32.Vec3, size float64, legSeconds float32) *donburi.Entry {
	patrol := archetypes.Patrol.Spawn(w)
	components.Transform.SetValue(patrol, components.NewTransform(from))

	obj := components.NewBody(from, size, tags.ResolvSolid)
	obj.Data = patrol
	components.Object.SetValue(patrol, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	components.Patrol.SetValue(patrol, components.PatrolData{
		From:     from,
		To:       to,
		Duration: legSeconds,
		Tween:    gween.New(0, 1, legSeconds, ease.InOutQuad),
	})

	return patrol
}
