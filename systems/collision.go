package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var bodyQuery = donburi.NewQuery(filter.Contains(
	tags.Target,
	components.Transform,
	components.Movement,
	components.Object,
))

// ResolveMovement moves targets that carry a collision body along their
// movement intent, stopping at solid objects one axis at a time so bodies
// slide along walls. The ground-plane axes are world X and Z.
func ResolveMovement(w donburi.World, dt float32) {
	bodyQuery.Each(w, func(e *donburi.Entry) {
		tf := components.Transform.Get(e)
		obj := components.Object.Get(e)

		// A body that has fallen out of step with its transform, e.g. after a
		// kinematic move, is snapped back first.
		obj.PlaceAt(tf.Position)

		move := components.Movement.Get(e)
		if e.HasComponent(components.Controller) && components.Controller.Get(e).Kinematic {
			return
		}
		vel := move.Velocity().Mul(dt * components.BodyScale)
		if vel.X() == 0 && vel.Z() == 0 {
			return
		}

		obj.X += resolveAxis(obj.Object, float64(vel.X()), 0)
		obj.Y += resolveAxis(obj.Object, 0, float64(vel.Z()))
		obj.Update()

		ground := obj.Ground(tf.Position.Y())
		tf.Position = ground
		if move.FaceMovement {
			FaceDirection(tf, move.Direction)
		}
	})
}

// resolveAxis returns how far obj may move along a single axis before it
// touches a solid.
func resolveAxis(obj *resolv.Object, dx, dy float64) float64 {
	if dx == 0 && dy == 0 {
		return 0
	}
	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		if dx != 0 {
			return dx
		}
		return dy
	}
	solids := check.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		if dx != 0 {
			return dx
		}
		return dy
	}
	contact := check.ContactWithObject(solids[0])
	if dx != 0 {
		return contact.X()
	}
	return contact.Y()
}
