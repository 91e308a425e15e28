package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// UpdatePatrols advances every patrolling block along its leg and turns it
// around at the end.
func UpdatePatrols(w donburi.World, dt float32) {
	tags.Patrol.Each(w, func(e *donburi.Entry) {
		patrol := components.Patrol.Get(e)
		tf := components.Transform.Get(e)

		progress, finished := patrol.Tween.Update(dt)
		tf.Position = patrol.From.Add(patrol.To.Sub(patrol.From).Mul(progress))
		if finished {
			patrol.From, patrol.To = patrol.To, patrol.From
			patrol.Tween = gween.New(0, 1, patrol.Duration, ease.InOutQuad)
		}

		if e.HasComponent(components.Object) {
			components.Object.Get(e).PlaceAt(tf.Position)
		}
	})
}
