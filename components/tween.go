package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PatrolData moves an entity back and forth between two points. Tween runs
// progress from 0 to 1 along the current leg, From to To.
type PatrolData struct {
	From     mgl32.Vec3
	To       mgl32.Vec3
	Duration float32
	Tween    *gween.Tween
}

var Patrol = donburi.NewComponentType[PatrolData]()
