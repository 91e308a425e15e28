package tags

import "github.com/yohamta/donburi"

var (
	// Target marks the entity the camera follows.
	Target = donburi.NewTag().SetName("Target")
	Wall   = donburi.NewTag().SetName("Wall")
	Patrol = donburi.NewTag().SetName("Patrol")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvTarget = "target"
)
