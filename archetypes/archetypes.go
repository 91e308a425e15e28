package archetypes

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/tags"
	"github.com/yohamta/donburi"
)

var (
	Camera = newArchetype(
		components.Camera,
		components.Transform,
	)
	Target = newArchetype(
		tags.Target,
		components.Transform,
	)
	ControlledTarget = newArchetype(
		tags.Target,
		components.Transform,
		components.Controller,
		components.Movement,
	)
	Gamepad = newArchetype(
		components.Gamepad,
	)
	Input = newArchetype(
		components.Input,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Patrol = newArchetype(
		tags.Patrol,
		components.Transform,
		components.Object,
		components.Patrol,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extras.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
