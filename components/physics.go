package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceData wraps the collision space bodies are registered in.
type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()
