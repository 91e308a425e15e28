package systems

import (
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var controllerQuery = donburi.NewQuery(filter.Contains(components.Controller))

// ApplyConfigFile makes a reloaded settings file current. The globals are
// replaced, the camera keeps its pose and radius, and every controlled target
// picks up the new movement settings.
func ApplyConfigFile(w donburi.World, f cfg.File) {
	cfg.Apply(f)

	if entry, ok := lookupCamera(w); ok {
		components.Camera.Get(entry).Reconfigure(f.Camera)
	}
	controllerQuery.Each(w, func(entry *donburi.Entry) {
		components.Controller.Get(entry).ControllerConfig = f.Controller
	})
}
