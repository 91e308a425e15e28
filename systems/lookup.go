package systems

import (
	"log"

	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var (
	cameraQuery = donburi.NewQuery(filter.And(
		filter.Contains(components.Camera, components.Transform),
		filter.Not(filter.Contains(tags.Target)),
	))
	targetQuery = donburi.NewQuery(filter.Contains(tags.Target, components.Transform))
)

// Multiple cameras or targets are a degraded state that can last many
// frames; warn when it begins, not every frame.
var (
	warnedCameras bool
	warnedTargets bool
)

// rig is the camera and target resolved for one stage.
type rig struct {
	camera   *donburi.Entry
	target   *donburi.Entry
	control  *components.CameraData
	cameraTf *components.TransformData
	targetTf *components.TransformData
}

// lookupCamera returns the single camera. It reports false when there is no
// camera or more than one.
func lookupCamera(w donburi.World) (*donburi.Entry, bool) {
	n := cameraQuery.Count(w)
	if n > 1 {
		if !warnedCameras {
			log.Printf("Warning: found %d cameras, camera control is paused until exactly one remains", n)
			warnedCameras = true
		}
		return nil, false
	}
	warnedCameras = false
	if n == 0 {
		return nil, false
	}
	return cameraQuery.First(w)
}

// lookupTarget returns the single target, with the same rules as lookupCamera.
func lookupTarget(w donburi.World) (*donburi.Entry, bool) {
	n := targetQuery.Count(w)
	if n > 1 {
		if !warnedTargets {
			log.Printf("Warning: found %d camera targets, camera control is paused until exactly one remains", n)
			warnedTargets = true
		}
		return nil, false
	}
	warnedTargets = false
	if n == 0 {
		return nil, false
	}
	return targetQuery.First(w)
}

func lookupRig(w donburi.World) (rig, bool) {
	camera, ok := lookupCamera(w)
	if !ok {
		return rig{}, false
	}
	target, ok := lookupTarget(w)
	if !ok {
		return rig{}, false
	}
	return rig{
		camera:   camera,
		target:   target,
		control:  components.Camera.Get(camera),
		cameraTf: components.Transform.Get(camera),
		targetTf: components.Transform.Get(target),
	}, true
}
