package factory

import (
	"fmt"

	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/config"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// CreateCamera spawns a camera looking down -Z with its radius at the middle
// of the zoom bounds. The configuration is validated first.
func CreateCamera(w donburi.World, cfg config.CameraConfig) (*donburi.Entry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("factory: camera: %w", err)
	}

	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, components.NewCameraData(cfg))
	components.Transform.SetValue(camera, components.NewTransform(mgl32.Vec3{}))
	return camera, nil
}

// CreateTarget spawns an entity for the camera to follow.
func CreateTarget(w donburi.World, pos mgl32.Vec3) *donburi.Entry {
	target := archetypes.Target.Spawn(w)
	components.Transform.SetValue(target, components.NewTransform(pos))
	return target
}

// CreateControlledTarget spawns a target that is steered by movement input
// relative to the camera.
func CreateControlledTarget(w donburi.World, pos mgl32.Vec3, ctrl config.ControllerConfig) (*donburi.Entry, error) {
	if err := ctrl.Validate(); err != nil {
		return nil, fmt.Errorf("factory: controller: %w", err)
	}

	target := archetypes.ControlledTarget.Spawn(w)
	components.Transform.SetValue(target, components.NewTransform(pos))
	components.Controller.SetValue(target, components.ControllerData{ControllerConfig: ctrl})
	components.Movement.SetValue(target, components.MovementData{})
	return target, nil
}
