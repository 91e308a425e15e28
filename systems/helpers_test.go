package systems

import (
	"testing"

	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/input"
	"github.com/automoto/thirdperson/systems/factory"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

const epsilon = 1e-4

// testRig is a world holding one camera and one plain target.
type testRig struct {
	world  donburi.World
	camera *donburi.Entry
	target *donburi.Entry
}

func newTestRig(t *testing.T, mutate func(c *config.CameraConfig)) testRig {
	t.Helper()
	cfg := config.DefaultCamera()
	if mutate != nil {
		mutate(&cfg)
	}
	w := donburi.NewWorld()
	camera, err := factory.CreateCamera(w, cfg)
	if err != nil {
		t.Fatalf("create camera: %v", err)
	}
	target := factory.CreateTarget(w, mgl32.Vec3{})
	return testRig{world: w, camera: camera, target: target}
}

func (r testRig) control() *components.CameraData {
	return components.Camera.Get(r.camera)
}

func (r testRig) cameraTf() *components.TransformData {
	return components.Transform.Get(r.camera)
}

func (r testRig) targetTf() *components.TransformData {
	return components.Transform.Get(r.target)
}

// connectGamepad runs a frame that connects gamepad id.
func (r testRig) connectGamepad(id input.GamepadID) {
	UpdateGamepadConnections(r.world, &input.FrameInput{
		GamepadEvents: []input.GamepadEvent{{ID: id, Connected: true}},
	})
}

func newFrame(dt float32) *input.FrameInput {
	return &input.FrameInput{
		DeltaSeconds: dt,
		Viewport:     input.Viewport{Width: 800, Height: 600},
	}
}

func stick(x, y float32) input.GamepadState {
	return input.GamepadState{Axes: map[input.GamepadAxis]float32{
		input.GamepadAxisRightStickX: x,
		input.GamepadAxisRightStickY: y,
	}}
}

func leftStick(x, y float32) input.GamepadState {
	return input.GamepadState{Axes: map[input.GamepadAxis]float32{
		input.GamepadAxisLeftStickX: x,
		input.GamepadAxisLeftStickY: y,
	}}
}

func approx(a, b float32) bool {
	d := a - b
	return d < epsilon && d > -epsilon
}

func vecApprox(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < epsilon
}

func vec2Approx(a, b mgl32.Vec2) bool {
	return a.Sub(b).Len() < epsilon
}

// quatApprox treats q and -q as the same rotation.
func quatApprox(a, b mgl32.Quat) bool {
	d := a.Dot(b)
	return d > 1-epsilon || d < -1+epsilon
}
