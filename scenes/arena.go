package scenes

import (
	"log"
	"sync"

	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/host"
	"github.com/automoto/thirdperson/input"
	"github.com/automoto/thirdperson/systems"
	"github.com/automoto/thirdperson/systems/factory"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const layerDefault ecs.LayerID = iota

// ArenaScene is a top-down view of a camera rig following a controllable
// target around a walled arena.
type ArenaScene struct {
	ecs     *ecs.ECS
	once    sync.Once
	poller  *host.Poller
	cursor  *host.CursorApplier
	watcher *cfg.Watcher

	viewport input.Viewport
}

// NewArenaScene creates the scene. watcher may be nil; when set, reloaded
// settings are applied to the running rig.
func NewArenaScene(watcher *cfg.Watcher) *ArenaScene {
	poller := host.NewPoller()
	return &ArenaScene{
		poller:  poller,
		cursor:  host.NewCursorApplier(poller),
		watcher: watcher,
		viewport: input.Viewport{
			Width:  float32(cfg.C.Width),
			Height: float32(cfg.C.Height),
		},
	}
}

// SetViewport records the logical screen size used to normalize look input.
func (as *ArenaScene) SetViewport(width, height int) {
	as.viewport = input.Viewport{Width: float32(width), Height: float32(height)}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input is polled once and stored before anything reads it
	ecs.AddSystem(as.pollInput)
	ecs.AddSystem(as.reloadConfig)
	ecs.AddSystem(updatePreferences)

	// Camera and movement, then physics, then the camera follows the result
	ecs.AddSystem(updateControls)
	ecs.AddSystem(updatePatrols)
	ecs.AddSystem(resolveMovement)
	ecs.AddSystem(syncCamera)
	ecs.AddSystem(as.applyCursor)

	ecs.AddRenderer(layerDefault, drawGrid)
	ecs.AddRenderer(layerDefault, drawBodies)
	ecs.AddRenderer(layerDefault, drawCamera)
	ecs.AddRenderer(layerDefault, drawHUD)

	as.ecs = ecs
	if err := buildArena(ecs.World); err != nil {
		log.Fatalf("Failed to build arena: %v", err)
	}
}

// buildArena creates the collision space, its boundary walls, a patrolling
// block, the camera and the controlled target.
func buildArena(w donburi.World) error {
	width, depth := cfg.Demo.ArenaWidth, cfg.Demo.ArenaDepth
	factory.CreateSpace(w, width, depth)
	factory.CreateInputState(w)

	// Boundary
	factory.CreateWall(w, 0, 0, width, 1)
	factory.CreateWall(w, 0, depth-1, width, 1)
	factory.CreateWall(w, 0, 1, 1, depth-2)
	factory.CreateWall(w, width-1, 1, 1, depth-2)

	// A few pillars to walk around
	factory.CreateWall(w, width*0.25, depth*0.3, 2, 2)
	factory.CreateWall(w, width*0.7, depth*0.6, 3, 1)
	factory.CreateWall(w, width*0.45, depth*0.7, 1, 3)

	center := mgl32.Vec3{float32(width / 2), 0, float32(depth / 2)}
	r := float32(cfg.Demo.PatrolRadius)
	factory.CreatePatrol(w,
		center.Add(mgl32.Vec3{-r, 0, -r}),
		center.Add(mgl32.Vec3{r, 0, -r}),
		1, cfg.Demo.PatrolSeconds)

	if _, err := factory.CreateCamera(w, cfg.Camera); err != nil {
		return err
	}

	ctrl := cfg.Controller
	ctrl.Kinematic = false
	target, err := factory.CreateControlledTarget(w, center.Add(mgl32.Vec3{0, 0, 2}), ctrl)
	if err != nil {
		return err
	}
	factory.AttachBody(w, target, cfg.Demo.TargetSize)

	systems.SyncCamera(w)
	return nil
}

func (as *ArenaScene) pollInput(e *ecs.ECS) {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	components.Input.Get(entry).Frame = as.poller.Poll(as.viewport)
}

func (as *ArenaScene) reloadConfig(e *ecs.ECS) {
	if as.watcher == nil {
		return
	}
	select {
	case f, ok := <-as.watcher.Updates:
		if ok {
			systems.ApplyConfigFile(e.World, f)
			log.Printf("Reloaded settings")
		}
	case err, ok := <-as.watcher.Errors:
		if ok {
			log.Printf("Warning: Keeping previous settings: %v", err)
		}
	default:
	}
}

func (as *ArenaScene) applyCursor(e *ecs.ECS) {
	as.cursor.Apply(systems.CursorLocked(e.World))
}

func frameInput(e *ecs.ECS) (*input.FrameInput, bool) {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return nil, false
	}
	return &components.Input.Get(entry).Frame, true
}

func updatePreferences(e *ecs.ECS) {
	in, ok := frameInput(e)
	if !ok {
		return
	}
	systems.UpdatePreferences(e.World, in)
}

func updateControls(e *ecs.ECS) {
	in, ok := frameInput(e)
	if !ok {
		return
	}
	systems.UpdateControls(e.World, in)
}

func updatePatrols(e *ecs.ECS) {
	in, ok := frameInput(e)
	if !ok {
		return
	}
	systems.UpdatePatrols(e.World, in.DeltaSeconds)
}

func resolveMovement(e *ecs.ECS) {
	in, ok := frameInput(e)
	if !ok {
		return
	}
	systems.ResolveMovement(e.World, in.DeltaSeconds)
}

func syncCamera(e *ecs.ECS) {
	systems.SyncCamera(e.World)
}
