package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/fonts"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/automoto/thirdperson/systems"
	"github.com/automoto/thirdperson/tags"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

const (
	hudMargin     = 10
	hudLineHeight = 16
	forwardLength = 2 // world units
)

var (
	cameraQuery = donburi.NewQuery(filter.And(
		filter.Contains(components.Camera, components.Transform),
		filter.Not(filter.Contains(tags.Target)),
	))
	targetQuery = donburi.NewQuery(filter.Contains(tags.Target, components.Transform))
	wallQuery   = donburi.NewQuery(filter.Contains(tags.Wall, components.Object))
	patrolQuery = donburi.NewQuery(filter.Contains(tags.Patrol, components.Object))
)

// toScreen projects a world position onto the top-down view. World X runs
// right and world Z runs down the screen, with the arena centered.
func toScreen(screen *ebiten.Image, p mgl32.Vec3) (float32, float32) {
	ppu := float32(cfg.Demo.PixelsPerUnit)
	b := screen.Bounds()
	ox := (float32(b.Dx()) - float32(cfg.Demo.ArenaWidth)*ppu) / 2
	oy := (float32(b.Dy()) - float32(cfg.Demo.ArenaDepth)*ppu) / 2
	return ox + p.X()*ppu, oy + p.Z()*ppu
}

func drawGrid(e *ecs.ECS, screen *ebiten.Image) {
	w, d := float32(cfg.Demo.ArenaWidth), float32(cfg.Demo.ArenaDepth)
	for x := float32(0); x <= w; x++ {
		x0, y0 := toScreen(screen, mgl32.Vec3{x, 0, 0})
		x1, y1 := toScreen(screen, mgl32.Vec3{x, 0, d})
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, cfg.GridLine, false)
	}
	for z := float32(0); z <= d; z++ {
		x0, y0 := toScreen(screen, mgl32.Vec3{0, 0, z})
		x1, y1 := toScreen(screen, mgl32.Vec3{w, 0, z})
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, cfg.GridLine, false)
	}
}

func drawBodies(e *ecs.ECS, screen *ebiten.Image) {
	wallQuery.Each(e.World, func(entry *donburi.Entry) {
		drawBox(screen, components.Object.Get(entry), cfg.DarkBlue)
	})
	patrolQuery.Each(e.World, func(entry *donburi.Entry) {
		drawBox(screen, components.Object.Get(entry), cfg.Orange)
	})

	targetQuery.Each(e.World, func(entry *donburi.Entry) {
		tf := components.Transform.Get(entry)
		x, y := toScreen(screen, tf.Position)
		radius := float32(cfg.Demo.TargetSize*cfg.Demo.PixelsPerUnit) / 2
		vector.FillCircle(screen, x, y, radius, cfg.Yellow, true)

		// Facing
		fx, fy := toScreen(screen, tf.Position.Add(gamemath.Flatten(gamemath.Forward(tf.Rotation))))
		vector.StrokeLine(screen, x, y, fx, fy, 2, cfg.Yellow, true)
	})
}

func drawBox(screen *ebiten.Image, obj *components.ObjectData, c color.Color) {
	scale := float32(cfg.Demo.PixelsPerUnit) / components.BodyScale
	x, y := toScreen(screen, mgl32.Vec3{})
	vector.FillRect(screen,
		x+float32(obj.X)*scale, y+float32(obj.Y)*scale,
		float32(obj.W)*scale, float32(obj.H)*scale,
		c, false)
}

func drawCamera(e *ecs.ECS, screen *ebiten.Image) {
	camera, ok := cameraQuery.First(e.World)
	if !ok {
		return
	}
	tf := components.Transform.Get(camera)
	cx, cy := toScreen(screen, tf.Position)

	if target, ok := targetQuery.First(e.World); ok {
		tx, ty := toScreen(screen, components.Transform.Get(target).Position)
		vector.StrokeLine(screen, cx, cy, tx, ty, 1, withAlpha(cfg.White, 90), true)
	}

	fwd := gamemath.Forward(tf.Rotation)
	fx, fy := toScreen(screen, tf.Position.Add(fwd.Mul(forwardLength)))
	vector.StrokeLine(screen, cx, cy, fx, fy, 2, cfg.LightBlue, true)

	c := cfg.LightBlue
	if components.Camera.Get(camera).Zoom.SavedRadius != nil {
		c = cfg.Green
	}
	vector.FillCircle(screen, cx, cy, 6, c, true)
}

func drawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHUD {
		return
	}
	camera, ok := cameraQuery.First(e.World)
	if !ok {
		return
	}
	control := components.Camera.Get(camera)
	tf := components.Transform.Get(camera)

	// asin of the forward vector's height is the pitch below the horizon
	pitch := -math.Asin(float64(mgl32.Clamp(gamemath.Forward(tf.Rotation).Y(), -1, 1))) * 180 / math.Pi

	aim := "off"
	if control.Zoom.SavedRadius != nil {
		aim = "on"
	}
	lock := "free"
	if control.CursorLockActive {
		lock = "locked"
	}
	pad := "none"
	if id, ok := systems.ConnectedGamepad(e.World); ok {
		pad = fmt.Sprintf("#%d", id)
	}

	prefs := cfg.Preferences
	lines := []string{
		fmt.Sprintf("radius %.2f  [%.1f, %.1f]", control.Zoom.Radius, control.Zoom.Min, control.Zoom.Max),
		fmt.Sprintf("pitch %.0f deg", pitch),
		fmt.Sprintf("aim %s", aim),
		fmt.Sprintf("shoulder %s", systems.OffsetSide(control)),
		fmt.Sprintf("cursor %s (%s)", lock, control.Settings.CursorLock.Key),
		fmt.Sprintf("gamepad %s", pad),
		fmt.Sprintf("sensitivity %.2f (%s)", control.Settings.Orbit.MouseSensitivity.X(), prefs.SensitivityKey),
	}

	face := fonts.Small.Get()
	height := float32(len(lines)*hudLineHeight + hudMargin)
	vector.FillRect(screen, 0, 0, 220, height, cfg.BlackOverlay, false)
	for i, line := range lines {
		text.Draw(screen, line, face, hudMargin, hudMargin+(i+1)*hudLineHeight-4, cfg.White)
	}
}

func withAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
