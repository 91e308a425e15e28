package components

import (
	"github.com/automoto/thirdperson/config"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// ZoomState is the orbit radius and its bounds. SavedRadius is non-nil
// exactly while an aim zoom owes a restore to the pre-aim radius.
type ZoomState struct {
	Min         float32
	Max         float32
	Radius      float32
	SavedRadius *float32
}

// Clamp returns r limited to the zoom bounds.
func (z ZoomState) Clamp(r float32) float32 {
	return mgl32.Clamp(r, z.Min, z.Max)
}

// OffsetState is the shoulder offset. Extreme holds the configured values;
// Current.X slides between the mode's end points while Current.Y stays at
// Extreme.Y.
type OffsetState struct {
	Current       mgl32.Vec2
	Extreme       mgl32.Vec2
	Transitioning bool // true while sliding toward the opposite end point
}

// CameraData is the per-camera control block.
type CameraData struct {
	Settings         config.CameraConfig
	Zoom             ZoomState
	Offset           OffsetState
	CursorLockActive bool
}

// NewCameraData seeds the runtime state from a configuration.
func NewCameraData(cfg config.CameraConfig) CameraData {
	offset := mgl32.Vec2{cfg.Offset.X, cfg.Offset.Y}
	return CameraData{
		Settings: cfg,
		Zoom: ZoomState{
			Min:    cfg.Zoom.Min,
			Max:    cfg.Zoom.Max,
			Radius: cfg.InitialRadius(),
		},
		Offset: OffsetState{
			Current: offset,
			Extreme: offset,
		},
		CursorLockActive: cfg.CursorLock.StartActive,
	}
}

// Reconfigure swaps in new settings while keeping the runtime state
// consistent with them.
func (c *CameraData) Reconfigure(cfg config.CameraConfig) {
	c.Settings = cfg
	c.Zoom.Min = cfg.Zoom.Min
	c.Zoom.Max = cfg.Zoom.Max
	if c.Zoom.SavedRadius != nil {
		saved := c.Zoom.Clamp(*c.Zoom.SavedRadius)
		c.Zoom.SavedRadius = &saved
	} else {
		c.Zoom.Radius = c.Zoom.Clamp(c.Zoom.Radius)
	}

	extreme := mgl32.Vec2{cfg.Offset.X, cfg.Offset.Y}
	if extreme != c.Offset.Extreme {
		c.Offset = OffsetState{Current: extreme, Extreme: extreme}
	}
}

var Camera = donburi.NewComponentType[CameraData]()
