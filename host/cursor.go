package host

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// CursorApplier captures or releases the OS cursor to match the camera's
// cursor lock. It only calls into ebiten when the desired mode changes.
type CursorApplier struct {
	poller  *Poller
	applied bool
	locked  bool
}

// NewCursorApplier returns an applier that resets poller's cursor tracking
// whenever the mode changes. poller may be nil.
func NewCursorApplier(poller *Poller) *CursorApplier {
	return &CursorApplier{poller: poller}
}

// Apply sets the cursor mode for locked and reports whether it changed.
func (c *CursorApplier) Apply(locked bool) bool {
	if c.applied && c.locked == locked {
		return false
	}
	c.applied, c.locked = true, locked

	if locked {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
	if c.poller != nil {
		c.poller.ResetCursor()
	}
	return true
}
