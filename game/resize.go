package game

import "fmt"

// ViewportAdapter absorbs viewport dimension changes without corrupting a
// live match. A change pauses the controller (which snapshots the rally),
// waits out a debounce window so drag-resize bursts coalesce into one
// rescale, then recomputes every entity's geometry for the new dimensions and
// resumes if the match was running.
type ViewportAdapter struct {
	cfg   Config
	court *Court

	controller *MatchStateController
	ball       *Ball
	left       *Paddle
	right      *Paddle

	pending      Court
	debounceLeft float64
	resizing     bool
	wasActive    bool
}

// NewViewportAdapter wires the adapter to the entities it rescales.
func NewViewportAdapter(cfg Config, court *Court, controller *MatchStateController, ball *Ball, left, right *Paddle) *ViewportAdapter {
	return &ViewportAdapter{
		cfg:        cfg,
		court:      court,
		controller: controller,
		ball:       ball,
		left:       left,
		right:      right,
	}
}

// IsResizing reports whether a rescale is pending or in progress. Callers
// must not pause or resume the controller while this is true.
func (a *ViewportAdapter) IsResizing() bool {
	return a.resizing
}

// Resize requests a change to the given dimensions. Invalid dimensions are
// rejected and the last good geometry is retained. Repeated calls inside the
// debounce window restart it, so a burst applies once.
func (a *ViewportAdapter) Resize(width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("viewport %gx%g: dimensions must be positive", width, height)
	}
	if !a.resizing && width == a.court.Width && height == a.court.Height {
		return nil
	}

	if !a.resizing {
		// Suppress scoring and physics for the duration of the resize. A
		// countdown counts as active: it is re-run after the rescale.
		a.wasActive = a.controller.State() != StatePaused
		a.controller.Pause()
		a.resizing = true
	}

	a.pending = Court{Width: width, Height: height}
	a.debounceLeft = a.cfg.DebounceSeconds
	return nil
}

// Tick advances the debounce window and applies the pending rescale once the
// window closes, resuming the match if it was active before the resize.
func (a *ViewportAdapter) Tick(dt float64) {
	if !a.resizing {
		return
	}

	a.debounceLeft -= dt
	if a.debounceLeft > 0 {
		return
	}

	a.apply()
	a.resizing = false
	if a.wasActive {
		a.wasActive = false
		a.controller.Resume()
	}
}

// Cancel drops any pending rescale without applying it. Used on teardown.
func (a *ViewportAdapter) Cancel() {
	a.resizing = false
	a.wasActive = false
	a.debounceLeft = 0
}

// apply rescales every entity into the pending dimensions. Sizes and speeds
// come from the fixed viewport ratios; positions come from each entity's
// normalized fraction of the old dimensions, so repeated resizes do not
// drift.
func (a *ViewportAdapter) apply() {
	old := *a.court
	next := a.pending

	ballFracX := a.ball.Pos.X / old.Width
	ballFracY := a.ball.Pos.Y / old.Height
	leftFrac := a.left.CenterY() / old.Height
	rightFrac := a.right.CenterY() / old.Height

	*a.court = next

	a.ball.Rescale(next)
	a.ball.Pos = Vec2{X: ballFracX * next.Width, Y: ballFracY * next.Height}

	a.left.Rescale(next, leftFrac)
	a.right.Rescale(next, rightFrac)
}
