package game

import "math"

// MatchState is the single mode a match is in. Exactly one state is active at
// a time; combinations like "playing while counting down" are unrepresentable.
type MatchState int

const (
	StatePaused MatchState = iota
	StateCountdown
	StatePlaying
)

// String returns the state name.
func (s MatchState) String() string {
	switch s {
	case StateCountdown:
		return "countdown"
	case StatePlaying:
		return "playing"
	default:
		return "paused"
	}
}

// Snapshot is a viewport-independent capture of the live entities, taken on
// pause so that a later resume or resize restores the match proportionally.
type Snapshot struct {
	Ball            BallState
	LeftCenterFrac  float64
	RightCenterFrac float64
}

// MatchStateController owns the match state machine: the countdown before
// every serve, pause and resume, scoring, and the snapshot used to restore a
// paused rally.
//
// The countdown is a dt-accumulated ticker advanced by Tick, not a goroutine
// timer, so canceling it is synchronous with the state enum. A generation
// counter is bumped on every start and cancel; a completion only fires if its
// generation is still current, so a superseded countdown can never launch.
type MatchStateController struct {
	cfg   Config
	court *Court

	ball  *Ball
	left  *Paddle
	right *Paddle

	state         MatchState
	countdownLeft float64
	generation    uint64

	snapshot    *Snapshot
	fromSnapshot bool
}

// NewMatchStateController creates the controller in the Paused state; the
// match has not started until StartMatch or Resume is called.
func NewMatchStateController(cfg Config, court *Court, ball *Ball, left, right *Paddle) *MatchStateController {
	return &MatchStateController{
		cfg:   cfg,
		court: court,
		ball:  ball,
		left:  left,
		right: right,
		state: StatePaused,
	}
}

// State returns the current match state.
func (c *MatchStateController) State() MatchState {
	return c.state
}

// Scores returns the left and right paddle scores.
func (c *MatchStateController) Scores() (left, right int) {
	return c.left.Score, c.right.Score
}

// HasSnapshot reports whether a paused rally is waiting to be restored.
func (c *MatchStateController) HasSnapshot() bool {
	return c.snapshot != nil
}

// StartMatch begins a fresh countdown from any state. When the countdown
// completes the ball is launched anew and play begins.
func (c *MatchStateController) StartMatch() {
	c.startCountdown(false)
}

// Pause freezes the match. From Playing it captures a snapshot and zeroes the
// ball's velocity; from Countdown it cancels the countdown, discarding its
// progress. Already paused is a no-op.
func (c *MatchStateController) Pause() {
	switch c.state {
	case StatePlaying:
		c.captureSnapshot()
		c.ball.Vel = Vec2{}
		c.state = StatePaused
	case StateCountdown:
		c.generation++
		c.countdownLeft = 0
		c.state = StatePaused
	}
}

// Resume re-serves a paused match through a fresh countdown. If a snapshot
// exists the countdown's completion restores it; on the very first start,
// with nothing to restore, Resume is equivalent to StartMatch. Any state but
// Paused is a no-op.
func (c *MatchStateController) Resume() {
	if c.state != StatePaused {
		return
	}
	c.startCountdown(c.snapshot != nil)
}

// OnPointScored settles a destroyed ball: the far side scores, everything
// returns to center, the snapshot is dropped, and the next rally's countdown
// begins.
func (c *MatchStateController) OnPointScored() {
	if c.ball.ExitedLeft {
		c.right.Score++
	} else {
		c.left.Score++
	}

	c.ball.Reset(*c.court)
	c.left.ResetPosition(*c.court)
	c.right.ResetPosition(*c.court)
	c.snapshot = nil

	c.generation++
	c.state = StatePaused
	c.StartMatch()
}

// ForceStop cancels any countdown and forces Paused. Used on teardown.
func (c *MatchStateController) ForceStop() {
	c.generation++
	c.countdownLeft = 0
	c.state = StatePaused
}

// Tick advances the countdown. A completed countdown either restores the
// snapshot or launches a fresh serve, then enters Playing.
func (c *MatchStateController) Tick(dt float64) {
	if c.state != StateCountdown {
		return
	}

	gen := c.generation
	c.countdownLeft -= dt
	if c.countdownLeft > 0 {
		return
	}
	if gen != c.generation {
		return
	}

	if c.fromSnapshot && c.snapshot != nil {
		c.restoreSnapshot()
	} else {
		c.ball.Launch()
	}
	c.state = StatePlaying
}

// CountdownRemaining returns the current countdown display value: the ticks
// 3..1, then 0 for the GO beat. Only meaningful while in Countdown.
func (c *MatchStateController) CountdownRemaining() int {
	if c.state != StateCountdown {
		return 0
	}
	remaining := int(math.Ceil(c.countdownLeft - c.cfg.GoBeatSeconds))
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (c *MatchStateController) startCountdown(fromSnapshot bool) {
	c.generation++
	c.fromSnapshot = fromSnapshot
	c.countdownLeft = float64(c.cfg.CountdownSeconds) + c.cfg.GoBeatSeconds
	c.state = StateCountdown
}

func (c *MatchStateController) captureSnapshot() {
	c.snapshot = &Snapshot{
		Ball:            c.ball.SaveState(*c.court),
		LeftCenterFrac:  c.left.CenterY() / c.court.Height,
		RightCenterFrac: c.right.CenterY() / c.court.Height,
	}
}

func (c *MatchStateController) restoreSnapshot() {
	court := *c.court
	s := c.snapshot
	c.ball.RestoreState(s.Ball, court)
	c.left.Pos.Y = clamp(s.LeftCenterFrac*court.Height-c.left.Height/2, 0, court.Height-c.left.Height)
	c.right.Pos.Y = clamp(s.RightCenterFrac*court.Height-c.right.Height/2, 0, court.Height-c.right.Height)
}
