package game

import "math"

// FixedStep is the simulation timestep in seconds. The loop always advances
// state in whole steps of this size regardless of the display rate.
const FixedStep = 1.0 / 60.0

const (
	// maxFrameDelta clamps any single reported frame delta
	maxFrameDelta = 0.25

	// maxCatchUpSteps bounds the fixed steps run per frame after a stall
	maxCatchUpSteps = 5
)

// MatchLoop is the fixed-timestep driver for one match. An external per-frame
// tick feeds it wall-clock deltas; it accumulates them and advances the
// simulation in constant steps, exposing the fractional leftover as an
// interpolation alpha for rendering. The alpha never affects authoritative
// state.
type MatchLoop struct {
	court      *Court
	controller *MatchStateController
	ball       *Ball
	left       *Paddle
	right      *Paddle
	resolver   *CollisionResolver

	accumulator float64
	alpha       float64
	running     bool

	// Previous-step positions, kept for render interpolation
	prevBall   Vec2
	prevLeftY  float64
	prevRightY float64

	// pointScored is invoked after every settled point
	pointScored func()
}

// NewMatchLoop wires the loop to one match's entities.
func NewMatchLoop(court *Court, controller *MatchStateController, ball *Ball, left, right *Paddle, resolver *CollisionResolver) *MatchLoop {
	l := &MatchLoop{
		court:      court,
		controller: controller,
		ball:       ball,
		left:       left,
		right:      right,
		resolver:   resolver,
		running:    true,
	}
	l.capturePrev()
	return l
}

// SetPointScoredHook registers a callback run after each point settles.
func (l *MatchLoop) SetPointScoredHook(fn func()) {
	l.pointScored = fn
}

// Stop halts the loop; subsequent Advance calls do nothing. Part of match
// teardown, before entity references are released.
func (l *MatchLoop) Stop() {
	l.running = false
}

// Running reports whether the loop still advances.
func (l *MatchLoop) Running() bool {
	return l.running
}

// Alpha returns the fraction of a step left in the accumulator, in [0,1).
func (l *MatchLoop) Alpha() float64 {
	return l.alpha
}

// Advance feeds one frame's delta into the accumulator and runs as many fixed
// steps as fit, capped so a long stall cannot snowball into unbounded
// catch-up work. The excess backlog beyond the cap is dropped.
func (l *MatchLoop) Advance(dt float64) {
	if !l.running {
		return
	}
	if dt < 0 {
		dt = 0
	}
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	l.accumulator += dt
	steps := 0
	for l.accumulator >= FixedStep && steps < maxCatchUpSteps {
		l.step(FixedStep)
		l.accumulator -= FixedStep
		steps++
	}
	if l.accumulator >= FixedStep {
		l.accumulator = math.Mod(l.accumulator, FixedStep)
	}

	l.alpha = l.accumulator / FixedStep
}

// BallAt returns the ball position interpolated between the previous and
// current step.
func (l *MatchLoop) BallAt(alpha float64) Vec2 {
	return l.prevBall.Lerp(l.ball.Pos, clamp(alpha, 0, 1))
}

// PaddleYAt returns a paddle's top edge interpolated between steps.
func (l *MatchLoop) PaddleYAt(side Side, alpha float64) float64 {
	alpha = clamp(alpha, 0, 1)
	if side == SideLeft {
		return l.prevLeftY + (l.left.Pos.Y-l.prevLeftY)*alpha
	}
	return l.prevRightY + (l.right.Pos.Y-l.prevRightY)*alpha
}

// step runs one fixed simulation step: countdown bookkeeping first, then,
// only while playing, paddle input and movement, ball integration, walls,
// and paddle contact, finishing with point settlement when the ball died.
func (l *MatchLoop) step(dt float64) {
	l.capturePrev()

	l.controller.Tick(dt)
	if l.controller.State() != StatePlaying {
		return
	}

	court := *l.court
	l.left.UpdateIntent(dt, court, l.ball)
	l.right.UpdateIntent(dt, court, l.ball)
	l.left.Advance(dt, court)
	l.right.Advance(dt, court)

	l.ball.Advance(dt)
	l.ball.ResolveBounds(court)
	if l.ball.Destroyed {
		l.controller.OnPointScored()
		if l.pointScored != nil {
			l.pointScored()
		}
		return
	}

	l.left.ResolveCollision(l.ball, l.resolver)
	l.right.ResolveCollision(l.ball, l.resolver)
}

func (l *MatchLoop) capturePrev() {
	l.prevBall = l.ball.Pos
	l.prevLeftY = l.left.Pos.Y
	l.prevRightY = l.right.Pos.Y
}
