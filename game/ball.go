package game

import (
	"math"
	"math/rand"
)

// Ball is the single ball of a match. It is created once at the court center
// and repositioned there after every point; it only ever leaves the court by
// crossing the left or right boundary, which destroys it.
type Ball struct {
	// Pos is the center of the ball in court coordinates
	Pos Vec2

	// Vel is the velocity in pixels per second. Zero only before launch.
	Vel Vec2

	// Radius in pixels, derived from the court width
	Radius float64

	// BaseSpeed in pixels per second, derived from the court width
	BaseSpeed float64

	// SpeedMultiplier is the rally-local speed ramp. Non-decreasing between
	// launches, clamped to the configured maximum.
	SpeedMultiplier float64

	// Destroyed is set when the ball crosses the left or right boundary
	Destroyed bool

	// ExitedLeft records which boundary destroyed the ball
	ExitedLeft bool

	cfg Config
	rng *rand.Rand
}

// BallState is a viewport-independent capture of a ball, used by pause
// snapshots and resizes. Position is stored as fractions of the court
// dimensions and velocity as a unit direction plus the multiplier.
type BallState struct {
	FracX, FracY float64
	Dir          Vec2
	Multiplier   float64
}

// NewBall creates the match ball at the center of the court, not yet moving.
func NewBall(cfg Config, court Court, rng *rand.Rand) *Ball {
	b := &Ball{cfg: cfg, rng: rng}
	b.Rescale(court)
	b.Reset(court)
	return b
}

// Reset repositions the ball at the court center with zero velocity, ready
// for the next launch.
func (b *Ball) Reset(court Court) {
	b.Pos = court.Center()
	b.Vel = Vec2{}
	b.SpeedMultiplier = 1
	b.Destroyed = false
	b.ExitedLeft = false
}

// Moving reports whether the ball has been launched.
func (b *Ball) Moving() bool {
	return b.Vel.X != 0 || b.Vel.Y != 0
}

// Speed returns the current velocity magnitude.
func (b *Ball) Speed() float64 {
	return b.Vel.Length()
}

// Launch serves the ball at a randomized diagonal: the configured base angle
// plus or minus the configured variation, mirrored horizontally at random so
// either player may receive first. A no-op while the ball is already moving;
// callers own the single-launch-per-point discipline.
func (b *Ball) Launch() {
	if b.Moving() {
		return
	}

	b.SpeedMultiplier = 1

	degrees := b.cfg.LaunchAngleBase + (b.rng.Float64()*2-1)*b.cfg.LaunchAngleVariation
	angle := degrees * math.Pi / 180

	dx := math.Cos(angle)
	dy := math.Sin(angle)
	if b.rng.Intn(2) == 0 {
		dx = -dx
	}
	if b.rng.Intn(2) == 0 {
		dy = -dy
	}

	b.Vel = Vec2{X: dx, Y: dy}.Scale(b.BaseSpeed)
}

// Advance integrates position by velocity. The caller gates this on the
// match being in the Playing state.
func (b *Ball) Advance(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// ResolveBounds reflects the ball off the top and bottom walls, with the
// usual speed bump, and destroys it once it has fully crossed the left or
// right boundary. Side walls never reflect.
func (b *Ball) ResolveBounds(court Court) {
	if b.Destroyed {
		return
	}

	if b.Pos.Y-b.Radius <= 0 && b.Vel.Y < 0 {
		b.Pos.Y = b.Radius
		b.Vel.Y = -b.Vel.Y
		b.Accelerate()
	} else if b.Pos.Y+b.Radius >= court.Height && b.Vel.Y > 0 {
		b.Pos.Y = court.Height - b.Radius
		b.Vel.Y = -b.Vel.Y
		b.Accelerate()
	}

	if b.Pos.X+b.Radius < 0 {
		b.Destroyed = true
		b.ExitedLeft = true
	} else if b.Pos.X-b.Radius > court.Width {
		b.Destroyed = true
		b.ExitedLeft = false
	}

	b.enforceSpeedFloor()
}

// Accelerate bumps the speed multiplier by the configured increment, clamped
// to the maximum, and recomputes velocity along the current direction. The
// direction is invariant here; only the magnitude changes.
func (b *Ball) Accelerate() {
	b.SpeedMultiplier = math.Min(b.SpeedMultiplier+b.cfg.SpeedIncrement, b.cfg.MaxSpeedMultiplier)
	b.setSpeed(b.BaseSpeed * b.SpeedMultiplier)
}

// Hit applies a collision result to the velocity. A front hit mirrors the
// approach through the vertical and bends the exit angle by the deflection;
// top and bottom hits mirror through the horizontal with the outward y-sign
// enforced. Every hit accelerates the ball.
func (b *Ball) Hit(face Face, deflection float64) {
	speed := b.Speed()
	if speed == 0 {
		return
	}

	switch face {
	case FaceFront:
		b.Vel.X = -b.Vel.X
		if deflection != 0 {
			// Exit angle measured off the horizontal; positive deflection
			// bends the ball downward.
			sign := 1.0
			if b.Vel.X < 0 {
				sign = -1.0
			}
			theta := math.Atan2(b.Vel.Y, math.Abs(b.Vel.X))
			theta = clamp(theta+deflection, -b.cfg.MaxExitAngle, b.cfg.MaxExitAngle)
			b.Vel.X = sign * speed * math.Cos(theta)
			b.Vel.Y = speed * math.Sin(theta)
		}
	case FaceTop:
		b.Vel.Y = -math.Abs(b.Vel.Y)
	case FaceBottom:
		b.Vel.Y = math.Abs(b.Vel.Y)
	}

	b.Accelerate()
}

// SaveState captures the ball in viewport-independent form.
func (b *Ball) SaveState(court Court) BallState {
	return BallState{
		FracX:      b.Pos.X / court.Width,
		FracY:      b.Pos.Y / court.Height,
		Dir:        b.Vel.Normalize(),
		Multiplier: b.SpeedMultiplier,
	}
}

// RestoreState places the ball back proportionally in the given court and
// rebuilds its velocity from the saved direction and multiplier.
func (b *Ball) RestoreState(s BallState, court Court) {
	b.Pos = Vec2{X: s.FracX * court.Width, Y: s.FracY * court.Height}
	b.SpeedMultiplier = clamp(s.Multiplier, 1, b.cfg.MaxSpeedMultiplier)
	b.Vel = s.Dir.Scale(b.BaseSpeed * b.SpeedMultiplier)
	b.Destroyed = false
	b.ExitedLeft = false
}

// Rescale recomputes the viewport-derived radius and base speed for a new
// court, keeping the current direction and multiplier.
func (b *Ball) Rescale(court Court) {
	b.Radius = b.cfg.BallRadiusRatio * court.Width
	b.BaseSpeed = b.cfg.BallSpeedRatio * court.Width
	if b.Moving() {
		b.setSpeed(b.BaseSpeed * b.SpeedMultiplier)
	}
}

// Bounds returns the ball's bounding box, the ball treated as a square
// centered on its circle.
func (b *Ball) Bounds() AABB {
	return AABB{
		MinX: b.Pos.X - b.Radius,
		MinY: b.Pos.Y - b.Radius,
		MaxX: b.Pos.X + b.Radius,
		MaxY: b.Pos.Y + b.Radius,
	}
}

// setSpeed rescales velocity to the given magnitude along the current
// direction. Does nothing for a stationary ball.
func (b *Ball) setSpeed(speed float64) {
	dir := b.Vel.Normalize()
	if dir == (Vec2{}) {
		return
	}
	b.Vel = dir.Scale(speed)
}

// enforceSpeedFloor rescales a moving ball back up to the minimum speed if a
// velocity change left it below the floor.
func (b *Ball) enforceSpeedFloor() {
	if !b.Moving() {
		return
	}
	floor := b.cfg.MinSpeedFactor * b.BaseSpeed
	if b.Speed() < floor {
		b.setSpeed(floor)
	}
}
