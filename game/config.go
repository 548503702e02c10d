package game

// Config holds all engine tunables. Entity sizes and speeds are expressed as
// fractions of the viewport so that a live match can be rescaled to new
// dimensions without changing how it plays.
type Config struct {
	// CourtWidth is the initial viewport width in pixels
	CourtWidth float64

	// CourtHeight is the initial viewport height in pixels
	CourtHeight float64

	// PaddleWidthRatio is the paddle width as a fraction of the court width
	PaddleWidthRatio float64

	// PaddleHeightRatio is the paddle height as a fraction of the court height
	PaddleHeightRatio float64

	// PaddleMarginRatio is the gap between a paddle and its wall, as a
	// fraction of the court width
	PaddleMarginRatio float64

	// PaddleSpeedRatio is the paddle speed per second as a fraction of the
	// court height
	PaddleSpeedRatio float64

	// BallRadiusRatio is the ball radius as a fraction of the court width
	BallRadiusRatio float64

	// BallSpeedRatio is the base ball speed per second as a fraction of the
	// court width
	BallSpeedRatio float64

	// LaunchAngleBase is the serve angle off the horizontal, in degrees
	LaunchAngleBase float64

	// LaunchAngleVariation is the random spread around LaunchAngleBase, in degrees
	LaunchAngleVariation float64

	// SpeedIncrement is added to the speed multiplier on every hit or wall bounce
	SpeedIncrement float64

	// MaxSpeedMultiplier caps the rally speed ramp
	MaxSpeedMultiplier float64

	// MinSpeedFactor floors the ball speed at this fraction of the base speed,
	// so a degenerate rally can never stall
	MinSpeedFactor float64

	// EdgeZone is the fraction of the paddle height, at each end, that
	// produces a deflection on contact
	EdgeZone float64

	// MaxDeflection is the largest edge-hit deflection, in radians
	MaxDeflection float64

	// MaxExitAngle caps the ball's angle off the horizontal after a front
	// hit, in radians
	MaxExitAngle float64

	// CountdownSeconds is the number of whole-second ticks before a serve (3, 2, 1)
	CountdownSeconds int

	// GoBeatSeconds is how long the final GO beat lasts before play begins
	GoBeatSeconds float64

	// DebounceSeconds is the quiet period that must pass before a burst of
	// resize events is applied
	DebounceSeconds float64

	// WinningScore ends the match when either paddle reaches it
	WinningScore int

	// Seed for the serve-angle RNG. Zero picks a time-based seed.
	Seed int64
}

// DefaultConfig returns the tuning the game ships with.
func DefaultConfig() Config {
	return Config{
		CourtWidth:  800,
		CourtHeight: 600,

		PaddleWidthRatio:  0.02,
		PaddleHeightRatio: 0.22,
		PaddleMarginRatio: 0.015,
		PaddleSpeedRatio:  0.9,

		BallRadiusRatio: 0.012,
		BallSpeedRatio:  0.45,

		LaunchAngleBase:      30.0,
		LaunchAngleVariation: 15.0,

		SpeedIncrement:     0.06,
		MaxSpeedMultiplier: 2.5,
		MinSpeedFactor:     0.75,

		EdgeZone:      0.25,
		MaxDeflection: 0.45, // ~26 degrees
		MaxExitAngle:  1.2,  // ~69 degrees

		CountdownSeconds: 3,
		GoBeatSeconds:    1.0,
		DebounceSeconds:  0.25,

		WinningScore: 5,
	}
}

// Court is the viewport geometry every entity is laid out in. It changes only
// through the ViewportAdapter.
type Court struct {
	Width  float64
	Height float64
}

// Center returns the middle of the court.
func (c Court) Center() Vec2 {
	return Vec2{X: c.Width / 2, Y: c.Height / 2}
}
