package game

import (
	"math"
	"math/rand"
	"testing"
)

func newTestBall(seed int64) (*Ball, Court) {
	cfg := DefaultConfig()
	court := Court{Width: cfg.CourtWidth, Height: cfg.CourtHeight}
	return NewBall(cfg, court, rand.New(rand.NewSource(seed))), court
}

func TestLaunchSpeedEqualsBaseSpeed(t *testing.T) {
	for seed := int64(1); seed <= 100; seed++ {
		b, _ := newTestBall(seed)
		b.Launch()

		if got := b.Speed(); math.Abs(got-b.BaseSpeed) > 1e-9 {
			t.Fatalf("seed %d: launch speed = %g, want base speed %g", seed, got, b.BaseSpeed)
		}
		if b.SpeedMultiplier != 1 {
			t.Fatalf("seed %d: multiplier = %g after launch, want 1", seed, b.SpeedMultiplier)
		}
	}
}

func TestLaunchAngleWithinWindow(t *testing.T) {
	cfg := DefaultConfig()
	minTan := math.Tan((cfg.LaunchAngleBase - cfg.LaunchAngleVariation) * math.Pi / 180)
	maxTan := math.Tan((cfg.LaunchAngleBase + cfg.LaunchAngleVariation) * math.Pi / 180)

	for seed := int64(1); seed <= 100; seed++ {
		b, _ := newTestBall(seed)
		b.Launch()

		if b.Vel.X == 0 || b.Vel.Y == 0 {
			t.Fatalf("seed %d: launch produced an axis-aligned serve %+v", seed, b.Vel)
		}
		ratio := math.Abs(b.Vel.Y / b.Vel.X)
		if ratio < minTan-1e-9 || ratio > maxTan+1e-9 {
			t.Fatalf("seed %d: serve slope %g outside [%g, %g]", seed, ratio, minTan, maxTan)
		}
	}
}

func TestLaunchWhileMovingIsNoop(t *testing.T) {
	b, _ := newTestBall(7)
	b.Launch()
	before := b.Vel

	b.Launch()
	if b.Vel != before {
		t.Errorf("second launch changed velocity from %+v to %+v", before, b.Vel)
	}
}

func TestLaunchServesBothDirections(t *testing.T) {
	var left, right bool
	for seed := int64(1); seed <= 200 && !(left && right); seed++ {
		b, _ := newTestBall(seed)
		b.Launch()
		if b.Vel.X < 0 {
			left = true
		} else {
			right = true
		}
	}
	if !left || !right {
		t.Errorf("launch never mirrored: left=%v right=%v", left, right)
	}
}

func TestAccelerateMonotonicAndClamped(t *testing.T) {
	b, _ := newTestBall(3)
	b.Launch()

	prev := b.SpeedMultiplier
	for i := 0; i < 100; i++ {
		b.Accelerate()
		if b.SpeedMultiplier < prev {
			t.Fatalf("multiplier decreased: %g -> %g", prev, b.SpeedMultiplier)
		}
		prev = b.SpeedMultiplier
	}

	if b.SpeedMultiplier != b.cfg.MaxSpeedMultiplier {
		t.Errorf("multiplier = %g after 100 accelerations, want cap %g", b.SpeedMultiplier, b.cfg.MaxSpeedMultiplier)
	}
	want := b.BaseSpeed * b.cfg.MaxSpeedMultiplier
	if got := b.Speed(); math.Abs(got-want) > 1e-9 {
		t.Errorf("speed = %g at cap, want %g", got, want)
	}
}

func TestAccelerateKeepsDirection(t *testing.T) {
	b, _ := newTestBall(4)
	b.Launch()
	dir := b.Vel.Normalize()

	b.Accelerate()
	after := b.Vel.Normalize()
	if math.Abs(dir.X-after.X) > 1e-12 || math.Abs(dir.Y-after.Y) > 1e-12 {
		t.Errorf("acceleration changed direction from %+v to %+v", dir, after)
	}
}

func TestResolveBoundsReflectsTopAndBottom(t *testing.T) {
	b, court := newTestBall(5)
	b.Vel = Vec2{X: 100, Y: -200}
	b.SpeedMultiplier = 1
	b.Pos = Vec2{X: 400, Y: b.Radius - 1}

	b.ResolveBounds(court)
	if b.Vel.Y <= 0 {
		t.Errorf("top wall should reflect dy downward, got %g", b.Vel.Y)
	}
	if b.Pos.Y != b.Radius {
		t.Errorf("ball should sit flush under the top wall, y=%g want %g", b.Pos.Y, b.Radius)
	}
	if b.Destroyed {
		t.Error("top wall must never destroy the ball")
	}

	b.Pos = Vec2{X: 400, Y: court.Height - b.Radius + 1}
	b.Vel = Vec2{X: 100, Y: 200}
	b.ResolveBounds(court)
	if b.Vel.Y >= 0 {
		t.Errorf("bottom wall should reflect dy upward, got %g", b.Vel.Y)
	}
	if b.Destroyed {
		t.Error("bottom wall must never destroy the ball")
	}
}

func TestResolveBoundsDestroysOnSideExit(t *testing.T) {
	b, court := newTestBall(6)
	b.Vel = Vec2{X: -100, Y: 0}
	b.Pos = Vec2{X: -b.Radius - 1, Y: 300}

	b.ResolveBounds(court)
	if !b.Destroyed || !b.ExitedLeft {
		t.Errorf("left exit: destroyed=%v exitedLeft=%v, want true/true", b.Destroyed, b.ExitedLeft)
	}

	b2, _ := newTestBall(6)
	b2.Vel = Vec2{X: 100, Y: 0}
	b2.Pos = Vec2{X: court.Width + b2.Radius + 1, Y: 300}
	b2.ResolveBounds(court)
	if !b2.Destroyed || b2.ExitedLeft {
		t.Errorf("right exit: destroyed=%v exitedLeft=%v, want true/false", b2.Destroyed, b2.ExitedLeft)
	}
}

func TestSpeedFloorRescuesStalledBall(t *testing.T) {
	b, court := newTestBall(8)
	b.Vel = Vec2{X: 1, Y: 0} // far below the floor
	b.Pos = court.Center()

	b.ResolveBounds(court)

	floor := b.cfg.MinSpeedFactor * b.BaseSpeed
	if got := b.Speed(); math.Abs(got-floor) > 1e-9 {
		t.Errorf("speed = %g after floor enforcement, want %g", got, floor)
	}
	if b.Vel.X <= 0 {
		t.Error("floor enforcement must not change direction")
	}
}

func TestHitFrontMirrorsHorizontally(t *testing.T) {
	b, _ := newTestBall(9)
	b.Launch()
	if b.Vel.X > 0 {
		b.Vel.X = -b.Vel.X // force a leftward approach
	}
	approachY := b.Vel.Y

	b.Hit(FaceFront, 0)
	if b.Vel.X <= 0 {
		t.Errorf("front hit should mirror dx to positive, got %g", b.Vel.X)
	}
	if math.Signbit(b.Vel.Y) != math.Signbit(approachY) {
		t.Errorf("front hit without deflection should keep the vertical sign")
	}
}

func TestHitTopAndBottomEnforceOutwardSign(t *testing.T) {
	b, _ := newTestBall(10)
	b.Vel = Vec2{X: 100, Y: 200}
	b.Hit(FaceTop, 0)
	if b.Vel.Y >= 0 {
		t.Errorf("top-face hit must exit upward, dy=%g", b.Vel.Y)
	}

	b.Vel = Vec2{X: 100, Y: -200}
	b.Hit(FaceBottom, 0)
	if b.Vel.Y <= 0 {
		t.Errorf("bottom-face hit must exit downward, dy=%g", b.Vel.Y)
	}
}

func TestHitDeflectionRespectsExitAngleCap(t *testing.T) {
	b, _ := newTestBall(11)
	b.Vel = Vec2{X: -300, Y: -200}

	b.Hit(FaceFront, b.cfg.MaxDeflection)
	theta := math.Atan2(b.Vel.Y, math.Abs(b.Vel.X))
	if math.Abs(theta) > b.cfg.MaxExitAngle+1e-9 {
		t.Errorf("exit angle %g exceeds cap %g", theta, b.cfg.MaxExitAngle)
	}
}

func TestSaveRestoreRoundTrip(t *testing.T) {
	b, court := newTestBall(12)
	b.Launch()
	b.Accelerate()
	b.Accelerate()
	b.Pos = Vec2{X: 123.4, Y: 456.7}

	wantPos := b.Pos
	wantVel := b.Vel
	wantMult := b.SpeedMultiplier

	state := b.SaveState(court)
	b.Reset(court)
	b.RestoreState(state, court)

	if math.Abs(b.Pos.X-wantPos.X) > 1e-9 || math.Abs(b.Pos.Y-wantPos.Y) > 1e-9 {
		t.Errorf("position round trip: got %+v, want %+v", b.Pos, wantPos)
	}
	if math.Abs(b.Vel.X-wantVel.X) > 1e-9 || math.Abs(b.Vel.Y-wantVel.Y) > 1e-9 {
		t.Errorf("velocity round trip: got %+v, want %+v", b.Vel, wantVel)
	}
	if b.SpeedMultiplier != wantMult {
		t.Errorf("multiplier round trip: got %g, want %g", b.SpeedMultiplier, wantMult)
	}
}

func TestRestoreIntoDifferentCourtPreservesFractions(t *testing.T) {
	b, court := newTestBall(13)
	b.Launch()
	b.Pos = Vec2{X: 400, Y: 300} // center of 800x600

	state := b.SaveState(court)

	wide := Court{Width: 1600, Height: 600}
	b.Rescale(wide)
	b.RestoreState(state, wide)

	if b.Pos.X != 800 || b.Pos.Y != 300 {
		t.Errorf("restored position = %+v, want {800 300}", b.Pos)
	}
	want := b.BaseSpeed * b.SpeedMultiplier
	if got := b.Speed(); math.Abs(got-want) > 1e-9 {
		t.Errorf("restored speed = %g, want %g", got, want)
	}
}
