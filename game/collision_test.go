package game

import (
	"math"
	"testing"
)

func TestResolveStationaryBallNeverCollides(t *testing.T) {
	cfg := DefaultConfig()
	r := NewCollisionResolver(cfg)

	p := &Paddle{Side: SideLeft, Pos: Vec2{X: 10, Y: 100}, Width: 10, Height: 100}
	b := &Ball{Pos: Vec2{X: 15, Y: 150}, Radius: 5} // overlapping, zero velocity

	if res := r.Resolve(p, b); res.Collided {
		t.Errorf("stationary ball reported a collision: %+v", res)
	}
}

func TestResolveRejectsBallPastTheFacePlane(t *testing.T) {
	cfg := DefaultConfig()
	r := NewCollisionResolver(cfg)

	// The ball overlaps the left paddle's face but its center is already past
	// the face plane while moving toward the left wall: it beat the paddle and
	// is on its way out.
	p := &Paddle{Side: SideLeft, Pos: Vec2{X: 10, Y: 100}, Width: 10, Height: 100}
	b := &Ball{Pos: Vec2{X: 21, Y: 150}, Radius: 2.5, Vel: Vec2{X: -50, Y: 0}}

	if res := r.Resolve(p, b); res.Collided {
		t.Errorf("ball past the face plane reported a collision: %+v", res)
	}
}

func TestResolveRejectsBallMovingAway(t *testing.T) {
	cfg := DefaultConfig()
	r := NewCollisionResolver(cfg)

	p := &Paddle{Side: SideLeft, Pos: Vec2{X: 10, Y: 100}, Width: 10, Height: 100}
	b := &Ball{Pos: Vec2{X: 19, Y: 150}, Radius: 2.5, Vel: Vec2{X: 50, Y: 0}}

	if res := r.Resolve(p, b); res.Collided {
		t.Errorf("ball moving away reported a collision: %+v", res)
	}
}

func TestResolveFrontHitAtCenter(t *testing.T) {
	cfg := DefaultConfig()
	r := NewCollisionResolver(cfg)

	p := &Paddle{Side: SideLeft, Pos: Vec2{X: 10, Y: 100}, Width: 10, Height: 100}
	b := &Ball{Pos: Vec2{X: 19, Y: 150}, Radius: 2.5, Vel: Vec2{X: -50, Y: 0}}

	res := r.Resolve(p, b)
	if !res.Collided || res.Face != FaceFront {
		t.Fatalf("expected a front hit, got %+v", res)
	}
	if res.Deflection != 0 {
		t.Errorf("center contact should not deflect, got %g", res.Deflection)
	}
}

func TestResolveRightPaddleMirrorsTheGate(t *testing.T) {
	cfg := DefaultConfig()
	r := NewCollisionResolver(cfg)

	p := &Paddle{Side: SideRight, Pos: Vec2{X: 780, Y: 100}, Width: 10, Height: 100}

	passing := &Ball{Pos: Vec2{X: 779, Y: 150}, Radius: 2.5, Vel: Vec2{X: 50, Y: 0}}
	if res := r.Resolve(p, passing); res.Collided {
		t.Errorf("ball short of the right face plane collided: %+v", res)
	}

	hitting := &Ball{Pos: Vec2{X: 781, Y: 150}, Radius: 2.5, Vel: Vec2{X: 50, Y: 0}}
	if res := r.Resolve(p, hitting); !res.Collided || res.Face != FaceFront {
		t.Errorf("expected a front hit on the right paddle, got %+v", res)
	}
}

func TestResolveEdgeDeflectionRamp(t *testing.T) {
	cfg := DefaultConfig()
	r := NewCollisionResolver(cfg)
	p := &Paddle{Side: SideLeft, Pos: Vec2{X: 10, Y: 100}, Width: 10, Height: 100}

	cases := []struct {
		name  string
		ballY float64
		want  float64
	}{
		{"very top", 100, -cfg.MaxDeflection},
		{"half into top zone", 100 + cfg.EdgeZone*100/2, -cfg.MaxDeflection / 2},
		{"middle", 150, 0},
		{"half into bottom zone", 200 - cfg.EdgeZone*100/2, cfg.MaxDeflection / 2},
		{"very bottom", 200, cfg.MaxDeflection},
	}
	for _, c := range cases {
		b := &Ball{Pos: Vec2{X: 19, Y: c.ballY}, Radius: 2.5, Vel: Vec2{X: -50, Y: 0}}
		res := r.Resolve(p, b)
		if !res.Collided || res.Face != FaceFront {
			t.Fatalf("%s: expected a front hit, got %+v", c.name, res)
		}
		if math.Abs(res.Deflection-c.want) > 1e-9 {
			t.Errorf("%s: deflection = %g, want %g", c.name, res.Deflection, c.want)
		}
	}
}

func TestResolveEdgeFacesBeforeFront(t *testing.T) {
	cfg := DefaultConfig()
	r := NewCollisionResolver(cfg)
	p := &Paddle{Side: SideLeft, Pos: Vec2{X: 10, Y: 100}, Width: 10, Height: 100}

	// Center above the paddle's top edge, moving down: a top graze.
	top := &Ball{Pos: Vec2{X: 15, Y: 95}, Radius: 10, Vel: Vec2{X: -30, Y: 40}}
	if res := r.Resolve(p, top); !res.Collided || res.Face != FaceTop {
		t.Errorf("expected a top-face graze, got %+v", res)
	}

	// Center below the bottom edge, moving up: a bottom graze.
	bottom := &Ball{Pos: Vec2{X: 15, Y: 205}, Radius: 10, Vel: Vec2{X: -30, Y: -40}}
	if res := r.Resolve(p, bottom); !res.Collided || res.Face != FaceBottom {
		t.Errorf("expected a bottom-face graze, got %+v", res)
	}
}

func TestResolveIsDeterministicAndPure(t *testing.T) {
	cfg := DefaultConfig()
	r := NewCollisionResolver(cfg)

	p := &Paddle{Side: SideLeft, Pos: Vec2{X: 10, Y: 100}, Width: 10, Height: 100}
	b := &Ball{Pos: Vec2{X: 19, Y: 110}, Radius: 2.5, Vel: Vec2{X: -50, Y: 20}}

	ballBefore := *b
	paddleBefore := *p

	first := r.Resolve(p, b)
	second := r.Resolve(p, b)
	if first != second {
		t.Errorf("identical inputs produced %+v then %+v", first, second)
	}
	if *b != ballBefore {
		t.Errorf("Resolve mutated the ball: %+v -> %+v", ballBefore, *b)
	}
	if *p != paddleBefore {
		t.Errorf("Resolve mutated the paddle: %+v -> %+v", paddleBefore, *p)
	}
}
