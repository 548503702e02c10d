package game

// Side identifies which wall a paddle guards.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns the side name for logs and result payloads.
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Intent is a paddle's movement decision for the current step.
type Intent int

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
)

// ControlMode records whether a paddle is driven by a person or a heuristic.
type ControlMode int

const (
	ControlHuman ControlMode = iota
	ControlAI
)

// Paddle is one player's paddle. X is fixed per side; only Y moves, and it is
// always clamped to the court.
type Paddle struct {
	Side    Side
	Pos     Vec2 // top-left corner
	Width   float64
	Height  float64
	Speed   float64 // pixels per second, derived from court height
	Score   int
	Intent  Intent
	Control ControlMode

	provider IntentProvider
	cfg      Config
}

// NewPaddle creates a paddle for one side, centered vertically. The provider
// decides the paddle's intent each step; nil means intent is set externally.
func NewPaddle(cfg Config, court Court, side Side, control ControlMode, provider IntentProvider) *Paddle {
	p := &Paddle{
		Side:     side,
		Control:  control,
		provider: provider,
		cfg:      cfg,
	}
	p.Rescale(court, 0.5)
	return p
}

// SetIntent sets the movement intent directly.
func (p *Paddle) SetIntent(i Intent) {
	p.Intent = i
}

// UpdateIntent asks the paddle's provider for this step's intent. Human
// providers read held keys; AI providers run the tracking heuristic.
func (p *Paddle) UpdateIntent(dt float64, court Court, ball *Ball) {
	if p.provider == nil {
		return
	}
	p.Intent = p.provider.Intent(dt, court, p, ball)
}

// Advance moves the paddle by speed × dt in the intent direction and clamps
// it into the court. The clamp runs unconditionally so the position invariant
// holds for any dt.
func (p *Paddle) Advance(dt float64, court Court) {
	switch p.Intent {
	case IntentUp:
		p.Pos.Y -= p.Speed * dt
	case IntentDown:
		p.Pos.Y += p.Speed * dt
	}
	p.Pos.Y = clamp(p.Pos.Y, 0, court.Height-p.Height)
}

// ResolveCollision checks the ball against this paddle and, on contact,
// repositions a front hit flush against the face and applies the hit to the
// ball. Flush repositioning stops a sub-frame tunnel from re-triggering the
// same collision next step.
func (p *Paddle) ResolveCollision(ball *Ball, resolver *CollisionResolver) {
	res := resolver.Resolve(p, ball)
	if !res.Collided {
		return
	}
	if res.Face == FaceFront {
		if p.Side == SideLeft {
			ball.Pos.X = p.FrontX() + ball.Radius
		} else {
			ball.Pos.X = p.FrontX() - ball.Radius
		}
	}
	ball.Hit(res.Face, res.Deflection)
}

// ResetPosition recenters the paddle vertically.
func (p *Paddle) ResetPosition(court Court) {
	p.Pos.Y = (court.Height - p.Height) / 2
}

// Rescale recomputes the paddle's viewport-derived geometry for a new court
// and places its center at the given fraction of the court height.
func (p *Paddle) Rescale(court Court, centerFrac float64) {
	p.Width = p.cfg.PaddleWidthRatio * court.Width
	p.Height = p.cfg.PaddleHeightRatio * court.Height
	p.Speed = p.cfg.PaddleSpeedRatio * court.Height

	margin := p.cfg.PaddleMarginRatio * court.Width
	if p.Side == SideLeft {
		p.Pos.X = margin
	} else {
		p.Pos.X = court.Width - margin - p.Width
	}
	p.Pos.Y = clamp(centerFrac*court.Height-p.Height/2, 0, court.Height-p.Height)
}

// CenterY returns the vertical center of the paddle.
func (p *Paddle) CenterY() float64 {
	return p.Pos.Y + p.Height/2
}

// FrontX returns the x coordinate of the face turned toward the court center.
func (p *Paddle) FrontX() float64 {
	if p.Side == SideLeft {
		return p.Pos.X + p.Width
	}
	return p.Pos.X
}

// Bounds returns the paddle's bounding box.
func (p *Paddle) Bounds() AABB {
	return AABB{
		MinX: p.Pos.X,
		MinY: p.Pos.Y,
		MaxX: p.Pos.X + p.Width,
		MaxY: p.Pos.Y + p.Height,
	}
}
