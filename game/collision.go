package game

// Face identifies which side of a paddle the ball contacted.
type Face int

const (
	FaceFront Face = iota
	FaceTop
	FaceBottom
)

// String returns the face name.
func (f Face) String() string {
	switch f {
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	default:
		return "front"
	}
}

// CollisionResult describes one ball-vs-paddle contact. It is a transient
// value; nothing stores it.
type CollisionResult struct {
	Collided   bool
	Face       Face
	Deflection float64
}

// CollisionResolver classifies ball-vs-paddle contacts. Resolve is
// deterministic: identical inputs always produce identical results.
type CollisionResolver struct {
	cfg Config
}

// NewCollisionResolver creates a resolver with the given tuning.
func NewCollisionResolver(cfg Config) *CollisionResolver {
	return &CollisionResolver{cfg: cfg}
}

// Resolve classifies the contact between a paddle and the ball, if any.
//
// A stationary ball never collides. Past the bounding-box test, the ball must
// be moving toward the wall the paddle guards and its center must have
// reached the paddle's face plane; a ball overlapping the face region with
// its center still outside, or one moving away, is passing the paddle and
// must not register a second hit on the same rally.
func (r *CollisionResolver) Resolve(p *Paddle, b *Ball) CollisionResult {
	if !b.Moving() {
		return CollisionResult{}
	}
	if !p.Bounds().Intersects(b.Bounds()) {
		return CollisionResult{}
	}

	front := p.FrontX()
	if p.Side == SideLeft {
		if b.Vel.X >= 0 || b.Pos.X > front {
			return CollisionResult{}
		}
	} else {
		if b.Vel.X <= 0 || b.Pos.X < front {
			return CollisionResult{}
		}
	}

	// Face classification, edges before front: a ball whose center is still
	// beyond the paddle's top or bottom edge grazed that edge.
	switch {
	case b.Vel.Y > 0 && b.Pos.Y < p.Pos.Y:
		return CollisionResult{Collided: true, Face: FaceTop}
	case b.Vel.Y < 0 && b.Pos.Y > p.Pos.Y+p.Height:
		return CollisionResult{Collided: true, Face: FaceBottom}
	}

	return CollisionResult{
		Collided:   true,
		Face:       FaceFront,
		Deflection: r.frontDeflection(p, b),
	}
}

// frontDeflection converts where the ball struck the face into an angular
// offset. Contact inside the edge zone at either end ramps linearly from zero
// at the zone boundary to the maximum at the very tip; the middle of the
// paddle deflects nothing.
func (r *CollisionResolver) frontDeflection(p *Paddle, b *Ball) float64 {
	rel := clamp((b.Pos.Y-p.Pos.Y)/p.Height, 0, 1)
	zone := r.cfg.EdgeZone
	if zone <= 0 {
		return 0
	}

	switch {
	case rel < zone:
		return -r.cfg.MaxDeflection * (zone - rel) / zone
	case rel > 1-zone:
		return r.cfg.MaxDeflection * (rel - (1 - zone)) / zone
	default:
		return 0
	}
}
