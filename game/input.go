package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// IntentProvider decides a paddle's movement intent for one simulation step.
type IntentProvider interface {
	Intent(dt float64, court Court, p *Paddle, ball *Ball) Intent
}

// KeyboardInput derives intent from held keys. Holding both keys cancels out
// to no movement.
type KeyboardInput struct {
	Up   ebiten.Key
	Down ebiten.Key
}

// NewKeyboardInput creates a keyboard provider with the given bindings.
func NewKeyboardInput(up, down ebiten.Key) *KeyboardInput {
	return &KeyboardInput{Up: up, Down: down}
}

// Intent maps the current key state to a movement intent.
func (k *KeyboardInput) Intent(dt float64, court Court, p *Paddle, ball *Ball) Intent {
	up := ebiten.IsKeyPressed(k.Up)
	down := ebiten.IsKeyPressed(k.Down)
	switch {
	case up == down:
		return IntentNone
	case up:
		return IntentUp
	default:
		return IntentDown
	}
}

// TrackingAI is the computer opponent. While the ball moves away it homes
// toward the vertical center to recover position; while the ball approaches
// it follows the ball's y with a half-step deadzone so it does not jitter.
// The deadzone makes it beatable on purpose; it does not predict.
type TrackingAI struct{}

// NewTrackingAI creates the heuristic provider.
func NewTrackingAI() *TrackingAI {
	return &TrackingAI{}
}

// Intent follows the ball or recenters, with a deadzone of half a step.
func (a *TrackingAI) Intent(dt float64, court Court, p *Paddle, ball *Ball) Intent {
	target := court.Height / 2
	if ball != nil && ball.Moving() && a.approaching(p, ball) {
		target = ball.Pos.Y
	}

	center := p.CenterY()
	deadzone := p.Speed * dt / 2
	if math.Abs(target-center) < deadzone {
		return IntentNone
	}
	if target < center {
		return IntentUp
	}
	return IntentDown
}

func (a *TrackingAI) approaching(p *Paddle, ball *Ball) bool {
	if p.Side == SideLeft {
		return ball.Vel.X < 0
	}
	return ball.Vel.X > 0
}
