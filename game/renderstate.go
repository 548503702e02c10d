package game

import "image/color"

// PaddleRect is a paddle's drawable rectangle and score.
type PaddleRect struct {
	X, Y   float64
	Width  float64
	Height float64
	Score  int
}

// RenderState is the value snapshot the render layer consumes. Positions are
// interpolated by the alpha passed to Engine.Render; everything else mirrors
// authoritative state.
type RenderState struct {
	CourtWidth  float64
	CourtHeight float64

	BallX, BallY float64
	BallRadius   float64
	BallMoving   bool

	Left  PaddleRect
	Right PaddleRect

	State MatchState

	// Countdown is the current display tick while State is Countdown:
	// 3..1, then 0 for the GO beat.
	Countdown int

	Player1Name  string
	Player2Name  string
	Player1Color color.RGBA
	Player2Color color.RGBA
}
