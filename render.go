package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pongcourt/game"
)

var (
	colorBackground = color.NRGBA{R: 8, G: 10, B: 24, A: 255}
	colorCourtLine  = color.NRGBA{R: 70, G: 80, B: 110, A: 255}
	colorBall       = color.NRGBA{R: 235, G: 235, B: 235, A: 255}
	colorDemoTint   = color.NRGBA{R: 255, G: 255, B: 255, A: 40}
)

const centerLineDash = 14.0

// drawMatch draws one match's court, paddles and ball. Dimmed matches (the
// background demo) are drawn with a faint uniform tint instead of player
// colors.
func drawMatch(screen *ebiten.Image, rs game.RenderState, dimmed bool) {
	left := paddleColor(rs.Player1Color, dimmed)
	right := paddleColor(rs.Player2Color, dimmed)
	ball := color.Color(colorBall)
	if dimmed {
		ball = colorDemoTint
	} else {
		drawCenterLine(screen, rs)
	}

	vector.DrawFilledRect(screen,
		float32(rs.Left.X), float32(rs.Left.Y),
		float32(rs.Left.Width), float32(rs.Left.Height),
		left, true)
	vector.DrawFilledRect(screen,
		float32(rs.Right.X), float32(rs.Right.Y),
		float32(rs.Right.Width), float32(rs.Right.Height),
		right, true)

	vector.DrawFilledCircle(screen,
		float32(rs.BallX), float32(rs.BallY),
		float32(rs.BallRadius), ball, true)
}

func drawCenterLine(screen *ebiten.Image, rs game.RenderState) {
	x := float32(rs.CourtWidth / 2)
	for y := 0.0; y < rs.CourtHeight; y += centerLineDash * 2 {
		vector.StrokeLine(screen, x, float32(y), x, float32(y+centerLineDash), 2, colorCourtLine, false)
	}
}

func paddleColor(c color.RGBA, dimmed bool) color.Color {
	if dimmed {
		return colorDemoTint
	}
	if c == (color.RGBA{}) {
		return colorBall
	}
	return c
}
