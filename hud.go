package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"pongcourt/game"
)

var hudFace font.Face = basicfont.Face7x13

const (
	hudScoreMarginY  = 28
	hudBannerScale   = 3.0
	hudCountdownScale = 5.0
)

// drawHUD draws the scores, player names, and whatever banner the current
// state calls for: the countdown digits, GO, or the paused notice.
func drawHUD(screen *ebiten.Image, rs game.RenderState, winner *game.Result) {
	w := int(rs.CourtWidth)

	name1 := rs.Player1Name
	if name1 == "" {
		name1 = "Player 1"
	}
	name2 := rs.Player2Name
	if name2 == "" {
		name2 = "Player 2"
	}

	leftLabel := fmt.Sprintf("%s  %d", name1, rs.Left.Score)
	rightLabel := fmt.Sprintf("%d  %s", rs.Right.Score, name2)
	text.Draw(screen, leftLabel, hudFace, w/4-textWidth(leftLabel)/2, hudScoreMarginY, colorBall)
	text.Draw(screen, rightLabel, hudFace, 3*w/4-textWidth(rightLabel)/2, hudScoreMarginY, colorBall)

	if winner != nil {
		name := name1
		if winner.Winner == game.SideRight {
			name = name2
		}
		drawBanner(screen, rs, fmt.Sprintf("%s wins!", name), hudBannerScale)
		drawSubBanner(screen, rs, "press R to play again")
		return
	}

	switch rs.State {
	case game.StateCountdown:
		label := "GO"
		if rs.Countdown > 0 {
			label = fmt.Sprintf("%d", rs.Countdown)
		}
		drawBanner(screen, rs, label, hudCountdownScale)
	case game.StatePaused:
		drawBanner(screen, rs, "paused", hudBannerScale)
		drawSubBanner(screen, rs, "press space to resume")
	}
}

// drawBanner renders scaled-up text at the center of the court. The basic
// face is tiny, so the label is drawn once at 1x into a scratch image and
// blitted with a scale transform.
func drawBanner(screen *ebiten.Image, rs game.RenderState, label string, scale float64) {
	tw := textWidth(label)
	th := hudFace.Metrics().Height.Ceil()
	if tw <= 0 || th <= 0 {
		return
	}

	scratch := ebiten.NewImage(tw+2, th+2)
	text.Draw(scratch, label, hudFace, 1, th-2, color.White)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		rs.CourtWidth/2-float64(tw)*scale/2,
		rs.CourtHeight/2-float64(th)*scale/2,
	)
	screen.DrawImage(scratch, op)
}

func drawSubBanner(screen *ebiten.Image, rs game.RenderState, label string) {
	text.Draw(screen, label, hudFace,
		int(rs.CourtWidth)/2-textWidth(label)/2,
		int(rs.CourtHeight/2)+50,
		colorCourtLine)
}

func textWidth(s string) int {
	return font.MeasureString(hudFace, s).Ceil()
}
