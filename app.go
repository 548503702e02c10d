package main

import (
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pongcourt/game"
)

// App drives two fully independent engines through ebiten's frame callback:
// the foreground match and a dimmed background demo played by the heuristic
// against itself. Each engine is an explicit handle; they share nothing.
type App struct {
	cfg game.Config

	match *game.Engine
	demo  *game.Engine

	width  int
	height int

	winner *game.Result

	lastUpdate time.Time
}

// NewApp builds and starts the foreground match and the background demo.
func NewApp(cfg game.Config) (*App, error) {
	a := &App{
		cfg:    cfg,
		width:  int(cfg.CourtWidth),
		height: int(cfg.CourtHeight),
	}

	a.match = game.NewEngine(cfg)
	if err := a.match.Initialize(game.ModePlayerVsAI); err != nil {
		return nil, err
	}
	a.match.SetPlayerNames("Player One", "CPU")
	a.match.SetPlayerColors(
		color.RGBA{R: 90, G: 170, B: 255, A: 255},
		color.RGBA{R: 255, G: 120, B: 120, A: 255},
	)
	a.match.OnGameOver(a.handleGameOver)

	demoCfg := cfg
	demoCfg.Seed = cfg.Seed + 1
	demoCfg.WinningScore = 0 // the demo rallies forever
	a.demo = game.NewEngine(demoCfg)
	if err := a.demo.Initialize(game.ModeDemo); err != nil {
		return nil, err
	}

	a.match.Resume()
	a.demo.Resume()
	a.lastUpdate = time.Now()
	return a, nil
}

// handleGameOver records the winner and logs the payload the persistence
// layer would report.
func (a *App) handleGameOver(res game.Result) {
	a.winner = &res
	log.Printf("match finished: %s %d - %d %s (winner=%s, p1=%d, p2=%d, tournament=%d)",
		res.Meta.Player1Name, res.LeftScore, res.RightScore, res.Meta.Player2Name,
		res.Winner, res.Meta.Player1ID, res.Meta.Player2ID, res.Meta.TournamentID)
}

// restartMatch tears the finished match down and starts a new one with the
// same metadata.
func (a *App) restartMatch() {
	a.match.Cleanup()
	a.winner = nil
	if err := a.match.Initialize(game.ModePlayerVsAI); err != nil {
		log.Printf("restart failed: %v", err)
		return
	}
	a.match.OnGameOver(a.handleGameOver)
	if a.width > 0 && a.height > 0 {
		if err := a.match.Resize(a.width, a.height); err != nil {
			log.Printf("restart resize: %v", err)
		}
	}
	a.match.Resume()
}

// Update feeds both engines the frame delta and handles the app-level keys.
func (a *App) Update() error {
	now := time.Now()
	dt := now.Sub(a.lastUpdate).Seconds()
	a.lastUpdate = now

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.match.Cleanup()
		a.demo.Cleanup()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.match.TogglePause()
	}
	if a.winner != nil && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.restartMatch()
	}

	a.demo.Update(dt)
	a.match.Update(dt)
	return nil
}

// Draw renders the demo behind the live match and the HUD on top.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	drawMatch(screen, a.demo.Render(a.demo.Alpha()), true)

	rs := a.match.Render(a.match.Alpha())
	drawMatch(screen, rs, false)
	drawHUD(screen, rs, a.winner)
}

// Layout reports the drawable size and funnels window resizes into both
// engines.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width = outsideWidth
		a.height = outsideHeight
		if err := a.match.Resize(outsideWidth, outsideHeight); err != nil {
			log.Printf("resize rejected: %v", err)
		}
		if err := a.demo.Resize(outsideWidth, outsideHeight); err != nil {
			log.Printf("demo resize rejected: %v", err)
		}
	}
	return outsideWidth, outsideHeight
}
