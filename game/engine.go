package game

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameMode selects who controls each paddle.
type GameMode int

const (
	// ModePlayerVsPlayer puts both paddles on the keyboard (W/S and arrows)
	ModePlayerVsPlayer GameMode = iota

	// ModePlayerVsAI puts the left paddle on the keyboard against the heuristic
	ModePlayerVsAI

	// ModeDemo runs both paddles on the heuristic, for background matches
	ModeDemo
)

// MatchMeta is pass-through presentation and reporting metadata. It has no
// effect on physics; it is handed back verbatim inside the game-over Result.
type MatchMeta struct {
	Player1Name  string
	Player2Name  string
	Player1Color color.RGBA
	Player2Color color.RGBA
	Player1ID    int64
	Player2ID    int64
	TournamentID int64
}

// Result is the game-over payload, delivered exactly once per match.
type Result struct {
	Winner     Side
	LeftScore  int
	RightScore int
	Meta       MatchMeta
}

// Engine is the public face of one match: entities, state machine, resize
// adaptation and the fixed-timestep loop behind a handful of lifecycle
// methods. Each Engine owns its state completely; two instances never
// observe each other.
type Engine struct {
	cfg  Config
	mode GameMode

	court    Court
	ball     *Ball
	left     *Paddle
	right    *Paddle
	resolver *CollisionResolver

	controller *MatchStateController
	adapter    *ViewportAdapter
	loop       *MatchLoop

	rng *rand.Rand

	meta          MatchMeta
	gameOver      func(Result)
	gameOverFired bool

	initialized bool
}

// NewEngine creates an engine with the given tuning. Initialize must be
// called before anything else.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Initialize builds the court and entities for the given mode. Calling it on
// an already initialized engine is a no-op.
func (e *Engine) Initialize(mode GameMode) error {
	if e.initialized {
		return nil
	}
	if e.cfg.CourtWidth <= 0 || e.cfg.CourtHeight <= 0 {
		return fmt.Errorf("court %gx%g: dimensions must be positive", e.cfg.CourtWidth, e.cfg.CourtHeight)
	}

	seed := e.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e.rng = rand.New(rand.NewSource(seed))

	e.mode = mode
	e.court = Court{Width: e.cfg.CourtWidth, Height: e.cfg.CourtHeight}
	e.ball = NewBall(e.cfg, e.court, e.rng)

	leftControl, leftProvider := ControlHuman, IntentProvider(NewKeyboardInput(ebiten.KeyW, ebiten.KeyS))
	rightControl, rightProvider := ControlHuman, IntentProvider(NewKeyboardInput(ebiten.KeyArrowUp, ebiten.KeyArrowDown))
	switch mode {
	case ModePlayerVsAI:
		rightControl, rightProvider = ControlAI, NewTrackingAI()
	case ModeDemo:
		leftControl, leftProvider = ControlAI, NewTrackingAI()
		rightControl, rightProvider = ControlAI, NewTrackingAI()
	}
	e.left = NewPaddle(e.cfg, e.court, SideLeft, leftControl, leftProvider)
	e.right = NewPaddle(e.cfg, e.court, SideRight, rightControl, rightProvider)

	e.resolver = NewCollisionResolver(e.cfg)
	e.controller = NewMatchStateController(e.cfg, &e.court, e.ball, e.left, e.right)
	e.adapter = NewViewportAdapter(e.cfg, &e.court, e.controller, e.ball, e.left, e.right)
	e.loop = NewMatchLoop(&e.court, e.controller, e.ball, e.left, e.right, e.resolver)
	e.loop.SetPointScoredHook(e.checkGameOver)

	e.gameOverFired = false
	e.initialized = true
	return nil
}

// Resize requests a viewport change. Invalid dimensions are rejected and the
// current geometry is kept.
func (e *Engine) Resize(width, height int) error {
	if !e.initialized {
		return fmt.Errorf("resize before initialize")
	}
	return e.adapter.Resize(float64(width), float64(height))
}

// Update advances the match by one frame's delta, in seconds. The resize
// debounce runs on the raw delta; the simulation itself advances in fixed
// steps.
func (e *Engine) Update(dt float64) {
	if !e.initialized {
		return
	}
	e.adapter.Tick(dt)
	e.loop.Advance(dt)
}

// Alpha returns the loop's current render-interpolation fraction.
func (e *Engine) Alpha() float64 {
	if !e.initialized {
		return 0
	}
	return e.loop.Alpha()
}

// Render builds a render-ready snapshot with positions interpolated by
// alpha. Interpolation is cosmetic; authoritative state is untouched.
func (e *Engine) Render(alpha float64) RenderState {
	if !e.initialized {
		return RenderState{}
	}

	ballPos := e.loop.BallAt(alpha)
	return RenderState{
		CourtWidth:   e.court.Width,
		CourtHeight:  e.court.Height,
		BallX:        ballPos.X,
		BallY:        ballPos.Y,
		BallRadius:   e.ball.Radius,
		BallMoving:   e.ball.Moving(),
		Left:         e.paddleRect(SideLeft, alpha),
		Right:        e.paddleRect(SideRight, alpha),
		State:        e.controller.State(),
		Countdown:    e.controller.CountdownRemaining(),
		Player1Name:  e.meta.Player1Name,
		Player2Name:  e.meta.Player2Name,
		Player1Color: e.meta.Player1Color,
		Player2Color: e.meta.Player2Color,
	}
}

// RequestPause pauses the match unless a resize is in flight; racing a pause
// against the rescale would tear the snapshot.
func (e *Engine) RequestPause() {
	if !e.initialized || e.adapter.IsResizing() {
		return
	}
	e.controller.Pause()
}

// Resume restarts a paused match through a countdown, unless a resize is in
// flight or the match is over.
func (e *Engine) Resume() {
	if !e.initialized || e.adapter.IsResizing() || e.gameOverFired {
		return
	}
	e.controller.Resume()
}

// TogglePause pauses a running match or resumes a paused one.
func (e *Engine) TogglePause() {
	if e.IsPaused() {
		e.Resume()
	} else {
		e.RequestPause()
	}
}

// IsPaused reports whether the match is in the Paused state.
func (e *Engine) IsPaused() bool {
	if !e.initialized {
		return true
	}
	return e.controller.State() == StatePaused
}

// Cleanup cancels all pending timers and halts the loop before the entity
// references go away. The engine can be re-initialized afterwards.
func (e *Engine) Cleanup() {
	if !e.initialized {
		return
	}
	e.controller.ForceStop()
	e.adapter.Cancel()
	e.loop.Stop()
	e.initialized = false
}

// SetPlayerNames stores display names for the render and reporting layers.
func (e *Engine) SetPlayerNames(p1, p2 string) {
	e.meta.Player1Name = p1
	e.meta.Player2Name = p2
}

// SetPlayerColors stores display colors for the render layer.
func (e *Engine) SetPlayerColors(p1, p2 color.RGBA) {
	e.meta.Player1Color = p1
	e.meta.Player2Color = p2
}

// SetPlayerIds stores the account ids, and optionally the tournament this
// match belongs to, for the reporting layer. Zero means no tournament.
func (e *Engine) SetPlayerIds(p1, p2, tournamentID int64) {
	e.meta.Player1ID = p1
	e.meta.Player2ID = p2
	e.meta.TournamentID = tournamentID
}

// OnGameOver registers the callback fired exactly once when either score
// reaches the winning score.
func (e *Engine) OnGameOver(fn func(Result)) {
	e.gameOver = fn
}

// Scores returns the current left and right scores.
func (e *Engine) Scores() (left, right int) {
	if !e.initialized {
		return 0, 0
	}
	return e.controller.Scores()
}

// checkGameOver runs after every settled point.
func (e *Engine) checkGameOver() {
	if e.gameOverFired || e.cfg.WinningScore <= 0 {
		return
	}
	left, right := e.controller.Scores()
	if left < e.cfg.WinningScore && right < e.cfg.WinningScore {
		return
	}

	winner := SideLeft
	if right > left {
		winner = SideRight
	}

	e.gameOverFired = true
	e.controller.ForceStop()
	if e.gameOver != nil {
		e.gameOver(Result{
			Winner:     winner,
			LeftScore:  left,
			RightScore: right,
			Meta:       e.meta,
		})
	}
}

func (e *Engine) paddleRect(side Side, alpha float64) PaddleRect {
	p := e.left
	if side == SideRight {
		p = e.right
	}
	return PaddleRect{
		X:      p.Pos.X,
		Y:      e.loop.PaddleYAt(side, alpha),
		Width:  p.Width,
		Height: p.Height,
		Score:  p.Score,
	}
}
