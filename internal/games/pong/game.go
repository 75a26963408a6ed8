// Package pong implements a two-player Pong game.
// Player 1 controls the left paddle with W/S, player 2 the right paddle with
// the arrow keys. World coordinates have the origin at the bottom-left of the
// field and Y growing upward.
package pong

import (
	"strconv"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
)

// Game rules, in world units
const (
	BallSize     = 30.0
	PaddleWidth  = 25.0
	PaddleHeight = 150.0
	ServeSpeed   = 4.0
	SpeedUp      = 1.1
	MoveStep     = 20.0

	leftAnchor  = 0.05 // Paddle centers as fractions of field width
	rightAnchor = 0.95
	leftLabelX  = 0.25 // Score label centers as fractions of field width
	rightLabelX = 0.75
	labelMargin = 10.0 // Distance from the top of the field to the labels
)

// Keys the game responds to. Names match Bubble Tea key strings.
const (
	KeyLeftUp    = "w"
	KeyLeftDown  = "s"
	KeyRightUp   = "up"
	KeyRightDown = "down"
)

var (
	// ServeRight launches the ball toward the right player.
	ServeRight = core.Vec{X: ServeSpeed}
	// ServeLeft launches the ball toward the left player.
	ServeLeft = core.Vec{X: -ServeSpeed}
)

// Label is a score readout anchored by its horizontal center and top edge.
type Label struct {
	Text    string
	CenterX float64
	Top     float64
}

// Game owns the ball and both paddles and drives the per-tick update.
type Game struct {
	ball  *Ball
	left  *Paddle
	right *Paddle
	field core.Vec

	leftLabel  Label
	rightLabel Label

	// Settings
	cellW      float64
	cellH      float64
	ballColor  core.Color
	scoreColor core.Color
	background core.Color

	paused    bool
	tickCount uint64
}

// Colors holds the cosmetic colors of the game entities.
type Colors struct {
	Left       core.Color
	Right      core.Color
	Ball       core.Color
	Score      core.Color
	Background core.Color // ColorDefault keeps the terminal background
}

// DefaultColors returns red and blue paddles with a white ball on a gray field.
func DefaultColors() Colors {
	return Colors{
		Left:       core.ColorRed,
		Right:      core.ColorBlue,
		Ball:       core.ColorWhite,
		Score:      core.ColorWhite,
		Background: core.ColorGray,
	}
}

// New creates a game with default colors. Call Reset or SetSize before use.
func New() *Game {
	return NewWithColors(DefaultColors())
}

// NewWithColors creates a game whose entities use the given colors.
func NewWithColors(c Colors) *Game {
	def := core.DefaultConfig()
	g := &Game{
		ball:       NewBall(),
		left:       NewPaddle(c.Left),
		right:      NewPaddle(c.Right),
		cellW:      def.CellW,
		cellH:      def.CellH,
		ballColor:  c.Ball,
		scoreColor: c.Score,
		background: c.Background,
		leftLabel:  Label{Text: "0"},
		rightLabel: Label{Text: "0"},
	}
	return g
}

// NewField creates a game on a width x height field and serves the ball.
func NewField(width, height float64) *Game {
	g := New()
	g.SetSize(width, height)
	g.Serve(ServeRight)
	return g
}

// Reset starts a new game sized to the runtime screen.
// Scores return to zero and the ball is served toward the right player.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.CellW > 0 && runtime.CellH > 0 {
		g.cellW = runtime.CellW
		g.cellH = runtime.CellH
	}
	g.left = NewPaddle(g.left.Color)
	g.right = NewPaddle(g.right.Color)
	g.ball = NewBall()
	g.leftLabel.Text = "0"
	g.rightLabel.Text = "0"
	g.paused = false
	g.tickCount = 0

	g.Resize(runtime.ScreenW, runtime.ScreenH)
	g.Serve(ServeRight)
}

// SetSize resizes the field. Paddles are re-anchored at fixed fractions of
// the width and centered vertically, and the ball is recentered without
// touching its velocity.
func (g *Game) SetSize(width, height float64) {
	g.field = core.Vec{X: width, Y: height}
	centerY := height / 2

	g.left.SetCenter(core.Vec{X: width * leftAnchor, Y: centerY})
	g.right.SetCenter(core.Vec{X: width * rightAnchor, Y: centerY})
	g.ball.SetCenter(g.center())

	g.leftLabel.CenterX = width * leftLabelX
	g.leftLabel.Top = height - labelMargin
	g.rightLabel.CenterX = width * rightLabelX
	g.rightLabel.Top = height - labelMargin
}

// Resize sizes the field to a cols x rows terminal area.
func (g *Game) Resize(cols, rows int) {
	size := core.NewViewport(g.cellW, g.cellH, rows).FieldSize(cols, rows)
	g.SetSize(size.X, size.Y)
}

// Serve places the ball at the center of the field with velocity vel.
func (g *Game) Serve(vel core.Vec) {
	g.ball.SetCenter(g.center())
	g.ball.Vel = vel
}

func (g *Game) center() core.Vec {
	return core.Vec{X: g.field.X / 2, Y: g.field.Y / 2}
}

// HandleKey applies a key-down event. Each event moves a paddle by one
// MoveStep; unknown keys are ignored. The event is always reported handled.
func (g *Game) HandleKey(key string) bool {
	switch key {
	case KeyLeftUp:
		g.left.Move(MoveStep)
	case KeyLeftDown:
		g.left.Move(-MoveStep)
	case KeyRightUp:
		g.right.Move(MoveStep)
	case KeyRightDown:
		g.right.Move(-MoveStep)
	}
	return true
}

// TogglePause pauses or resumes the simulation.
func (g *Game) TogglePause() {
	g.paused = !g.paused
}

// Update advances the game by one tick.
// Wall and paddle bounces are checked independently, so both may apply in the
// same tick. At most one point is scored per tick.
func (g *Game) Update() core.StepResult {
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	var events []core.Event

	g.ball.Advance()

	// Bounce off top/bottom walls
	if g.ball.Pos.Y < 0 || g.ball.Top() > g.field.Y {
		g.ball.Vel.Y = -g.ball.Vel.Y
		events = append(events, core.Event{Kind: core.EventWallBounce})
	}

	// Check paddle collisions
	if g.left.DetectAndBounce(g.ball) {
		events = append(events, core.Event{Kind: core.EventPaddleBounce, Side: core.SideLeft})
	}
	if g.right.DetectAndBounce(g.ball) {
		events = append(events, core.Event{Kind: core.EventPaddleBounce, Side: core.SideRight})
	}

	// Check scoring (ball goes past paddle)
	if g.ball.Pos.X < 0 {
		g.right.addPoint()
		g.Serve(ServeRight)
		events = append(events, core.Event{Kind: core.EventPoint, Side: core.SideRight})
	} else if g.ball.Right() > g.field.X {
		g.left.addPoint()
		g.Serve(ServeLeft)
		events = append(events, core.Event{Kind: core.EventPoint, Side: core.SideLeft})
	}

	g.leftLabel.Text = strconv.Itoa(g.left.Score())
	g.rightLabel.Text = strconv.Itoa(g.right.Score())

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		LeftScore:  g.left.Score(),
		RightScore: g.right.Score(),
		Paused:     g.paused,
	}
}

// Ball returns the ball in play.
func (g *Game) Ball() *Ball {
	return g.ball
}

// Left returns the left player's paddle.
func (g *Game) Left() *Paddle {
	return g.left
}

// Right returns the right player's paddle.
func (g *Game) Right() *Paddle {
	return g.right
}

// Field returns the field size in world units.
func (g *Game) Field() core.Vec {
	return g.field
}

// Labels returns the left and right score readouts.
func (g *Game) Labels() (Label, Label) {
	return g.leftLabel, g.rightLabel
}
