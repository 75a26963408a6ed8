package pong

// Snapshot is a plain-value copy of the game state.
// The host logs it when a game ends; tests compare snapshots across calls.
type Snapshot struct {
	Tick       uint64
	BallX      float64
	BallY      float64
	BallVX     float64
	BallVY     float64
	LeftY      float64
	RightY     float64
	LeftScore  int
	RightScore int
	FieldW     float64
	FieldH     float64
	Paused     bool
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tickCount,
		BallX:      g.ball.Pos.X,
		BallY:      g.ball.Pos.Y,
		BallVX:     g.ball.Vel.X,
		BallVY:     g.ball.Vel.Y,
		LeftY:      g.left.Pos.Y,
		RightY:     g.right.Pos.Y,
		LeftScore:  g.left.Score(),
		RightScore: g.right.Score(),
		FieldW:     g.field.X,
		FieldH:     g.field.Y,
		Paused:     g.paused,
	}
}
