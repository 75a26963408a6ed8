package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Ball is the single ball in play. Pos is its bottom-left corner in world units.
// Bounds checking is the controller's job, not the ball's.
type Ball struct {
	Pos  core.Vec
	Vel  core.Vec
	size core.Vec
}

// NewBall creates a stationary ball at the origin.
func NewBall() *Ball {
	return &Ball{size: core.Vec{X: BallSize, Y: BallSize}}
}

// Size returns the fixed ball dimensions.
func (b *Ball) Size() core.Vec {
	return b.size
}

// Box returns the ball's bounding box.
func (b *Ball) Box() core.Box {
	return core.Box{Pos: b.Pos, Size: b.size}
}

// Center returns the center of the ball.
func (b *Ball) Center() core.Vec {
	return b.Box().Center()
}

// SetCenter moves the ball so that its center is at c.
func (b *Ball) SetCenter(c core.Vec) {
	b.Pos = core.Vec{X: c.X - b.size.X/2, Y: c.Y - b.size.Y/2}
}

// Right returns the x-coordinate of the ball's right edge.
func (b *Ball) Right() float64 {
	return b.Pos.X + b.size.X
}

// Top returns the y-coordinate of the ball's top edge.
func (b *Ball) Top() float64 {
	return b.Pos.Y + b.size.Y
}

// Advance moves the ball by one tick of velocity.
func (b *Ball) Advance() {
	b.Pos = b.Pos.Add(b.Vel)
}

// Reflect returns the velocity after a paddle hit: the horizontal component is
// mirrored, the whole vector sped up by SpeedUp, and offset added to the
// vertical component. Speed is not capped.
func Reflect(vel core.Vec, offset float64) core.Vec {
	bounced := core.Vec{X: -vel.X, Y: vel.Y}.Scale(SpeedUp)
	bounced.Y += offset
	return bounced
}
