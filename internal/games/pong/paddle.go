package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Paddle is a player-controlled bat. Pos is its bottom-left corner in world units.
type Paddle struct {
	Pos   core.Vec
	Color core.Color
	size  core.Vec
	score int
}

// NewPaddle creates a paddle at the origin with the given display color.
func NewPaddle(color core.Color) *Paddle {
	return &Paddle{
		Color: color,
		size:  core.Vec{X: PaddleWidth, Y: PaddleHeight},
	}
}

// Size returns the fixed paddle dimensions.
func (p *Paddle) Size() core.Vec {
	return p.size
}

// Score returns the points won by this paddle's player.
func (p *Paddle) Score() int {
	return p.score
}

// addPoint is the only way a score changes, so scores never decrease.
func (p *Paddle) addPoint() {
	p.score++
}

// Box returns the paddle's bounding box.
func (p *Paddle) Box() core.Box {
	return core.Box{Pos: p.Pos, Size: p.size}
}

// Center returns the center of the paddle.
func (p *Paddle) Center() core.Vec {
	return p.Box().Center()
}

// SetCenter moves the paddle so that its center is at c.
func (p *Paddle) SetCenter(c core.Vec) {
	p.Pos = core.Vec{X: c.X - p.size.X/2, Y: c.Y - p.size.Y/2}
}

// Move shifts the paddle vertically. There is no clamp: a paddle may leave
// the field.
func (p *Paddle) Move(dy float64) {
	p.Pos.Y += dy
}

// DetectAndBounce reflects the ball if its box overlaps or touches the paddle.
// The test is discrete, so a ball fast enough to jump over the paddle in
// one tick passes through it.
func (p *Paddle) DetectAndBounce(b *Ball) bool {
	if !p.Box().Intersects(b.Box()) {
		return false
	}
	offset := (b.Center().Y - p.Center().Y) / (p.size.Y / 2)
	b.Vel = Reflect(b.Vel, offset)
	return true
}
