package pong

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestBallAdvance(t *testing.T) {
	b := NewBall()
	b.Pos = core.Vec{X: 10, Y: 20}
	b.Vel = core.Vec{X: 4, Y: -2.5}

	for i := 1; i <= 5; i++ {
		before := b.Pos
		b.Advance()
		if b.Pos != before.Add(b.Vel) {
			t.Fatalf("tick %d: Pos = %+v, expected %+v", i, b.Pos, before.Add(b.Vel))
		}
	}

	if b.Pos != (core.Vec{X: 30, Y: 7.5}) {
		t.Errorf("After 5 ticks Pos = %+v, expected (30, 7.5)", b.Pos)
	}
}

func TestBallCenter(t *testing.T) {
	b := NewBall()
	b.SetCenter(core.Vec{X: 400, Y: 300})

	if b.Pos != (core.Vec{X: 385, Y: 285}) {
		t.Errorf("SetCenter: Pos = %+v, expected (385, 285)", b.Pos)
	}
	if b.Center() != (core.Vec{X: 400, Y: 300}) {
		t.Errorf("Center() = %+v, expected (400, 300)", b.Center())
	}
	if b.Right() != 415 || b.Top() != 315 {
		t.Errorf("Right()/Top() = %v/%v, expected 415/315", b.Right(), b.Top())
	}
	if b.Size() != (core.Vec{X: BallSize, Y: BallSize}) {
		t.Errorf("Size() = %+v, expected %vx%v", b.Size(), BallSize, BallSize)
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name   string
		vel    core.Vec
		offset float64
		want   core.Vec
	}{
		{"straight hit", core.Vec{X: 4, Y: 0}, 0, core.Vec{X: -4.4, Y: 0}},
		{"hit above center", core.Vec{X: 4, Y: 0}, 0.5, core.Vec{X: -4.4, Y: 0.5}},
		{"angled hit from the right", core.Vec{X: -4, Y: 2}, -1, core.Vec{X: 4.4, Y: 1.2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Reflect(tc.vel, tc.offset)
			if !approxEqual(got.X, tc.want.X) || !approxEqual(got.Y, tc.want.Y) {
				t.Errorf("Reflect(%+v, %v) = %+v, expected %+v", tc.vel, tc.offset, got, tc.want)
			}
		})
	}
}

func TestReflectSpeedIsUnbounded(t *testing.T) {
	vel := core.Vec{X: ServeSpeed}
	for range 50 {
		vel = Reflect(vel, 0)
	}

	// 4 * 1.1^50 is roughly 469
	if math.Abs(vel.X) < 400 {
		t.Errorf("Speed after 50 hits = %v, expected uncapped growth", math.Abs(vel.X))
	}
}
