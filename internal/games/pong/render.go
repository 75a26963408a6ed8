package pong

import (
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Viewport returns the mapping from this game's field to screen cells.
func (g *Game) Viewport() core.Viewport {
	return core.Viewport{CellW: g.cellW, CellH: g.cellH, FieldH: g.field.Y}
}

// Render draws the current game state to the screen.
// It reads state only, so rendering twice without an Update in between
// produces the same screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	dst.FillBackground(g.background)
	vp := g.Viewport()

	// Draw paddles
	dst.FillRect(vp.ToCells(g.left.Box()), PaddleChar, g.left.Color)
	dst.FillRect(vp.ToCells(g.right.Box()), PaddleChar, g.right.Color)

	// Draw ball
	drawEllipse(dst, vp, g.ball.Box(), BallChar, g.ballColor)

	// Draw scores
	g.drawLabel(dst, vp, g.leftLabel)
	g.drawLabel(dst, vp, g.rightLabel)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawLabel centers the label text on its anchor column.
func (g *Game) drawLabel(dst *core.Screen, vp core.Viewport, l Label) {
	col := vp.Col(l.CenterX) - len(l.Text)/2
	row := core.Max(vp.Row(l.Top), 0)
	dst.DrawTextColored(col, row, l.Text, g.scoreColor)
}

// drawEllipse fills the cells whose centers fall inside the ellipse
// inscribed in box. A ball smaller than one cell still occupies the cell
// holding its center.
func drawEllipse(dst *core.Screen, vp core.Viewport, box core.Box, r rune, c core.Color) {
	center := box.Center()
	rx, ry := box.Size.X/2, box.Size.Y/2
	cells := vp.ToCells(box)

	drawn := false
	for row := cells.Y; row < cells.Bottom(); row++ {
		for col := cells.X; col < cells.Right(); col++ {
			p := vp.CellCenter(col, row)
			dx := (p.X - center.X) / rx
			dy := (p.Y - center.Y) / ry
			if dx*dx+dy*dy <= 1 {
				dst.SetColored(col, row, r, c)
				drawn = true
			}
		}
	}

	if !drawn {
		col, row := vp.CellOf(center)
		dst.SetColored(col, row, r, c)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
