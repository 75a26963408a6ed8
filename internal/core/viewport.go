package core

import "math"

// Viewport maps world coordinates (Y up, origin bottom-left) onto screen cells
// (Y down, origin top-left). One cell covers CellW x CellH world units.
type Viewport struct {
	CellW  float64
	CellH  float64
	FieldH float64 // World height of the field; row 0 is the top of the field
}

// NewViewport creates a viewport for a field that is rows cells tall.
func NewViewport(cellW, cellH float64, rows int) Viewport {
	return Viewport{
		CellW:  cellW,
		CellH:  cellH,
		FieldH: float64(rows) * cellH,
	}
}

// FieldSize returns the world size of a cols x rows terminal area.
func (v Viewport) FieldSize(cols, rows int) Vec {
	return Vec{X: float64(cols) * v.CellW, Y: float64(rows) * v.CellH}
}

// ToCells returns every cell touched by the box.
func (v Viewport) ToCells(b Box) Rect {
	col0 := int(math.Floor(b.Pos.X / v.CellW))
	col1 := int(math.Ceil(b.Right() / v.CellW))
	row0 := int(math.Floor((v.FieldH - b.Top()) / v.CellH))
	row1 := int(math.Ceil((v.FieldH - b.Pos.Y) / v.CellH))
	return Rect{X: col0, Y: row0, W: col1 - col0, H: row1 - row0}
}

// CellOf returns the cell containing the world point p.
func (v Viewport) CellOf(p Vec) (col, row int) {
	col = int(math.Floor(p.X / v.CellW))
	row = int(math.Floor((v.FieldH - p.Y) / v.CellH))
	return col, row
}

// CellCenter returns the world position of the center of a cell.
func (v Viewport) CellCenter(col, row int) Vec {
	return Vec{
		X: (float64(col) + 0.5) * v.CellW,
		Y: v.FieldH - (float64(row)+0.5)*v.CellH,
	}
}

// Col converts a world x-coordinate to a column index.
func (v Viewport) Col(x float64) int {
	return int(math.Floor(x / v.CellW))
}

// Row converts a world y-coordinate to a row index.
func (v Viewport) Row(y float64) int {
	return int(math.Floor((v.FieldH - y) / v.CellH))
}
