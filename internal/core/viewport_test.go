package core

import "testing"

func TestViewportToCells(t *testing.T) {
	// 80x24 terminal, 10x25 units per cell: an 800x600 field
	v := NewViewport(10, 25, 24)

	tests := []struct {
		name     string
		box      Box
		expected Rect
	}{
		{
			name:     "aligned box",
			box:      Box{Pos: Vec{X: 0, Y: 550}, Size: Vec{X: 20, Y: 50}},
			expected: NewRect(0, 0, 2, 2),
		},
		{
			name:     "unaligned box spans partial cells",
			box:      Box{Pos: Vec{X: 385, Y: 285}, Size: Vec{X: 30, Y: 30}},
			expected: NewRect(38, 11, 4, 2),
		},
		{
			name:     "bottom-left corner",
			box:      Box{Pos: Vec{X: 0, Y: 0}, Size: Vec{X: 10, Y: 25}},
			expected: NewRect(0, 23, 1, 1),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := v.ToCells(tc.box)
			if got != tc.expected {
				t.Errorf("ToCells() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestViewportCells(t *testing.T) {
	v := NewViewport(10, 25, 24)

	col, row := v.CellOf(Vec{X: 400, Y: 300})
	if col != 40 || row != 12 {
		t.Errorf("CellOf(400, 300) = (%d, %d), expected (40, 12)", col, row)
	}

	if c := v.CellCenter(0, 0); c != (Vec{X: 5, Y: 587.5}) {
		t.Errorf("CellCenter(0, 0) = %+v, expected (5, 587.5)", c)
	}

	if size := v.FieldSize(80, 24); size != (Vec{X: 800, Y: 600}) {
		t.Errorf("FieldSize(80, 24) = %+v, expected (800, 600)", size)
	}

	if v.Col(795) != 79 || v.Row(590) != 0 {
		t.Errorf("Col/Row mapping wrong: Col(795)=%d Row(590)=%d", v.Col(795), v.Row(590))
	}
}
