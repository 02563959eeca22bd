package core

import "strings"

// Cell is one character position of a Screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Screen is a character buffer the game draws into. The platform decides
// how cells reach the terminal.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a blank screen.
func NewScreen(width, height int) *Screen {
	s := &Screen{width: width, height: height}
	s.allocate()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		row := make([]Cell, s.width)
		for x := range row {
			row[x] = blank
		}
		s.cells[y] = row
	}
}

// Width returns the width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the dimensions. Content is discarded; the game redraws
// every frame.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// Set writes a rune in color. Out-of-bounds writes are dropped.
func (s *Screen) Set(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Cell returns the cell at (x, y), or a blank cell out of bounds.
func (s *Screen) Cell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y][x]
}

// Rune returns the rune at (x, y).
func (s *Screen) Rune(x, y int) rune {
	return s.Cell(x, y).Rune
}

// Text writes text left to right from (x, y), clipping at the edges.
func (s *Screen) Text(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r, c)
		i++
	}
}

// TextCentered writes text centered on row y.
func (s *Screen) TextCentered(y int, text string, c Color) {
	s.Text((s.width-len([]rune(text)))/2, y, text, c)
}

// FillRect fills r with ch.
func (s *Screen) FillRect(r Rect, ch rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		s.HLine(r.X, y, r.W, ch, c)
	}
}

// HLine draws length copies of ch to the right of (x, y).
func (s *Screen) HLine(x, y, length int, ch rune, c Color) {
	for i := 0; i < length; i++ {
		s.Set(x+i, y, ch, c)
	}
}

// Box outlines r with box-drawing characters.
func (s *Screen) Box(r Rect, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1

	s.HLine(r.X+1, r.Y, r.W-2, '─', c)
	s.HLine(r.X+1, bottom, r.W-2, '─', c)
	for y := r.Y + 1; y < bottom; y++ {
		s.Set(r.X, y, '│', c)
		s.Set(right, y, '│', c)
	}
	s.Set(r.X, r.Y, '┌', c)
	s.Set(right, r.Y, '┐', c)
	s.Set(r.X, bottom, '└', c)
	s.Set(right, bottom, '┘', c)
}

// Row returns row y as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, cell := range s.cells[y] {
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}

// String returns the whole screen as plain text, one line per row.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
