package tetris

import "strings"

// Cell is the content of one board square: empty or a palette color.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellRed
	CellLime
	CellBlue
	CellYellow
	CellMagenta
	CellCyan
	CellOrange
)

// String returns the palette name of the cell.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellRed:
		return "red"
	case CellLime:
		return "lime"
	case CellBlue:
		return "blue"
	case CellYellow:
		return "yellow"
	case CellMagenta:
		return "magenta"
	case CellCyan:
		return "cyan"
	case CellOrange:
		return "orange"
	default:
		return "unknown"
	}
}

// Board is the playfield: a fixed number of rows, each of fixed width.
// Row 0 is the top of the board.
type Board struct {
	width  int
	height int
	rows   [][]Cell
}

// NewBoard creates a board with every cell empty.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.rows = make([][]Cell, height)
	for y := range b.rows {
		b.rows[y] = make([]Cell, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// InBounds reports whether (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// CellAt returns the cell at (x, y). ok is false for any position off the
// board, which callers treat as "does not fit".
func (b *Board) CellAt(x, y int) (c Cell, ok bool) {
	if !b.InBounds(x, y) {
		return CellEmpty, false
	}
	return b.rows[y][x], true
}

// SetCell writes c at (x, y). Writes off the board are dropped and reported.
func (b *Board) SetCell(x, y int, c Cell) bool {
	if !b.InBounds(x, y) {
		return false
	}
	b.rows[y][x] = c
	return true
}

// Fits reports whether every offset placed at anchor lands on an empty
// on-board cell. A single blocked or off-board cell rejects the placement.
func (b *Board) Fits(offsets []Offset, anchor Point) bool {
	for _, o := range offsets {
		p := anchor.Add(o)
		c, ok := b.CellAt(p.X, p.Y)
		if !ok || c != CellEmpty {
			return false
		}
	}
	return true
}

// rowComplete reports whether row y has no empty cells.
func (b *Board) rowComplete(y int) bool {
	for _, c := range b.rows[y] {
		if c == CellEmpty {
			return false
		}
	}
	return true
}

// ClearLines removes every complete row and inserts as many empty rows at
// the top. Remaining rows keep their relative order; width and height are
// unchanged. Returns the number of rows removed.
func (b *Board) ClearLines() int {
	kept := make([][]Cell, 0, b.height)
	for y := range b.rows {
		if !b.rowComplete(y) {
			kept = append(kept, b.rows[y])
		}
	}

	cleared := b.height - len(kept)
	if cleared == 0 {
		return 0
	}

	rows := make([][]Cell, 0, b.height)
	for i := 0; i < cleared; i++ {
		rows = append(rows, make([]Cell, b.width))
	}
	b.rows = append(rows, kept...)
	return cleared
}

// Rows returns a deep copy of the board contents, top row first.
func (b *Board) Rows() [][]Cell {
	rows := make([][]Cell, len(b.rows))
	for y, r := range b.rows {
		rows[y] = make([]Cell, len(r))
		copy(rows[y], r)
	}
	return rows
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{width: b.width, height: b.height, rows: b.Rows()}
}

// Filled returns the number of non-empty cells.
func (b *Board) Filled() int {
	n := 0
	for _, r := range b.rows {
		for _, c := range r {
			if c != CellEmpty {
				n++
			}
		}
	}
	return n
}

// String renders the board as text: '.' for empty, '#' for filled.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y, r := range b.rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range r {
			if c == CellEmpty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
	}
	return sb.String()
}
