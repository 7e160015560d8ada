package tetris

import "fmt"

// Offset is a cell position relative to a piece anchor.
// X grows to the right, Y grows downwards.
type Offset struct {
	DX, DY int
}

// Point is an absolute board position.
type Point struct {
	X, Y int
}

// Add returns the position of offset o relative to p.
func (p Point) Add(o Offset) Point {
	return Point{X: p.X + o.DX, Y: p.Y + o.DY}
}

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	KindI Kind = iota
	KindT
	KindO
	KindJ
	KindL
	KindS
	KindZ
)

// kindCount is the number of tetromino kinds.
const kindCount = 7

// Shape is a catalog entry: a kind with its color and canonical offsets.
type Shape struct {
	Kind    Kind
	Color   Cell
	Offsets []Offset
}

type catalogEntry struct {
	name    string
	color   Cell
	offsets [4]Offset
}

// catalog holds the canonical geometry. Entries are arrays so they can only
// leave this package as copies.
var catalog = [kindCount]catalogEntry{
	KindI: {"I", CellRed, [4]Offset{{-1, 0}, {0, 0}, {1, 0}, {2, 0}}},
	KindT: {"T", CellLime, [4]Offset{{0, -1}, {-1, 0}, {0, 0}, {1, 0}}},
	KindO: {"O", CellBlue, [4]Offset{{0, -1}, {1, -1}, {0, 0}, {1, 0}}},
	KindJ: {"J", CellYellow, [4]Offset{{-1, -1}, {-1, 0}, {0, 0}, {1, 0}}},
	KindL: {"L", CellMagenta, [4]Offset{{1, -1}, {-1, 0}, {0, 0}, {1, 0}}},
	KindS: {"S", CellCyan, [4]Offset{{0, -1}, {1, -1}, {-1, 0}, {0, 0}}},
	KindZ: {"Z", CellOrange, [4]Offset{{-1, -1}, {0, -1}, {0, 0}, {1, 0}}},
}

// Kinds returns every tetromino kind in catalog order.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Valid reports whether k names a catalog entry.
func (k Kind) Valid() bool {
	return k < kindCount
}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return catalog[k].name
}

// Color returns the cell value pieces of this kind are drawn and locked with.
func (k Kind) Color() Cell {
	if !k.Valid() {
		return CellEmpty
	}
	return catalog[k].color
}

// Offsets returns a fresh copy of the canonical offsets for k.
func (k Kind) Offsets() []Offset {
	if !k.Valid() {
		return nil
	}
	o := catalog[k].offsets
	return o[:]
}

// Shape returns the catalog entry for k.
func (k Kind) Shape() Shape {
	return Shape{Kind: k, Color: k.Color(), Offsets: k.Offsets()}
}

// ParseKind resolves a single-letter name such as "T".
func ParseKind(name string) (Kind, error) {
	for i, e := range catalog {
		if e.name == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("tetris: unknown shape %q", name)
}

// ShapesByName returns the whole catalog keyed by name.
// Every call returns new offset slices, so callers may modify them freely.
func ShapesByName() map[string]Shape {
	shapes := make(map[string]Shape, kindCount)
	for _, k := range Kinds() {
		shapes[k.String()] = k.Shape()
	}
	return shapes
}

// Rotate turns offsets a quarter turn about the anchor: (dx, dy) -> (-dy, dx).
// The input is left untouched.
func Rotate(offsets []Offset) []Offset {
	rotated := make([]Offset, len(offsets))
	for i, o := range offsets {
		rotated[i] = Offset{DX: -o.DY, DY: o.DX}
	}
	return rotated
}
