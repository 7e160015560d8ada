package tetris

// State is everything the engine transitions: the board plus the falling
// piece. A single State is live at a time; its owner passes it to every
// Engine call and keeps whatever pointer comes back.
type State struct {
	Board  *Board
	Kind   Kind     // Kind of the falling piece
	Shape  []Offset // Current rotation of the falling piece
	Anchor Point
	Color  Cell
}

// Cells returns the absolute board positions covered by the falling piece.
func (s *State) Cells() []Point {
	cells := make([]Point, len(s.Shape))
	for i, o := range s.Shape {
		cells[i] = s.Anchor.Add(o)
	}
	return cells
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	shape := make([]Offset, len(s.Shape))
	copy(shape, s.Shape)
	return &State{
		Board:  s.Board.Clone(),
		Kind:   s.Kind,
		Shape:  shape,
		Anchor: s.Anchor,
		Color:  s.Color,
	}
}
