package tetris

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Frames     uint64
	Ticks      uint64
	Generation int
	Kind       Kind
	AnchorX    int
	AnchorY    int
	Shape      []Offset
	Filled     int
	Board      string
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := g.state.Clone()

	return Snapshot{
		Frames:     g.frames,
		Ticks:      g.ticks,
		Generation: g.generation,
		Kind:       s.Kind,
		AnchorX:    s.Anchor.X,
		AnchorY:    s.Anchor.Y,
		Shape:      s.Shape,
		Filled:     s.Board.Filled(),
		Board:      s.Board.String(),
	}
}
