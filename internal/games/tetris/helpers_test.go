package tetris

import (
	"testing"
	"time"
)

const msDuration = time.Millisecond

// sequenceSource replays kinds in order, wrapping around.
type sequenceSource struct {
	kinds []Kind
	next  int
}

func newSequenceSource(kinds ...Kind) *sequenceSource {
	return &sequenceSource{kinds: kinds}
}

func (s *sequenceSource) Next() Kind {
	k := s.kinds[s.next%len(s.kinds)]
	s.next++
	return k
}

// newTestEngine creates a default 10x20 engine with scripted pieces.
func newTestEngine(kinds ...Kind) *Engine {
	return NewEngine(DefaultRules(), newSequenceSource(kinds...))
}

// fillRow fills row y except for the listed columns.
func fillRow(t *testing.T, b *Board, y int, except ...int) {
	t.Helper()
	skip := make(map[int]bool, len(except))
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < b.Width(); x++ {
		if !skip[x] {
			if !b.SetCell(x, y, CellBlue) {
				t.Fatalf("SetCell(%d, %d) out of range", x, y)
			}
		}
	}
}
