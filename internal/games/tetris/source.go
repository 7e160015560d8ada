package tetris

import "math/rand"

// PieceSource supplies the kind of each newly spawned piece.
type PieceSource interface {
	Next() Kind
}

// RandomSource picks kinds uniformly at random from the catalog.
// Equal seeds yield equal sequences.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a source seeded with seed.
func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniformly chosen kind.
func (s *RandomSource) Next() Kind {
	return Kind(s.rng.Intn(kindCount))
}
