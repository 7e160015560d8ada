package tetris

// Rules are the fixed parameters of a game.
type Rules struct {
	Width  int
	Height int
	// Spawn is the preferred anchor of every new piece.
	Spawn Point
	// GameOverRow is the lowest anchor row at which a piece that can no
	// longer fall ends the game instead of locking.
	GameOverRow int
}

// DefaultRules returns the classic 10x20 board.
func DefaultRules() Rules {
	return Rules{
		Width:       10,
		Height:      20,
		Spawn:       Point{X: 4, Y: 0},
		GameOverRow: 2,
	}
}

// Event tells the caller what a gravity step did.
type Event int

const (
	EventFell     Event = iota // The piece moved down one row
	EventLocked                // The piece was locked and a new one spawned
	EventGameOver              // The game ended; a fresh state was returned
)

// String returns a lowercase name for logs.
func (e Event) String() string {
	switch e {
	case EventFell:
		return "fell"
	case EventLocked:
		return "locked"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// TickResult describes the outcome of Engine.Tick.
type TickResult struct {
	Event   Event
	Cleared int // Rows removed by the lock, only set for EventLocked
}

// Engine implements the state transitions. It holds no game state itself;
// every method works on the State it is given.
type Engine struct {
	rules  Rules
	source PieceSource
}

// NewEngine creates an engine drawing new pieces from source.
func NewEngine(rules Rules, source PieceSource) *Engine {
	return &Engine{rules: rules, source: source}
}

// Rules returns the engine parameters.
func (e *Engine) Rules() Rules {
	return e.rules
}

// InitialState returns a fresh game: an empty board and a random piece at
// its spawn anchor.
func (e *Engine) InitialState() *State {
	s := &State{Board: NewBoard(e.rules.Width, e.rules.Height)}
	e.spawn(s)
	return s
}

// SpawnAnchor returns the first anchor at or below preferred where offsets
// fit on board. When no row fits, preferred is returned with ok false; the
// next gravity step then ends the game.
func SpawnAnchor(board *Board, offsets []Offset, preferred Point) (anchor Point, ok bool) {
	for y := preferred.Y; y < board.Height(); y++ {
		candidate := Point{X: preferred.X, Y: y}
		if board.Fits(offsets, candidate) {
			return candidate, true
		}
	}
	return preferred, false
}

// spawn draws the next kind and places it on s.Board.
func (e *Engine) spawn(s *State) {
	k := e.source.Next()
	s.Kind = k
	s.Shape = k.Offsets()
	s.Color = k.Color()
	s.Anchor, _ = SpawnAnchor(s.Board, s.Shape, e.rules.Spawn)
}

// Tick applies one gravity step.
//
// The piece falls one row if it can. Otherwise, if it rests at or above the
// game-over row (or overlaps the board where it is), the game is over and a
// new initial state is returned in place of s. Otherwise the piece is locked,
// complete rows are cleared and the next piece is spawned.
func (e *Engine) Tick(s *State) (*State, TickResult) {
	down := Point{X: s.Anchor.X, Y: s.Anchor.Y + 1}
	if s.Board.Fits(s.Shape, down) {
		s.Anchor = down
		return s, TickResult{Event: EventFell}
	}

	if s.Anchor.Y <= e.rules.GameOverRow || !s.Board.Fits(s.Shape, s.Anchor) {
		return e.InitialState(), TickResult{Event: EventGameOver}
	}

	Lock(s)
	cleared := s.Board.ClearLines()
	e.spawn(s)
	return s, TickResult{Event: EventLocked, Cleared: cleared}
}

// Lock writes the falling piece into the board permanently.
func Lock(s *State) {
	for _, p := range s.Cells() {
		s.Board.SetCell(p.X, p.Y, s.Color)
	}
}

// Rotate turns the piece a quarter turn about its anchor if the result fits.
// A blocked rotation leaves s unchanged.
func (e *Engine) Rotate(s *State) *State {
	candidate := Rotate(s.Shape)
	if s.Board.Fits(candidate, s.Anchor) {
		s.Shape = candidate
	}
	return s
}

// Move shifts the piece dx columns if the result fits. dx is -1 or +1; other
// values are ignored. A blocked move leaves s unchanged.
func (e *Engine) Move(s *State, dx int) *State {
	if dx != -1 && dx != 1 {
		return s
	}
	candidate := Point{X: s.Anchor.X + dx, Y: s.Anchor.Y}
	if s.Board.Fits(s.Shape, candidate) {
		s.Anchor = candidate
	}
	return s
}

// HardDrop moves the piece to the lowest row it fits in. It does not lock:
// the next Tick finds no room to fall and locks it there.
func (e *Engine) HardDrop(s *State) *State {
	if !s.Board.Fits(s.Shape, s.Anchor) {
		return s
	}
	for s.Board.Fits(s.Shape, Point{X: s.Anchor.X, Y: s.Anchor.Y + 1}) {
		s.Anchor.Y++
	}
	return s
}
