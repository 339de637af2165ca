package cubescramble

import "fmt"

// Stepper walks a cube through a scramble one move at a time.
type Stepper struct {
	puzzle   *CubePuzzle
	moves    []Move
	pos      int // number of moves applied
	callback func(pos int, m Move, forward bool)
}

// NewStepper parses a scramble for a solved cube of the given size.
// Nothing is applied until Forward or Seek is called.
func NewStepper(size int, scramble string, opts ...Option) (*Stepper, error) {
	p, err := NewCube(size, opts...)
	if err != nil {
		return nil, err
	}
	if limit := p.cfg.maxScrambleLength; limit > 0 && len(scramble) > limit {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrScrambleTooLong, len(scramble), limit)
	}
	moves, err := ParseScramble(scramble)
	if err != nil {
		return nil, err
	}
	if err := p.checkDepth(moves); err != nil {
		return nil, err
	}
	return &Stepper{puzzle: p, moves: moves}, nil
}

// SetStepCallback sets a callback that fires after every step.
// pos is the number of moves applied after the step.
func (s *Stepper) SetStepCallback(cb func(pos int, m Move, forward bool)) {
	s.callback = cb
}

// Forward applies the next move. It returns false at the end.
func (s *Stepper) Forward() bool {
	if s.pos >= len(s.moves) {
		return false
	}
	m := s.moves[s.pos]
	s.puzzle.cube.ApplyMove(m)
	s.pos++
	s.notify(m, true)
	return true
}

// Back undoes the last applied move. It returns false at the start.
func (s *Stepper) Back() bool {
	if s.pos == 0 {
		return false
	}
	s.pos--
	m := s.moves[s.pos]
	s.puzzle.cube.ApplyMove(m.Inverse())
	s.notify(m, false)
	return true
}

// Seek moves to position n, clamped to [0, Len()].
func (s *Stepper) Seek(n int) {
	n = max(0, min(n, len(s.moves)))
	for s.pos < n {
		s.Forward()
	}
	for s.pos > n {
		s.Back()
	}
}

// Reset returns to the solved cube before the first move.
func (s *Stepper) Reset() {
	s.puzzle.Reset()
	s.pos = 0
}

func (s *Stepper) notify(m Move, forward bool) {
	if s.callback != nil {
		s.callback(s.pos, m, forward)
	}
}

// Position returns the number of moves applied.
func (s *Stepper) Position() int {
	return s.pos
}

// Len returns the number of moves in the scramble.
func (s *Stepper) Len() int {
	return len(s.moves)
}

// Moves returns the parsed scramble.
func (s *Stepper) Moves() []Move {
	return append([]Move(nil), s.moves...)
}

// Last returns the most recently applied move.
func (s *Stepper) Last() (Move, bool) {
	if s.pos == 0 {
		return Move{}, false
	}
	return s.moves[s.pos-1], true
}

// Done reports whether every move has been applied.
func (s *Stepper) Done() bool {
	return s.pos == len(s.moves)
}

// Puzzle returns the underlying cube for inspection.
func (s *Stepper) Puzzle() *CubePuzzle {
	return s.puzzle
}
