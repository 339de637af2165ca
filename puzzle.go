package cubescramble

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/cubescramble/internal/cube"
	"github.com/SeamusWaldron/cubescramble/internal/notation"
	"github.com/SeamusWaldron/cubescramble/internal/render"
)

// Puzzle is a twisty puzzle that can be scrambled and drawn.
// A Puzzle must not be mutated from more than one goroutine at a time;
// independent puzzles may be used concurrently.
type Puzzle interface {
	// Size returns the number of layers along each axis.
	Size() int

	// ApplyScramble parses and applies a scramble. On error the state is
	// unchanged.
	ApplyScramble(scramble string) error

	// DefaultColorScheme returns the colours used when no scheme is set.
	DefaultColorScheme() ColorScheme

	// Facelets returns a copy of the state indexed [face][row][col].
	Facelets() [][][]Face

	// Draw writes the current state as an SVG image.
	Draw(w io.Writer) error

	// Reset returns the puzzle to the solved state.
	Reset()
}

// Event describes a supported puzzle event code.
type Event struct {
	Code string
	Size int
	Name string
}

var events = []Event{
	{"222", 2, "2x2x2 Cube"},
	{"333", 3, "3x3x3 Cube"},
	{"OH", 3, "3x3x3 One-Handed"},
	{"3BLD", 3, "3x3x3 Blindfolded"},
	{"444", 4, "4x4x4 Cube"},
	{"555", 5, "5x5x5 Cube"},
	{"666", 6, "6x6x6 Cube"},
	{"777", 7, "7x7x7 Cube"},
}

// Events lists the supported event codes.
func Events() []Event {
	return append([]Event(nil), events...)
}

// SizeForEvent returns the cube order for an event code.
func SizeForEvent(code string) (int, bool) {
	for _, e := range events {
		if e.Code == code {
			return e.Size, true
		}
	}
	return 0, false
}

// New creates a solved puzzle for an event code such as "333" or "444".
// Unknown codes, including MEGA, return ErrUnknownPuzzle.
func New(event string, opts ...Option) (Puzzle, error) {
	size, ok := SizeForEvent(event)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPuzzle, event)
	}
	p, err := NewCube(size, opts...)
	if err != nil {
		return nil, err
	}
	p.event = event
	return p, nil
}

// CubePuzzle is an NxN cube puzzle.
type CubePuzzle struct {
	cube  *cube.Cube
	event string
	cfg   *config
	log   logrus.FieldLogger
}

// NewCube creates a solved NxN cube.
func NewCube(size int, opts ...Option) (*CubePuzzle, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	c, err := cube.New(size)
	if err != nil {
		return nil, err
	}

	return &CubePuzzle{
		cube: c,
		cfg:  cfg,
		log:  cfg.logger.WithField("size", size),
	}, nil
}

// Size returns the cube order.
func (p *CubePuzzle) Size() int {
	return p.cube.Size()
}

// Event returns the event code the puzzle was created for, or "" when built
// directly by size.
func (p *CubePuzzle) Event() string {
	return p.event
}

// ApplyScramble parses the whole scramble, then applies it move by move.
// Empty or whitespace-only input is a no-op.
func (p *CubePuzzle) ApplyScramble(scramble string) error {
	_, err := p.ApplyScrambleMoves(scramble)
	return err
}

// ApplyScrambleMoves is ApplyScramble that also returns the parsed moves,
// including any skipped as out of range. On error nothing is applied.
func (p *CubePuzzle) ApplyScrambleMoves(scramble string) ([]Move, error) {
	if limit := p.cfg.maxScrambleLength; limit > 0 && len(scramble) > limit {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrScrambleTooLong, len(scramble), limit)
	}

	moves, err := notation.ParseScramble(scramble)
	if err != nil {
		return nil, err
	}
	if err := p.ApplyMoves(moves...); err != nil {
		return nil, err
	}

	p.log.WithFields(logrus.Fields{
		"event": p.event,
		"moves": len(moves),
	}).Debug("Applied scramble")
	return moves, nil
}

// ApplyMoves applies moves in order.
// With WithStrictDepth every move is checked before any is applied.
func (p *CubePuzzle) ApplyMoves(moves ...Move) error {
	if err := p.checkDepth(moves); err != nil {
		return err
	}
	p.cube.ApplyMoves(moves)
	return nil
}

func (p *CubePuzzle) checkDepth(moves []Move) error {
	for i, m := range moves {
		if p.cube.InRange(m) {
			continue
		}
		if p.cfg.strictDepth {
			return fmt.Errorf("%w: move %d %q on %dx%d", ErrDepthOutOfRange, i+1, m.Notation(), p.Size(), p.Size())
		}
		p.log.WithField("move", m.Notation()).Debug("Skipping move beyond cube depth")
	}
	return nil
}

// DefaultColorScheme returns the standard scheme.
func (p *CubePuzzle) DefaultColorScheme() ColorScheme {
	return DefaultColorScheme()
}

// ColorScheme returns the scheme Draw paints with.
func (p *CubePuzzle) ColorScheme() ColorScheme {
	if p.cfg.scheme == nil {
		return p.DefaultColorScheme()
	}
	return p.cfg.scheme.Clone()
}

// Facelets returns a copy of the state indexed [face][row][col].
func (p *CubePuzzle) Facelets() [][][]Face {
	return p.cube.Facelets()
}

// Face returns a copy of one face grid.
func (p *CubePuzzle) Face(f Face) [][]Face {
	return p.cube.Face(f)
}

// IsSolved reports whether every face is a single colour.
func (p *CubePuzzle) IsSolved() bool {
	return p.cube.IsSolved()
}

// Draw writes the unfolded net as SVG.
func (p *CubePuzzle) Draw(w io.Writer) error {
	return render.SVG(w, p.cube.Facelets(), p.ColorScheme(), p.cfg.layout)
}

// DrawScramble applies a scramble and writes the result as SVG.
func (p *CubePuzzle) DrawScramble(w io.Writer, scramble string) error {
	if err := p.ApplyScramble(scramble); err != nil {
		return err
	}
	return p.Draw(w)
}

// SVG returns the current state as an SVG document.
func (p *CubePuzzle) SVG() (string, error) {
	var b strings.Builder
	if err := p.Draw(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Terminal returns the unfolded net coloured for a terminal.
func (p *CubePuzzle) Terminal() string {
	return render.Terminal(p.cube.Facelets(), p.ColorScheme())
}

// Reset returns the cube to the solved state.
func (p *CubePuzzle) Reset() {
	p.cube.Reset()
}

// Clone returns an independent copy sharing the same options.
func (p *CubePuzzle) Clone() *CubePuzzle {
	clone := *p
	clone.cube = p.cube.Clone()
	return &clone
}

// String returns the unfolded net as face letters.
func (p *CubePuzzle) String() string {
	return p.cube.String()
}
