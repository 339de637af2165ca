package cubescramble

import (
	"errors"

	"github.com/SeamusWaldron/cubescramble/internal/cube"
	"github.com/SeamusWaldron/cubescramble/internal/notation"
	"github.com/SeamusWaldron/cubescramble/pkg/types"
)

// Sentinel errors for the cubescramble package.
var (
	// Puzzle selection
	ErrUnknownPuzzle = errors.New("cubescramble: unknown puzzle")
	ErrInvalidSize   = cube.ErrInvalidSize

	// Scramble errors
	ErrInvalidNotation = notation.ErrInvalidNotation
	ErrDepthOutOfRange = errors.New("cubescramble: move depth out of range")
	ErrScrambleTooLong = errors.New("cubescramble: scramble too long")

	// Rendering
	ErrInvalidColor = types.ErrInvalidColor
)

// NotationError describes a scramble token that could not be parsed.
type NotationError = notation.NotationError
