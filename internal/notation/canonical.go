// Package notation parses and formats NxN cube move notation.
//
// A token has the form
//
//	[depth] face ['w'] [count] [''']
//
// where depth is a 1-indexed layer number, face is one of R U F L D B
// (lowercase selects an inner slice), 'w' marks a wide block move, and count
// is the number of quarter turns, reduced modulo 4. A trailing prime negates
// the count.
package notation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/SeamusWaldron/cubescramble/pkg/types"
)

// ErrInvalidNotation is wrapped by every parse failure.
var ErrInvalidNotation = errors.New("cubescramble: invalid move notation")

// NotationError describes a token that could not be parsed.
type NotationError struct {
	Token  string
	Index  int // position of the token in its scramble, -1 for a lone token
	Reason string
}

func (e *NotationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%v: token %d %q: %s", ErrInvalidNotation, e.Index+1, e.Token, e.Reason)
	}
	return fmt.Sprintf("%v: %q: %s", ErrInvalidNotation, e.Token, e.Reason)
}

func (e *NotationError) Unwrap() error {
	return ErrInvalidNotation
}

func invalid(token, reason string) error {
	return &NotationError{Token: token, Index: -1, Reason: reason}
}

// Parse parses a single notation token into a Move.
// Examples: R, U', F2, Rw, Rw2, 3Fw', 2R, r, R3, R2'
func Parse(token string) (types.Move, error) {
	if token == "" {
		return types.Move{}, invalid(token, "empty token")
	}

	i := 0
	for i < len(token) && isDigit(token[i]) {
		i++
	}
	depthDigits := token[:i]

	if i == len(token) {
		return types.Move{}, invalid(token, "missing face letter")
	}
	letter := token[i]
	face, ok := types.FaceFromLetter(letter)
	if !ok {
		return types.Move{}, invalid(token, fmt.Sprintf("unknown face %q", string(letter)))
	}
	slice := letter >= 'a' && letter <= 'z'
	i++

	wide := false
	if i < len(token) && token[i] == 'w' {
		wide = true
		i++
	}
	if wide && slice {
		return types.Move{}, invalid(token, "cannot be both wide and slice")
	}

	suffix := token[i:]
	prime := strings.HasSuffix(suffix, "'")
	countDigits := strings.TrimSuffix(suffix, "'")
	for j := 0; j < len(countDigits); j++ {
		if !isDigit(countDigits[j]) {
			return types.Move{}, invalid(token, fmt.Sprintf("unexpected %q in turn suffix", suffix))
		}
	}

	depth := 0
	if wide || slice {
		depth = 1
	}
	if depthDigits != "" {
		n, err := strconv.Atoi(depthDigits)
		if errors.Is(err, strconv.ErrRange) {
			// Deeper than any cube; the move is out of range rather than malformed.
			n, err = math.MaxInt, nil
		}
		if err != nil || n < 1 {
			return types.Move{}, invalid(token, "layer depth must be a positive number")
		}
		depth = n - 1
	}

	quarters := 1
	if countDigits != "" {
		n, err := parseMod4(countDigits)
		if err != nil {
			return types.Move{}, invalid(token, "bad turn count")
		}
		quarters = n
	}
	if prime {
		quarters = -quarters
	}

	return types.Move{
		Face:  face,
		Depth: depth,
		Wide:  wide,
		Turn:  types.TurnFromQuarters(quarters),
	}, nil
}

// ParseScramble parses a whitespace-separated sequence of moves.
// Every token must parse; the first failure is returned with its position.
func ParseScramble(s string) ([]types.Move, error) {
	parts := strings.Fields(s)
	moves := make([]types.Move, 0, len(parts))

	for idx, part := range parts {
		move, err := Parse(part)
		if err != nil {
			var ne *NotationError
			if errors.As(err, &ne) {
				ne.Index = idx
			}
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatSequence formats a slice of moves as a space-separated string.
func FormatSequence(moves []types.Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InvertSequence returns the moves that undo the given sequence.
func InvertSequence(moves []types.Move) []types.Move {
	inv := make([]types.Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}

// parseMod4 reduces an arbitrarily long decimal string modulo 4.
func parseMod4(digits string) (int, error) {
	if len(digits) > 2 {
		digits = digits[len(digits)-2:]
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, err
	}
	return n % 4, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
