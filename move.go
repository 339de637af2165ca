package cubescramble

import (
	"github.com/SeamusWaldron/cubescramble/internal/notation"
	"github.com/SeamusWaldron/cubescramble/pkg/types"
)

// Face identifies a cube face. Facelet values use the same type: a facelet
// holds the face it sat on when the cube was solved.
type Face = types.Face

const (
	FaceR = types.FaceR // Right
	FaceU = types.FaceU // Up
	FaceF = types.FaceF // Front
	FaceL = types.FaceL // Left
	FaceD = types.FaceD // Down
	FaceB = types.FaceB // Back
)

// Turn is a quarter-turn count modulo 4.
type Turn = types.Turn

const (
	None   = types.TurnNone
	CW     = types.TurnCW
	Double = types.Turn180
	CCW    = types.TurnCCW
)

// Move is a single turn of one or more layers.
type Move = types.Move

// ParseMove parses a single notation token.
// Examples: R, U', F2, Rw, 3Fw', 2R, r
func ParseMove(token string) (Move, error) {
	return notation.Parse(token)
}

// ParseScramble parses a whitespace-separated scramble.
// On error no moves are returned; the error is a *NotationError.
func ParseScramble(s string) ([]Move, error) {
	return notation.ParseScramble(s)
}

// FormatMoves formats moves as canonical space-separated notation.
func FormatMoves(moves []Move) string {
	return notation.FormatSequence(moves)
}

// InvertMoves returns the sequence that undoes moves.
func InvertMoves(moves []Move) []Move {
	return notation.InvertSequence(moves)
}

// DescribeMoves returns a plain-English description of a sequence.
func DescribeMoves(moves []Move) string {
	return notation.DescribeSequence(moves)
}
