// Package types contains shared type definitions for the cubescramble module.
package types

import (
	"fmt"
	"strings"
)

// Face identifies one of the six cube faces. A facelet stores the Face it
// belonged to on the solved cube, so the same type doubles as a sticker value.
type Face uint8

const (
	FaceR Face = 0 // Right
	FaceU Face = 1 // Up
	FaceF Face = 2 // Front
	FaceL Face = 3 // Left
	FaceD Face = 4 // Down
	FaceB Face = 5 // Back
)

// NumFaces is the number of faces on a cube.
const NumFaces = 6

// Faces lists every face in index order.
var Faces = [NumFaces]Face{FaceR, FaceU, FaceF, FaceL, FaceD, FaceB}

func (f Face) String() string {
	switch f {
	case FaceR:
		return "R"
	case FaceU:
		return "U"
	case FaceF:
		return "F"
	case FaceL:
		return "L"
	case FaceD:
		return "D"
	case FaceB:
		return "B"
	default:
		return "?"
	}
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f < NumFaces
}

// Opposite returns the face on the other side of the cube.
func (f Face) Opposite() Face {
	return (f + 3) % NumFaces
}

// FaceFromLetter maps a face letter (either case) to a Face.
func FaceFromLetter(c byte) (Face, bool) {
	switch c {
	case 'R', 'r':
		return FaceR, true
	case 'U', 'u':
		return FaceU, true
	case 'F', 'f':
		return FaceF, true
	case 'L', 'l':
		return FaceL, true
	case 'D', 'd':
		return FaceD, true
	case 'B', 'b':
		return FaceB, true
	default:
		return 0, false
	}
}

// ParseFace parses a face name such as "R" or "u".
func ParseFace(s string) (Face, error) {
	if len(s) == 1 {
		if f, ok := FaceFromLetter(s[0]); ok {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown face %q", s)
}

// MarshalText encodes the face as its letter.
func (f Face) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("invalid face %d", uint8(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText decodes a face letter.
func (f *Face) UnmarshalText(b []byte) error {
	face, err := ParseFace(string(b))
	if err != nil {
		return err
	}
	*f = face
	return nil
}

// Turn is the amount a layer turns, as a quarter-turn count modulo 4.
type Turn uint8

const (
	TurnNone Turn = 0 // No rotation
	TurnCW   Turn = 1 // Clockwise quarter turn
	Turn180  Turn = 2 // Half turn
	TurnCCW  Turn = 3 // Counter-clockwise quarter turn
)

// TurnFromQuarters normalizes a signed quarter-turn count.
// 1 -> CW, 2 -> 180, -1 and 3 -> CCW, multiples of 4 -> None.
func TurnFromQuarters(q int) Turn {
	return Turn(((q % 4) + 4) % 4)
}

func (t Turn) String() string {
	switch t {
	case TurnNone:
		return "none"
	case TurnCW:
		return "cw"
	case Turn180:
		return "180"
	case TurnCCW:
		return "ccw"
	default:
		return "?"
	}
}

// Suffix returns the notation suffix for the turn.
func (t Turn) Suffix() string {
	switch t {
	case TurnNone:
		return "0"
	case TurnCCW:
		return "'"
	case Turn180:
		return "2"
	default:
		return ""
	}
}

// Inverse returns the turn that undoes t.
func (t Turn) Inverse() Turn {
	return TurnFromQuarters(-int(t))
}

// Move is a single parsed turn of one or more layers.
//
// Depth is the 0-based index of the innermost layer involved, counted from
// Face. A wide move turns layers 0..Depth as a block; a non-wide move turns
// layer Depth alone, so Depth > 0 without Wide is a slice move.
type Move struct {
	Face  Face `json:"face"`
	Depth int  `json:"depth"`
	Wide  bool `json:"wide"`
	Turn  Turn `json:"turn"`
}

// Notation returns the canonical notation for the move.
// Examples: R, R', U2, Rw, 3Fw', 2L
func (m Move) Notation() string {
	var b strings.Builder
	switch {
	case m.Wide && m.Depth != 1:
		fmt.Fprintf(&b, "%d", m.Depth+1)
	case !m.Wide && m.Depth > 0:
		fmt.Fprintf(&b, "%d", m.Depth+1)
	}
	b.WriteString(m.Face.String())
	if m.Wide {
		b.WriteByte('w')
	}
	b.WriteString(m.Turn.Suffix())
	return b.String()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	inv := m
	inv.Turn = m.Turn.Inverse()
	return inv
}

// IsSlice reports whether the move turns an inner layer without the face.
func (m Move) IsSlice() bool {
	return !m.Wide && m.Depth > 0
}

// Layers returns the inclusive range of layers the move turns.
func (m Move) Layers() (first, last int) {
	if m.Wide {
		return 0, m.Depth
	}
	return m.Depth, m.Depth
}
