package notation

import (
	"fmt"
	"strings"

	"github.com/SeamusWaldron/cubescramble/pkg/types"
)

// faceNames maps faces to the words used in descriptions.
var faceNames = map[types.Face]string{
	types.FaceR: "right",
	types.FaceU: "up",
	types.FaceF: "front",
	types.FaceL: "left",
	types.FaceD: "down",
	types.FaceB: "back",
}

// Describe converts a Move to a short English description.
// Reference frame: looking straight at the named face.
//
// Examples:
//
//	R    -> "right face clockwise"
//	U2   -> "up face half turn"
//	Rw'  -> "right two layers counter-clockwise"
//	3Fw  -> "front three layers clockwise"
//	2L   -> "left slice 2 clockwise"
func Describe(m types.Move) string {
	var what string
	switch {
	case m.Wide:
		what = fmt.Sprintf("%s %s layers", faceNames[m.Face], layerCount(m.Depth+1))
	case m.Depth > 0:
		what = fmt.Sprintf("%s slice %d", faceNames[m.Face], m.Depth+1)
	default:
		what = faceNames[m.Face] + " face"
	}

	switch m.Turn {
	case types.TurnCW:
		return what + " clockwise"
	case types.TurnCCW:
		return what + " counter-clockwise"
	case types.Turn180:
		return what + " half turn"
	default:
		return what + " unchanged"
	}
}

// DescribeSequence formats moves as a comma-separated description.
func DescribeSequence(moves []types.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = Describe(m)
	}
	return strings.Join(parts, ", ")
}

func layerCount(n int) string {
	words := []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}
	if n < len(words) {
		return words[n]
	}
	return fmt.Sprintf("%d", n)
}
