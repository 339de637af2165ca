// Package cube provides an NxN cube facelet model with layer moves.
package cube

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SeamusWaldron/cubescramble/pkg/types"
)

// MaxSize bounds the cube order accepted by New.
const MaxSize = 64

// ErrInvalidSize is returned when a cube order is outside [2, MaxSize].
var ErrInvalidSize = errors.New("cubescramble: invalid cube size")

// Cube is an NxN cube in facelet form.
// Each face is a size x size grid indexed [row][col], with the face seen
// from outside the cube in the unfolded net:
//
//	      U
//	  L   F   R   B
//	      D
//
// A freshly created cube has every facelet of face f equal to f.
// A Cube must not be mutated from more than one goroutine at a time.
type Cube struct {
	size int
	// facelets[face][row][col] = face the sticker started on
	facelets [types.NumFaces][][]types.Face
}

// New creates a solved cube of the given order.
func New(size int) (*Cube, error) {
	if size < 2 || size > MaxSize {
		return nil, fmt.Errorf("%w: %d (want 2..%d)", ErrInvalidSize, size, MaxSize)
	}
	c := &Cube{size: size}
	c.Reset()
	return c, nil
}

// Reset returns the cube to the solved state.
func (c *Cube) Reset() {
	for _, face := range types.Faces {
		grid := make([][]types.Face, c.size)
		for row := range grid {
			grid[row] = make([]types.Face, c.size)
			for col := range grid[row] {
				grid[row][col] = face
			}
		}
		c.facelets[face] = grid
	}
}

// Size returns the cube order.
func (c *Cube) Size() int {
	return c.size
}

// At returns the facelet at the given position.
func (c *Cube) At(face types.Face, row, col int) types.Face {
	return c.facelets[face][row][col]
}

// Face returns a copy of one face grid.
func (c *Cube) Face(face types.Face) [][]types.Face {
	return copyGrid(c.facelets[face])
}

// Facelets returns a copy of the full state, indexed [face][row][col].
func (c *Cube) Facelets() [][][]types.Face {
	out := make([][][]types.Face, types.NumFaces)
	for _, face := range types.Faces {
		out[face] = copyGrid(c.facelets[face])
	}
	return out
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := &Cube{size: c.size}
	for _, face := range types.Faces {
		clone.facelets[face] = copyGrid(c.facelets[face])
	}
	return clone
}

// Equal reports whether two cubes have the same order and facelets.
func (c *Cube) Equal(other *Cube) bool {
	if other == nil || c.size != other.size {
		return false
	}
	for _, face := range types.Faces {
		for row := 0; row < c.size; row++ {
			for col := 0; col < c.size; col++ {
				if c.facelets[face][row][col] != other.facelets[face][row][col] {
					return false
				}
			}
		}
	}
	return true
}

// IsSolved returns true if every face is a single colour.
// Whole-cube orientation is fixed, so solved means face f holds only f.
func (c *Cube) IsSolved() bool {
	for _, face := range types.Faces {
		for _, row := range c.facelets[face] {
			for _, v := range row {
				if v != face {
					return false
				}
			}
		}
	}
	return true
}

// Counts returns how many facelets of each value the cube holds.
// Every move is a permutation, so each count is always size*size.
func (c *Cube) Counts() [types.NumFaces]int {
	var counts [types.NumFaces]int
	for _, face := range types.Faces {
		for _, row := range c.facelets[face] {
			for _, v := range row {
				if v.Valid() {
					counts[v]++
				}
			}
		}
	}
	return counts
}

// String returns a text representation of the unfolded cube.
func (c *Cube) String() string {
	var b strings.Builder
	indent := strings.Repeat("  ", c.size)

	// U face (indented)
	for row := 0; row < c.size; row++ {
		b.WriteString(indent)
		c.writeRow(&b, types.FaceU, row)
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < c.size; row++ {
		for _, face := range []types.Face{types.FaceL, types.FaceF, types.FaceR, types.FaceB} {
			c.writeRow(&b, face, row)
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < c.size; row++ {
		b.WriteString(indent)
		c.writeRow(&b, types.FaceD, row)
		b.WriteString("\n")
	}

	return b.String()
}

func (c *Cube) writeRow(b *strings.Builder, face types.Face, row int) {
	for col := 0; col < c.size; col++ {
		b.WriteString(c.facelets[face][row][col].String())
		b.WriteByte(' ')
	}
}

func copyGrid(g [][]types.Face) [][]types.Face {
	out := make([][]types.Face, len(g))
	for i, row := range g {
		out[i] = append([]types.Face(nil), row...)
	}
	return out
}
