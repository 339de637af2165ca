package cube

import (
	"fmt"
	"strings"
	"testing"

	"github.com/SeamusWaldron/cubescramble/internal/notation"
	"github.com/SeamusWaldron/cubescramble/pkg/types"
)

var faceLetters = []string{"R", "U", "F", "L", "D", "B"}

func mustNew(t *testing.T, size int) *Cube {
	t.Helper()
	c, err := New(size)
	if err != nil {
		t.Fatalf("New(%d): %v", size, err)
	}
	return c
}

func mustApply(t *testing.T, c *Cube, scramble string) {
	t.Helper()
	moves, err := notation.ParseScramble(scramble)
	if err != nil {
		t.Fatalf("ParseScramble(%q): %v", scramble, err)
	}
	c.ApplyMoves(moves)
}

// scrambled returns a cube of the given size after a fixed mixed scramble
// with wide and slice moves, so properties are checked away from solved.
func scrambled(t *testing.T, size int) *Cube {
	t.Helper()
	c := mustNew(t, size)
	mustApply(t, c, "R U' F2 Lw D B' Uw2 2R F' Bw L2 3Dw' U R' 2F")
	return c
}

func TestNewCubeIsSolved(t *testing.T) {
	for size := 2; size <= 7; size++ {
		c := mustNew(t, size)
		if !c.IsSolved() {
			t.Errorf("new %dx%d cube should be solved", size, size)
		}
		for _, face := range types.Faces {
			for row := 0; row < size; row++ {
				for col := 0; col < size; col++ {
					if c.At(face, row, col) != face {
						t.Fatalf("facelet %v[%d][%d] = %v", face, row, col, c.At(face, row, col))
					}
				}
			}
		}
	}
}

func TestNewRejectsBadSize(t *testing.T) {
	for _, size := range []int{-1, 0, 1, MaxSize + 1} {
		if _, err := New(size); err == nil {
			t.Errorf("New(%d) should fail", size)
		}
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := mustNew(t, 3)
	mustApply(t, c, "R")
	if c.IsSolved() {
		t.Error("Cube should not be solved after R move")
	}
}

// R on a solved 3x3 moves F's right column onto U, U's onto B (upside down),
// B's onto D and D's onto F.
func TestRMoveFacelets(t *testing.T) {
	c := mustNew(t, 3)
	mustApply(t, c, "R")

	for row := 0; row < 3; row++ {
		checks := []struct {
			face     types.Face
			row, col int
			want     types.Face
		}{
			{types.FaceU, row, 2, types.FaceF},
			{types.FaceF, row, 2, types.FaceD},
			{types.FaceD, row, 2, types.FaceB},
			{types.FaceB, row, 0, types.FaceU},
			{types.FaceU, row, 0, types.FaceU},
			{types.FaceL, row, 0, types.FaceL},
		}
		for _, ch := range checks {
			if got := c.At(ch.face, ch.row, ch.col); got != ch.want {
				t.Errorf("%v[%d][%d] = %v, want %v", ch.face, ch.row, ch.col, got, ch.want)
			}
		}
	}
}

func TestEmptyScrambleIsIdentity(t *testing.T) {
	for size := 2; size <= 7; size++ {
		c := scrambled(t, size)
		before := c.Clone()
		for _, s := range []string{"", "   ", "\t\n"} {
			mustApply(t, c, s)
		}
		if !c.Equal(before) {
			t.Errorf("%dx%d: empty scramble changed the cube", size, size)
		}
	}
}

func TestFaceMoveOrderFour(t *testing.T) {
	for size := 2; size <= 7; size++ {
		for _, f := range faceLetters {
			for _, token := range []string{f, f + "w", "3" + f + "w", "2" + f} {
				c := scrambled(t, size)
				before := c.Clone()
				mustApply(t, c, strings.Repeat(token+" ", 4))
				if !c.Equal(before) {
					t.Errorf("%dx%d: %s x 4 should be identity", size, size, token)
					t.Log(c.String())
				}
			}
		}
	}
}

func TestMoveThenInverseIsIdentity(t *testing.T) {
	pairs := [][2]string{{"", "'"}, {"2", "2"}, {"w", "w'"}, {"w2", "w2'"}, {"'", ""}}
	for size := 2; size <= 7; size++ {
		for _, f := range faceLetters {
			tokens := []string{f}
			for depth := 2; depth < size; depth++ {
				tokens = append(tokens, fmt.Sprintf("%d%s", depth, f))
			}
			for _, base := range tokens {
				for _, p := range pairs {
					if strings.HasPrefix(p[0], "w") && base != f {
						continue
					}
					c := scrambled(t, size)
					before := c.Clone()
					mustApply(t, c, base+p[0]+" "+base+p[1])
					if !c.Equal(before) {
						t.Errorf("%dx%d: %s%s %s%s should be identity", size, size, base, p[0], base, p[1])
					}
				}
			}
		}
	}
}

func TestDeepWideInverse(t *testing.T) {
	for size := 4; size <= 7; size++ {
		for _, f := range faceLetters {
			for depth := 1; depth < size-1; depth++ {
				token := fmt.Sprintf("%d%sw", depth+1, f)
				c := scrambled(t, size)
				before := c.Clone()
				mustApply(t, c, token+" "+token+"'")
				if !c.Equal(before) {
					t.Errorf("%dx%d: %s %s' should be identity", size, size, token, token)
				}
			}
		}
	}
}

func TestHalfTurnEqualsTwoQuarters(t *testing.T) {
	for size := 2; size <= 7; size++ {
		for _, f := range faceLetters {
			for _, token := range []string{f, f + "w", "2" + f} {
				a := scrambled(t, size)
				b := a.Clone()
				mustApply(t, a, token+"2")
				mustApply(t, b, token+" "+token)
				if !a.Equal(b) {
					t.Errorf("%dx%d: %s2 differs from %s %s", size, size, token, token, token)
				}

				// Doubling either quarter direction gives the same half turn.
				c := b.Clone()
				d := b.Clone()
				mustApply(t, c, token+"' "+token+"'")
				mustApply(t, d, token+"2")
				if !c.Equal(d) {
					t.Errorf("%dx%d: %s' %s' differs from %s2", size, size, token, token, token)
				}
			}
		}
	}
}

func TestPermutationConservation(t *testing.T) {
	for size := 2; size <= 7; size++ {
		c := scrambled(t, size)
		mustApply(t, c, "Rw' 2U Fw2 L' 3Bw D2 r u' f2")
		counts := c.Counts()
		for face, n := range counts {
			if n != size*size {
				t.Errorf("%dx%d: %d facelets of %v, want %d", size, size, n, types.Face(face), size*size)
			}
		}
	}
}

// An inner slice seen from one face is the same layer seen from the opposite
// face, turned the other way.
func TestSliceMatchesOppositeFace(t *testing.T) {
	opposite := map[string]string{"R": "L", "L": "R", "U": "D", "D": "U", "F": "B", "B": "F"}
	for size := 3; size <= 7; size++ {
		for _, f := range faceLetters {
			for k := 1; k < size-1; k++ {
				a := mustNew(t, size)
				b := mustNew(t, size)
				mustApply(t, a, fmt.Sprintf("%d%s", k+1, f))
				mustApply(t, b, fmt.Sprintf("%d%s'", size-k, opposite[f]))
				if !a.Equal(b) {
					t.Errorf("%dx%d: %d%s differs from %d%s'", size, size, k+1, f, size-k, opposite[f])
				}
			}
		}
	}
}

// Inner slices never reach the corners of any face.
func TestSliceLeavesCornersAlone(t *testing.T) {
	c := mustNew(t, 5)
	mustApply(t, c, "3R 2U' 4F2 r d")
	for _, face := range types.Faces {
		grid := c.Face(face)
		for _, rc := range [][2]int{{0, 0}, {0, 4}, {4, 0}, {4, 4}} {
			if grid[rc[0]][rc[1]] != face {
				t.Errorf("corner %v[%d][%d] = %v after slices", face, rc[0], rc[1], grid[rc[0]][rc[1]])
			}
		}
	}
}

func TestWideEqualsFacePlusSlices(t *testing.T) {
	for size := 4; size <= 7; size++ {
		a := scrambled(t, size)
		b := a.Clone()
		mustApply(t, a, "3Fw")
		mustApply(t, b, "F 2F 3F")
		if !a.Equal(b) {
			t.Errorf("%dx%d: 3Fw differs from F 2F 3F", size, size)
		}
	}
}

func TestOutOfRangeDepthIsNoOp(t *testing.T) {
	c := mustNew(t, 3)
	mustApply(t, c, "R U")
	before := c.Clone()

	for _, token := range []string{"3R", "3Rw", "4F", "9Uw'", "12L2"} {
		m, err := notation.Parse(token)
		if err != nil {
			t.Fatal(err)
		}
		if c.InRange(m) {
			t.Errorf("%s should be out of range on 3x3", token)
		}
		c.ApplyMove(m)
	}

	if !c.Equal(before) {
		t.Error("out of range moves should leave the cube unchanged")
	}
}

func TestSexyMoveSixTimesReturnsToSolved(t *testing.T) {
	for size := 2; size <= 5; size++ {
		c := mustNew(t, size)
		mustApply(t, c, strings.Repeat("R U R' U' ", 6))
		if !c.IsSolved() {
			t.Errorf("%dx%d: sexy move x 6 should return to solved", size, size)
			t.Log(c.String())
		}
	}
}

func TestScrambleAndReverse(t *testing.T) {
	for size := 2; size <= 7; size++ {
		moves, err := notation.ParseScramble("R U' Fw2 2L D B' 3Uw R2 f")
		if err != nil {
			t.Fatal(err)
		}
		c := mustNew(t, size)
		c.ApplyMoves(moves)
		if size > 2 && c.IsSolved() {
			t.Errorf("%dx%d: cube should be scrambled", size, size)
		}
		c.ApplyMoves(notation.InvertSequence(moves))
		if !c.IsSolved() {
			t.Errorf("%dx%d: cube should be solved after reversing scramble", size, size)
			t.Log(c.String())
		}
	}
}

func TestFaceletsIsACopy(t *testing.T) {
	c := mustNew(t, 3)
	grid := c.Facelets()
	grid[0][0][0] = types.FaceB
	face := c.Face(types.FaceU)
	face[1][1] = types.FaceB
	if !c.IsSolved() {
		t.Error("mutating returned grids must not change the cube")
	}
}

func TestReset(t *testing.T) {
	c := scrambled(t, 4)
	c.Reset()
	if !c.IsSolved() {
		t.Error("Reset should solve the cube")
	}
}

func TestString(t *testing.T) {
	c := mustNew(t, 2)
	want := "    U U \n" +
		"    U U \n" +
		"L L F F R R B B \n" +
		"L L F F R R B B \n" +
		"    D D \n" +
		"    D D \n"
	if got := c.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

// No ring may include the turning face or its opposite, and each ring must
// touch four distinct faces.
func TestAdjacencyRings(t *testing.T) {
	for _, face := range types.Faces {
		seen := map[types.Face]bool{}
		for _, step := range adjacency[face] {
			if step.face == face || step.face == face.Opposite() {
				t.Errorf("ring of %v includes %v on the same axis", face, step.face)
			}
			seen[step.face] = true
		}
		if len(seen) != 4 {
			t.Errorf("ring of %v touches %d faces, want 4", face, len(seen))
		}
	}
}
