package cube

import "github.com/SeamusWaldron/cubescramble/pkg/types"

// strip names one row or column of a face grid touching a turning layer.
// For layer k (0 = the turning face itself) a near strip is line k and a far
// strip is line size-1-k.
type strip struct {
	face types.Face
	col  bool // column strip, otherwise a row strip
	far  bool
}

// ringStep is one position of a layer ring. It receives the strip of the next
// position; reverse means the incoming strip is copied back to front.
type ringStep struct {
	strip
	reverse bool
}

// ring is the clockwise 4-cycle for a layer: ring[0] <- ring[1] <- ring[2]
// <- ring[3] <- ring[0]. Strips are read top to bottom or left to right in
// the unfolded net.
type ring [4]ringStep

// adjacency holds the clockwise ring of every face, looking at that face.
//
// R/L axis: columns of U, F, D run top to bottom in the same direction on the
// physical cube. B is drawn rotated 180 degrees relative to them, so its
// column sits on the opposite side (near for R, far for L) and both copies
// that cross B are reversed.
//
// U/D axis: the ring is the same row of R, B, L, F. All four lie side by side
// in the net with matching orientation, so nothing is reversed.
//
// F/B axis: the ring alternates rows of U, D and columns of L, R. A column
// read top to bottom meets the adjacent row either left to right or right to
// left depending on which corner it turns through, so exactly two of the four
// copies reverse. F touches the far row of U and near row of D; B the reverse.
var adjacency = [types.NumFaces]ring{
	types.FaceR: {
		{strip{types.FaceU, true, true}, false},  // U right col <- F right col
		{strip{types.FaceF, true, true}, false},  // F right col <- D right col
		{strip{types.FaceD, true, true}, true},   // D right col <- B left col, upside down
		{strip{types.FaceB, true, false}, true},  // B left col <- U right col, upside down
	},
	types.FaceL: {
		{strip{types.FaceD, true, false}, false}, // D left col <- F left col
		{strip{types.FaceF, true, false}, false}, // F left col <- U left col
		{strip{types.FaceU, true, false}, true},  // U left col <- B right col, upside down
		{strip{types.FaceB, true, true}, true},   // B right col <- D left col, upside down
	},
	types.FaceU: {
		{strip{types.FaceR, false, false}, false}, // R top row <- B top row
		{strip{types.FaceB, false, false}, false}, // B top row <- L top row
		{strip{types.FaceL, false, false}, false}, // L top row <- F top row
		{strip{types.FaceF, false, false}, false}, // F top row <- R top row
	},
	types.FaceD: {
		{strip{types.FaceR, false, true}, false}, // R bottom row <- F bottom row
		{strip{types.FaceF, false, true}, false}, // F bottom row <- L bottom row
		{strip{types.FaceL, false, true}, false}, // L bottom row <- B bottom row
		{strip{types.FaceB, false, true}, false}, // B bottom row <- R bottom row
	},
	types.FaceF: {
		{strip{types.FaceU, false, true}, true},  // U bottom row <- L right col, bottom to top
		{strip{types.FaceL, true, true}, false},  // L right col <- D top row
		{strip{types.FaceD, false, false}, true}, // D top row <- R left col, bottom to top
		{strip{types.FaceR, true, false}, false}, // R left col <- U bottom row
	},
	types.FaceB: {
		{strip{types.FaceD, false, true}, false}, // D bottom row <- L left col
		{strip{types.FaceL, true, false}, true},  // L left col <- U top row, right to left
		{strip{types.FaceU, false, false}, false}, // U top row <- R right col
		{strip{types.FaceR, true, true}, true},   // R right col <- D bottom row, right to left
	},
}

// line returns the grid index of a strip for layer k.
func (c *Cube) line(s strip, k int) int {
	if s.far {
		return c.size - 1 - k
	}
	return k
}

// read copies a strip out of the grid.
func (c *Cube) read(s strip, k int) []types.Face {
	grid := c.facelets[s.face]
	idx := c.line(s, k)
	out := make([]types.Face, c.size)
	for i := range out {
		if s.col {
			out[i] = grid[i][idx]
		} else {
			out[i] = grid[idx][i]
		}
	}
	return out
}

// write stores values into a strip, back to front when reverse is set.
func (c *Cube) write(s strip, k int, values []types.Face, reverse bool) {
	grid := c.facelets[s.face]
	idx := c.line(s, k)
	for i := range values {
		v := values[i]
		if reverse {
			v = values[len(values)-1-i]
		}
		if s.col {
			grid[i][idx] = v
		} else {
			grid[idx][i] = v
		}
	}
}

// cycleLayer moves the four boundary strips of layer k one step around the
// ring of face. Counter-clockwise runs the exact inverse of the clockwise
// cycle, with each step's reversal carried along.
func (c *Cube) cycleLayer(face types.Face, k int, clockwise bool) {
	r := &adjacency[face]

	if clockwise {
		saved := c.read(r[0].strip, k)
		for i := 0; i < 3; i++ {
			c.write(r[i].strip, k, c.read(r[i+1].strip, k), r[i].reverse)
		}
		c.write(r[3].strip, k, saved, r[3].reverse)
		return
	}

	saved := c.read(r[3].strip, k)
	for i := 2; i >= 0; i-- {
		c.write(r[i+1].strip, k, c.read(r[i].strip, k), r[i].reverse)
	}
	c.write(r[0].strip, k, saved, r[3].reverse)
}
