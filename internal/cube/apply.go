package cube

import "github.com/SeamusWaldron/cubescramble/pkg/types"

// InRange reports whether a move turns layers that exist on this cube.
// Layer size-1 and beyond would be the opposite face or past it, so such
// moves have no effect here.
func (c *Cube) InRange(m types.Move) bool {
	return m.Depth >= 0 && m.Depth < c.size-1
}

// ApplyMove applies a single move to the cube.
// Half turns are two clockwise quarter turns. Moves that are not InRange
// leave the cube unchanged.
func (c *Cube) ApplyMove(m types.Move) {
	if !m.Face.Valid() || !c.InRange(m) {
		return
	}

	switch m.Turn {
	case types.TurnCW:
		c.quarter(m, true)
	case types.TurnCCW:
		c.quarter(m, false)
	case types.Turn180:
		c.quarter(m, true)
		c.quarter(m, true)
	}
}

// ApplyMoves applies a sequence of moves to the cube.
func (c *Cube) ApplyMoves(moves []types.Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}

// quarter turns every layer of the move by 90 degrees. The face grid itself
// only turns when the outer layer is part of the move.
func (c *Cube) quarter(m types.Move, clockwise bool) {
	first, last := m.Layers()
	if first == 0 {
		rotateGrid(c.facelets[m.Face], clockwise)
	}
	for k := first; k <= last; k++ {
		c.cycleLayer(m.Face, k, clockwise)
	}
}
