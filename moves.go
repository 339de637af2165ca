package cubescramble

// Predefined moves for convenience.
//
// Example:
//
//	p.ApplyMoves(cubescramble.R, cubescramble.U, cubescramble.RPrime, cubescramble.UPrime)
var (
	// Right face moves
	R      = Move{Face: FaceR, Turn: CW}     // Right clockwise
	RPrime = Move{Face: FaceR, Turn: CCW}    // Right counter-clockwise
	R2     = Move{Face: FaceR, Turn: Double} // Right 180

	// Left face moves
	L      = Move{Face: FaceL, Turn: CW}
	LPrime = Move{Face: FaceL, Turn: CCW}
	L2     = Move{Face: FaceL, Turn: Double}

	// Up face moves
	U      = Move{Face: FaceU, Turn: CW}
	UPrime = Move{Face: FaceU, Turn: CCW}
	U2     = Move{Face: FaceU, Turn: Double}

	// Down face moves
	D      = Move{Face: FaceD, Turn: CW}
	DPrime = Move{Face: FaceD, Turn: CCW}
	D2     = Move{Face: FaceD, Turn: Double}

	// Front face moves
	F      = Move{Face: FaceF, Turn: CW}
	FPrime = Move{Face: FaceF, Turn: CCW}
	F2     = Move{Face: FaceF, Turn: Double}

	// Back face moves
	B      = Move{Face: FaceB, Turn: CW}
	BPrime = Move{Face: FaceB, Turn: CCW}
	B2     = Move{Face: FaceB, Turn: Double}
)

// Wide returns the block move turning the outer depth layers of face.
// Wide(FaceR, 2, CW) is Rw.
func Wide(face Face, layers int, turn Turn) Move {
	return Move{Face: face, Depth: layers - 1, Wide: true, Turn: turn}
}

// Slice returns the move turning layer n (1 = the face itself) of face alone.
// Slice(FaceR, 2, CW) is 2R.
func Slice(face Face, n int, turn Turn) Move {
	return Move{Face: face, Depth: n - 1, Turn: turn}
}

// Sexy move: R U R' U'
var SexyMove = []Move{R, U, RPrime, UPrime}

// T-perm algorithm
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
