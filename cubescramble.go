// Package cubescramble turns scramble algorithms for NxN cubes into the
// resulting facelet arrangement, and draws it.
//
// # Features
//
//   - Cubes of any order from 2x2 up to 64x64
//   - Face, wide (Rw, 3Fw') and slice (2R, r) moves
//   - Atomic scramble application: a bad token leaves the cube untouched
//   - SVG and terminal rendering of the unfolded net
//   - Move-by-move stepping through a scramble
//
// # Quick Start
//
// Build a puzzle from a WCA event code and apply a scramble:
//
//	p, err := cubescramble.New("444")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := p.ApplyScramble("Rw U2 3Fw' r D"); err != nil {
//	    log.Fatal(err)
//	}
//	p.Draw(os.Stdout) // SVG
//
// # Notation
//
// A token is [depth] face ['w'] [count] ['''].
// Depth is 1-indexed, count is taken modulo 4 and a trailing prime negates
// it, so R3 and R5' are both R'. A lowercase face letter turns the inner
// slice only.
//
// # Event Codes
//
//	222        2x2
//	333 OH 3BLD 3x3
//	444        4x4
//	555        5x5
//	666        6x6
//	777        7x7
package cubescramble
