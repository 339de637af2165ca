package cubescramble_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/SeamusWaldron/cubescramble"
)

func ExampleNew() {
	p, err := cubescramble.New("222")
	if err != nil {
		log.Fatal(err)
	}
	if err := p.ApplyScramble("R"); err != nil {
		log.Fatal(err)
	}
	for _, line := range strings.Split(p.(*cubescramble.CubePuzzle).String(), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	// Output:
	//     U F
	//     U F
	// L L F D R R U B
	// L L F D R R U B
	//     D B
	//     D B
}

func ExampleParseScramble() {
	moves, err := cubescramble.ParseScramble("R3 3Fw2' r U5")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(cubescramble.FormatMoves(moves))
	fmt.Println(cubescramble.FormatMoves(cubescramble.InvertMoves(moves)))
	// Output:
	// R' 3Fw2 2R U
	// U' 2R' 3Fw2 R
}
