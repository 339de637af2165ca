// cubescramble - CLI application for rendering NxN cube scrambles.
package main

import (
	"github.com/SeamusWaldron/cubescramble/internal/cli"
)

func main() {
	cli.Execute()
}
