package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubescramble"
	"github.com/SeamusWaldron/cubescramble/internal/render"
)

var (
	showSize     int
	showDescribe bool
	showPlain    bool
)

var showCmd = &cobra.Command{
	Use:   "show [event] [scramble...]",
	Short: "Show a scrambled cube in the terminal",
	Long: `Apply a scramble and print the unfolded net with terminal colours.

Examples:
  cubescramble show 333 "R U R' U'"
  cubescramble show 555 --describe "3Rw 2U' b"
  cubescramble show --size 8 --plain "4Fw2"`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntVar(&showSize, "size", 0, "Cube order, instead of an event code")
	showCmd.Flags().BoolVar(&showDescribe, "describe", false, "Describe each move in words")
	showCmd.Flags().BoolVar(&showPlain, "plain", false, "Print face letters instead of colours")
}

func runShow(cmd *cobra.Command, args []string) error {
	event, size, scramble, err := puzzleArgs(args, showSize, cmd.InOrStdin())
	if err != nil {
		return err
	}

	opts, err := puzzleOptions()
	if err != nil {
		return err
	}
	p, err := cubescramble.NewCube(size, opts...)
	if err != nil {
		return err
	}
	moves, err := p.ApplyScrambleMoves(scramble)
	if err != nil {
		return err
	}

	var b strings.Builder
	title := fmt.Sprintf("%dx%d", size, size)
	if event != "" {
		title = event + " " + title
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	if len(moves) > 0 {
		b.WriteString(moveStyle.Render(cubescramble.FormatMoves(moves)))
		b.WriteString("\n")
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf("Moves: %d  Solved: %v", len(moves), p.IsSolved())))
	b.WriteString("\n\n")

	if showPlain {
		b.WriteString(p.String())
	} else {
		b.WriteString(p.Terminal())
		b.WriteString("\n")
		b.WriteString(render.Legend(p.ColorScheme()))
		b.WriteString("\n")
	}

	if showDescribe && len(moves) > 0 {
		b.WriteString("\n")
		for i, m := range moves {
			fmt.Fprintf(&b, "%3d. %-6s %s\n", i+1, m.Notation(), cubescramble.DescribeMoves([]cubescramble.Move{m}))
		}
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
	return err
}
