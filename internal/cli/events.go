package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubescramble"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List supported event codes",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tSIZE\tNAME")
		for _, e := range cubescramble.Events() {
			fmt.Fprintf(w, "%s\t%dx%d\t%s\n", e.Code, e.Size, e.Size, e.Name)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
}
