package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubescramble"
	"github.com/SeamusWaldron/cubescramble/internal/storage"
)

var (
	historyEvent  string
	historyLimit  int
	historyLast   bool
	historyFormat string
	historyOutput string
	historyKeep   int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse previously rendered scrambles",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent renders",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [render-id]",
	Short: "Show a stored render in the terminal",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistoryShow,
}

var historyExportCmd = &cobra.Command{
	Use:   "export [render-id]",
	Short: "Export a stored render",
	Long: `Export a stored render as SVG, JSON or the scramble text.

Examples:
  cubescramble history export --last -o last.svg
  cubescramble history export <render_id> --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistoryExport,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <render-id>",
	Short: "Delete a stored render",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete all but the newest renders",
	Args:  cobra.NoArgs,
	RunE:  runHistoryPrune,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyExportCmd, historyDeleteCmd, historyPruneCmd)

	historyListCmd.Flags().StringVar(&historyEvent, "event", "", "Only list renders for this event code")
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of renders (0 = all)")

	for _, c := range []*cobra.Command{historyShowCmd, historyExportCmd} {
		c.Flags().BoolVar(&historyLast, "last", false, "Use the most recent render")
	}
	historyExportCmd.Flags().StringVar(&historyFormat, "format", "svg", "Export format (svg, json, txt)")
	historyExportCmd.Flags().StringVarP(&historyOutput, "output", "o", "", "Output file (default: stdout)")

	historyPruneCmd.Flags().IntVar(&historyKeep, "keep", 100, "Number of renders to keep")
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	renders, err := storage.NewRenderRepository(db).List(historyEvent, historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(renders) == 0 {
		fmt.Fprintln(out, "No renders found. Render a scramble first with: cubescramble render")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tEVENT\tSIZE\tMOVES\tSCRAMBLE")
	for _, rd := range renders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
			rd.RenderID, rd.CreatedAt.Local().Format(time.DateTime), eventLabel(rd), rd.Size, rd.MoveCount, truncate(rd.Scramble, 40))
	}
	return w.Flush()
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	rd, err := lookupRender(args)
	if err != nil {
		return err
	}

	opts, err := puzzleOptions()
	if err != nil {
		return err
	}
	p, err := cubescramble.NewCube(rd.Size, opts...)
	if err != nil {
		return err
	}
	if err := p.ApplyScramble(rd.Scramble); err != nil {
		return fmt.Errorf("stored scramble no longer applies: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Render %s", rd.RenderID)))
	fmt.Fprintf(out, "Created:  %s\n", rd.CreatedAt.Local().Format(time.RFC3339))
	fmt.Fprintf(out, "Event:    %s (%dx%d)\n", eventLabel(*rd), rd.Size, rd.Size)
	fmt.Fprintf(out, "Scramble: %s\n", moveStyle.Render(rd.Scramble))
	fmt.Fprintf(out, "Moves:    %d\n\n", rd.MoveCount)
	fmt.Fprint(out, p.Terminal())
	return nil
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	if err := checkFormat(historyFormat); err != nil {
		return err
	}

	rd, err := lookupRender(args)
	if err != nil {
		return err
	}

	var data []byte
	switch historyFormat {
	case "svg":
		data = []byte(rd.SVG + "\n")
	case "txt":
		data = []byte(rd.Scramble + "\n")
	case "json":
		export := map[string]any{
			"id":         rd.RenderID,
			"created_at": rd.CreatedAt.Format(time.RFC3339),
			"event":      rd.Event,
			"size":       rd.Size,
			"scramble":   rd.Scramble,
			"move_count": rd.MoveCount,
			"svg":        rd.SVG,
		}
		data, err = json.MarshalIndent(export, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode render: %w", err)
		}
		data = append(data, '\n')
	}

	return writeOutput(cmd.OutOrStdout(), historyOutput, data)
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	deleted, err := storage.NewRenderRepository(db).Delete(args[0])
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("render not found: %s", args[0])
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted render %s\n", args[0])
	return nil
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	removed, err := storage.NewRenderRepository(db).Prune(historyKeep)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d render(s)\n", removed)
	return nil
}

// lookupRender loads the render named in args, or the latest with --last.
func lookupRender(args []string) (*storage.Render, error) {
	if len(args) == 0 && !historyLast {
		return nil, fmt.Errorf("specify a render ID or --last")
	}

	db, err := openDB()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	repo := storage.NewRenderRepository(db)
	var rd *storage.Render
	if len(args) > 0 {
		rd, err = repo.Get(args[0])
	} else {
		rd, err = repo.GetLast()
	}
	if err != nil {
		return nil, err
	}
	if rd == nil {
		if len(args) > 0 {
			return nil, fmt.Errorf("render not found: %s", args[0])
		}
		return nil, fmt.Errorf("no renders found")
	}
	return rd, nil
}

func eventLabel(rd storage.Render) string {
	if rd.Event == nil {
		return "-"
	}
	return *rd.Event
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
