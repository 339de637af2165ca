// Package cli implements the command-line interface for cubescramble.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubescramble"
	"github.com/SeamusWaldron/cubescramble/internal/config"
	"github.com/SeamusWaldron/cubescramble/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool

	cfg *config.Config
	log = logrus.New()
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubescramble",
	Short: "NxN cube scramble renderer",
	Long: `cubescramble applies scramble algorithms to NxN cubes (2x2 through 7x7
by event code, any order up to 64 with --size) and draws the resulting state
as an SVG image or a coloured terminal net.

Rendered scrambles are kept in a local history database.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.cubescramble/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubescramble/renders.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// setup loads the config file and configures logging before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	// config init creates the file, so it must run without one.
	if cmd == configInitCmd {
		cfg = &config.Config{}
		return nil
	}

	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded
	log.WithField("config", configPath).Debug("Loaded config")
	return nil
}

// getDBPath returns the database path from flag, config or default.
func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return cfg.GetDBPath()
}

func openDB() (*storage.DB, error) {
	db, err := storage.Open(getDBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// puzzleOptions combines config file settings with the CLI logger.
func puzzleOptions(extra ...cubescramble.Option) ([]cubescramble.Option, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	opts = append(opts, cubescramble.WithLogger(log))
	return append(opts, extra...), nil
}

// puzzleArgs resolves the puzzle and scramble from positional arguments.
// With size > 0 every argument is scramble text; otherwise the first one is
// an event code. A scramble of "-" is read from in.
func puzzleArgs(args []string, size int, in io.Reader) (event string, n int, scramble string, err error) {
	if size > 0 {
		n = size
	} else {
		if len(args) == 0 {
			return "", 0, "", fmt.Errorf("an event code or --size is required")
		}
		event, args = args[0], args[1:]
		var ok bool
		if n, ok = cubescramble.SizeForEvent(event); !ok {
			return "", 0, "", fmt.Errorf("%w: %q (see 'cubescramble events')", cubescramble.ErrUnknownPuzzle, event)
		}
	}

	scramble = strings.Join(args, " ")
	if scramble == "-" {
		data, err := io.ReadAll(in)
		if err != nil {
			return "", 0, "", fmt.Errorf("failed to read scramble: %w", err)
		}
		scramble = strings.TrimSpace(string(data))
	}
	return event, n, scramble, nil
}
