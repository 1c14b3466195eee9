// Package cli implements the command-line interface for cubiecube.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubiecube"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath        string
	stateFilePath string
	verbose       bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubiecube",
	Short: "Cubie-level 3x3 cube state engine",
	Long: `cubiecube tracks the corner and edge permutation and orientation of a
3x3 Rubik's cube and applies face turns to it.

Apply moves from the command line, play interactively in the terminal, and
record move sessions to a local database.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			cubiecube.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubiecube/cubiecube.db)")
	rootCmd.PersistentFlags().StringVar(&stateFilePath, "state-file", "", "State file path (default: ~/.cubiecube/state.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
