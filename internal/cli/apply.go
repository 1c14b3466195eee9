package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubiecube"
	"github.com/SeamusWaldron/cubiecube/internal/recorder"
)

var (
	applyRecord bool
	applyNotes  string
)

var applyCmd = &cobra.Command{
	Use:   "apply <move>...",
	Short: "Apply moves to a solved cube and print the result",
	Long: `Apply one or more moves to a solved cube and print the resulting
corner and edge vectors.

Each argument is one move name: U R F D L B, followed by ' for a
counter-clockwise turn or 2 for a half turn.

Examples:
  cubiecube apply U
  cubiecube apply R U "R'" "U'"
  cubiecube apply R U "R'" "U'" --record --notes "sexy move"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().BoolVar(&applyRecord, "record", false, "Store the moves as a session")
	applyCmd.Flags().StringVar(&applyNotes, "notes", "", "Notes for the recorded session")
}

func runApply(cmd *cobra.Command, args []string) error {
	moves, err := parseMoves(args)
	if err != nil {
		return err
	}

	var s cubiecube.State
	sessionID := ""
	if applyRecord {
		sessionID, s, err = recordMoves(moves, applyNotes)
		if err != nil {
			return err
		}
	} else {
		s = cubiecube.Identity().Apply(moves...)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Moves: %s\n\n", moveStyle.Render(cubiecube.FormatMoves(moves)))
	fmt.Fprintln(out, s)
	fmt.Fprintln(out)
	fmt.Fprintln(out, solvedLine(s))
	if sessionID != "" {
		fmt.Fprintf(out, "Recorded session %s\n", sessionID)
	}

	return nil
}

// recordMoves stores moves as a new, ended session.
func recordMoves(moves []cubiecube.Move, notes string) (string, cubiecube.State, error) {
	sf := loadStateFile()
	db, err := openDB(sf)
	if err != nil {
		return "", cubiecube.State{}, err
	}
	defer db.Close()

	session := recorder.NewSession(db, sf)
	id, err := session.Start(notes)
	if err != nil {
		return "", cubiecube.State{}, err
	}
	for _, m := range moves {
		if err := session.Record(m); err != nil {
			return "", cubiecube.State{}, err
		}
	}
	if err := session.End(); err != nil {
		return "", cubiecube.State{}, err
	}

	return id, session.Cube(), nil
}
