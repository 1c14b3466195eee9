package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubiecube"
	"github.com/SeamusWaldron/cubiecube/internal/recorder"
	"github.com/SeamusWaldron/cubiecube/internal/storage"
)

var (
	listLimit int
	showLast  bool
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage recorded sessions",
	Long:  `Commands for listing, inspecting and deleting recorded move sessions.`,
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	Args:  cobra.NoArgs,
	RunE:  runSessionsList,
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "Show a session",
	Long: `Replay the stored moves of a session from the solved state and print
the resulting cube state.

Use --last to show the most recent session.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSessionsShow,
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session and its moves",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsDelete,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)

	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsListCmd.Flags().IntVarP(&listLimit, "limit", "n", 10, "Number of sessions to list")

	sessionsCmd.AddCommand(sessionsShowCmd)
	sessionsShowCmd.Flags().BoolVar(&showLast, "last", false, "Show the most recent session")

	sessionsCmd.AddCommand(sessionsDeleteCmd)
}

func runSessionsList(cmd *cobra.Command, args []string) error {
	db, err := openDB(loadStateFile())
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSessionRepository(db)
	sessions, err := repo.List(listLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded. Record one with: cubiecube apply --record <moves>")
		return nil
	}

	for _, s := range sessions {
		count, err := repo.GetMoveCount(s.SessionID)
		if err != nil {
			return err
		}
		status := "open"
		if s.EndedAt != nil {
			status = "ended"
		}
		notes := ""
		if s.Notes != nil {
			notes = "  " + *s.Notes
		}
		fmt.Fprintf(out, "%s  %s  %3d moves  %-5s%s\n",
			s.SessionID, s.StartedAt.Local().Format(time.DateTime), count, status, notes)
	}

	return nil
}

func runSessionsShow(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !showLast {
		return errors.New("specify a session ID or --last")
	}

	db, err := openDB(loadStateFile())
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSessionRepository(db)
	var session *storage.Session
	if showLast {
		session, err = repo.GetLast()
	} else {
		session, err = repo.Get(args[0])
	}
	if err != nil {
		return err
	}
	if session == nil {
		return errors.New("session not found")
	}

	records, err := storage.NewMoveRepository(db).GetBySession(session.SessionID)
	if err != nil {
		return err
	}
	state, moves, err := recorder.Replay(records)
	if err != nil {
		return fmt.Errorf("failed to replay session: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("Session "+session.SessionID))
	fmt.Fprintf(out, "Started: %s\n", session.StartedAt.Local().Format(time.DateTime))
	if session.EndedAt != nil {
		fmt.Fprintf(out, "Ended:   %s\n", session.EndedAt.Local().Format(time.DateTime))
	}
	if session.Notes != nil {
		fmt.Fprintf(out, "Notes:   %s\n", *session.Notes)
	}
	fmt.Fprintf(out, "Moves:   %d\n\n", len(moves))
	if len(moves) > 0 {
		fmt.Fprintln(out, moveStyle.Render(cubiecube.FormatMoves(moves)))
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, state)
	fmt.Fprintln(out)
	fmt.Fprintln(out, solvedLine(state))

	if session.FinalState != nil && *session.FinalState != state.String() {
		fmt.Fprintln(out, errorStyle.Render("warning: stored final state differs from replay"))
	}

	return nil
}

func runSessionsDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB(loadStateFile())
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSessionRepository(db)
	session, err := repo.Get(args[0])
	if err != nil {
		return err
	}
	if session == nil {
		return errors.New("session not found")
	}

	if err := repo.Delete(args[0]); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %s\n", args[0])
	return nil
}
