package cli

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubiecube"
	"github.com/SeamusWaldron/cubiecube/internal/recorder"
)

var (
	playRecord bool
	playNotes  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn faces interactively",
	Long: `Start an interactive TUI that shows the cube state as you turn faces.

Keyboard shortcuts:
  u r f d l b   - Turn a face clockwise
  U R F D L B   - Turn a face counter-clockwise
  z             - Undo the last move
  x             - Reset to solved (not while recording)
  q/Esc         - Quit

With --record every move is stored as a session, ended on quit.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVar(&playRecord, "record", false, "Store the moves as a session")
	playCmd.Flags().StringVar(&playNotes, "notes", "", "Notes for the recorded session")
}

func runPlay(cmd *cobra.Command, args []string) error {
	var session *recorder.Session
	if playRecord {
		sf := loadStateFile()
		db, err := openDB(sf)
		if err != nil {
			return err
		}
		defer db.Close()

		session = recorder.NewSession(db, sf)
		if _, err := session.Start(playNotes); err != nil {
			return err
		}
	}

	model := newPlayModel(session)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, model.state())
	fmt.Fprintln(out, solvedLine(model.state()))

	if session != nil {
		if err := session.End(); err != nil {
			return err
		}
		fmt.Fprintf(out, "Recorded session %s (%d moves)\n", session.SessionID(), session.MoveCount())
	}

	return nil
}

// keyFaces maps lower-case keys to faces.
var keyFaces = map[string]cubiecube.Face{
	"u": cubiecube.FaceU,
	"r": cubiecube.FaceR,
	"f": cubiecube.FaceF,
	"d": cubiecube.FaceD,
	"l": cubiecube.FaceL,
	"b": cubiecube.FaceB,
}

// keyToMove maps a key to a move: lower case turns clockwise, upper case
// counter-clockwise.
func keyToMove(key string) (cubiecube.Move, bool) {
	if face, ok := keyFaces[key]; ok {
		m, err := cubiecube.MoveByName(string(face))
		return m, err == nil
	}
	if face, ok := keyFaces[strings.ToLower(key)]; ok {
		m, err := cubiecube.MoveByName(string(face) + "'")
		return m, err == nil
	}
	return cubiecube.Move{}, false
}

type playModel struct {
	tracker  *cubiecube.Tracker
	session  *recorder.Session
	err      error
	quitting bool
}

func newPlayModel(session *recorder.Session) *playModel {
	return &playModel{
		tracker: cubiecube.NewTracker(),
		session: session,
	}
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) state() cubiecube.State {
	if m.session != nil {
		return m.session.Cube()
	}
	return m.tracker.State()
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.err = nil
	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "z":
		if m.session != nil {
			_, m.err = m.session.Undo()
		} else {
			m.tracker.Undo()
		}

	case "x":
		if m.session != nil {
			m.err = errors.New("cannot reset while recording")
		} else {
			m.tracker.Reset()
		}

	default:
		move, ok := keyToMove(key.String())
		if !ok {
			return m, nil
		}
		if m.session != nil {
			m.err = m.session.Record(move)
		} else {
			m.tracker.ApplyMove(move)
		}
	}

	return m, nil
}

func (m *playModel) moves() []cubiecube.Move {
	if m.session != nil {
		return m.session.Moves()
	}
	return m.tracker.Moves()
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubiecube"))
	if m.session != nil {
		b.WriteString(statusStyle.Render(fmt.Sprintf("  recording %s", m.session.SessionID())))
	}
	b.WriteString("\n\n")

	s := m.state()
	b.WriteString(stateStyle.Render(s.String()))
	b.WriteString("\n")
	b.WriteString(solvedLine(s))
	b.WriteString("\n\n")

	moves := m.moves()
	b.WriteString(fmt.Sprintf("Moves: %d\n", len(moves)))

	if len(moves) > 0 {
		start := 0
		if len(moves) > 20 {
			start = len(moves) - 20
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(cubiecube.FormatMoves(moves[start:])))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("urfdlb=turn  URFDLB=reverse  z=undo  x=reset  q=quit"))
	b.WriteString("\n")

	return b.String()
}
