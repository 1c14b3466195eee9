package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SeamusWaldron/cubiecube"
	"github.com/SeamusWaldron/cubiecube/internal/recorder"
	"github.com/SeamusWaldron/cubiecube/internal/storage"
)

// run executes the root command with isolated database and state files.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	applyRecord, applyNotes = false, ""
	playRecord, playNotes = false, ""
	showLast, listLimit = false, 10

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{
		"--db", filepath.Join(dir, "test.db"),
		"--state-file", filepath.Join(dir, "state.json"),
	}, args...))

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestDemoCommand(t *testing.T) {
	out, err := run(t, t.TempDir(), "demo")
	if err != nil {
		t.Fatalf("demo: %v", err)
	}

	for _, want := range []string{
		"CP: [0, 1, 2, 3, 4, 5, 6, 7]",
		"CP: [3, 0, 1, 2, 4, 5, 6, 7]",
		"EP: [3, 0, 1, 2, 4, 5, 6, 7, 8, 9, 10, 11]",
		"Cube is scrambled",
		"Cube is solved",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("demo output missing %q:\n%s", want, out)
		}
	}
}

func TestApplyCommand(t *testing.T) {
	out, err := run(t, t.TempDir(), "apply", "U", "U'")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !strings.Contains(out, cubiecube.Identity().String()) || !strings.Contains(out, "Cube is solved") {
		t.Errorf("apply U U' output:\n%s", out)
	}
}

func TestApplyUnknownMove(t *testing.T) {
	_, err := run(t, t.TempDir(), "apply", "R", "Q")
	if err == nil || !strings.Contains(err.Error(), "unknown move") {
		t.Errorf("apply with unknown move: %v", err)
	}
}

func TestApplyRecordAndSessions(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "apply", "--record", "--notes", "sexy", "R", "U", "R'", "U'")
	if err != nil {
		t.Fatalf("apply --record: %v", err)
	}
	if !strings.Contains(out, "Recorded session") {
		t.Fatalf("no session reported:\n%s", out)
	}

	sf, err := recorder.NewStateFile(filepath.Join(dir, "state.json"))
	if err != nil {
		t.Fatalf("state file: %v", err)
	}
	id := sf.LastSessionID()
	if id == "" || !strings.Contains(out, id) {
		t.Fatalf("state file last session %q not in output:\n%s", id, out)
	}

	out, err = run(t, dir, "sessions", "list")
	if err != nil {
		t.Fatalf("sessions list: %v", err)
	}
	if !strings.Contains(out, id) || !strings.Contains(out, "4 moves") || !strings.Contains(out, "sexy") {
		t.Errorf("sessions list output:\n%s", out)
	}

	out, err = run(t, dir, "sessions", "show", "--last")
	if err != nil {
		t.Fatalf("sessions show: %v", err)
	}
	want := cubiecube.Identity().Apply(cubiecube.SexyMove...)
	if !strings.Contains(out, want.String()) || !strings.Contains(out, "R U R' U'") {
		t.Errorf("sessions show output:\n%s", out)
	}
	if strings.Contains(out, "differs") {
		t.Errorf("replay disagrees with stored state:\n%s", out)
	}

	if _, err := run(t, dir, "sessions", "delete", id); err != nil {
		t.Fatalf("sessions delete: %v", err)
	}
	if _, err := run(t, dir, "sessions", "show", id); err == nil {
		t.Error("show after delete should fail")
	}
	out, _ = run(t, dir, "sessions", "list")
	if !strings.Contains(out, "No sessions recorded") {
		t.Errorf("list after delete:\n%s", out)
	}
}

func TestSessionsShowNeedsTarget(t *testing.T) {
	if _, err := run(t, t.TempDir(), "sessions", "show"); err == nil {
		t.Error("show without id or --last should fail")
	}
}

func TestMovesCommand(t *testing.T) {
	out, err := run(t, t.TempDir(), "moves")
	if err != nil {
		t.Fatalf("moves: %v", err)
	}
	for _, m := range cubiecube.Moves() {
		if !strings.Contains(out, cubiecube.Apply(cubiecube.Identity(), m).String()) {
			t.Errorf("moves output missing table for %s", m)
		}
	}
}

func TestKeyToMove(t *testing.T) {
	cases := map[string]cubiecube.Move{
		"u": cubiecube.U, "U": cubiecube.UPrime,
		"r": cubiecube.R, "R": cubiecube.RPrime,
		"f": cubiecube.F, "F": cubiecube.FPrime,
		"d": cubiecube.D, "D": cubiecube.DPrime,
		"l": cubiecube.L, "L": cubiecube.LPrime,
		"b": cubiecube.B, "B": cubiecube.BPrime,
	}
	for key, want := range cases {
		got, ok := keyToMove(key)
		if !ok || got != want {
			t.Errorf("keyToMove(%q) = %s, %v; want %s", key, got, ok, want)
		}
	}
	for _, key := range []string{"x", "z", "2", "ctrl+c", ""} {
		if _, ok := keyToMove(key); ok {
			t.Errorf("keyToMove(%q) should not map", key)
		}
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPlayModel(t *testing.T) {
	m := newPlayModel(nil)

	for _, k := range []string{"r", "u", "R", "U"} {
		m.Update(keyMsg(k))
	}
	if m.state() != cubiecube.Identity().Apply(cubiecube.SexyMove...) {
		t.Errorf("state after r u R U:\n%s", m.state())
	}
	if !strings.Contains(m.View(), "Moves: 4") {
		t.Errorf("view:\n%s", m.View())
	}

	m.Update(keyMsg("z"))
	if len(m.moves()) != 3 {
		t.Errorf("undo left %d moves", len(m.moves()))
	}

	m.Update(keyMsg("x"))
	if !m.state().IsSolved() {
		t.Error("reset should solve the cube")
	}

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil || !m.quitting {
		t.Error("q should quit")
	}
}

func TestPlayModelRecording(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("MigrateUp: %v", err)
	}

	session := recorder.NewSession(db, nil)
	id, err := session.Start("")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	m := newPlayModel(session)
	m.Update(keyMsg("f"))
	m.Update(keyMsg("b"))
	m.Update(keyMsg("z"))
	m.Update(keyMsg("x"))
	if m.err == nil {
		t.Error("reset while recording should report an error")
	}
	if !strings.Contains(m.View(), id) {
		t.Error("view should show the session id")
	}

	records, err := storage.NewMoveRepository(db).GetBySession(id)
	if err != nil {
		t.Fatalf("GetBySession: %v", err)
	}
	if len(records) != 1 || records[0].Notation != "F" {
		t.Errorf("stored moves = %+v", records)
	}
	if m.state() != cubiecube.Apply(cubiecube.Identity(), cubiecube.F) {
		t.Errorf("state:\n%s", m.state())
	}
}
