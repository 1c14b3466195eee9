package cubiecube

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	if !tr.IsSolved() {
		t.Error("New tracker should start solved")
	}

	tr.ApplyMove(R)
	if tr.IsSolved() {
		t.Error("Tracker should not be solved after move")
	}

	tr.Reset()
	if !tr.IsSolved() {
		t.Error("Tracker should be solved after reset")
	}
	if tr.MoveCount() != 0 {
		t.Errorf("MoveCount after reset = %d", tr.MoveCount())
	}
}

func TestTrackerHistoryAndUndo(t *testing.T) {
	tr := NewTracker()
	tr.ApplyMoves(SexyMove...)

	if got := FormatMoves(tr.Moves()); got != "R U R' U'" {
		t.Errorf("Moves() = %q", got)
	}

	want := Identity().Apply(R, U, RPrime)
	if !tr.Undo() {
		t.Fatal("Undo returned false")
	}
	if tr.State() != want {
		t.Errorf("state after undo:\n%s", tr.State())
	}

	for tr.Undo() {
	}
	if !tr.IsSolved() {
		t.Error("undoing every move should return to solved")
	}
	if tr.Undo() {
		t.Error("Undo on empty history should return false")
	}
}

func TestTrackerWithoutHistory(t *testing.T) {
	tr := NewTracker(WithMoveHistory(false))
	tr.ApplyMoves(R, U)
	if tr.MoveCount() != 0 || len(tr.Moves()) != 0 {
		t.Error("history should be empty when disabled")
	}
	if tr.Undo() {
		t.Error("Undo should fail without history")
	}
	if tr.State() != Identity().Apply(R, U) {
		t.Error("moves should still be applied without history")
	}
}

func TestTrackerSolvedCallback(t *testing.T) {
	var fired int
	tr := NewTracker(WithSolvedCallback(func(s State) {
		if !s.IsSolved() {
			t.Error("callback received an unsolved state")
		}
		fired++
	}))

	tr.ApplyMoves(R, U, F)
	if fired != 0 {
		t.Fatalf("callback fired %d times while scrambling", fired)
	}

	tr.ApplyMoves(FPrime, UPrime, RPrime)
	if fired != 1 {
		t.Errorf("callback fired %d times, want 1", fired)
	}
}

func TestTrackerWithStart(t *testing.T) {
	start := Identity().Apply(TPerm...)
	tr := NewTracker(WithStart(start))
	if tr.IsSolved() {
		t.Fatal("tracker should start from the given state")
	}

	tr.ApplyMoves(TPerm...)
	if !tr.IsSolved() {
		t.Error("T-perm should solve a T-perm state")
	}

	tr.Reset()
	if tr.State() != start {
		t.Error("Reset should return to the start state")
	}
}

func TestTrackerConcurrentUse(t *testing.T) {
	tr := NewTracker()
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tr.ApplyMove(U)
				_ = tr.State()
			}
		}()
	}
	wg.Wait()

	// 400 U turns is a multiple of 4.
	if !tr.IsSolved() {
		t.Error("400 U turns should return to solved")
	}
	if tr.MoveCount() != 400 {
		t.Errorf("MoveCount = %d, want 400", tr.MoveCount())
	}
}

func TestTrackerLogging(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	tr := NewTracker()
	tr.ApplyMoves(U, UPrime)

	out := buf.String()
	if !strings.Contains(out, "move applied") {
		t.Errorf("log missing move entry:\n%s", out)
	}
	if !strings.Contains(out, "cube solved") {
		t.Errorf("log missing solved entry:\n%s", out)
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}
