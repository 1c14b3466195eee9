package cubiecube

import (
	"log/slog"
	"sync"
)

// Tracker holds a current State and applies moves to it one at a time.
// It is safe for concurrent use.
type Tracker struct {
	cfg *config

	mu      sync.RWMutex
	state   State
	history []Move
}

// NewTracker creates a new tracker, starting from the solved state unless
// WithStart says otherwise.
func NewTracker(opts ...Option) *Tracker {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Tracker{
		cfg:   cfg,
		state: cfg.start,
	}
}

// Reset returns the tracker to its start state and clears the history.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = t.cfg.start
	t.history = nil
}

// ApplyMove applies a move and fires the solved callback if it lands on
// the solved state.
func (t *Tracker) ApplyMove(m Move) {
	t.mu.Lock()
	wasSolved := t.state.IsSolved()
	t.state = Apply(t.state, m)
	if t.cfg.moveHistory {
		t.history = append(t.history, m)
	}
	s := t.state
	t.mu.Unlock()

	Logger().Debug("move applied", slog.String("move", m.Name()))

	if !wasSolved && s.IsSolved() {
		Logger().Info("cube solved")
		if t.cfg.onSolved != nil {
			t.cfg.onSolved(s)
		}
	}
}

// ApplyMoves applies multiple moves.
func (t *Tracker) ApplyMoves(moves ...Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

// Undo reverts the last move. It returns false if there is nothing to undo,
// which is always the case when history is disabled.
func (t *Tracker) Undo() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := len(t.history)
	if n == 0 {
		return false
	}
	last := t.history[n-1]
	t.history = t.history[:n-1]
	t.state = Apply(t.state, last.Inverse())
	Logger().Debug("move undone", slog.String("move", last.Name()))
	return true
}

// State returns the current state.
func (t *Tracker) State() State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.State().IsSolved()
}

// Moves returns a copy of the move history.
func (t *Tracker) Moves() []Move {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Move, len(t.history))
	copy(out, t.history)
	return out
}

// MoveCount returns the number of moves in the history.
func (t *Tracker) MoveCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.history)
}
