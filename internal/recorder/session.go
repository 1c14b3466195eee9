package recorder

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SeamusWaldron/cubiecube"
	"github.com/SeamusWaldron/cubiecube/internal/storage"
)

var (
	ErrAlreadyRecording = errors.New("recorder: session already in progress")
	ErrNotRecording     = errors.New("recorder: no session in progress")
)

// SessionState represents the current state of a recording session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateRecording
	StateEnded
)

// String returns the string representation of the session state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session applies moves to a Tracker and stores each one.
type Session struct {
	stateFile *StateFile
	tracker   *cubiecube.Tracker

	mu        sync.RWMutex
	state     SessionState
	sessionID string
	moveIndex int

	sessionRepo *storage.SessionRepository
	moveRepo    *storage.MoveRepository
}

// NewSession creates a new session manager. stateFile may be nil.
func NewSession(db *storage.DB, stateFile *StateFile) *Session {
	return &Session{
		stateFile:   stateFile,
		tracker:     cubiecube.NewTracker(),
		state:       StateIdle,
		sessionRepo: storage.NewSessionRepository(db),
		moveRepo:    storage.NewMoveRepository(db),
	}
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SessionID returns the current session ID.
func (s *Session) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

// MoveCount returns the number of stored moves in the current session.
func (s *Session) MoveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.moveIndex
}

// Moves returns the moves recorded so far in the current session.
func (s *Session) Moves() []cubiecube.Move {
	return s.tracker.Moves()
}

// Cube returns the current cube state.
func (s *Session) Cube() cubiecube.State {
	return s.tracker.State()
}

// Start begins a new session from the solved state.
func (s *Session) Start(notes string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		return "", ErrAlreadyRecording
	}

	id, err := s.sessionRepo.Create(notes)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	s.sessionID = id
	s.moveIndex = 0
	s.tracker.Reset()
	s.state = StateRecording

	if s.stateFile != nil {
		if err := s.stateFile.SetLastSession(id); err != nil {
			cubiecube.Logger().Warn("failed to update state file", slog.Any("error", err))
		}
	}

	cubiecube.Logger().Info("session started", slog.String("session", id))
	return id, nil
}

// Record stores a move and applies it to the cube.
func (s *Session) Record(m cubiecube.Move) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return ErrNotRecording
	}

	if _, err := s.moveRepo.Create(s.sessionID, s.moveIndex, m); err != nil {
		return fmt.Errorf("failed to store move: %w", err)
	}
	s.moveIndex++
	s.tracker.ApplyMove(m)

	return nil
}

// Undo removes the last stored move and reverts it on the cube. It returns
// false if the session has no moves.
func (s *Session) Undo() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return false, ErrNotRecording
	}
	if s.moveIndex == 0 {
		return false, nil
	}

	ok, err := s.moveRepo.DeleteLast(s.sessionID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	s.moveIndex--
	s.tracker.Undo()

	return true, nil
}

// End finishes the session and stores the final state.
func (s *Session) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return ErrNotRecording
	}

	final := s.tracker.State()
	if err := s.sessionRepo.End(s.sessionID, final.String()); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	s.state = StateEnded
	cubiecube.Logger().Info("session ended",
		slog.String("session", s.sessionID),
		slog.Int("moves", s.moveIndex),
		slog.Bool("solved", final.IsSolved()),
	)
	return nil
}

// Replay rebuilds the cube state from stored moves, starting from solved.
func Replay(records []storage.MoveRecord) (cubiecube.State, []cubiecube.Move, error) {
	state := cubiecube.Identity()
	moves := make([]cubiecube.Move, 0, len(records))
	for _, r := range records {
		m, err := r.Move()
		if err != nil {
			return cubiecube.State{}, nil, fmt.Errorf("move %d: %w", r.MoveIndex, err)
		}
		state = cubiecube.Apply(state, m)
		moves = append(moves, m)
	}
	return state, moves, nil
}
