package storage

import (
	"database/sql"
	"fmt"

	"github.com/SeamusWaldron/cubiecube"
)

// MoveRecord represents a move in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	Notation  string
}

// Move resolves the stored notation to a predefined move.
func (r MoveRecord) Move() (cubiecube.Move, error) {
	return cubiecube.MoveByName(r.Notation)
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Create stores a move and returns its ID.
func (r *MoveRepository) Create(sessionID string, moveIndex int, move cubiecube.Move) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO session_moves (session_id, move_index, notation)
		VALUES (?, ?, ?)
	`, sessionID, moveIndex, move.Name())

	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}

	return id, nil
}

// CreateBatch stores multiple moves in a single transaction.
func (r *MoveRepository) CreateBatch(sessionID string, moves []cubiecube.Move, startIndex int) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, move := range moves {
			_, err := tx.Exec(`
				INSERT INTO session_moves (session_id, move_index, notation)
				VALUES (?, ?, ?)
			`, sessionID, startIndex+i, move.Name())
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all moves for a session in order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, notation
		FROM session_moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		if err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.Notation); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// DeleteLast removes the highest-indexed move of a session. It returns
// false if the session has no moves.
func (r *MoveRepository) DeleteLast(sessionID string) (bool, error) {
	result, err := r.db.Exec(`
		DELETE FROM session_moves
		WHERE move_id = (
			SELECT move_id FROM session_moves
			WHERE session_id = ?
			ORDER BY move_index DESC
			LIMIT 1
		)
	`, sessionID)
	if err != nil {
		return false, fmt.Errorf("failed to delete move: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete move: %w", err)
	}
	return n > 0, nil
}
