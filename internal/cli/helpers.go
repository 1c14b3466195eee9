package cli

import (
	"fmt"

	"github.com/SeamusWaldron/cubiecube"
	"github.com/SeamusWaldron/cubiecube/internal/recorder"
	"github.com/SeamusWaldron/cubiecube/internal/storage"
)

// resolveDBPath returns the database path from the flag, then the state
// file, then the default location.
func resolveDBPath(sf *recorder.StateFile) (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if sf != nil && sf.DBPath() != "" {
		return sf.DBPath(), nil
	}
	return storage.DefaultDBPath()
}

// openDB opens and migrates the session database.
func openDB(sf *recorder.StateFile) (*storage.DB, error) {
	path, err := resolveDBPath(sf)
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// loadStateFile loads the state file. Failure is not fatal: the CLI then
// runs without one.
func loadStateFile() *recorder.StateFile {
	var sf *recorder.StateFile
	var err error
	if stateFilePath != "" {
		sf, err = recorder.NewStateFile(stateFilePath)
	} else {
		sf, err = recorder.NewDefaultStateFile()
	}
	if err != nil {
		cubiecube.Logger().Warn("state file unavailable", "error", err)
		return nil
	}
	return sf
}

// parseMoves resolves each argument to a predefined move.
func parseMoves(args []string) ([]cubiecube.Move, error) {
	moves := make([]cubiecube.Move, 0, len(args))
	for _, a := range args {
		m, err := cubiecube.MoveByName(a)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// solvedLine renders the solved/scrambled status of a state.
func solvedLine(s cubiecube.State) string {
	if s.IsSolved() {
		return solvedStyle.Render("Cube is solved")
	}
	return scrambledStyle.Render("Cube is scrambled")
}
