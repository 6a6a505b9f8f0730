package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alebellina412/calcetto-app/internal/model"
	"github.com/alebellina412/calcetto-app/internal/storage"
)

// openDB opens the match database, creating its directory when needed.
func openDB() (*storage.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return db, nil
}

// loadLog reads the full undeleted match log plus the player registry.
func loadLog(db *storage.DB) ([]model.Match, []string, error) {
	matches, err := db.LoadMatches()
	if err != nil {
		return nil, nil, fmt.Errorf("load matches: %w", err)
	}
	names, err := db.PlayerNames()
	if err != nil {
		return nil, nil, fmt.Errorf("load players: %w", err)
	}
	return matches, names, nil
}
