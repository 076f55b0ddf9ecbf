package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/javiermolinar/tablero/internal/db"
	"github.com/javiermolinar/tablero/internal/task"
)

func openRepo(dbPath string) (task.Repository, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return repo, nil
}
