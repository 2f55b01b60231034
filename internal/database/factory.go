package database

import (
	"fmt"
	"path/filepath"

	"dc-go/internal/cards"
	"dc-go/internal/config"
)

// NewStoreFromConfig creates a Store implementation based on the database config type.
func NewStoreFromConfig(cfg config.DatabaseConfig, hostID string) (*SQLiteStore, error) {
	switch cfg.Type {
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for sqlite database")
		}
		dbPath := filepath.Join(cfg.DataDir, hostID+".db")
		return NewSQLiteStore(dbPath, cards.RealClock{}, cards.UUIDGenerator{})
	case "memory":
		return NewSQLiteStore(":memory:", cards.RealClock{}, cards.UUIDGenerator{})
	default:
		return nil, fmt.Errorf("unknown database type: %s", cfg.Type)
	}
}
