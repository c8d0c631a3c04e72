package mocks

import (
	"github.com/greeny34/alfred-fantasy-football-sub000/internal/dal"
	"github.com/greeny34/alfred-fantasy-football-sub000/internal/logger"
)

// MockPostgresStore provides a mock Postgres implementation using SQLite
// for local development
type MockPostgresStore struct {
	dal.StrategyStore
}

// NewMockPostgresStore creates a mock Postgres store backed by SQLite
func NewMockPostgresStore(sqliteFile string) (*MockPostgresStore, error) {
	logger.Info("Using MOCK Postgres (SQLite) for local development")

	sqliteStore, err := dal.NewSQLiteStore(sqliteFile)
	if err != nil {
		return nil, err
	}

	return &MockPostgresStore{
		StrategyStore: sqliteStore,
	}, nil
}
