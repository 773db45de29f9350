package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Store hands out scoped guardian sessions on top of a GORM pool
type Store struct {
	db *gorm.DB
}

// NewStore creates a new Store
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// WithSession runs fn on one dedicated connection taken from the pool. The
// connection goes back to the pool when WithSession returns, whether fn
// succeeded, failed or panicked.
func (s *Store) WithSession(ctx context.Context, fn func(*Session) error) error {
	return s.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		return fn(newSession(conn))
	})
}

// Ping checks that the store is reachable
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying database: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
