// Package store runs every read and write of the catalog against the relational store.
// Each call opens a session bound to the caller's context; writes run inside a
// transaction that is committed or rolled back before the call returns.
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) session(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// Ping checks that the underlying connection pool can reach the database.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

func translate(err error, notFound error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateUID
	}
	return err
}
