package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Store groups the repositories that share one *gorm.DB, so a request can run
// all of its reads and writes inside a single transaction.
type Store struct {
	db        *gorm.DB
	Mangas    *MangaRepo
	Countries *CountryRepo
	Types     *TypeRepo
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:        db,
		Mangas:    NewMangaRepo(db),
		Countries: NewCountryRepo(db),
		Types:     NewTypeRepo(db),
	}
}

// Transaction runs fn with repositories bound to one transaction. It commits
// when fn returns nil and rolls back otherwise.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
