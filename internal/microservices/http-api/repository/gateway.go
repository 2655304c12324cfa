package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrNotFound is returned by FindByID when no row has the given id.
	ErrNotFound = errors.New("record not found")
	// ErrReferenced is returned when the store refuses a delete because other
	// rows still point at the record.
	ErrReferenced = errors.New("record is still referenced")
)

// Gateway is the find/save/delete contract every entity store offers.
type Gateway[E any, K comparable] interface {
	FindByID(ctx context.Context, id K) (*E, error)
	// Save inserts when the primary key is zero and updates otherwise.
	Save(ctx context.Context, e *E) error
	Delete(ctx context.Context, e *E) error
}

// GormGateway implements Gateway over gorm for entities keyed by int64.
type GormGateway[E any] struct {
	db       *gorm.DB
	name     string
	preloads []string
}

func newGormGateway[E any](db *gorm.DB, name string, preloads ...string) *GormGateway[E] {
	return &GormGateway[E]{db: db, name: name, preloads: preloads}
}

func (g *GormGateway[E]) FindByID(ctx context.Context, id int64) (*E, error) {
	var e E
	q := g.db.WithContext(ctx)
	for _, p := range g.preloads {
		q = q.Preload(p)
	}
	if err := q.First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find %s %d: %w", g.name, id, err)
	}
	return &e, nil
}

// Save writes the entity's own columns only; associations are never cascaded.
func (g *GormGateway[E]) Save(ctx context.Context, e *E) error {
	if err := g.db.WithContext(ctx).Omit(clause.Associations).Save(e).Error; err != nil {
		return fmt.Errorf("save %s: %w", g.name, classify(err))
	}
	return nil
}

func (g *GormGateway[E]) Delete(ctx context.Context, e *E) error {
	if err := g.db.WithContext(ctx).Delete(e).Error; err != nil {
		return fmt.Errorf("delete %s: %w", g.name, classify(err))
	}
	return nil
}

// classify maps foreign key violations to ErrReferenced.
func classify(err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %v", ErrReferenced, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return fmt.Errorf("%w: %s", ErrReferenced, pgErr.ConstraintName)
	}
	return err
}
