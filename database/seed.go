package database

import (
	"context"
	"fmt"

	"mangacatalog/internal/microservices/http-api/repository"
)

var (
	DefaultCountries = []string{"Japon", "Corea del Sur", "China"}
	DefaultTypes     = []string{"Manga", "Manhwa", "Manhua", "Novela ligera"}
)

// SeedResult counts the lookup rows Seed inserted.
type SeedResult struct {
	Countries int
	Types     int
}

// Seed makes sure the default countries and types exist. Running it twice
// inserts nothing the second time.
func Seed(ctx context.Context, store *repository.Store) (SeedResult, error) {
	var res SeedResult
	err := store.Transaction(ctx, func(tx *repository.Store) error {
		before, err := tx.Countries.List(ctx)
		if err != nil {
			return err
		}
		for _, name := range DefaultCountries {
			if _, err := tx.Countries.Ensure(ctx, name); err != nil {
				return fmt.Errorf("seed pais %q: %w", name, err)
			}
		}
		after, err := tx.Countries.List(ctx)
		if err != nil {
			return err
		}
		res.Countries = len(after) - len(before)

		beforeTypes, err := tx.Types.List(ctx)
		if err != nil {
			return err
		}
		for _, name := range DefaultTypes {
			if _, err := tx.Types.Ensure(ctx, name); err != nil {
				return fmt.Errorf("seed tipo %q: %w", name, err)
			}
		}
		afterTypes, err := tx.Types.List(ctx)
		if err != nil {
			return err
		}
		res.Types = len(afterTypes) - len(beforeTypes)
		return nil
	})
	return res, err
}
