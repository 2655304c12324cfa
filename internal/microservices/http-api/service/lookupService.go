package service

import (
	"context"

	"mangacatalog/internal/microservices/http-api/models"
	"mangacatalog/internal/microservices/http-api/repository"
)

// LookupService exposes the read-only country and type catalogs.
type LookupService interface {
	Countries(ctx context.Context) ([]models.Country, error)
	Types(ctx context.Context) ([]models.Type, error)
}

type lookupService struct {
	store *repository.Store
}

func NewLookupService(store *repository.Store) LookupService {
	return &lookupService{store: store}
}

func (s *lookupService) Countries(ctx context.Context) ([]models.Country, error) {
	return s.store.Countries.List(ctx)
}

func (s *lookupService) Types(ctx context.Context) ([]models.Type, error) {
	return s.store.Types.List(ctx)
}
