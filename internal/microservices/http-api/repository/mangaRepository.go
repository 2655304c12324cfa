package repository

import (
	"context"
	"fmt"

	"mangacatalog/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

var _ Gateway[models.Manga, int64] = (*MangaRepo)(nil)

type MangaRepo struct {
	*GormGateway[models.Manga]
	db *gorm.DB
}

func NewMangaRepo(db *gorm.DB) *MangaRepo {
	return &MangaRepo{
		GormGateway: newGormGateway[models.Manga](db, "manga", "Country", "Type", "Users"),
		db:          db,
	}
}

// List returns every manga with its country and type, oldest first.
func (r *MangaRepo) List(ctx context.Context) ([]models.Manga, error) {
	var list []models.Manga
	if err := r.db.WithContext(ctx).
		Preload("Country").
		Preload("Type").
		Order("id asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list manga: %w", err)
	}
	return list, nil
}
