package repository

import (
	"context"
	"fmt"

	"mangacatalog/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type CountryRepo struct {
	*GormGateway[models.Country]
	db *gorm.DB
}

func NewCountryRepo(db *gorm.DB) *CountryRepo {
	return &CountryRepo{GormGateway: newGormGateway[models.Country](db, "pais"), db: db}
}

func (r *CountryRepo) List(ctx context.Context) ([]models.Country, error) {
	var list []models.Country
	if err := r.db.WithContext(ctx).Order("nombre asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list pais: %w", err)
	}
	return list, nil
}

// Ensure returns the country named name, creating it when missing.
func (r *CountryRepo) Ensure(ctx context.Context, name string) (*models.Country, error) {
	c := models.Country{Name: name}
	if err := r.db.WithContext(ctx).Where(models.Country{Name: name}).FirstOrCreate(&c).Error; err != nil {
		return nil, fmt.Errorf("ensure pais %q: %w", name, err)
	}
	return &c, nil
}

type TypeRepo struct {
	*GormGateway[models.Type]
	db *gorm.DB
}

func NewTypeRepo(db *gorm.DB) *TypeRepo {
	return &TypeRepo{GormGateway: newGormGateway[models.Type](db, "tipo"), db: db}
}

func (r *TypeRepo) List(ctx context.Context) ([]models.Type, error) {
	var list []models.Type
	if err := r.db.WithContext(ctx).Order("nombre asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list tipo: %w", err)
	}
	return list, nil
}

// Ensure returns the type named name, creating it when missing.
func (r *TypeRepo) Ensure(ctx context.Context, name string) (*models.Type, error) {
	t := models.Type{Name: name}
	if err := r.db.WithContext(ctx).Where(models.Type{Name: name}).FirstOrCreate(&t).Error; err != nil {
		return nil, fmt.Errorf("ensure tipo %q: %w", name, err)
	}
	return &t, nil
}
