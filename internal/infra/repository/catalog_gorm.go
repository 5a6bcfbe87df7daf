package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) Zones(ctx context.Context) ([]models.Zone, error) {
	var out []models.Zone
	err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}

func (r *CatalogGormRepository) Categories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}

// Compile-time check
var _ domain.Repository = (*CatalogGormRepository)(nil)
