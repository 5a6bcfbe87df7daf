package catalog

import (
	"context"

	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

const (
	CacheKeyZones      = "catalog:zones"
	CacheKeyCategories = "catalog:categories"
)

type Repository interface {
	Zones(ctx context.Context) ([]models.Zone, error)
	Categories(ctx context.Context) ([]models.Category, error)
}
