package catalog

import (
	"context"
	"log"

	"github.com/BruksfildServices01/trainer-marketplace/internal/cache"
	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

// ListCatalog serves zones and categories, read through the cache when
// one is configured. Cache failures fall back to the database.
type ListCatalog struct {
	repo  domain.Repository
	cache *cache.Cache
}

func NewListCatalog(repo domain.Repository, c *cache.Cache) *ListCatalog {
	return &ListCatalog{repo: repo, cache: c}
}

func (uc *ListCatalog) Zones(ctx context.Context) ([]models.Zone, error) {
	return cached(ctx, uc.cache, domain.CacheKeyZones, uc.repo.Zones)
}

func (uc *ListCatalog) Categories(ctx context.Context) ([]models.Category, error) {
	return cached(ctx, uc.cache, domain.CacheKeyCategories, uc.repo.Categories)
}

func cached[T any](
	ctx context.Context,
	c *cache.Cache,
	key string,
	load func(context.Context) ([]T, error),
) ([]T, error) {

	var out []T
	hit, err := c.GetJSON(ctx, key, &out)
	if err != nil {
		log.Printf("catalog cache read failed key=%s err=%v", key, err)
	}
	if hit {
		return out, nil
	}

	out, err = load(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}

	if err := c.SetJSON(ctx, key, out); err != nil {
		log.Printf("catalog cache write failed key=%s err=%v", key, err)
	}
	return out, nil
}
