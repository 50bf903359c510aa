package service

import (
	"context"
	"fmt"

	"cutlery/internal/catalog"
	"cutlery/internal/model"
	"cutlery/internal/repository"
)

// LoadCatalog reads every reference list once. The result is not refreshed
// while the process runs.
func LoadCatalog(ctx context.Context, repo repository.CatalogRepository) (*catalog.Catalog, error) {
	entries := make(map[model.Category][]model.CatalogEntry, len(model.Categories))
	for _, category := range model.Categories {
		list, err := repo.List(ctx, category)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", category, err)
		}
		entries[category] = list
	}
	return catalog.New(entries), nil
}

// CatalogService serves the reference lists.
type CatalogService interface {
	List(category model.Category) []model.CatalogEntry
}

type catalogService struct {
	catalog *catalog.Catalog
}

// NewCatalogService wraps an already loaded catalog.
func NewCatalogService(cat *catalog.Catalog) CatalogService {
	return &catalogService{catalog: cat}
}

func (s *catalogService) List(category model.Category) []model.CatalogEntry {
	return s.catalog.List(category)
}
