package jsonstore

import (
	"context"
	"fmt"

	"cutlery/internal/model"
	"cutlery/internal/repository"
)

var _ repository.CatalogRepository = (*CatalogRepository)(nil)

// CatalogRepository serves the reference lists embedded in the requirement document.
type CatalogRepository struct {
	s *Store
}

func (r *CatalogRepository) List(_ context.Context, category model.Category) ([]model.CatalogEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	list := r.s.doc.category(category)
	if list == nil {
		return nil, fmt.Errorf("unknown category %q", category)
	}
	return append([]model.CatalogEntry{}, (*list)...), nil
}

func (r *CatalogRepository) Replace(_ context.Context, category model.Category, entries []model.CatalogEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	doc := cloneDocument(r.s.doc)
	list := doc.category(category)
	if list == nil {
		return fmt.Errorf("unknown category %q", category)
	}
	*list = append([]model.CatalogEntry{}, entries...)
	return r.s.commitDocument(doc)
}
