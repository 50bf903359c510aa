package repository

import (
	"context"

	"gorm.io/gorm"

	"cutlery/internal/model"
)

// CatalogRepository reads and seeds the reference lists.
type CatalogRepository interface {
	List(ctx context.Context, category model.Category) ([]model.CatalogEntry, error)
	Replace(ctx context.Context, category model.Category, entries []model.CatalogEntry) error
}

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a GORM-backed catalog repository.
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) List(ctx context.Context, category model.Category) ([]model.CatalogEntry, error) {
	var entries []model.CatalogEntry
	if err := r.db.WithContext(ctx).Where("category = ?", category).Order("id").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Replace swaps the whole category for entries.
func (r *catalogRepository) Replace(ctx context.Context, category model.Category, entries []model.CatalogEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category = ?", category).Delete(&model.CatalogEntry{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		rows := make([]model.CatalogEntry, len(entries))
		for i, entry := range entries {
			entry.Category = category
			rows[i] = entry
		}
		return tx.Create(&rows).Error
	})
}
