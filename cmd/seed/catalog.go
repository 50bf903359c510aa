package main

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/afero"

	"cutlery/internal/catalog"
	"cutlery/internal/jsonstore"
	"cutlery/internal/model"
	"cutlery/internal/storage"
)

type seedResult struct {
	metals, handles, cutleryTypes, requirements int
}

// seedCatalog replaces the reference lists with those of the document at path.
// Requirements are appended with fresh ids when withRequirements is set.
func seedCatalog(ctx context.Context, fs afero.Fs, path string, store *storage.Storage, withRequirements bool) (seedResult, error) {
	var res seedResult

	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return res, fmt.Errorf("read %s: %w", path, err)
	}
	var doc jsonstore.RequirementDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return res, fmt.Errorf("decode %s: %w", path, err)
	}

	lists := map[model.Category][]model.CatalogEntry{
		model.CategoryMetals:       doc.Metals,
		model.CategoryHandles:      doc.Handles,
		model.CategoryCutleryTypes: doc.CutleryTypes,
	}
	for _, category := range model.Categories {
		if err := numberEntries(category, lists[category]); err != nil {
			return res, fmt.Errorf("%s: %w", path, err)
		}
		if err := store.Catalog.Replace(ctx, category, lists[category]); err != nil {
			return res, fmt.Errorf("replace %s: %w", category, err)
		}
	}
	res.metals, res.handles, res.cutleryTypes = len(doc.Metals), len(doc.Handles), len(doc.CutleryTypes)

	if !withRequirements {
		return res, nil
	}
	for i := range doc.Requirements {
		req := doc.Requirements[i]
		req.ID = 0
		req.ImageURL = catalog.ResolveImage(req.Metal, req.Handle, req.CutleryType)
		if err := store.Requirements.Create(ctx, &req); err != nil {
			return res, fmt.Errorf("create requirement: %w", err)
		}
		res.requirements++
	}
	return res, nil
}

// numberEntries gives entries without an id their 1-based position and
// rejects lists where two entries end up sharing an id.
func numberEntries(category model.Category, entries []model.CatalogEntry) error {
	seen := make(map[int]string, len(entries))
	for i := range entries {
		if entries[i].ID == 0 {
			entries[i].ID = i + 1
		}
		if prev, ok := seen[entries[i].ID]; ok {
			return fmt.Errorf("%s: %q and %q share id %d", category, prev, entries[i].Name, entries[i].ID)
		}
		seen[entries[i].ID] = entries[i].Name
	}
	return nil
}
