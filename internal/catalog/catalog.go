// Package catalog holds the reference lists a requirement is validated against
// and the picture table for known metal/handle/type combinations.
package catalog

import (
	"cutlery/internal/errors"
	"cutlery/internal/model"
)

// fieldNames maps a category to the requirement field it validates.
var fieldNames = map[model.Category]string{
	model.CategoryMetals:       "metal",
	model.CategoryHandles:      "handle",
	model.CategoryCutleryTypes: "cutlery_type",
}

// Catalog is the read-only reference data loaded once at startup.
type Catalog struct {
	entries map[model.Category][]model.CatalogEntry
}

// New builds a catalog from per-category entries. Input order is preserved.
func New(entries map[model.Category][]model.CatalogEntry) *Catalog {
	c := &Catalog{entries: make(map[model.Category][]model.CatalogEntry, len(model.Categories))}
	for _, category := range model.Categories {
		list := make([]model.CatalogEntry, len(entries[category]))
		copy(list, entries[category])
		c.entries[category] = list
	}
	return c
}

// List returns every entry of a category in insertion order.
func (c *Catalog) List(category model.Category) []model.CatalogEntry {
	list := make([]model.CatalogEntry, len(c.entries[category]))
	copy(list, c.entries[category])
	return list
}

// Contains reports whether value is the name of some entry in category.
func (c *Catalog) Contains(category model.Category, value string) bool {
	for _, entry := range c.entries[category] {
		if entry.Name == value {
			return true
		}
	}
	return false
}

// ValidateMembership fails with a ValidationError when value is not listed in category.
func (c *Catalog) ValidateMembership(value string, category model.Category) error {
	if !c.Contains(category, value) {
		return &errors.ValidationError{Field: fieldNames[category]}
	}
	return nil
}

// ValidateInput checks handle, metal and cutlery type, in that order.
func (c *Catalog) ValidateInput(in model.RequirementInput) error {
	if err := c.ValidateMembership(in.Handle, model.CategoryHandles); err != nil {
		return err
	}
	if err := c.ValidateMembership(in.Metal, model.CategoryMetals); err != nil {
		return err
	}
	return c.ValidateMembership(in.CutleryType, model.CategoryCutleryTypes)
}
