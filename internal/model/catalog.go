package model

import "github.com/goccy/go-json"

// Category names one of the reference lists.
type Category string

// Reference list categories, named after their key in the requirement document.
const (
	CategoryMetals       Category = "metals"
	CategoryHandles      Category = "handles"
	CategoryCutleryTypes Category = "cutlery_types"
)

// Categories lists every reference category in document order.
var Categories = []Category{CategoryMetals, CategoryHandles, CategoryCutleryTypes}

// CatalogEntry is an immutable reference value (a metal, a handle or a cutlery type).
type CatalogEntry struct {
	ID       int      `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Category Category `json:"-" gorm:"primaryKey;size:32"`
	Name     string   `json:"name" gorm:"size:255;not null"`
}

// TableName keeps all categories in a single table.
func (CatalogEntry) TableName() string {
	return "catalog_entries"
}

// UnmarshalJSON reads "id" or, for documents keyed per category, "metal_id",
// "handle_id" or "type_id". An entry without any of them decodes with ID 0.
func (e *CatalogEntry) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       *int   `json:"id"`
		MetalID  *int   `json:"metal_id"`
		HandleID *int   `json:"handle_id"`
		TypeID   *int   `json:"type_id"`
		Name     string `json:"name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.ID = 0
	for _, id := range []*int{raw.ID, raw.MetalID, raw.HandleID, raw.TypeID} {
		if id != nil {
			e.ID = *id
			break
		}
	}
	e.Name = raw.Name
	return nil
}
