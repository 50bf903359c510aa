package model

// Requirement is a cutlery customization request owned by a user.
type Requirement struct {
	ID          int     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Username    string  `json:"username" gorm:"size:255;not null;index"`
	Metal       string  `json:"metal" gorm:"size:255;not null"`
	Handle      string  `json:"handle" gorm:"size:255;not null"`
	CutleryType string  `json:"cutlery_type" gorm:"size:255;not null"`
	Quantity    int     `json:"quantity" gorm:"not null"`
	ImageURL    *string `json:"image_url" gorm:"size:1024"` // nil when the combination has no picture
}

// RequirementInput holds the user editable fields of a requirement.
type RequirementInput struct {
	Metal       string `json:"metal" validate:"required"`
	Handle      string `json:"handle" validate:"required"`
	CutleryType string `json:"cutlery_type" validate:"required"`
	Quantity    int    `json:"quantity"`
}

// AdminRequirementInput additionally lets an admin choose the owner.
type AdminRequirementInput struct {
	Username string `json:"username" validate:"required"`
	RequirementInput
}

// CreateRequirementRequest carries one payload per caller role; only the one
// matching the caller's role is read.
type CreateRequirementRequest struct {
	User  *RequirementInput      `json:"requirement_user_data,omitempty"`
	Admin *AdminRequirementInput `json:"requirement_admin_data,omitempty"`
}
