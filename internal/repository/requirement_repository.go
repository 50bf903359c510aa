package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "cutlery/internal/errors"
	"cutlery/internal/model"
)

// RequirementRepository defines requirement persistence operations.
//
// Create assigns req.ID as the current requirement count plus one. Delete
// renumbers the remaining requirements to 1..N in their stored order, which
// keeps count+1 free for the next Create.
type RequirementRepository interface {
	List(ctx context.Context) ([]model.Requirement, error)
	ListByUsername(ctx context.Context, username string) ([]model.Requirement, error)
	FindByID(ctx context.Context, id int) (*model.Requirement, error)
	Create(ctx context.Context, req *model.Requirement) error
	Update(ctx context.Context, req *model.Requirement) error
	Delete(ctx context.Context, id int) error
}

type requirementRepository struct {
	db *gorm.DB
}

// NewRequirementRepository creates a new requirement repository.
func NewRequirementRepository(db *gorm.DB) RequirementRepository {
	return &requirementRepository{db: db}
}

// List returns every requirement ordered by id.
func (r *requirementRepository) List(ctx context.Context) ([]model.Requirement, error) {
	var reqs []model.Requirement
	if err := r.db.WithContext(ctx).Order("id").Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

// ListByUsername returns the requirements owned by username.
func (r *requirementRepository) ListByUsername(ctx context.Context, username string) ([]model.Requirement, error) {
	var reqs []model.Requirement
	if err := r.db.WithContext(ctx).Where("username = ?", username).Order("id").Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

// FindByID finds a requirement by ID.
func (r *requirementRepository) FindByID(ctx context.Context, id int) (*model.Requirement, error) {
	var req model.Requirement
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&req).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRequirementNotFound
		}
		return nil, err
	}
	return &req, nil
}

// Create inserts req with the next dense id.
func (r *requirementRepository) Create(ctx context.Context, req *model.Requirement) error {
	return insertNext(ctx, r.db, &model.Requirement{}, req, func(id int) { req.ID = id })
}

// Update overwrites an existing requirement.
func (r *requirementRepository) Update(ctx context.Context, req *model.Requirement) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Requirement{}).Where("id = ?", req.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperrors.ErrRequirementNotFound
		}
		// MySQL reports unchanged rows as unaffected, so existence is checked above.
		return tx.Model(&model.Requirement{}).Where("id = ?", req.ID).
			Updates(map[string]interface{}{
				"username":     req.Username,
				"metal":        req.Metal,
				"handle":       req.Handle,
				"cutlery_type": req.CutleryType,
				"quantity":     req.Quantity,
				"image_url":    req.ImageURL,
			}).Error
	})
}

// Delete removes a requirement and renumbers the rest.
func (r *requirementRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&model.Requirement{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrRequirementNotFound
		}
		return reassignIDs(tx)
	})
}

// reassignIDs sets every id to its 1-based position. Moved rows are parked on
// negative ids first so no intermediate update collides with a live key.
func reassignIDs(tx *gorm.DB) error {
	var ids []int
	if err := tx.Model(&model.Requirement{}).Order("id").Pluck("id", &ids).Error; err != nil {
		return err
	}

	moved := false
	for i, id := range ids {
		position := i + 1
		if id == position {
			continue
		}
		if err := tx.Model(&model.Requirement{}).Where("id = ?", id).
			Update("id", -position).Error; err != nil {
			return err
		}
		moved = true
	}
	if !moved {
		return nil
	}
	return tx.Model(&model.Requirement{}).Where("id < 0").
		Update("id", gorm.Expr("-id")).Error
}
