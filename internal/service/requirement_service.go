package service

import (
	"context"
	"fmt"

	"cutlery/internal/auth"
	"cutlery/internal/catalog"
	apperrors "cutlery/internal/errors"
	"cutlery/internal/model"
	"cutlery/internal/repository"
)

// RequirementService exposes requirement CRUD scoped by the caller's role.
type RequirementService interface {
	List(ctx context.Context, caller *model.User) ([]model.Requirement, error)
	Get(ctx context.Context, id int, caller *model.User) (*model.Requirement, error)
	Create(ctx context.Context, req model.CreateRequirementRequest, caller *model.User) (*model.Requirement, error)
	Update(ctx context.Context, id int, in model.RequirementInput, caller *model.User) (*model.Requirement, error)
	Delete(ctx context.Context, id int, caller *model.User) error
}

type requirementService struct {
	repo    repository.RequirementRepository
	catalog *catalog.Catalog
}

// NewRequirementService builds a RequirementService validating against cat.
func NewRequirementService(repo repository.RequirementRepository, cat *catalog.Catalog) RequirementService {
	return &requirementService{repo: repo, catalog: cat}
}

// List returns everything for admins and only the caller's own records otherwise.
func (s *requirementService) List(ctx context.Context, caller *model.User) ([]model.Requirement, error) {
	var (
		reqs []model.Requirement
		err  error
	)
	if auth.CanListAll(caller) {
		reqs, err = s.repo.List(ctx)
	} else {
		reqs, err = s.repo.ListByUsername(ctx, caller.Username)
	}
	if err != nil {
		return nil, fmt.Errorf("list requirements: %w", err)
	}
	if reqs == nil {
		reqs = []model.Requirement{}
	}
	return reqs, nil
}

// Get hides records the caller may not view behind the not-found error.
func (s *requirementService) Get(ctx context.Context, id int, caller *model.User) (*model.Requirement, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !auth.CanView(caller, req) {
		return nil, apperrors.ErrRequirementNotFound
	}
	return req, nil
}

func (s *requirementService) Create(ctx context.Context, payload model.CreateRequirementRequest, caller *model.User) (*model.Requirement, error) {
	var (
		owner string
		in    model.RequirementInput
	)
	if auth.CanAssignOwner(caller) {
		if payload.Admin == nil {
			return nil, apperrors.ErrMissingPayload
		}
		owner = payload.Admin.Username
		in = payload.Admin.RequirementInput
	} else {
		if payload.User == nil {
			return nil, apperrors.ErrMissingPayload
		}
		owner = caller.Username
		in = *payload.User
	}

	if err := s.catalog.ValidateInput(in); err != nil {
		return nil, err
	}

	req := &model.Requirement{
		Username:    owner,
		Metal:       in.Metal,
		Handle:      in.Handle,
		CutleryType: in.CutleryType,
		Quantity:    in.Quantity,
		ImageURL:    catalog.ResolveImage(in.Metal, in.Handle, in.CutleryType),
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create requirement: %w", err)
	}
	return req, nil
}

// Update overwrites every field but id and owner, then re-resolves the picture.
func (s *requirementService) Update(ctx context.Context, id int, in model.RequirementInput, caller *model.User) (*model.Requirement, error) {
	if err := s.catalog.ValidateInput(in); err != nil {
		return nil, err
	}

	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !auth.CanEdit(caller, req) {
		return nil, apperrors.ErrForbidden
	}

	req.Metal = in.Metal
	req.Handle = in.Handle
	req.CutleryType = in.CutleryType
	req.Quantity = in.Quantity
	req.ImageURL = catalog.ResolveImage(in.Metal, in.Handle, in.CutleryType)

	if err := s.repo.Update(ctx, req); err != nil {
		return nil, fmt.Errorf("update requirement: %w", err)
	}
	return req, nil
}

// Delete removes the record; the repository renumbers the survivors.
func (s *requirementService) Delete(ctx context.Context, id int, caller *model.User) error {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CanDelete(caller, req) {
		return apperrors.ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete requirement: %w", err)
	}
	return nil
}
