package jsonstore

import (
	"context"

	apperrors "cutlery/internal/errors"
	"cutlery/internal/model"
	"cutlery/internal/repository"
)

var _ repository.RequirementRepository = (*RequirementRepository)(nil)

// RequirementRepository serves requirements from the requirement document.
// Storage order is list order.
type RequirementRepository struct {
	s *Store
}

func (r *RequirementRepository) List(_ context.Context) ([]model.Requirement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return append([]model.Requirement{}, r.s.doc.Requirements...), nil
}

func (r *RequirementRepository) ListByUsername(_ context.Context, username string) ([]model.Requirement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	reqs := make([]model.Requirement, 0)
	for _, req := range r.s.doc.Requirements {
		if req.Username == username {
			reqs = append(reqs, req)
		}
	}
	return reqs, nil
}

func (r *RequirementRepository) FindByID(_ context.Context, id int) (*model.Requirement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		req := r.s.doc.Requirements[i]
		return &req, nil
	}
	return nil, apperrors.ErrRequirementNotFound
}

// Create appends req with id = count + 1.
func (r *RequirementRepository) Create(_ context.Context, req *model.Requirement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	doc := cloneDocument(r.s.doc)
	req.ID = len(doc.Requirements) + 1
	doc.Requirements = append(doc.Requirements, *req)
	return r.s.commitDocument(doc)
}

func (r *RequirementRepository) Update(_ context.Context, req *model.Requirement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.indexOf(req.ID)
	if i < 0 {
		return apperrors.ErrRequirementNotFound
	}
	doc := cloneDocument(r.s.doc)
	doc.Requirements[i] = *req
	return r.s.commitDocument(doc)
}

// Delete removes the requirement and renumbers the rest to their 1-based position.
func (r *RequirementRepository) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return apperrors.ErrRequirementNotFound
	}
	doc := cloneDocument(r.s.doc)
	doc.Requirements = append(doc.Requirements[:i], doc.Requirements[i+1:]...)
	for pos := range doc.Requirements {
		doc.Requirements[pos].ID = pos + 1
	}
	return r.s.commitDocument(doc)
}

// indexOf returns the position of the first requirement with id, or -1.
// Callers hold the store lock.
func (r *RequirementRepository) indexOf(id int) int {
	for i, req := range r.s.doc.Requirements {
		if req.ID == id {
			return i
		}
	}
	return -1
}
