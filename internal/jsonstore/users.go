package jsonstore

import (
	"context"

	apperrors "cutlery/internal/errors"
	"cutlery/internal/model"
	"cutlery/internal/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

// UserRepository serves users from the users document.
type UserRepository struct {
	s *Store
}

// Create appends user with id = count + 1.
func (r *UserRepository) Create(_ context.Context, user *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user.ID = len(r.s.users) + 1
	users := append(append([]userRecord{}, r.s.users...), toRecord(user))
	return r.s.commitUsers(users)
}

// Update replaces the first user with the same id.
func (r *UserRepository) Update(_ context.Context, user *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	users := append([]userRecord{}, r.s.users...)
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = toRecord(user)
			return r.s.commitUsers(users)
		}
	}
	return apperrors.ErrUserNotFound
}

func (r *UserRepository) FindByID(_ context.Context, id int) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, rec := range r.s.users {
		if rec.ID == id {
			u := rec.toModel()
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// FindByUsername returns the first user with that name.
func (r *UserRepository) FindByUsername(_ context.Context, username string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, rec := range r.s.users {
		if rec.Username == username {
			u := rec.toModel()
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *UserRepository) List(_ context.Context) ([]model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	users := make([]model.User, len(r.s.users))
	for i, rec := range r.s.users {
		users[i] = rec.toModel()
	}
	return users, nil
}
