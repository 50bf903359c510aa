package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "cutlery/internal/errors"
	"cutlery/internal/model"
)

// UserRepository defines persistence operations.
// Create assigns user.ID as the current user count plus one.
// Find methods return errors.ErrUserNotFound when nothing matches.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id int) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return insertNext(ctx, r.db, &model.User{}, user, func(id int) { user.ID = id })
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).Where("id = ?", user.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperrors.ErrUserNotFound
		}
		return tx.Model(&model.User{}).Where("id = ?", user.ID).
			Updates(map[string]interface{}{
				"username":          user.Username,
				"password_hash":     user.PasswordHash,
				"is_admin":          user.IsAdmin,
				"integration_token": user.IntegrationToken,
			}).Error
	})
}

func (r *userRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, userNotFound(err)
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).Order("id").First(&user).Error; err != nil {
		return nil, userNotFound(err)
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func userNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrUserNotFound
	}
	return err
}
