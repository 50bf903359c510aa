package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"cutlery/internal/auth"
	apperrors "cutlery/internal/errors"
	"cutlery/internal/model"
	"cutlery/internal/partner"
	"cutlery/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration, credential checks and bearer tokens.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	IssueToken(user *model.User) (string, error)
	Login(ctx context.Context, username, password string) (string, *model.User, error)
	Resolve(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	users         repository.UserRepository
	jwtService    *auth.JWTService
	partner       partner.Client
	adminUsername string
}

// NewAuthService creates a new authentication service. A nil partner client
// skips the partner registration step.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService, partnerClient partner.Client, adminUsername string) AuthService {
	return &authService{
		users:         users,
		jwtService:    jwtService,
		partner:       partnerClient,
		adminUsername: adminUsername,
	}
}

// Register mirrors the account on the partner side, then stores the user
// with the partner token attached. Duplicate usernames are accepted.
func (s *authService) Register(ctx context.Context, username, password string) (*model.User, error) {
	var integrationToken string
	if s.partner != nil {
		if err := s.partner.RegisterUser(ctx, username, password); err != nil {
			return nil, err
		}
		token, err := s.partner.IssueToken(ctx, username, password)
		if err != nil {
			return nil, err
		}
		integrationToken = token
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:         username,
		PasswordHash:     string(hash),
		IsAdmin:          username == s.adminUsername,
		IntegrationToken: integrationToken,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Authenticate returns the first user whose name matches and whose hash
// verifies password. Unknown users and wrong passwords look the same.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	for i := range users {
		if users[i].Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(users[i].PasswordHash), []byte(password)) == nil {
			return &users[i], nil
		}
	}
	return nil, apperrors.ErrInvalidCredentials
}

func (s *authService) IssueToken(user *model.User) (string, error) {
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

// Login authenticates and issues a token in one step.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", nil, err
	}
	token, err := s.IssueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Resolve maps a bearer token back to its stored user.
func (s *authService) Resolve(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	user, err := s.users.FindByID(ctx, claims.UserID)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, apperrors.ErrUnknownUser
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
