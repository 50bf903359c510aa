package service

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/mock"

	"cutlery/internal/catalog"
	"cutlery/internal/model"
	"cutlery/internal/partner"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockRequirementRepository is a mock implementation of RequirementRepository.
type MockRequirementRepository struct {
	mock.Mock
}

func (m *MockRequirementRepository) List(ctx context.Context) ([]model.Requirement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Requirement), args.Error(1)
}

func (m *MockRequirementRepository) ListByUsername(ctx context.Context, username string) ([]model.Requirement, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Requirement), args.Error(1)
}

func (m *MockRequirementRepository) FindByID(ctx context.Context, id int) (*model.Requirement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Requirement), args.Error(1)
}

func (m *MockRequirementRepository) Create(ctx context.Context, req *model.Requirement) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockRequirementRepository) Update(ctx context.Context, req *model.Requirement) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockRequirementRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPartnerClient is a mock implementation of partner.Client.
type MockPartnerClient struct {
	mock.Mock
}

func (m *MockPartnerClient) RegisterUser(ctx context.Context, username, password string) error {
	args := m.Called(ctx, username, password)
	return args.Error(0)
}

func (m *MockPartnerClient) IssueToken(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockPartnerClient) CreateDesign(ctx context.Context, token string, design model.Design) (json.RawMessage, error) {
	args := m.Called(ctx, token, design)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockPartnerClient) ListDesigns(ctx context.Context, token string) ([]partner.DesignRecord, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.DesignRecord), args.Error(1)
}

func testCatalog() *catalog.Catalog {
	return catalog.New(map[model.Category][]model.CatalogEntry{
		model.CategoryMetals:       {{ID: 1, Name: "Silver"}, {ID: 2, Name: "Stainless Steel"}, {ID: 3, Name: "Gold"}},
		model.CategoryHandles:      {{ID: 1, Name: "Wood"}, {ID: 2, Name: "Plastic"}},
		model.CategoryCutleryTypes: {{ID: 1, Name: "Spoon"}, {ID: 2, Name: "Fork"}, {ID: 3, Name: "Knife"}},
	})
}

var (
	adminUser = &model.User{ID: 1, Username: "jazmy", IsAdmin: true}
	bobUser   = &model.User{ID: 2, Username: "bob"}
	carolUser = &model.User{ID: 3, Username: "carol"}
)
