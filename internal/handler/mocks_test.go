package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/mock"

	"redditstage/internal/config"
	"redditstage/internal/models"
	"redditstage/internal/service"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListPending(ctx context.Context, mediaType string) ([]models.CandidatePost, error) {
	args := m.Called(ctx, mediaType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CandidatePost), args.Error(1)
}

type MockFilesService struct {
	mock.Mock
}

func (m *MockFilesService) Discard(ctx context.Context, filename, mediaType string) error {
	args := m.Called(ctx, filename, mediaType)
	return args.Error(0)
}

type MockPublishService struct {
	mock.Mock
}

func (m *MockPublishService) PublishImages(ctx context.Context, req service.PublishImagesRequest) (*models.PublishResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PublishResult), args.Error(1)
}

func (m *MockPublishService) PublishVideo(ctx context.Context, req service.PublishVideoRequest) (*models.PublishResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PublishResult), args.Error(1)
}

func (m *MockPublishService) ListFlairs(ctx context.Context, accountUsername string) ([]models.Flair, error) {
	args := m.Called(ctx, accountUsername)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flair), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UserMap(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) ListUsernames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAccountRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

type testMocks struct {
	catalog     *MockCatalogService
	files       *MockFilesService
	publish     *MockPublishService
	userRepo    *MockUserRepository
	accountRepo *MockAccountRepository
}

func newTestHandlers() (*Handlers, *testMocks) {
	mocks := &testMocks{
		catalog:     new(MockCatalogService),
		files:       new(MockFilesService),
		publish:     new(MockPublishService),
		userRepo:    new(MockUserRepository),
		accountRepo: new(MockAccountRepository),
	}

	h := &Handlers{
		Catalog:     mocks.catalog,
		Files:       mocks.files,
		Publish:     mocks.publish,
		UserRepo:    mocks.userRepo,
		AccountRepo: mocks.accountRepo,
		Cfg:         &config.Config{},
		Validate:    validator.New(),
	}

	return h, mocks
}
