package service

import (
	"context"
	"os"

	"github.com/stretchr/testify/mock"

	"redditstage/internal/models"
	"redditstage/internal/reddit"
	"redditstage/internal/transcode"
)

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

type MockSession struct {
	mock.Mock
}

func (m *MockSession) SubmitImage(ctx context.Context, title, imagePath string) (*reddit.Submission, error) {
	args := m.Called(ctx, title, imagePath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reddit.Submission), args.Error(1)
}

func (m *MockSession) SubmitGallery(ctx context.Context, title string, imagePaths []string) (*reddit.Submission, error) {
	args := m.Called(ctx, title, imagePaths)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reddit.Submission), args.Error(1)
}

func (m *MockSession) SubmitVideo(ctx context.Context, title, videoPath string) (*reddit.Submission, error) {
	args := m.Called(ctx, title, videoPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reddit.Submission), args.Error(1)
}

func (m *MockSession) SelectFlair(ctx context.Context, fullname, flairID string) error {
	args := m.Called(ctx, fullname, flairID)
	return args.Error(0)
}

func (m *MockSession) LinkFlairs(ctx context.Context) ([]models.Flair, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flair), args.Error(1)
}

// stubFactory hands out one fixed session regardless of account.
type stubFactory struct {
	session reddit.Session
}

func (f stubFactory) NewSession(account *models.Account) reddit.Session {
	return f.session
}

// fakeTranscoder simulates ffmpeg by writing the derivative next to
// the source, the way the real adapter does.
type fakeTranscoder struct {
	err    error
	called bool
}

func (f *fakeTranscoder) Normalize(ctx context.Context, videoPath string) (string, error) {
	f.called = true
	if f.err != nil {
		return "", f.err
	}
	tempPath := transcode.TempPath(videoPath)
	if err := os.WriteFile(tempPath, []byte("derivative"), 0o644); err != nil {
		return "", err
	}
	return tempPath, nil
}
