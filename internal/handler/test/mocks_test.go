package test

import (
	"context"
	"io"
	"net/http"

	"github.com/stretchr/testify/mock"

	"aigallery/internal/models"
	"aigallery/internal/repository"
	"aigallery/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, req service.SignupRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) IssueSession(w http.ResponseWriter, user *models.User) error {
	args := m.Called(w, user)
	return args.Error(0)
}

func (m *MockAuthService) SessionFromRequest(r *http.Request) *service.Session {
	args := m.Called(r)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*service.Session)
}

func (m *MockAuthService) RevokeSession(w http.ResponseWriter) {
	m.Called(w)
}

func (m *MockAuthService) GenerateSessionToken(userID, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ParseSessionToken(tokenString string) (*service.Session, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Session), args.Error(1)
}

type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) Create(ctx context.Context, payload service.ItemPayload, session *service.Session) (*models.GalleryItem, error) {
	args := m.Called(ctx, payload, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GalleryItem), args.Error(1)
}

func (m *MockItemService) Get(ctx context.Context, itemID int64) (*models.GalleryItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GalleryItem), args.Error(1)
}

func (m *MockItemService) List(ctx context.Context, filter repository.ItemFilter) ([]models.GalleryItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GalleryItem), args.Error(1)
}

func (m *MockItemService) Update(ctx context.Context, itemID int64, payload service.ItemPayload, session *service.Session) (*models.GalleryItem, error) {
	args := m.Called(ctx, itemID, payload, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GalleryItem), args.Error(1)
}

func (m *MockItemService) Delete(ctx context.Context, itemID int64, password string, session *service.Session) error {
	args := m.Called(ctx, itemID, password, session)
	return args.Error(0)
}

func (m *MockItemService) Like(ctx context.Context, itemID int64) (int, error) {
	args := m.Called(ctx, itemID)
	return args.Int(0), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadThumbnail(ctx context.Context, fileName string, file io.Reader, size int64) (string, string, error) {
	args := m.Called(ctx, fileName, file, size)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockStorage) DeleteThumbnailByURL(ctx context.Context, thumbnailURL string) error {
	args := m.Called(ctx, thumbnailURL)
	return args.Error(0)
}
