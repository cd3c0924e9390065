package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cropadvisor/internal/auth"
	apperrors "cropadvisor/internal/errors"
	"cropadvisor/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
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

// MockSessionStore is a mock implementation of SessionStoreInterface.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) RevokeSession(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockSessionStore) IsSessionRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			username: "farmer",
			password: "Passw0rd!",
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "duplicate username",
			username: "farmer",
			password: "Passw0rd!",
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrDuplicateUsername,
		},
		{
			name:          "weak password never reaches the repository",
			username:      "farmer",
			password:      "abc",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrInvalidPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			mockStore := new(MockSessionStore)

			service := NewAuthService(mockRepo, jwtService, mockStore)
			user, err := service.Register(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.username, user.Username)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.password, user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.password)))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), 10)
	assert.NoError(t, err)

	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			username: "farmer",
			password: "Passw0rd!",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "farmer").Return(&model.User{
					ID:           1,
					Username:     "farmer",
					PasswordHash: string(hashed),
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown username",
			username: "nobody",
			password: "Passw0rd!",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "nobody").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "farmer",
			password: "WrongPass1!",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "farmer").Return(&model.User{
					ID:           1,
					Username:     "farmer",
					PasswordHash: string(hashed),
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService, new(MockSessionStore))

			token, user, err := service.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.NotNil(t, user)

				claims, err := jwtService.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, uint(1), claims.UserID)
				assert.Equal(t, "farmer", claims.Username)
				assert.NotEmpty(t, claims.ID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")

	t.Run("valid session is revoked", func(t *testing.T) {
		tokenID, token, err := jwtService.GenerateSessionToken(1, "farmer")
		assert.NoError(t, err)

		mockStore := new(MockSessionStore)
		mockStore.On("RevokeSession", mock.Anything, tokenID, mock.AnythingOfType("time.Duration")).Return(nil)

		service := NewAuthService(new(MockUserRepository), jwtService, mockStore)
		assert.NoError(t, service.Logout(context.Background(), token))

		mockStore.AssertExpectations(t)
	})

	t.Run("garbage token revokes nothing", func(t *testing.T) {
		mockStore := new(MockSessionStore)

		service := NewAuthService(new(MockUserRepository), jwtService, mockStore)
		assert.NoError(t, service.Logout(context.Background(), "not-a-token"))

		mockStore.AssertNotCalled(t, "RevokeSession", mock.Anything, mock.Anything, mock.Anything)
	})
}
