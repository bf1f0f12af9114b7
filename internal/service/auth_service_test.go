package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"vault/internal/auth"
	apperrors "vault/internal/errors"
	"vault/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockActivityRepository is a mock implementation of ActivityRepository.
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, activity *model.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Activity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Activity), args.Error(1)
}

func TestAuthService_Signup(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		userName      string
		password      string
		setupMock     func(*MockUserRepository, *MockActivityRepository)
		expectedError error
		errorContains string
	}{
		{
			name:     "successful signup",
			email:    "new@vault.io",
			userName: "New User",
			password: "Abc12345",
			setupMock: func(mRepo *MockUserRepository, mAct *MockActivityRepository) {
				mRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
				mAct.On("Create", mock.Anything, mock.AnythingOfType("*model.Activity")).Return(nil)
			},
		},
		{
			name:          "password too short",
			email:         "new@vault.io",
			userName:      "New User",
			password:      "Ab1",
			setupMock:     func(*MockUserRepository, *MockActivityRepository) {},
			expectedError: apperrors.ErrWeakPassword,
			errorContains: "at least 8 characters",
		},
		{
			name:          "password missing uppercase",
			email:         "new@vault.io",
			userName:      "New User",
			password:      "abc12345",
			setupMock:     func(*MockUserRepository, *MockActivityRepository) {},
			expectedError: apperrors.ErrWeakPassword,
			errorContains: "an uppercase letter",
		},
		{
			name:          "password missing lowercase",
			email:         "new@vault.io",
			userName:      "New User",
			password:      "ABC12345",
			setupMock:     func(*MockUserRepository, *MockActivityRepository) {},
			expectedError: apperrors.ErrWeakPassword,
			errorContains: "a lowercase letter",
		},
		{
			name:          "password missing digit",
			email:         "new@vault.io",
			userName:      "New User",
			password:      "Abcdefgh",
			setupMock:     func(*MockUserRepository, *MockActivityRepository) {},
			expectedError: apperrors.ErrWeakPassword,
			errorContains: "a digit",
		},
		{
			name:     "duplicate email",
			email:    "viewer@vault.io",
			userName: "Existing User",
			password: "Abc12345",
			setupMock: func(mRepo *MockUserRepository, mAct *MockActivityRepository) {
				mRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(apperrors.ErrDuplicateEmail)
			},
			expectedError: apperrors.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockActivity := new(MockActivityRepository)
			tt.setupMock(mockRepo, mockActivity)

			tokens := auth.NewTokenService("test-secret")
			svc := NewAuthService(mockRepo, mockActivity, tokens)

			user, token, err := svc.Signup(context.Background(), tt.email, tt.userName, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, model.RoleViewer, user.Role)
				assert.NotEmpty(t, user.PasswordDigest)
				assert.NotEqual(t, tt.password, user.PasswordDigest)

				claims, err := tokens.Verify(token)
				assert.NoError(t, err)
				assert.Equal(t, tt.email, claims.Email)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	digest, err := auth.HashPassword("Abc12345")
	assert.NoError(t, err)
	stored := &model.User{
		ID:             uuid.New(),
		Email:          "viewer@vault.io",
		Name:           "External Viewer",
		Role:           model.RoleViewer,
		PasswordDigest: digest,
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository, *MockActivityRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "viewer@vault.io",
			password: "Abc12345",
			setupMock: func(mRepo *MockUserRepository, mAct *MockActivityRepository) {
				mRepo.On("FindByEmail", mock.Anything, "viewer@vault.io").Return(stored, nil)
				mAct.On("Create", mock.Anything, mock.AnythingOfType("*model.Activity")).Return(nil)
			},
		},
		{
			name:     "unknown email",
			email:    "nobody@vault.io",
			password: "Abc12345",
			setupMock: func(mRepo *MockUserRepository, mAct *MockActivityRepository) {
				mRepo.On("FindByEmail", mock.Anything, "nobody@vault.io").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "viewer@vault.io",
			password: "Wrong12345",
			setupMock: func(mRepo *MockUserRepository, mAct *MockActivityRepository) {
				mRepo.On("FindByEmail", mock.Anything, "viewer@vault.io").Return(stored, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockActivity := new(MockActivityRepository)
			tt.setupMock(mockRepo, mockActivity)

			tokens := auth.NewTokenService("test-secret")
			svc := NewAuthService(mockRepo, mockActivity, tokens)

			user, token, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.NotEmpty(t, token)

				claims, err := tokens.Verify(token)
				assert.NoError(t, err)
				assert.Equal(t, stored.ID.String(), claims.UserID)
				assert.Equal(t, stored.Role, claims.Role)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	digest, err := auth.HashPassword("Abc12345")
	assert.NoError(t, err)

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "nobody@vault.io").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("FindByEmail", mock.Anything, "viewer@vault.io").Return(&model.User{
		ID:             uuid.New(),
		Email:          "viewer@vault.io",
		Role:           model.RoleViewer,
		PasswordDigest: digest,
	}, nil)

	svc := NewAuthService(mockRepo, new(MockActivityRepository), auth.NewTokenService("test-secret"))

	_, _, unknownErr := svc.Login(context.Background(), "nobody@vault.io", "Abc12345")
	_, _, wrongErr := svc.Login(context.Background(), "viewer@vault.io", "Nope12345")

	assert.Equal(t, unknownErr, wrongErr)
}
