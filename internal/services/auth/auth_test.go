package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	customjwt "github.com/magabrotheeeer/magazine-subscription-service/internal/lib/jwt"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/lib/password"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/models"
	services "github.com/magabrotheeeer/magazine-subscription-service/internal/services/auth"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/storage/repository"
)

// Мок для UserRepository
type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) RegisterUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *UserRepoMock) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) DeactivateUser(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

// Мок для отправителя писем сброса пароля
type SenderMock struct {
	mock.Mock
}

func (m *SenderMock) SendPasswordReset(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func newService(repo *UserRepoMock, sender *SenderMock) *services.AuthService {
	maker := customjwt.NewJWTMaker("test-secret", 30*time.Minute, 7*24*time.Hour)
	return services.NewAuthService(repo, maker, sender)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		email      string
		password   string
		setupMocks func(r *UserRepoMock)
		wantErr    error
	}{
		{
			name:     "successful registration",
			username: "testuser",
			email:    "test@example.com",
			password: "password123",
			setupMocks: func(r *UserRepoMock) {
				r.On("RegisterUser", mock.Anything, mock.MatchedBy(func(user models.User) bool {
					return user.Email == "test@example.com" &&
						user.Username == "testuser" &&
						user.PasswordHash != "" &&
						user.IsActive
				})).Return("some-uuid-string", nil).Once()
			},
		},
		{
			name:     "duplicate username",
			username: "testuser",
			email:    "test@example.com",
			password: "password123",
			setupMocks: func(r *UserRepoMock) {
				r.On("RegisterUser", mock.Anything, mock.Anything).
					Return("", repository.ErrAlreadyExists).Once()
			},
			wantErr: repository.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			svc := newService(repo, new(SenderMock))
			tt.setupMocks(repo)

			pair, err := svc.Register(context.Background(), tt.username, tt.email, tt.password)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, pair.AccessToken)
				assert.NotEmpty(t, pair.RefreshToken)
				assert.Equal(t, "bearer", pair.TokenType)
			}
			repo.AssertExpectations(t)
		})
	}
}

// Subject выданных токенов совпадает с именем зарегистрированного пользователя.
func TestAuthService_Register_TokenSubject(t *testing.T) {
	repo := new(UserRepoMock)
	repo.On("RegisterUser", mock.Anything, mock.Anything).Return("some-uuid-string", nil).Once()
	maker := customjwt.NewJWTMaker("test-secret", 30*time.Minute, 7*24*time.Hour)
	svc := services.NewAuthService(repo, maker, new(SenderMock))

	pair, err := svc.Register(context.Background(), "testuser", "test@example.com", "password123")
	require.NoError(t, err)

	accessClaims, err := maker.ParseToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "testuser", accessClaims.Subject)

	refreshClaims, err := maker.ParseToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "testuser", refreshClaims.Subject)
}

func TestAuthService_Login(t *testing.T) {
	rawPassword := "correctpassword"
	hashedPassword, err := password.GetHash(rawPassword)
	require.NoError(t, err)

	testUser := &models.User{
		UID:          "some-uuid-string",
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: hashedPassword,
		IsActive:     true,
	}

	tests := []struct {
		name       string
		username   string
		password   string
		setupMocks func(r *UserRepoMock)
		wantErr    error
	}{
		{
			name:     "successful login",
			username: "testuser",
			password: rawPassword,
			setupMocks: func(r *UserRepoMock) {
				r.On("GetUserByUsername", mock.Anything, "testuser").Return(testUser, nil).Once()
			},
		},
		{
			name:     "user not found",
			username: "nonexistent",
			password: "password",
			setupMocks: func(r *UserRepoMock) {
				r.On("GetUserByUsername", mock.Anything, "nonexistent").
					Return(nil, repository.ErrNotFound).Once()
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "testuser",
			password: "wrongpassword",
			setupMocks: func(r *UserRepoMock) {
				r.On("GetUserByUsername", mock.Anything, "testuser").Return(testUser, nil).Once()
			},
			wantErr: services.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			svc := newService(repo, new(SenderMock))
			tt.setupMocks(repo)

			pair, err := svc.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				require.Error(t, err)
				// неизвестный пользователь и неверный пароль неразличимы
				assert.True(t, errors.Is(err, tt.wantErr))
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, pair.AccessToken)
				assert.NotEmpty(t, pair.RefreshToken)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Refresh(t *testing.T) {
	maker := customjwt.NewJWTMaker("test-secret", 30*time.Minute, 7*24*time.Hour)
	testUser := &models.User{Username: "testuser", IsActive: true}

	t.Run("valid refresh token", func(t *testing.T) {
		repo := new(UserRepoMock)
		repo.On("GetUserByUsername", mock.Anything, "testuser").Return(testUser, nil).Once()
		svc := services.NewAuthService(repo, maker, new(SenderMock))

		_, refresh, err := maker.GenerateTokenPair("testuser")
		require.NoError(t, err)

		pair, err := svc.Refresh(context.Background(), refresh)
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		repo.AssertExpectations(t)
	})

	t.Run("unknown subject", func(t *testing.T) {
		repo := new(UserRepoMock)
		repo.On("GetUserByUsername", mock.Anything, "ghost").
			Return(nil, repository.ErrNotFound).Once()
		svc := services.NewAuthService(repo, maker, new(SenderMock))

		_, refresh, err := maker.GenerateTokenPair("ghost")
		require.NoError(t, err)

		_, err = svc.Refresh(context.Background(), refresh)
		require.Error(t, err)
		assert.True(t, errors.Is(err, customjwt.ErrInvalidToken))
	})

	t.Run("garbage token", func(t *testing.T) {
		svc := services.NewAuthService(new(UserRepoMock), maker, new(SenderMock))

		_, err := svc.Refresh(context.Background(), "not-a-token")
		require.Error(t, err)
		assert.True(t, errors.Is(err, customjwt.ErrInvalidToken))
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	testUser := &models.User{Username: "testuser", Email: "test@example.com", IsActive: true}

	t.Run("known email triggers sender", func(t *testing.T) {
		repo := new(UserRepoMock)
		sender := new(SenderMock)
		repo.On("GetUserByEmail", mock.Anything, "test@example.com").Return(testUser, nil).Once()
		sender.On("SendPasswordReset", testUser).Return(nil).Once()
		svc := newService(repo, sender)

		require.NoError(t, svc.ResetPassword(context.Background(), "test@example.com"))
		repo.AssertExpectations(t)
		sender.AssertExpectations(t)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(UserRepoMock)
		repo.On("GetUserByEmail", mock.Anything, "ghost@example.com").
			Return(nil, repository.ErrNotFound).Once()
		svc := newService(repo, new(SenderMock))

		err := svc.ResetPassword(context.Background(), "ghost@example.com")
		require.Error(t, err)
		assert.True(t, errors.Is(err, repository.ErrNotFound))
	})
}

func TestAuthService_Status(t *testing.T) {
	t.Run("active user", func(t *testing.T) {
		repo := new(UserRepoMock)
		repo.On("GetUserByUsername", mock.Anything, "testuser").
			Return(&models.User{Username: "testuser", IsActive: true}, nil).Once()
		svc := newService(repo, new(SenderMock))

		user, err := svc.Status(context.Background(), "testuser")
		require.NoError(t, err)
		assert.True(t, user.IsActive)
	})

	t.Run("deactivated user looks like missing", func(t *testing.T) {
		repo := new(UserRepoMock)
		repo.On("GetUserByUsername", mock.Anything, "testuser").
			Return(&models.User{Username: "testuser", IsActive: false}, nil).Once()
		svc := newService(repo, new(SenderMock))

		_, err := svc.Status(context.Background(), "testuser")
		require.Error(t, err)
		assert.True(t, errors.Is(err, repository.ErrNotFound))
	})
}
