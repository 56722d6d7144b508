// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/lib/jwt"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/lib/password"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/models"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/storage/repository"
)

// ErrInvalidCredentials возвращается при неверной паре username/password.
// Несуществующий пользователь и неверный пароль неразличимы для вызывающего.
var ErrInvalidCredentials = errors.New("incorrect username or password")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByUsername возвращает пользователя по имени или ошибку, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// DeactivateUser сбрасывает флаг активности пользователя.
	DeactivateUser(ctx context.Context, username string) error
}

// ResetSender отправляет пользователю письмо для сброса пароля.
type ResetSender interface {
	SendPasswordReset(user *models.User) error
}

// AuthService отвечает за регистрацию, авторизацию и работу с JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
	sender   ResetSender
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker, sender ResetSender) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
		sender:   sender,
	}
}

// tokenPair выдаёт пару токенов для пользователя.
func (s *AuthService) tokenPair(username string) (*models.TokenPair, error) {
	access, refresh, err := s.jwtMaker.GenerateTokenPair(username)
	if err != nil {
		return nil, err
	}
	return &models.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
	}, nil
}

// Register создает нового пользователя с хэшированием пароля
// и сразу выдаёт ему пару токенов.
func (s *AuthService) Register(ctx context.Context, username, email, rawPassword string) (*models.TokenPair, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		IsActive:     true,
	}
	if _, err := s.users.RegisterUser(ctx, user); err != nil {
		return nil, err
	}
	return s.tokenPair(username)
}

// Login проверяет пароль пользователя и выдаёт пару токенов.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (*models.TokenPair, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.tokenPair(user.Username)
}

// Refresh проверяет предъявленный токен и выдаёт новую пару токенов.
// Пользователь из Subject должен существовать в хранилище.
func (s *AuthService) Refresh(ctx context.Context, tokenStr string) (*models.TokenPair, error) {
	claims, err := s.jwtMaker.ParseToken(tokenStr)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetUserByUsername(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("refresh: %w", jwt.ErrInvalidToken)
	}
	return s.tokenPair(user.Username)
}

// ResetPassword находит пользователя по email и инициирует отправку
// письма для сброса пароля.
func (s *AuthService) ResetPassword(ctx context.Context, email string) error {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	return s.sender.SendPasswordReset(user)
}

// Deactivate сбрасывает флаг активности пользователя. Уже выданные токены
// остаются действительными до конца своего срока жизни.
func (s *AuthService) Deactivate(ctx context.Context, username string) error {
	return s.users.DeactivateUser(ctx, username)
}

// Status возвращает пользователя по имени, если он существует и активен.
// Отсутствующий и деактивированный пользователи неразличимы.
func (s *AuthService) Status(ctx context.Context, username string) (*models.User, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, fmt.Errorf("status: %w", repository.ErrNotFound)
	}
	return user, nil
}
