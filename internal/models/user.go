// Package models содержит доменную модель пользователя сервиса,
// включающую данные учётной записи, хэш пароля и флаг активности.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя сервиса.
type User struct {
	UID          string    `json:"uid"`        // Уникальный идентификатор пользователя
	Username     string    `json:"username"`   // Имя пользователя (уникальное)
	Email        string    `json:"email"`      // Электронная почта (уникальная)
	PasswordHash string    `json:"-"`          // Хэш пароля пользователя, наружу не отдаётся
	IsActive     bool      `json:"is_active"`  // Признак активности учётной записи
	CreatedAt    time.Time `json:"created_at"` // Дата создания учётной записи
}

// DummyUserRegister используется для приёма данных регистрации из JSON-запроса.
type DummyUserRegister struct {
	Username string `json:"username" validate:"required,min=3,max=50"` // Имя пользователя
	Email    string `json:"email" validate:"required,email"`           // Электронная почта
	Password string `json:"password" validate:"required,min=6"`        // Пароль в открытом виде
}

// DummyUserLogin используется для приёма данных входа из JSON-запроса.
type DummyUserLogin struct {
	Username string `json:"username" validate:"required"` // Имя пользователя
	Password string `json:"password" validate:"required"` // Пароль в открытом виде
}

// TokenPair содержит пару выданных токенов.
type TokenPair struct {
	AccessToken  string `json:"access_token"`  // Краткоживущий токен доступа
	RefreshToken string `json:"refresh_token"` // Долгоживущий refresh-токен
	TokenType    string `json:"token_type"`    // Тип токена, всегда "bearer"
}
