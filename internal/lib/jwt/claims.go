// Package jwt реализует выдачу и парсинг JWT токенов сервиса.
//
// Maker определяет интерфейс для выдачи пары токенов (access + refresh)
// и для проверки токена с извлечением claims.
package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Типы токенов, записываемые в claim token_type.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// CustomClaims описывает данные, хранящиеся в JWT.
// Имя пользователя лежит в стандартном Subject, тип токена — в token_type.
type CustomClaims struct {
	TokenType            string `json:"token_type"` // access или refresh
	jwt.RegisteredClaims        // Встроенные стандартные claims JWT (Subject, ExpiresAt и пр.)
}

// Maker описывает интерфейс для выдачи и парсинга JWT токенов.
type Maker interface {
	// GenerateTokenPair выдаёт пару access + refresh токенов для пользователя.
	GenerateTokenPair(username string) (access, refresh string, err error)
	// ParseToken проверяет подпись и срок действия токена и возвращает claims.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни access- и refresh-токенов.
type MakerImpl struct {
	secretKey  string        // Секретный ключ для подписи токенов
	accessTTL  time.Duration // Время жизни access-токена
	refreshTTL time.Duration // Время жизни refresh-токена
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, accessTTL, refreshTTL time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey:  secretKey,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}
