package middlewarectx

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customjwt "github.com/magabrotheeeer/magazine-subscription-service/internal/lib/jwt"
)

func TestJWTMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	maker := customjwt.NewJWTMaker("test-secret", 30*time.Minute, 7*24*time.Hour)

	access, _, err := maker.GenerateTokenPair("testuser")
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, _ := r.Context().Value(User).(string)
		w.Header().Set("X-Username", username)
		w.WriteHeader(http.StatusOK)
	})
	handler := JWTMiddleware(maker, logger)(next)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedUser   string
	}{
		{
			name:           "валидный токен",
			authHeader:     "Bearer " + access,
			expectedStatus: http.StatusOK,
			expectedUser:   "testuser",
		},
		{
			name:           "нет заголовка",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "не Bearer схема",
			authHeader:     "Basic abcdef",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "мусорный токен",
			authHeader:     "Bearer not-a-token",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedUser != "" {
				assert.Equal(t, tt.expectedUser, w.Header().Get("X-Username"))
			}
		})
	}
}

func TestJWTMiddleware_ExpiredToken(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	expiredMaker := customjwt.NewJWTMaker("test-secret", -time.Minute, -time.Minute)
	validMaker := customjwt.NewJWTMaker("test-secret", 30*time.Minute, 7*24*time.Hour)

	access, _, err := expiredMaker.GenerateTokenPair("testuser")
	require.NoError(t, err)

	handler := JWTMiddleware(validMaker, logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
