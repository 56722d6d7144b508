// Package refresh реализует HTTP-обработчик обновления пары токенов.
//
// Предъявленный в заголовке Authorization токен проверяется сервисом,
// в ответ выдаётся новая пара access/refresh.
package refresh

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/http/response"
	customjwt "github.com/magabrotheeeer/magazine-subscription-service/internal/lib/jwt"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/lib/sl"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/models"
)

// Service описывает интерфейс бизнес-логики обновления токенов.
type Service interface {
	Refresh(ctx context.Context, tokenStr string) (*models.TokenPair, error)
}

// Handler управляет HTTP-запросами на обновление пары токенов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Обновить пару токенов
// @Description Проверяет предъявленный токен и выдаёт новую пару access/refresh.
// @Tags Users
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} models.TokenPair "Новая пара токенов"
// @Failure 401 {object} response.ErrorResponse "Токен отсутствует, просрочен или недействителен"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /users/token/refresh [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.refresh"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		log.Error("missing or invalid authorization header")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("missing or invalid authorization header"))
		return
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	pair, err := h.service.Refresh(r.Context(), tokenStr)
	if err != nil {
		if errors.Is(err, customjwt.ErrInvalidToken) {
			log.Error("invalid or expired token", sl.Err(err))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid or expired token"))
			return
		}
		log.Error("failed to refresh tokens", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to refresh tokens"))
		return
	}

	log.Info("tokens refreshed")
	render.JSON(w, r, response.OKWithData(pair))
}
