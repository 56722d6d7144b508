// Package resetpassword реализует HTTP-обработчик запроса сброса пароля.
//
// Email передаётся query-параметром. Если пользователь с таким email
// существует, инициируется отправка письма и возвращается подтверждение.
package resetpassword

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/http/response"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/lib/sl"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики сброса пароля.
type Service interface {
	ResetPassword(ctx context.Context, email string) error
}

// Handler управляет HTTP-запросами на сброс пароля.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Запросить сброс пароля
// @Description Отправляет письмо со ссылкой для сброса пароля, если email известен.
// @Tags Users
// @Produce  json
// @Param email query string true "Email учётной записи"
// @Success 200 {object} response.Response "Подтверждение отправки"
// @Failure 404 {object} response.ErrorResponse "Пользователь с таким email не найден"
// @Failure 422 {object} response.ErrorResponse "Некорректный email"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /users/reset-password [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.resetpassword"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email := r.URL.Query().Get("email")
	if err := h.validate.Var(email, "required,email"); err != nil {
		log.Error("invalid email", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("invalid email"))
		return
	}

	if err := h.service.ResetPassword(r.Context(), email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("email not found", slog.String("email", email))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user with this email not found"))
			return
		}
		log.Error("failed to reset password", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to reset password"))
		return
	}

	log.Info("password reset initiated", slog.String("email", email))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "password reset link sent to " + email,
	}))
}
