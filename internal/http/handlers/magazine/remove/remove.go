// Package remove реализует HTTP-обработчик удаления журнала.
//
// Удаление жёсткое: строка убирается из таблицы, в ответ возвращаются
// последние значения удалённой записи.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/http/response"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/lib/sl"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/models"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики удаления журнала.
type Service interface {
	Remove(ctx context.Context, id int) (*models.Magazine, error)
}

// Handler управляет HTTP-запросами на удаление журналов.
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
// @Summary Удалить журнал
// @Description Удаляет журнал навсегда и возвращает удалённую запись.
// @Tags Magazines
// @Produce  json
// @Param id path int true "ID журнала"
// @Success 200 {object} models.Magazine "Удалённый журнал"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Журнал не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /magazines/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.magazine.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid id format", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	magazine, err := h.service.Remove(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("magazine not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("magazine not found"))
			return
		}
		log.Error("failed to delete magazine", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to delete magazine"))
		return
	}

	log.Info("magazine deleted", slog.Int("id", id))
	render.JSON(w, r, response.OKWithData(magazine))
}
