// Package get реализует HTTP-обработчик чтения тарифа услуги.
//
// Handler извлекает идентификаторы пользователя и услуги из URL, вызывает
// бизнес-логику и возвращает текущий тариф вместе со списком тарифов той же
// группы. Логические ошибки отдаются в конверте {"result":"error"} со
// статусом 200 — клиенты разбирают конверт, а не статусную строку.
package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/tarif-service/internal/http/response"
	"github.com/magabrotheeeer/tarif-service/internal/lib/sl"
	"github.com/magabrotheeeer/tarif-service/internal/models"
	tarifservice "github.com/magabrotheeeer/tarif-service/internal/services/tarif"
)

// Handler обрабатывает запросы на чтение тарифа услуги.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения тарифов.
type Service interface {
	GetTarifInfo(ctx context.Context, userID, serviceID int) (*models.TarifInfo, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.get.ServeHTTP"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		log.Error("failed to decode user id from url", sl.Err(err))
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}
	serviceID, err := strconv.Atoi(chi.URLParam(r, "serviceID"))
	if err != nil {
		log.Error("failed to decode service id from url", sl.Err(err))
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	info, err := h.service.GetTarifInfo(r.Context(), userID, serviceID)
	if err != nil {
		switch {
		case errors.Is(err, tarifservice.ErrServiceNotFound):
			log.Info("service not found", slog.Int("user_id", userID), slog.Int("service_id", serviceID))
			render.JSON(w, r, response.Error("Incorrect user or service"))
		case errors.Is(err, tarifservice.ErrTarifNotFound):
			log.Info("tarif not found for service", slog.Int("service_id", serviceID))
			render.JSON(w, r, response.Error("Tarif does not exists"))
		default:
			log.Error("failed to get tarif info", sl.Err(err))
			render.JSON(w, r, response.Error("could not get tarifs"))
		}
		return
	}

	log.Info("success to get tarif info", slog.Int("tarifs_count", len(info.Tarifs)))
	render.JSON(w, r, response.OKWithTarifs(*info))
}
