// Package update реализует HTTP-обработчик перевода услуги на другой тариф.
package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/tarif-service/internal/http/response"
	"github.com/magabrotheeeer/tarif-service/internal/lib/sl"
	"github.com/magabrotheeeer/tarif-service/internal/models"
	tarifservice "github.com/magabrotheeeer/tarif-service/internal/services/tarif"
)

// Handler обрабатывает запросы на смену тарифа услуги.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики смены тарифа.
type Service interface {
	UpdateUserService(ctx context.Context, userID, serviceID, tarifID int) error
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.update.ServeHTTP"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyUpdate
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.JSON(w, r, response.Error("failed to decode request"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

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

	if err := h.service.UpdateUserService(r.Context(), userID, serviceID, req.TarifID); err != nil {
		switch {
		case errors.Is(err, tarifservice.ErrServiceNotFound):
			log.Info("service not found", slog.Int("user_id", userID), slog.Int("service_id", serviceID))
			render.JSON(w, r, response.Error("Incorrect service"))
		case errors.Is(err, tarifservice.ErrTarifNotFound):
			log.Info("target tarif not found", slog.Int("tarif_id", req.TarifID))
			render.JSON(w, r, response.Error("Incorrect tarif"))
		default:
			log.Error("failed to update service", sl.Err(err))
			render.JSON(w, r, response.Error("Error on updating service"))
		}
		return
	}

	log.Info("success to update service tarif",
		slog.Int("service_id", serviceID), slog.Int("tarif_id", req.TarifID))
	render.JSON(w, r, response.OK())
}
