// Package tarifservice предоставляет маршруты приложения.
package tarifservice

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/tarif-service/internal/http/handlers/tarif/fallback"
	"github.com/magabrotheeeer/tarif-service/internal/http/handlers/tarif/get"
	"github.com/magabrotheeeer/tarif-service/internal/http/handlers/tarif/update"
	"github.com/magabrotheeeer/tarif-service/internal/http/middlewarectx"
	tarifsvc "github.com/magabrotheeeer/tarif-service/internal/services/tarif"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, tarifService *tarifsvc.TarifService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	getHandler := get.New(logger, tarifService)
	updateHandler := update.New(logger, tarifService)

	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, rate.Limit(50), 100))

		// Исторический маршрут допускает хвостовой сегмент /tarifs
		r.Route("/users/{userID}/services/{serviceID}", func(r chi.Router) {
			r.Get("/", getHandler.ServeHTTP)
			r.Get("/tarifs", getHandler.ServeHTTP)
			r.Put("/", updateHandler.ServeHTTP)
			r.Put("/tarifs", updateHandler.ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	// Для остальных маршрутов отдаётся детерминированный ответ по умолчанию
	defaultHandler := fallback.New(logger)
	r.NotFound(defaultHandler)
	r.MethodNotAllowed(defaultHandler)
}
