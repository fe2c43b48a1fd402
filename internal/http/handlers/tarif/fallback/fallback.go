// Package fallback реализует обработчик по умолчанию для запросов,
// не попавших ни в один маршрут. Исходные версии сервиса отвечали на
// такие запросы по-разному; здесь зафиксирован один детерминированный
// вариант — конверт с ошибкой "not found" и статусом 200.
package fallback

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/tarif-service/internal/http/response"
)

// New возвращает обработчик для незнакомых маршрутов и методов.
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("unmatched request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		render.JSON(w, r, response.Error("not found"))
	}
}
