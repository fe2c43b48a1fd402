package tarifservice

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/tarif-service/internal/models"
	tarifsvc "github.com/magabrotheeeer/tarif-service/internal/services/tarif"
	"github.com/magabrotheeeer/tarif-service/internal/storage/repository"
)

// stubRepository отдаёт фиксированные данные для маршрутных тестов
type stubRepository struct{}

func (stubRepository) GetServiceForUser(_ context.Context, userID, serviceID int) (*models.Service, error) {
	if userID != 1 || serviceID != 2 {
		return nil, repository.ErrNotFound
	}
	return &models.Service{ID: 2, UserID: 1, TarifID: 10}, nil
}

func (stubRepository) GetTarifByID(_ context.Context, tarifID int) (*models.Tarif, error) {
	if tarifID != 10 {
		return nil, repository.ErrNotFound
	}
	return &models.Tarif{ID: 10, Title: "Базовый 100", PayPeriod: 1, TarifGroupID: 7}, nil
}

func (stubRepository) ListTarifsByGroup(_ context.Context, _ int) ([]models.Tarif, error) {
	return []models.Tarif{{ID: 10, Title: "Базовый 100", PayPeriod: 1, TarifGroupID: 7}}, nil
}

func (stubRepository) UpdateUserService(_ context.Context, _, _ int, _ time.Time) (int, error) {
	return 1, nil
}

// stubCache всегда промахивается
type stubCache struct{}

func (stubCache) Get(_ string, _ any) (bool, error)          { return false, nil }
func (stubCache) Set(_ string, _ any, _ time.Duration) error { return nil }
func (stubCache) Invalidate(_ string) error                  { return nil }

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	service := tarifsvc.NewTarifService(stubRepository{}, stubCache{}, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, service)
	return router
}

func TestRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name         string
		method       string
		path         string
		expectedBody string
	}{
		{
			name:         "чтение тарифов",
			method:       http.MethodGet,
			path:         "/users/1/services/2",
			expectedBody: `"result":"ok"`,
		},
		{
			name:         "чтение тарифов с хвостовым /tarifs",
			method:       http.MethodGet,
			path:         "/users/1/services/2/tarifs",
			expectedBody: `"result":"ok"`,
		},
		{
			name:         "чужая услуга",
			method:       http.MethodGet,
			path:         "/users/5/services/2",
			expectedBody: `"message":"Incorrect user or service"`,
		},
		{
			name:         "незнакомый маршрут",
			method:       http.MethodGet,
			path:         "/health/deep",
			expectedBody: `"message":"not found"`,
		},
		{
			name:         "неподдерживаемый метод",
			method:       http.MethodDelete,
			path:         "/users/1/services/2",
			expectedBody: `"message":"not found"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestRoutes_Metrics(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
