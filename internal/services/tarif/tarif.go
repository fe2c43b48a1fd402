// Package tarif содержит бизнес-логику чтения тарифов услуги
// и перевода услуги на другой тариф.
package tarif

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/tarif-service/internal/lib/payday"
	"github.com/magabrotheeeer/tarif-service/internal/models"
	"github.com/magabrotheeeer/tarif-service/internal/storage/repository"
)

// Ошибки бизнес-логики. Обработчики переводят их в сообщения конверта
// ответа, тексты которых зафиксированы для совместимости с клиентами.
var (
	// ErrServiceNotFound — пары (пользователь, услуга) нет в базе.
	ErrServiceNotFound = errors.New("service not found for user")
	// ErrTarifNotFound — тариф с запрошенным идентификатором не существует.
	ErrTarifNotFound = errors.New("tarif not found")
	// ErrUpdateFailed — запись услуги не обновилась.
	ErrUpdateFailed = errors.New("service update failed")
)

// tarifGroupCacheTTL ограничивает жизнь закешированного списка группы:
// тарифы меняются редко, но админка может их редактировать мимо сервиса.
const tarifGroupCacheTTL = time.Hour

// TarifRepository определяет методы хранилища, нужные бизнес-логике.
type TarifRepository interface {
	// GetServiceForUser возвращает услугу пользователя или repository.ErrNotFound.
	GetServiceForUser(ctx context.Context, userID, serviceID int) (*models.Service, error)
	// GetTarifByID возвращает тариф или repository.ErrNotFound.
	GetTarifByID(ctx context.Context, tarifID int) (*models.Tarif, error)
	// ListTarifsByGroup возвращает все тарифы группы.
	ListTarifsByGroup(ctx context.Context, groupID int) ([]models.Tarif, error)
	// UpdateUserService ставит услуге новый тариф и дату платежа.
	UpdateUserService(ctx context.Context, serviceID, tarifID int, payday time.Time) (int, error)
}

// Cache описывает методы для кеширования списков тарифов.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// TarifService реализует операции над тарифами услуг.
type TarifService struct {
	repo  TarifRepository
	cache Cache
	log   *slog.Logger
}

// NewTarifService создает новый экземпляр TarifService.
func NewTarifService(repo TarifRepository, cache Cache, log *slog.Logger) *TarifService {
	return &TarifService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// GetTarifInfo возвращает текущий тариф услуги пользователя и все тарифы
// той же группы с рассчитанными датами следующего платежа.
func (s *TarifService) GetTarifInfo(ctx context.Context, userID, serviceID int) (*models.TarifInfo, error) {
	service, err := s.repo.GetServiceForUser(ctx, userID, serviceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	current, err := s.repo.GetTarifByID(ctx, service.TarifID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTarifNotFound
		}
		return nil, err
	}

	group, err := s.listGroup(ctx, current.TarifGroupID)
	if err != nil {
		return nil, err
	}

	// new_payday зависит от сегодняшней даты, поэтому форматирование
	// выполняется на каждый запрос, кешируются только сырые тарифы.
	now := time.Now()
	formatted := make([]models.FormattedTarif, 0, len(group))
	for _, t := range group {
		formatted = append(formatted, models.FormattedTarif{
			ID:        t.ID,
			Title:     t.Title,
			Price:     t.Price,
			PayPeriod: t.PayPeriod,
			NewPayday: payday.Stamp(payday.Build(now, t.PayPeriod)),
		})
	}

	return &models.TarifInfo{
		Title:  current.Title,
		Link:   current.Link,
		Speed:  current.Speed,
		Tarifs: formatted,
	}, nil
}

// UpdateUserService переводит услугу пользователя на тариф tarifID и
// сохраняет рассчитанную дату следующего платежа.
func (s *TarifService) UpdateUserService(ctx context.Context, userID, serviceID, tarifID int) error {
	service, err := s.repo.GetServiceForUser(ctx, userID, serviceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrServiceNotFound
		}
		return err
	}

	target, err := s.repo.GetTarifByID(ctx, tarifID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTarifNotFound
		}
		return err
	}

	newPayday := payday.Build(time.Now(), target.PayPeriod)
	rows, err := s.repo.UpdateUserService(ctx, service.ID, target.ID, newPayday)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUpdateFailed, err)
	}
	if rows == 0 {
		return ErrUpdateFailed
	}

	s.log.Info("service switched to new tarif",
		slog.Int("service_id", service.ID),
		slog.Int("tarif_id", target.ID),
		slog.Time("payday", newPayday))
	return nil
}

// listGroup возвращает тарифы группы, заглядывая сначала в кеш.
// Ошибки кеша не фатальны, данные всегда можно взять из базы.
func (s *TarifService) listGroup(ctx context.Context, groupID int) ([]models.Tarif, error) {
	cacheKey := fmt.Sprintf("tarifgroup:%d", groupID)

	var cached []models.Tarif
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read tarif group from cache",
			slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return cached, nil
	}

	group, err := s.repo.ListTarifsByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, group, tarifGroupCacheTTL); err != nil {
		s.log.Warn("failed to cache tarif group",
			slog.String("key", cacheKey), slog.Any("err", err))
	}
	return group, nil
}
