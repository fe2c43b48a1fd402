package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/magabrotheeeer/tarif-service/internal/models"
)

// GetServiceForUser возвращает услугу, принадлежащую пользователю.
// Если пары (userID, serviceID) нет — ErrNotFound.
func (s *Storage) GetServiceForUser(ctx context.Context, userID, serviceID int) (*models.Service, error) {
	const op = "storage.GetServiceForUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, tarif_id, payday
			  FROM services
			  WHERE user_id = $1 AND id = $2`
	row := s.DB.QueryRowContext(ctx, query, userID, serviceID)

	var result models.Service
	if err := row.Scan(&result.ID, &result.UserID, &result.TarifID, &result.Payday); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// GetTarifByID возвращает тариф по идентификатору или ErrNotFound.
func (s *Storage) GetTarifByID(ctx context.Context, tarifID int) (*models.Tarif, error) {
	const op = "storage.GetTarifByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, link, speed, price, pay_period, tarif_group_id
			  FROM tarifs
			  WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, tarifID)

	var result models.Tarif
	if err := row.Scan(&result.ID, &result.Title, &result.Link, &result.Speed,
		&result.Price, &result.PayPeriod, &result.TarifGroupID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListTarifsByGroup возвращает все тарифы группы. Пустая группа — пустой
// список, не ошибка.
func (s *Storage) ListTarifsByGroup(ctx context.Context, groupID int) ([]models.Tarif, error) {
	const op = "storage.ListTarifsByGroup"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, link, speed, price, pay_period, tarif_group_id
			  FROM tarifs
			  WHERE tarif_group_id = $1
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.Tarif, 0)
	for rows.Next() {
		var item models.Tarif
		if err := rows.Scan(&item.ID, &item.Title, &item.Link, &item.Speed,
			&item.Price, &item.PayPeriod, &item.TarifGroupID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateUserService устанавливает услуге новый тариф и дату платежа,
// возвращает количество изменённых строк.
func (s *Storage) UpdateUserService(ctx context.Context, serviceID, tarifID int, payday time.Time) (int, error) {
	const op = "storage.UpdateUserService"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE services
			  SET payday = $1, tarif_id = $2
			  WHERE id = $3`
	result, err := s.DB.ExecContext(ctx, query, payday, tarifID, serviceID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
