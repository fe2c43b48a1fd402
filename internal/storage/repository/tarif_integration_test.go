package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/tarif-service/internal/lib/payday"
)

func TestStorage_GetServiceForUser(t *testing.T) {
	paydayDate := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		userID    int
		wantFound bool
		setup     func(t *testing.T, factory *TestDataFactory) int
	}{
		{
			name:      "successful get service for its owner",
			userID:    42,
			wantFound: true,
			setup: func(t *testing.T, factory *TestDataFactory) int {
				tarifID := factory.CreateTarif(t, "Базовый 100", "https://example.com/t/1", "100 Mbit/s", 50000, 1, 7)
				return factory.CreateService(t, 42, tarifID, paydayDate)
			},
		},
		{
			name:      "service of another user is not visible",
			userID:    99,
			wantFound: false,
			setup: func(t *testing.T, factory *TestDataFactory) int {
				tarifID := factory.CreateTarif(t, "Базовый 100", "https://example.com/t/1", "100 Mbit/s", 50000, 1, 7)
				return factory.CreateService(t, 42, tarifID, paydayDate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			factory := NewTestDataFactory(storage)
			serviceID := tt.setup(t, factory)

			got, err := storage.GetServiceForUser(context.Background(), tt.userID, serviceID)

			if tt.wantFound {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, serviceID, got.ID)
				assert.Equal(t, tt.userID, got.UserID)
			} else {
				require.ErrorIs(t, err, ErrNotFound)
				assert.Nil(t, got)
			}
		})
	}
}

func TestStorage_GetTarifByID(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	tarifID := factory.CreateTarif(t, "Турбо 500", "https://example.com/t/3", "500 Mbit/s", 90000, 3, 7)

	got, err := storage.GetTarifByID(context.Background(), tarifID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Турбо 500", got.Title)
	assert.Equal(t, "https://example.com/t/3", got.Link)
	assert.Equal(t, "500 Mbit/s", got.Speed)
	assert.Equal(t, 90000, got.Price)
	assert.Equal(t, 3, got.PayPeriod)
	assert.Equal(t, 7, got.TarifGroupID)

	missing, err := storage.GetTarifByID(context.Background(), tarifID+1000)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, missing)
}

func TestStorage_ListTarifsByGroup(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	factory.CreateTarif(t, "Базовый 100", "", "100 Mbit/s", 50000, 1, 7)
	factory.CreateTarif(t, "Оптимальный 300", "", "300 Mbit/s", 70000, 1, 7)
	factory.CreateTarif(t, "Турбо 500", "", "500 Mbit/s", 90000, 3, 7)
	factory.CreateTarif(t, "Чужая группа", "", "50 Mbit/s", 30000, 1, 8)

	got, err := storage.ListTarifsByGroup(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	for _, tarif := range got {
		assert.Equal(t, 7, tarif.TarifGroupID)
	}

	empty, err := storage.ListTarifsByGroup(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStorage_UpdateUserService(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	oldTarif := factory.CreateTarif(t, "Базовый 100", "", "100 Mbit/s", 50000, 1, 7)
	newTarif := factory.CreateTarif(t, "Оптимальный 300", "", "300 Mbit/s", 70000, 1, 7)
	serviceID := factory.CreateService(t, 42, oldTarif, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))

	// 31 января + 1 месяц должно прижаться к 29 февраля
	newPayday := payday.Build(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), 1)

	rows, err := storage.UpdateUserService(context.Background(), serviceID, newTarif, newPayday)
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	var gotTarifID int
	var gotPayday time.Time
	err = storage.DB.QueryRow("SELECT tarif_id, payday FROM services WHERE id = $1", serviceID).
		Scan(&gotTarifID, &gotPayday)
	require.NoError(t, err)
	assert.Equal(t, newTarif, gotTarifID)
	assert.Equal(t, 2024, gotPayday.Year())
	assert.Equal(t, time.February, gotPayday.Month())
	assert.Equal(t, 29, gotPayday.Day())
}

func TestStorage_UpdateUserService_NoSuchService(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	tarifID := factory.CreateTarif(t, "Базовый 100", "", "100 Mbit/s", 50000, 1, 7)

	rows, err := storage.UpdateUserService(context.Background(), 12345, tarifID,
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, rows)
}

func TestStorage_ContextCancelled(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := storage.GetTarifByID(ctx, 1)
	require.Error(t, err)
}
