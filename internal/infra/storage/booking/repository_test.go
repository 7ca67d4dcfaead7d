package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/infra/storage/storagetest"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
)

func TestRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(storagetest.OpenSQLite(t), psqlbuilder.SQLite)

	at := time.Date(2025, 8, 15, 14, 0, 0, 0, time.UTC)
	created, err := repo.Create(ctx, &domain.Booking{
		ServiceID:       "svc-2",
		Name:            "Ana",
		Phone:           "+57 300",
		DateTime:        at,
		DurationMinutes: 75,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "svc-2", got.ServiceID)
	assert.Equal(t, 75, got.DurationMinutes)
	assert.True(t, got.DateTime.Equal(at))
	assert.Nil(t, got.SeriesID)
	assert.Nil(t, got.SessionIndex)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_ListBySeries(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(storagetest.OpenSQLite(t), psqlbuilder.SQLite)

	start := time.Date(2025, 8, 15, 14, 0, 0, 0, time.UTC)
	for _, idx := range []int{2, 1, 3} {
		_, err := repo.Create(ctx, &domain.Booking{
			ServiceID:     "svc-3",
			Name:          "Ana",
			Phone:         "1",
			DateTime:      start.AddDate(0, 0, idx),
			SeriesID:      ptr.Ptr("series-1"),
			SessionIndex:  ptr.Ptr(idx),
			TotalSessions: ptr.Ptr(3),
		})
		require.NoError(t, err)
	}

	list, err := repo.ListBySeries(ctx, "series-1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, b := range list {
		assert.Equal(t, i+1, *b.SessionIndex)
		assert.Equal(t, 3, *b.TotalSessions)
		require.NoError(t, b.ValidateSeries())
	}

	empty, err := repo.ListBySeries(ctx, "other")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRepository_ListByRange(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(storagetest.OpenSQLite(t), psqlbuilder.SQLite)

	bogota := time.FixedZone("COT", -5*3600)
	day := time.Date(2025, 8, 15, 0, 0, 0, 0, bogota)

	for _, at := range []time.Time{
		day.Add(-time.Minute),
		day,
		day.Add(23 * time.Hour),
		day.AddDate(0, 0, 1),
	} {
		_, err := repo.Create(ctx, &domain.Booking{ServiceID: "svc-1", Name: "A", Phone: "1", DateTime: at})
		require.NoError(t, err)
	}

	list, err := repo.ListByRange(ctx, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].DateTime.Equal(day))
	assert.True(t, list[1].DateTime.Equal(day.Add(23*time.Hour)))
}

func TestRepository_RollbackInTransaction(t *testing.T) {
	ctx := context.Background()
	db := storagetest.OpenSQLite(t)
	repo := NewRepository(db, psqlbuilder.SQLite)
	txm := txmanager.NewTransactionManager(db)

	at := time.Date(2025, 8, 15, 14, 0, 0, 0, time.UTC)
	err := txm.Do(ctx, func(txCtx context.Context) error {
		if _, err := repo.Create(txCtx, &domain.Booking{ServiceID: "svc-1", Name: "A", Phone: "1", DateTime: at}); err != nil {
			return err
		}
		// второй сеанс с тем же индексом нарушает уникальность серии
		b := &domain.Booking{
			ServiceID: "svc-1", Name: "A", Phone: "1", DateTime: at,
			SeriesID: ptr.Ptr("s"), SessionIndex: ptr.Ptr(1), TotalSessions: ptr.Ptr(2),
		}
		if _, err := repo.Create(txCtx, b); err != nil {
			return err
		}
		_, err := repo.Create(txCtx, b)
		return err
	})
	assert.ErrorIs(t, err, ErrExecQuery)

	list, err := repo.ListByRange(ctx, at.Add(-time.Hour), at.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, list)
}
