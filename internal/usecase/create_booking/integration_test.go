package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	evaluationRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/evaluation"
	"github.com/m04kA/SMC-SchedulingService/internal/infra/storage/storagetest"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling"
	"github.com/m04kA/SMC-SchedulingService/internal/service/catalog"
	"github.com/m04kA/SMC-SchedulingService/internal/usecase/commitments"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
)

// failingCreator пропускает вставки в репозиторий и падает на вызове failAt
type failingCreator struct {
	BookingRepository
	failAt int
	calls  int
}

func (f *failingCreator) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.calls++
	if f.calls == f.failAt {
		return nil, errors.New("disk full")
	}
	return f.BookingRepository.Create(ctx, b)
}

func newSQLiteUseCase(t *testing.T, creator func(BookingRepository) BookingRepository) (*UseCase, *bookingRepo.Repository) {
	t.Helper()

	db := storagetest.OpenSQLite(t)
	bookings := bookingRepo.NewRepository(db, psqlbuilder.SQLite)
	evaluations := evaluationRepo.NewRepository(db, psqlbuilder.SQLite)
	services := []domain.Service{{ID: "series", Name: "Drenaje", DurationMinutes: 60, SessionsCount: 3}}
	cat := catalog.NewService(catalog.Business{}, testWorkingHours(), services, nil, logger.NewNop())

	var repo BookingRepository = bookings
	if creator != nil {
		repo = creator(bookings)
	}

	uc := NewUseCase(
		cat,
		repo,
		evaluations,
		commitments.NewLoader(bookings, evaluations),
		txmanager.NewTransactionManager(db),
		&fakeRecorder{},
		logger.NewNop(),
	)
	uc.timeProvider = fixedClock{now: time.Date(2025, 8, 14, 12, 0, 0, 0, time.UTC)}
	return uc, bookings
}

func seriesRequest() *Request {
	return request("series",
		session("2025-08-15", "10:00"),
		session("2025-08-16", "10:00"),
		session("2025-08-17", "10:00"),
	)
}

func TestSQLite_SeriesPersisted(t *testing.T) {
	ctx := context.Background()
	uc, bookings := newSQLiteUseCase(t, nil)

	resp, err := uc.Execute(ctx, seriesRequest())
	require.NoError(t, err)

	stored, err := bookings.ListBySeries(ctx, *resp.SeriesID)
	require.NoError(t, err)
	require.Len(t, stored, 3)
	assert.Equal(t, resp.ConfirmationID, stored[0].ID)

	// те же слоты уже заняты
	_, err = uc.Execute(ctx, seriesRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestSQLite_PartialSeriesRolledBack(t *testing.T) {
	ctx := context.Background()
	uc, bookings := newSQLiteUseCase(t, func(r BookingRepository) BookingRepository {
		return &failingCreator{BookingRepository: r, failAt: 3}
	})

	_, err := uc.Execute(ctx, seriesRequest())
	require.ErrorIs(t, err, ErrInternal)

	var partial *scheduling.PartialSeriesError
	require.ErrorAs(t, err, &partial)
	assert.Len(t, partial.Created, 2)

	stored, err := bookings.ListByRange(ctx,
		time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 8, 18, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, stored)
}
