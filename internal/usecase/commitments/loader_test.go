package commitments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling"
)

type fakeBookings struct {
	calls []time.Time
	err   error
}

func (f *fakeBookings) ListByRange(_ context.Context, from, to time.Time) ([]*domain.Booking, error) {
	f.calls = append(f.calls, from)
	if f.err != nil {
		return nil, f.err
	}
	return []*domain.Booking{{ID: "bk", DateTime: from.Add(9 * time.Hour)}}, nil
}

type fakeEvaluations struct{}

func (fakeEvaluations) ListPresencialByRange(_ context.Context, from, _ time.Time) ([]*domain.Evaluation, error) {
	at := from.Add(10 * time.Hour)
	return []*domain.Evaluation{{ID: "ev", Type: domain.EvaluationPresencial, DateTime: &at}}, nil
}

func TestLoader_ForDate(t *testing.T) {
	bookings := &fakeBookings{}
	loader := NewLoader(bookings, fakeEvaluations{})
	loc := time.FixedZone("COT", -5*3600)

	items, err := loader.ForDate(context.Background(), "2025-08-15", loc)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, time.Date(2025, 8, 15, 0, 0, 0, 0, loc), bookings.calls[0])

	_, err = loader.ForDate(context.Background(), "15-08-2025", loc)
	assert.ErrorIs(t, err, scheduling.ErrMalformedDate)
}

func TestLoader_ForDatesDeduplicates(t *testing.T) {
	bookings := &fakeBookings{}
	loader := NewLoader(bookings, fakeEvaluations{})

	items, err := loader.ForDates(context.Background(), []string{"2025-08-15", "2025-08-15", "2025-08-16"}, time.UTC)
	require.NoError(t, err)
	assert.Len(t, items, 4)
	assert.Len(t, bookings.calls, 2)
}

func TestLoader_Error(t *testing.T) {
	loader := NewLoader(&fakeBookings{err: errors.New("db down")}, fakeEvaluations{})
	_, err := loader.ForDate(context.Background(), "2025-08-15", time.UTC)
	assert.Error(t, err)
}
