package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/catalog"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeCommitments struct {
	items []domain.OccupiesTime
	dates []string
}

func (f *fakeCommitments) ForDate(_ context.Context, dateISO string, _ *time.Location) ([]domain.OccupiesTime, error) {
	f.dates = append(f.dates, dateISO)
	return f.items, nil
}

type fakeRecorder struct {
	purpose string
	count   int
}

func (r *fakeRecorder) SlotsOffered(purpose string, count int) {
	r.purpose = purpose
	r.count = count
}

func newTestUseCase(items []domain.OccupiesTime) (*UseCase, *fakeCommitments, *fakeRecorder) {
	wh := domain.WorkingHours{
		Timezone:       "UTC",
		Start:          "08:00",
		End:            "12:00",
		SlotMinutes:    30,
		WorkingDays:    []int{1, 2, 3, 4, 5, 6, 7},
		MinLeadMinutes: 60,
	}
	services := []domain.Service{
		{ID: "facial", Name: "Limpieza facial", DurationMinutes: 90, SessionsCount: 1},
	}
	cat := catalog.NewService(catalog.Business{Name: "Test"}, wh, services, nil, logger.NewNop())
	commitments := &fakeCommitments{items: items}
	recorder := &fakeRecorder{}

	uc := NewUseCase(cat, commitments, recorder, logger.NewNop())
	uc.timeProvider = fixedClock{now: time.Date(2025, 8, 14, 12, 0, 0, 0, time.UTC)}
	return uc, commitments, recorder
}

func TestExecute_BookingPurpose(t *testing.T) {
	busy := &domain.Booking{DateTime: time.Date(2025, 8, 15, 9, 0, 0, 0, time.UTC), DurationMinutes: 60}
	uc, commitments, recorder := newTestUseCase([]domain.OccupiesTime{busy})

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: "facial", Date: "2025-08-15"})
	require.NoError(t, err)

	// 90 минут пересекают занятый час вплоть до 09:30 и должны закончиться к 12:00
	assert.Equal(t, []string{"10:00", "10:30"}, resp.Slots)
	assert.Equal(t, PurposeBooking, resp.Purpose)
	assert.Equal(t, 90, resp.DurationMinutes)
	assert.Equal(t, []string{"2025-08-15"}, commitments.dates)
	assert.Equal(t, "booking", recorder.purpose)
	assert.Equal(t, 2, recorder.count)
}

func TestExecute_EvaluationPurposeUsesFixedDuration(t *testing.T) {
	uc, _, recorder := newTestUseCase(nil)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: "facial", Date: "2025-08-15", Purpose: PurposeEvaluation})
	require.NoError(t, err)

	assert.Equal(t, domain.EvaluationDurationMinutes, resp.DurationMinutes)
	assert.Len(t, resp.Slots, 8)
	assert.Equal(t, "11:30", resp.Slots[len(resp.Slots)-1])
	assert.Equal(t, "evaluation", recorder.purpose)
}

func TestExecute_LeadTimeToday(t *testing.T) {
	uc, _, _ := newTestUseCase(nil)
	uc.timeProvider = fixedClock{now: time.Date(2025, 8, 15, 8, 40, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: "facial", Date: "2025-08-15", Purpose: PurposeEvaluation})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "10:00", resp.Slots[0])
}

func TestExecute_Errors(t *testing.T) {
	uc, _, _ := newTestUseCase(nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{name: "empty service", req: &Request{Date: "2025-08-15"}, wantErr: ErrInvalidInput},
		{name: "empty date", req: &Request{ServiceID: "facial"}, wantErr: ErrInvalidInput},
		{name: "bad purpose", req: &Request{ServiceID: "facial", Date: "2025-08-15", Purpose: "other"}, wantErr: ErrInvalidInput},
		{name: "bad date", req: &Request{ServiceID: "facial", Date: "15/08/2025"}, wantErr: ErrInvalidDate},
		{name: "unknown service", req: &Request{ServiceID: "nope", Date: "2025-08-15"}, wantErr: ErrServiceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
