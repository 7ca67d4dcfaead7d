package create_evaluation

import (
	"context"
	"errors"
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

type fakeEvaluations struct {
	created []*domain.Evaluation
	err     error
}

func (f *fakeEvaluations) Create(_ context.Context, e *domain.Evaluation) (*domain.Evaluation, error) {
	if f.err != nil {
		return nil, f.err
	}
	saved := *e
	saved.ID = "ev-1"
	f.created = append(f.created, &saved)
	return &saved, nil
}

type fakeCommitments struct{ items []domain.OccupiesTime }

func (f *fakeCommitments) ForDate(context.Context, string, *time.Location) ([]domain.OccupiesTime, error) {
	return f.items, nil
}

type fakeTx struct{}

func (fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

type fakeRecorder struct{ types []string }

func (r *fakeRecorder) EvaluationCreated(t string) { r.types = append(r.types, t) }

func newTestUseCase(items ...domain.OccupiesTime) (*UseCase, *fakeEvaluations, *fakeRecorder) {
	wh := domain.WorkingHours{
		Timezone:       "UTC",
		Start:          "08:00",
		End:            "12:00",
		SlotMinutes:    30,
		WorkingDays:    []int{1, 2, 3, 4, 5, 6, 7},
		MinLeadMinutes: 60,
	}
	services := []domain.Service{{ID: "peeling", Name: "Peeling", DurationMinutes: 120, RequiresEvaluation: true}}
	cat := catalog.NewService(catalog.Business{}, wh, services, nil, logger.NewNop())

	repo := &fakeEvaluations{}
	recorder := &fakeRecorder{}
	uc := NewUseCase(cat, repo, &fakeCommitments{items: items}, fakeTx{}, recorder, logger.NewNop())
	uc.timeProvider = fixedClock{now: time.Date(2025, 8, 14, 12, 0, 0, 0, time.UTC)}
	return uc, repo, recorder
}

func TestExecute_Presencial(t *testing.T) {
	uc, repo, recorder := newTestUseCase()

	// услуга 120 минут, но оценка занимает 30: 11:30 доступно
	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: "peeling",
		Name:      "Ana",
		Phone:     "300",
		Type:      domain.EvaluationPresencial,
		Date:      "2025-08-15",
		Time:      "11:30",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Evaluation.DateTime)
	assert.True(t, resp.Evaluation.DateTime.Equal(time.Date(2025, 8, 15, 11, 30, 0, 0, time.UTC)))
	assert.Equal(t, domain.EvaluationDurationMinutes, resp.Evaluation.DurationMinutes)
	assert.Len(t, repo.created, 1)
	assert.Equal(t, []string{"presencial"}, recorder.types)
}

func TestExecute_PresencialSlotTaken(t *testing.T) {
	busy := &domain.Booking{DateTime: time.Date(2025, 8, 15, 9, 0, 0, 0, time.UTC), DurationMinutes: 60}
	uc, repo, _ := newTestUseCase(busy)

	_, err := uc.Execute(context.Background(), &Request{
		ServiceID: "peeling",
		Name:      "Ana",
		Phone:     "300",
		Type:      domain.EvaluationPresencial,
		Date:      "2025-08-15",
		Time:      "09:30",
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, repo.created)
}

func TestExecute_Online(t *testing.T) {
	uc, repo, recorder := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: "peeling",
		Name:      "Ana",
		Phone:     "300",
		Type:      domain.EvaluationOnline,
		Images:    []string{"https://img/1.jpg", "https://img/2.jpg"},
	})
	require.NoError(t, err)

	assert.Nil(t, resp.Evaluation.DateTime)
	assert.Len(t, resp.Evaluation.Images, 2)
	assert.Len(t, repo.created, 1)
	assert.Equal(t, []string{"online"}, recorder.types)
}

func TestExecute_RepositoryError(t *testing.T) {
	uc, repo, _ := newTestUseCase()
	repo.err = errors.New("db down")

	_, err := uc.Execute(context.Background(), &Request{
		ServiceID: "peeling", Name: "Ana", Phone: "300", Type: domain.EvaluationOnline,
	})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_Invalid(t *testing.T) {
	tooMany := make([]string, domain.MaxEvaluationImages+1)
	for i := range tooMany {
		tooMany[i] = "img"
	}

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{name: "unknown type", req: &Request{ServiceID: "peeling", Name: "Ana", Phone: "1", Type: "video"}, wantErr: ErrInvalidInput},
		{name: "presencial without time", req: &Request{ServiceID: "peeling", Name: "Ana", Phone: "1", Type: domain.EvaluationPresencial, Date: "2025-08-15"}, wantErr: ErrInvalidInput},
		{name: "online with date", req: &Request{ServiceID: "peeling", Name: "Ana", Phone: "1", Type: domain.EvaluationOnline, Date: "2025-08-15"}, wantErr: ErrInvalidInput},
		{name: "too many images", req: &Request{ServiceID: "peeling", Name: "Ana", Phone: "1", Type: domain.EvaluationOnline, Images: tooMany}, wantErr: ErrInvalidInput},
		{name: "bad date", req: &Request{ServiceID: "peeling", Name: "Ana", Phone: "1", Type: domain.EvaluationPresencial, Date: "2025/08/15", Time: "10:00"}, wantErr: ErrInvalidInput},
		{name: "no name", req: &Request{ServiceID: "peeling", Phone: "1", Type: domain.EvaluationOnline}, wantErr: ErrInvalidInput},
		{name: "unknown service", req: &Request{ServiceID: "nope", Name: "Ana", Phone: "1", Type: domain.EvaluationOnline}, wantErr: ErrServiceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _ := newTestUseCase()
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
