package commitments

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListByRange(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
}

// EvaluationRepository интерфейс репозитория оценок
type EvaluationRepository interface {
	ListPresencialByRange(ctx context.Context, from, to time.Time) ([]*domain.Evaluation, error)
}

// Loader собирает все занятости календаря на дату: бронирования и очные оценки
type Loader struct {
	bookingRepo    BookingRepository
	evaluationRepo EvaluationRepository
}

// NewLoader создает загрузчик занятостей
func NewLoader(bookingRepo BookingRepository, evaluationRepo EvaluationRepository) *Loader {
	return &Loader{bookingRepo: bookingRepo, evaluationRepo: evaluationRepo}
}

// ForDate занятости, начинающиеся в календарный день dateISO зоны loc
func (l *Loader) ForDate(ctx context.Context, dateISO string, loc *time.Location) ([]domain.OccupiesTime, error) {
	from, err := scheduling.ParseISODate(dateISO, loc)
	if err != nil {
		return nil, err
	}
	to := from.AddDate(0, 0, 1)

	bookings, err := l.bookingRepo.ListByRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list bookings %s: %w", dateISO, err)
	}
	evaluations, err := l.evaluationRepo.ListPresencialByRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list evaluations %s: %w", dateISO, err)
	}

	out := make([]domain.OccupiesTime, 0, len(bookings)+len(evaluations))
	for _, b := range bookings {
		out = append(out, b)
	}
	for _, e := range evaluations {
		out = append(out, e)
	}
	return out, nil
}

// ForDates занятости на несколько дат, повторяющиеся даты загружаются один раз
func (l *Loader) ForDates(ctx context.Context, dates []string, loc *time.Location) ([]domain.OccupiesTime, error) {
	seen := make(map[string]struct{}, len(dates))
	var out []domain.OccupiesTime
	for _, d := range dates {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}

		items, err := l.ForDate(ctx, d, loc)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}
