package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type fakeStore struct {
	created []*domain.Booking
	failAt  int
	calls   int
}

func (s *fakeStore) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	s.calls++
	if s.calls == s.failAt {
		return nil, errors.New("insert failed")
	}
	saved := *b
	saved.ID = fmt.Sprintf("bk-%d", s.calls)
	s.created = append(s.created, &saved)
	return &saved, nil
}

func allWeekHours() domain.WorkingHours {
	return domain.WorkingHours{
		Timezone:       "UTC",
		Start:          "08:00",
		End:            "17:00",
		SlotMinutes:    30,
		WorkingDays:    []int{1, 2, 3, 4, 5, 6, 7},
		MinLeadMinutes: 29,
	}
}

func at(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func booking(dt string, minutes int) *domain.Booking {
	return &domain.Booking{ID: "bk-" + dt, DateTime: at(dt), DurationMinutes: minutes}
}
