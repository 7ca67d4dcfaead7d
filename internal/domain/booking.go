package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidSeries возвращается, когда поля серии заполнены не согласованно
var ErrInvalidSeries = errors.New("domain: invalid series linkage")

// Booking запись клиента на услугу.
// Сеансы одной многосеансовой покупки связаны общим SeriesID.
type Booking struct {
	ID              string
	ServiceID       string
	Name            string
	Phone           string
	DateTime        time.Time
	DurationMinutes int // 0 = длительность услуги

	SeriesID      *string
	SessionIndex  *int // 1-based
	TotalSessions *int

	CreatedAt time.Time
}

// Occupancy implements OccupiesTime
func (b *Booking) Occupancy() (Occupancy, bool) {
	if b == nil || b.DateTime.IsZero() {
		return Occupancy{}, false
	}
	return Occupancy{Start: b.DateTime, DurationMinutes: b.DurationMinutes}, true
}

// IsSeries true, если бронирование является сеансом серии
func (b *Booking) IsSeries() bool {
	return b.SeriesID != nil
}

// ValidateSeries проверяет связку серии: при заданном SeriesID
// должны быть заданы SessionIndex и TotalSessions, 1 <= index <= total
func (b *Booking) ValidateSeries() error {
	if b.SeriesID == nil {
		if b.SessionIndex != nil || b.TotalSessions != nil {
			return fmt.Errorf("%w: session fields without seriesId", ErrInvalidSeries)
		}
		return nil
	}
	if *b.SeriesID == "" {
		return fmt.Errorf("%w: empty seriesId", ErrInvalidSeries)
	}
	if b.SessionIndex == nil || b.TotalSessions == nil {
		return fmt.Errorf("%w: seriesId without sessionIndex/totalSessions", ErrInvalidSeries)
	}
	if *b.SessionIndex < 1 || *b.SessionIndex > *b.TotalSessions {
		return fmt.Errorf("%w: sessionIndex %d out of 1..%d", ErrInvalidSeries, *b.SessionIndex, *b.TotalSessions)
	}
	return nil
}
