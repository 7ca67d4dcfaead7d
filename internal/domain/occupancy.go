package domain

import "time"

// Occupancy занятый интервал [Start, Start+DurationMinutes).
// DurationMinutes == 0 означает "неизвестно", используется значение по умолчанию.
type Occupancy struct {
	Start           time.Time
	DurationMinutes int
}

// OccupiesTime любая сущность, занимающая время в расписании:
// бронирование, очная оценка или временный выбор в мастере серии
type OccupiesTime interface {
	Occupancy() (Occupancy, bool)
}

// SessionPick выбор даты и слота для одного сеанса серии (не сохраняется)
type SessionPick struct {
	DateISO string
	Slot    string
}

// IsComplete true, если заданы и дата, и слот
func (p SessionPick) IsComplete() bool {
	return p.DateISO != "" && p.Slot != ""
}
