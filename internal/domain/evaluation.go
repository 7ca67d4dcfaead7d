package domain

import "time"

// EvaluationType тип оценки перед услугой
type EvaluationType string

const (
	// EvaluationOnline асинхронная оценка по фотографиям, время не занимает
	EvaluationOnline EvaluationType = "online"
	// EvaluationPresencial очная оценка, занимает слот как бронирование
	EvaluationPresencial EvaluationType = "presencial"
)

// IsValid проверяет тип оценки
func (t EvaluationType) IsValid() bool {
	return t == EvaluationOnline || t == EvaluationPresencial
}

// Evaluation заявка на оценку перед услугой
type Evaluation struct {
	ID              string
	ServiceID       string
	Name            string
	Phone           string
	Type            EvaluationType
	DateTime        *time.Time // только для presencial
	DurationMinutes int
	Images          []string
	CreatedAt       time.Time
}

// Occupancy implements OccupiesTime. Онлайн-оценка время не занимает.
func (e *Evaluation) Occupancy() (Occupancy, bool) {
	if e == nil || e.Type != EvaluationPresencial || e.DateTime == nil {
		return Occupancy{}, false
	}
	d := e.DurationMinutes
	if d <= 0 {
		d = EvaluationDurationMinutes
	}
	return Occupancy{Start: *e.DateTime, DurationMinutes: d}, true
}
