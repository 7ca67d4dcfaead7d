package create_booking

import (
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// SessionRequest выбор одного сеанса
type SessionRequest struct {
	Date string           // Дата YYYY-MM-DD в часовом поясе бизнеса
	Time types.TimeString // Время начала, например "10:00"
}

// Request модель запроса на создание записи (один сеанс или серия)
type Request struct {
	ServiceID    string
	Name         string
	Phone        string
	EvaluationID *string          // Оценка для услуг с requiresEvaluation (опционально)
	Sessions     []SessionRequest // По одному на каждый сеанс услуги, по порядку
}

// Response модель ответа с созданными сеансами
type Response struct {
	ConfirmationID string  // ID первого сеанса
	SeriesID       *string // Только для многосеансовых услуг
	Bookings       []*domain.Booking
}
