package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// SessionRequest выбор одного сеанса
type SessionRequest struct {
	Date string           `json:"date"` // "2025-08-15"
	Time types.TimeString `json:"time"` // "10:00"
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID    string           `json:"serviceId"`
	Name         string           `json:"name"`
	Phone        string           `json:"phone"`
	EvaluationID *string          `json:"evaluationId,omitempty"`
	Sessions     []SessionRequest `json:"sessions"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	ConfirmationID string                   `json:"confirmationId"`
	SeriesID       *string                  `json:"seriesId,omitempty"`
	Bookings       []models.BookingResponse `json:"bookings"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	sessions := make([]createBooking.SessionRequest, len(r.Sessions))
	for i, s := range r.Sessions {
		sessions[i] = createBooking.SessionRequest{Date: s.Date, Time: s.Time}
	}

	return &createBooking.Request{
		ServiceID:    r.ServiceID,
		Name:         r.Name,
		Phone:        r.Phone,
		EvaluationID: r.EvaluationID,
		Sessions:     sessions,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response, loc *time.Location) *CreateBookingResponse {
	return &CreateBookingResponse{
		ConfirmationID: resp.ConfirmationID,
		SeriesID:       resp.SeriesID,
		Bookings:       models.FromDomainBookingList(resp.Bookings, loc),
	}
}
