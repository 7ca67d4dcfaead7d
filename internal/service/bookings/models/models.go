package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// BookingResponse ответ с данными бронирования.
// Дата и время в зоне бизнеса.
type BookingResponse struct {
	ID              string           `json:"id"`
	ServiceID       string           `json:"serviceId"`
	Name            string           `json:"name"`
	Phone           string           `json:"phone"`
	DateTime        string           `json:"dateTime"` // RFC3339
	Date            string           `json:"date"`     // "2025-08-15"
	StartTime       types.TimeString `json:"startTime"`
	EndTime         types.TimeString `json:"endTime,omitempty"`
	DurationMinutes int              `json:"durationMinutes"`
	SeriesID        *string          `json:"seriesId,omitempty"`
	SessionIndex    *int             `json:"sessionIndex,omitempty"`
	TotalSessions   *int             `json:"totalSessions,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// ConfirmationResponse бронирование и, для серии, все ее сеансы
type ConfirmationResponse struct {
	Booking BookingResponse   `json:"booking"`
	Series  []BookingResponse `json:"series,omitempty"`
}

// SeriesResponse все сеансы серии по порядку
type SeriesResponse struct {
	SeriesID      string            `json:"seriesId"`
	TotalSessions int               `json:"totalSessions"`
	Complete      bool              `json:"complete"`
	Sessions      []BookingResponse `json:"sessions"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking, loc *time.Location) *BookingResponse {
	if b == nil {
		return nil
	}

	local := b.DateTime.In(loc)
	start := types.NewTimeString(local)
	resp := &BookingResponse{
		ID:              b.ID,
		ServiceID:       b.ServiceID,
		Name:            b.Name,
		Phone:           b.Phone,
		DateTime:        local.Format(time.RFC3339),
		Date:            local.Format(domain.DateFormat),
		StartTime:       start,
		DurationMinutes: b.DurationMinutes,
		SeriesID:        b.SeriesID,
		SessionIndex:    b.SessionIndex,
		TotalSessions:   b.TotalSessions,
		CreatedAt:       b.CreatedAt,
	}

	// Если услуга выходит за полночь, конец не указываем
	if end, err := start.AddMinutes(b.DurationMinutes); err == nil {
		resp.EndTime = end
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, loc *time.Location) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		if r := FromDomainBooking(b, loc); r != nil {
			resp = append(resp, *r)
		}
	}
	return resp
}
