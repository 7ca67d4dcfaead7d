package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// EvaluationResponse ответ с данными заявки на оценку
type EvaluationResponse struct {
	ID              string    `json:"id"`
	ServiceID       string    `json:"serviceId"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	EvaluationType  string    `json:"evaluationType"`
	DateTime        *string   `json:"dateTime,omitempty"` // RFC3339, только presencial
	DurationMinutes int       `json:"durationMinutes"`
	Images          []string  `json:"images"`
	CreatedAt       time.Time `json:"createdAt"`
}

// FromDomainEvaluation конвертирует domain модель в DTO
func FromDomainEvaluation(e *domain.Evaluation, loc *time.Location) *EvaluationResponse {
	if e == nil {
		return nil
	}

	resp := &EvaluationResponse{
		ID:              e.ID,
		ServiceID:       e.ServiceID,
		Name:            e.Name,
		Phone:           e.Phone,
		EvaluationType:  string(e.Type),
		DurationMinutes: e.DurationMinutes,
		Images:          e.Images,
		CreatedAt:       e.CreatedAt,
	}
	if resp.Images == nil {
		resp.Images = []string{}
	}
	if e.DateTime != nil {
		s := e.DateTime.In(loc).Format(time.RFC3339)
		resp.DateTime = &s
	}

	return resp
}
