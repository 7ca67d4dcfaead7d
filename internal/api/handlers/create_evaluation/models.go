package create_evaluation

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/evaluations/models"
	createEvaluation "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_evaluation"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// CreateEvaluationRequest HTTP request model
type CreateEvaluationRequest struct {
	ServiceID      string           `json:"serviceId"`
	Name           string           `json:"name"`
	Phone          string           `json:"phone"`
	EvaluationType string           `json:"evaluationType"` // online | presencial
	Date           string           `json:"date,omitempty"`
	Time           types.TimeString `json:"time,omitempty"`
	Images         []string         `json:"images,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateEvaluationRequest) ToUseCaseRequest() *createEvaluation.Request {
	return &createEvaluation.Request{
		ServiceID: r.ServiceID,
		Name:      r.Name,
		Phone:     r.Phone,
		Type:      domain.EvaluationType(r.EvaluationType),
		Date:      r.Date,
		Time:      r.Time,
		Images:    r.Images,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createEvaluation.Response, loc *time.Location) *models.EvaluationResponse {
	return models.FromDomainEvaluation(resp.Evaluation, loc)
}
