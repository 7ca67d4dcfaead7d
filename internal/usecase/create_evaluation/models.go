package create_evaluation

import (
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса на оценку.
// Для presencial обязательны Date и Time, для online они не передаются.
type Request struct {
	ServiceID string
	Name      string
	Phone     string
	Type      domain.EvaluationType
	Date      string
	Time      types.TimeString
	Images    []string // Ссылки на фотографии (online)
}

// Response модель ответа с созданной оценкой
type Response struct {
	Evaluation *domain.Evaluation
}
