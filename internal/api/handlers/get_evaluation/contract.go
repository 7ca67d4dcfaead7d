package get_evaluation

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/evaluations/models"
)

type EvaluationService interface {
	GetByID(ctx context.Context, id string) (*models.EvaluationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
