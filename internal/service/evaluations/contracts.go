package evaluations

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// EvaluationRepository интерфейс репозитория оценок
type EvaluationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Evaluation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
