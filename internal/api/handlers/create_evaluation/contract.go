package create_evaluation

import (
	"context"

	createEvaluation "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_evaluation"
)

type CreateEvaluationUseCase interface {
	Execute(ctx context.Context, req *createEvaluation.Request) (*createEvaluation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
