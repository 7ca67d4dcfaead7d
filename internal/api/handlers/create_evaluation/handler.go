package create_evaluation

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	createEvaluation "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_evaluation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные оценки"
	msgServiceNotFound    = "услуга не найдена"
	msgSlotNotAvailable   = "выбранное время недоступно"
)

type Handler struct {
	useCase CreateEvaluationUseCase
	loc     *time.Location
	logger  Logger
}

func NewHandler(useCase CreateEvaluationUseCase, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		loc:     loc,
		logger:  logger,
	}
}

// Handle POST /api/v1/evaluations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateEvaluationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /evaluations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createEvaluation.ErrSlotNotAvailable):
			h.logger.Warn("POST /evaluations - Slot not available: %s %s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createEvaluation.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createEvaluation.ErrInvalidInput):
			h.logger.Warn("POST /evaluations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /evaluations - Failed to create evaluation: service_id=%s, error=%v", req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /evaluations - Evaluation created: evaluation_id=%s, type=%s",
		result.Evaluation.ID, result.Evaluation.Type)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, h.loc))
}
