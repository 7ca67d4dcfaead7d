package get_evaluation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/evaluations"
)

const msgNotFound = "оценка не найдена"

type Handler struct {
	service EvaluationService
	logger  Logger
}

func NewHandler(service EvaluationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/evaluations/{evaluationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	evaluationID := mux.Vars(r)["evaluationId"]

	evaluation, err := h.service.GetByID(r.Context(), evaluationID)
	if err != nil {
		if errors.Is(err, evaluations.ErrEvaluationNotFound) {
			h.logger.Warn("GET /evaluations/{id} - Evaluation not found: evaluation_id=%s", evaluationID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /evaluations/{id} - Failed to get evaluation: evaluation_id=%s, error=%v", evaluationID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, evaluation)
}
