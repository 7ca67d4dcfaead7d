package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRequest  = "некорректные параметры запроса"
	msgServiceNotFound = "услуга не найдена"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/available-slots
// Query params: date (required, YYYY-MM-DD), purpose (booking|evaluation, default booking)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /services/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq := ToUseCaseRequest(serviceID, date, r.URL.Query().Get("purpose"))

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /services/{id}/available-slots - Invalid date: %s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /services/{id}/available-slots - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /services/{id}/available-slots - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /services/{id}/available-slots - Failed to get slots: service_id=%s, date=%s, error=%v",
				serviceID, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{id}/available-slots - Slots retrieved: service_id=%s, date=%s, slots_count=%d",
		serviceID, date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
