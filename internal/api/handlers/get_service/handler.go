package get_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/catalog"
)

const msgServiceNotFound = "услуга не найдена"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	svc, err := h.service.GetService(r.Context(), serviceID)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			h.logger.Warn("GET /services/{id} - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)
			return
		}
		h.logger.Error("GET /services/{id} - Failed to get service: service_id=%s, error=%v", serviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, svc)
}
