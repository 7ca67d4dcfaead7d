package get_series

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings"
)

const (
	msgInvalidSeriesID = "некорректный ID серии"
	msgNotFound        = "серия не найдена"
)

type Handler struct {
	service SeriesService
	logger  Logger
}

func NewHandler(service SeriesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/series/{seriesId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	seriesID := mux.Vars(r)["seriesId"]

	series, err := h.service.GetSeries(r.Context(), seriesID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSeriesID)

		case errors.Is(err, bookings.ErrSeriesNotFound):
			h.logger.Warn("GET /series/{id} - Series not found: series_id=%s", seriesID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /series/{id} - Failed to get series: series_id=%s, error=%v", seriesID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /series/{id} - Series retrieved: series_id=%s, sessions=%d, complete=%t",
		seriesID, len(series.Sessions), series.Complete)
	handlers.RespondJSON(w, http.StatusOK, series)
}
