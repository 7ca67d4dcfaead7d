package get_series

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
)

type SeriesService interface {
	GetSeries(ctx context.Context, seriesID string) (*models.SeriesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
