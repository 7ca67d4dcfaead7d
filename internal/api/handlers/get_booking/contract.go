package get_booking

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, id string) (*models.ConfirmationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
