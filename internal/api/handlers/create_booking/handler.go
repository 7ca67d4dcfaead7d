package create_booking

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling"
	createBooking "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные записи"
	msgServiceNotFound    = "услуга не найдена"
	msgEvaluationRequired = "для этой услуги нужна предварительная оценка"
	msgSlotNotAvailable   = "выбранное время недоступно"
	msgInvalidSessions    = "сеансы заполнены не полностью или идут не по порядку"
	msgSessionIncomplete  = "сеанс %d: выберите дату и время"
	msgSessionOutOfOrder  = "сеанс %d: не может быть раньше предыдущего"
	msgSessionSlot        = "сеанс %d: выбранное время недоступно"
	msgSessionInvalid     = "сеанс %d: некорректные дата или время"
)

type Handler struct {
	useCase CreateBookingUseCase
	loc     *time.Location
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		loc:     loc,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var sessErr *scheduling.SessionError
		hasSession := errors.As(err, &sessErr)

		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: service_id=%s, %v", req.ServiceID, err)
			handlers.RespondConflict(w, sessionMessage(hasSession, sessErr, msgSessionSlot, msgSlotNotAvailable))

		case errors.Is(err, createBooking.ErrInvalidSessions):
			h.logger.Warn("POST /bookings - Invalid sessions: service_id=%s, %v", req.ServiceID, err)
			msg := msgInvalidSessions
			switch {
			case errors.Is(err, scheduling.ErrSessionIncomplete):
				msg = sessionMessage(hasSession, sessErr, msgSessionIncomplete, msg)
			case errors.Is(err, scheduling.ErrSessionOutOfOrder):
				msg = sessionMessage(hasSession, sessErr, msgSessionOutOfOrder, msg)
			}
			handlers.RespondUnprocessable(w, msg)

		case errors.Is(err, createBooking.ErrEvaluationRequired):
			h.logger.Warn("POST /bookings - Evaluation required: service_id=%s", req.ServiceID)
			handlers.RespondConflict(w, msgEvaluationRequired)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, sessionMessage(hasSession, sessErr, msgSessionInvalid, msgInvalidInput))

		default:
			h.logger.Error("POST /bookings - Failed to create booking: service_id=%s, error=%v", req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: confirmation_id=%s, sessions=%d",
		result.ConfirmationID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, h.loc))
}

func sessionMessage(ok bool, sessErr *scheduling.SessionError, format, fallback string) string {
	if !ok {
		return fallback
	}
	return fmt.Sprintf(format, sessErr.Session)
}
