package scheduling

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrMalformedClock возвращается при некорректном времени HH:MM
	ErrMalformedClock = errors.New("scheduling: malformed clock time")

	// ErrMalformedDate возвращается при некорректной дате YYYY-MM-DD
	ErrMalformedDate = errors.New("scheduling: malformed date")

	// ErrInvalidConfig возвращается, когда рабочие часы или услуга не позволяют построить слоты
	ErrInvalidConfig = errors.New("scheduling: invalid configuration")

	// ErrStepOutOfRange возвращается при переходе на несуществующий шаг мастера
	ErrStepOutOfRange = errors.New("scheduling: step out of range")

	// ErrSlotNotAvailable возвращается, когда выбранный слот не входит в доступные для шага
	ErrSlotNotAvailable = errors.New("scheduling: slot is not available")

	// ErrSessionIncomplete возвращается, когда у сеанса не выбраны дата или время
	ErrSessionIncomplete = errors.New("scheduling: session date and time are required")

	// ErrSessionOutOfOrder возвращается, когда сеанс раньше предыдущего
	ErrSessionOutOfOrder = errors.New("scheduling: session is earlier than the previous one")
)

// SessionError ошибка, привязанная к номеру сеанса серии (1-based)
type SessionError struct {
	Session int
	Err     error
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("session %d: %v", e.Session, e.Err)
}

func (e *SessionError) Unwrap() error {
	return e.Err
}

// PartialSeriesError серия записана не полностью: сеансы Created сохранены,
// сеанс FailedSession (1-based) и последующие нет
type PartialSeriesError struct {
	SeriesID      string
	Created       []*domain.Booking
	FailedSession int
	Err           error
}

func (e *PartialSeriesError) Error() string {
	ids := make([]string, 0, len(e.Created))
	for _, b := range e.Created {
		ids = append(ids, b.ID)
	}
	return fmt.Sprintf("series %s: session %d failed after %d created [%s]: %v",
		e.SeriesID, e.FailedSession, len(e.Created), strings.Join(ids, ","), e.Err)
}

func (e *PartialSeriesError) Unwrap() error {
	return e.Err
}
