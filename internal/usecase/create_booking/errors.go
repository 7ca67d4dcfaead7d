package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrEvaluationRequired возвращается, когда услуга требует предварительной оценки, а ее нет
	ErrEvaluationRequired = errors.New("create_booking: evaluation required")

	// ErrSlotNotAvailable возвращается, когда выбранное время сеанса недоступно
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidSessions возвращается, когда сеансы не заполнены или идут не по порядку
	ErrInvalidSessions = errors.New("create_booking: invalid sessions")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
