package create_evaluation

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_evaluation: service not found")

	// ErrSlotNotAvailable возвращается, когда время очной оценки недоступно
	ErrSlotNotAvailable = errors.New("create_evaluation: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_evaluation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_evaluation: internal error")
)
