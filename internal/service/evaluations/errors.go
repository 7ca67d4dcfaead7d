package evaluations

import "errors"

var (
	// ErrEvaluationNotFound возвращается, когда оценка не найдена
	ErrEvaluationNotFound = errors.New("evaluation not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
