package schedulingapi

import "errors"

var (
	// ErrNotFound возвращается, когда услуга или серия не найдены
	ErrNotFound = errors.New("scheduling api: not found")

	// ErrBadRequest возвращается, когда сервис отклонил параметры запроса
	ErrBadRequest = errors.New("scheduling api: bad request")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("scheduling api client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("scheduling api client: invalid response")
)
