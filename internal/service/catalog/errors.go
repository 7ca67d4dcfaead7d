package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуги нет в каталоге
	ErrServiceNotFound = errors.New("catalog: service not found")
)
