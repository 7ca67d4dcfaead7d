package evaluation

import "errors"

var (
	// ErrEvaluationNotFound возвращается, когда оценка не найдена
	ErrEvaluationNotFound = errors.New("evaluation.repository: evaluation not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("evaluation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("evaluation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("evaluation.repository: failed to scan row")

	// ErrEncodeImages возвращается, когда список изображений не удалось сериализовать
	ErrEncodeImages = errors.New("evaluation.repository: failed to encode images")
)
