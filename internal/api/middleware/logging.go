package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AccessLog пишет строку на каждый запрос; 5xx на уровне error
func AccessLog(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}

			next.ServeHTTP(rec, r)

			status := rec.code()
			format := "%s %s - status=%d bytes=%d duration_ms=%d request_id=%s"
			args := []interface{}{r.Method, r.URL.Path, status, rec.bytes,
				time.Since(start).Milliseconds(), RequestIDFromContext(r.Context())}
			if status >= http.StatusInternalServerError {
				logger.Error(format, args...)
				return
			}
			logger.Info(format, args...)
		})
	}
}
