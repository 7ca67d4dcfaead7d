package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ServiceCatalog каталог услуг и рабочих часов
type ServiceCatalog interface {
	FindService(ctx context.Context, id string) (domain.Service, error)
	WorkingHours() domain.WorkingHours
}

// CommitmentsLoader загрузчик занятостей календаря на дату
type CommitmentsLoader interface {
	ForDate(ctx context.Context, dateISO string, loc *time.Location) ([]domain.OccupiesTime, error)
}

// MetricsRecorder бизнес-метрики
type MetricsRecorder interface {
	SlotsOffered(purpose string, count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
