package create_booking

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

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// EvaluationRepository интерфейс репозитория оценок (для проверки requiresEvaluation)
type EvaluationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Evaluation, error)
	FindByCustomer(ctx context.Context, serviceID, phone string) (*domain.Evaluation, error)
}

// CommitmentsLoader загрузчик занятостей календаря
type CommitmentsLoader interface {
	ForDates(ctx context.Context, dates []string, loc *time.Location) ([]domain.OccupiesTime, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder бизнес-метрики
type MetricsRecorder interface {
	BookingsCreated(serviceID string, count int)
	SeriesFailed(serviceID string)
	SubmissionRejected(reason string)
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
