package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling"
	"github.com/m04kA/SMC-SchedulingService/internal/service/catalog"
)

// UseCase use case для получения доступных слотов записи или оценки
type UseCase struct {
	catalog      ServiceCatalog
	commitments  CommitmentsLoader
	recorder     MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog ServiceCatalog,
	commitments CommitmentsLoader,
	recorder MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:      catalog,
		commitments:  commitments,
		recorder:     recorder,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%s, date=%s, purpose=%s", req.ServiceID, req.Date, req.Purpose)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	wh := uc.catalog.WorkingHours()
	loc, err := wh.Location()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: bad timezone %q: %v", wh.Timezone, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if _, err := scheduling.ParseISODate(req.Date, loc); err != nil {
		uc.logger.Warn("GetAvailableSlots: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	// 2. Получаем услугу
	service, err := uc.catalog.FindService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Оценка всегда занимает фиксированное окно независимо от услуги
	if req.Purpose == PurposeEvaluation {
		service.DurationMinutes = domain.EvaluationDurationMinutes
	}

	// 4. Загружаем занятости дня: записи и очные оценки
	existing, err := uc.commitments.ForDate(ctx, req.Date, loc)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load commitments for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to load commitments: %v", ErrInternal, err)
	}

	// 5. Генерируем сетку и фильтруем
	slots, err := scheduling.AvailableSlotsForDate(req.Date, service, wh, existing, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to compute slots: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.recorder.SlotsOffered(string(req.Purpose), len(slots))
	uc.logger.Info("GetAvailableSlots: service=%s, date=%s, offered=%d of busy=%d",
		service.ID, req.Date, len(slots), len(existing))

	return &Response{
		Date:            req.Date,
		ServiceID:       service.ID,
		Purpose:         req.Purpose,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}

// WithTimeProvider подменяет источник текущего времени (slotctl --now)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}
