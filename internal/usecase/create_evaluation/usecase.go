package create_evaluation

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling"
	"github.com/m04kA/SMC-SchedulingService/internal/service/catalog"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

// UseCase use case для записи на оценку перед услугой
type UseCase struct {
	catalog        ServiceCatalog
	evaluationRepo EvaluationRepository
	commitments    CommitmentsLoader
	txManager      TransactionManager
	recorder       MetricsRecorder
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog ServiceCatalog,
	evaluationRepo EvaluationRepository,
	commitments CommitmentsLoader,
	txManager TransactionManager,
	recorder MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:        catalog,
		evaluationRepo: evaluationRepo,
		commitments:    commitments,
		txManager:      txManager,
		recorder:       recorder,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания оценки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateEvaluation: service=%s, type=%s, date=%s, time=%s", req.ServiceID, req.Type, req.Date, req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateEvaluation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу
	service, err := uc.catalog.FindService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			uc.logger.Warn("CreateEvaluation: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateEvaluation: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	evaluation := &domain.Evaluation{
		ServiceID: service.ID,
		Name:      req.Name,
		Phone:     req.Phone,
		Type:      req.Type,
		Images:    req.Images,
	}

	// 3. Онлайн-оценка не занимает времени
	if req.Type == domain.EvaluationOnline {
		created, err := uc.evaluationRepo.Create(ctx, evaluation)
		if err != nil {
			uc.logger.Error("CreateEvaluation: failed to create: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return uc.done(created), nil
	}

	// 4. Очная оценка: проверяем слот и записываем в одной транзакции
	wh := uc.catalog.WorkingHours()
	loc, err := wh.Location()
	if err != nil {
		uc.logger.Error("CreateEvaluation: bad timezone %q: %v", wh.Timezone, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	start, err := scheduling.LocalDateTime(req.Date, req.Time.String(), loc)
	if err != nil {
		uc.logger.Warn("CreateEvaluation: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	evaluation.DateTime = ptr.Ptr(start)
	evaluation.DurationMinutes = domain.EvaluationDurationMinutes

	slotService := service
	slotService.DurationMinutes = domain.EvaluationDurationMinutes

	var created *domain.Evaluation
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 4.1. Занятости дня
		existing, err := uc.commitments.ForDate(txCtx, req.Date, loc)
		if err != nil {
			uc.logger.Error("CreateEvaluation: failed to load commitments: %v", err)
			return fmt.Errorf("%w: failed to load commitments: %v", ErrInternal, err)
		}

		// 4.2. Выбранное время должно быть среди доступных
		available, err := scheduling.AvailableSlotsForDate(req.Date, slotService, wh, existing, uc.timeProvider.Now())
		if err != nil {
			uc.logger.Error("CreateEvaluation: failed to compute slots: %v", err)
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		if !slices.Contains(available, req.Time.String()) {
			uc.logger.Warn("CreateEvaluation: slot %s %s is not available", req.Date, req.Time)
			return fmt.Errorf("%w: %s %s", ErrSlotNotAvailable, req.Date, req.Time)
		}

		// 4.3. Записываем
		created, err = uc.evaluationRepo.Create(txCtx, evaluation)
		if err != nil {
			uc.logger.Error("CreateEvaluation: failed to create: %v", err)
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.done(created), nil
}

func (uc *UseCase) done(created *domain.Evaluation) *Response {
	uc.recorder.EvaluationCreated(string(created.Type))
	uc.logger.Info("CreateEvaluation: created id=%s, type=%s", created.ID, created.Type)
	return &Response{Evaluation: created}
}
