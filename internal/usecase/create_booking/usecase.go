package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	evaluationRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/evaluation"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling"
	"github.com/m04kA/SMC-SchedulingService/internal/service/catalog"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

// UseCase use case для создания записи на один сеанс или на серию
type UseCase struct {
	catalog        ServiceCatalog
	bookingRepo    BookingRepository
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
	bookingRepo BookingRepository,
	evaluationRepo EvaluationRepository,
	commitments CommitmentsLoader,
	txManager TransactionManager,
	recorder MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:        catalog,
		bookingRepo:    bookingRepo,
		evaluationRepo: evaluationRepo,
		commitments:    commitments,
		txManager:      txManager,
		recorder:       recorder,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания записи.
// Все сеансы проверяются и записываются в одной транзакции: либо серия целиком, либо ничего.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%s, phone=%s, sessions=%d", req.ServiceID, req.Phone, len(req.Sessions))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.recorder.SubmissionRejected("invalid_input")
		return nil, err
	}

	wh := uc.catalog.WorkingHours()
	loc, err := wh.Location()
	if err != nil {
		uc.logger.Error("CreateBooking: bad timezone %q: %v", wh.Timezone, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if err := validateSessionFormats(req.Sessions, loc); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		uc.recorder.SubmissionRejected("invalid_input")
		return nil, err
	}

	// 2. Получаем услугу
	service, err := uc.catalog.FindService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Количество сеансов должно совпадать с услугой
	if err := validateSessionCount(req, service); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		uc.recorder.SubmissionRejected("invalid_input")
		return nil, err
	}

	// 4. Услуги с requiresEvaluation записываются только после оценки
	if service.RequiresEvaluation {
		if err := uc.checkEvaluation(ctx, req); err != nil {
			if errors.Is(err, ErrEvaluationRequired) {
				uc.recorder.SubmissionRejected("evaluation_required")
			}
			return nil, err
		}
	}

	var created []*domain.Booking

	// 5. Проверяем выбор и записываем сеансы в транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 5.1. Занятости на все выбранные даты
		existing, err := uc.commitments.ForDates(txCtx, sessionDates(req.Sessions), loc)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to load commitments: %v", err)
			return fmt.Errorf("%w: failed to load commitments: %v", ErrInternal, err)
		}

		// 5.2. Мастер выбора сеансов поверх снимка занятостей
		wizard, err := scheduling.NewWizard(scheduling.WizardConfig{
			Service:      service,
			WorkingHours: wh,
			Existing:     existing,
			Clock:        uc.timeProvider,
			Logger:       uc.logger,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create wizard: %v", err)
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		// 5.3. Заполняем с последнего сеанса, чтобы порядок сеансов проверил Validate
		for i := len(req.Sessions) - 1; i >= 0; i-- {
			if err := uc.pick(wizard, i, req.Sessions[i]); err != nil {
				return err
			}
		}

		// 5.4. Полнота и хронология
		if err := wizard.Validate(); err != nil {
			uc.logger.Warn("CreateBooking: %v", err)
			return fmt.Errorf("%w: %w", ErrInvalidSessions, err)
		}

		// 5.5. Последовательная запись сеансов с общим seriesId
		bookings, err := wizard.Submit(txCtx, uc.bookingRepo, scheduling.Customer{Name: req.Name, Phone: req.Phone})
		if err != nil {
			var partial *scheduling.PartialSeriesError
			if errors.As(err, &partial) {
				uc.recorder.SeriesFailed(service.ID)
			}
			return fmt.Errorf("%w: %w", ErrInternal, err)
		}
		created = bookings
		return nil
	})
	if err != nil {
		uc.recordRejection(err)
		return nil, err
	}

	uc.recorder.BookingsCreated(service.ID, len(created))

	resp := &Response{
		ConfirmationID: created[0].ID,
		SeriesID:       created[0].SeriesID,
		Bookings:       created,
	}
	uc.logger.Info("CreateBooking: created %d booking(s), confirmation=%s, series=%s",
		len(created), resp.ConfirmationID, ptr.Deref(resp.SeriesID, "-"))

	return resp, nil
}

// pick выбирает дату и время сеанса i в мастере
func (uc *UseCase) pick(wizard *scheduling.Wizard, i int, s SessionRequest) error {
	if err := wizard.GoTo(i); err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if err := wizard.SetDate(s.Date); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, &scheduling.SessionError{Session: i + 1, Err: err})
	}
	if err := wizard.SetSlot(s.Time.String()); err != nil {
		if errors.Is(err, scheduling.ErrSlotNotAvailable) {
			uc.logger.Warn("CreateBooking: %v", err)
			return fmt.Errorf("%w: %w", ErrSlotNotAvailable, err)
		}
		return fmt.Errorf("%w: %w", ErrInvalidInput, &scheduling.SessionError{Session: i + 1, Err: err})
	}
	return nil
}

// checkEvaluation находит оценку клиента для услуги
func (uc *UseCase) checkEvaluation(ctx context.Context, req *Request) error {
	var (
		evaluation *domain.Evaluation
		err        error
	)
	if req.EvaluationID != nil && *req.EvaluationID != "" {
		evaluation, err = uc.evaluationRepo.GetByID(ctx, *req.EvaluationID)
	} else {
		evaluation, err = uc.evaluationRepo.FindByCustomer(ctx, req.ServiceID, req.Phone)
	}

	if err != nil {
		if errors.Is(err, evaluationRepo.ErrEvaluationNotFound) {
			uc.logger.Warn("CreateBooking: no evaluation for service=%s, phone=%s", req.ServiceID, req.Phone)
			return ErrEvaluationRequired
		}
		uc.logger.Error("CreateBooking: failed to get evaluation: %v", err)
		return fmt.Errorf("%w: failed to get evaluation: %v", ErrInternal, err)
	}

	if evaluation.ServiceID != req.ServiceID || evaluation.Phone != req.Phone {
		uc.logger.Warn("CreateBooking: evaluation id=%s belongs to another service or customer", evaluation.ID)
		return fmt.Errorf("%w: evaluation %s does not match", ErrEvaluationRequired, evaluation.ID)
	}
	return nil
}

func (uc *UseCase) recordRejection(err error) {
	switch {
	case errors.Is(err, ErrSlotNotAvailable):
		uc.recorder.SubmissionRejected("slot_unavailable")
	case errors.Is(err, scheduling.ErrSessionIncomplete):
		uc.recorder.SubmissionRejected("incomplete")
	case errors.Is(err, scheduling.ErrSessionOutOfOrder):
		uc.recorder.SubmissionRejected("out_of_order")
	case errors.Is(err, ErrInvalidInput):
		uc.recorder.SubmissionRejected("invalid_input")
	}
}

// validateSessionFormats проверяет формат дат и времени до обращения к хранилищу
func validateSessionFormats(sessions []SessionRequest, loc *time.Location) error {
	for i, s := range sessions {
		if s.Date != "" {
			if _, err := scheduling.ParseISODate(s.Date, loc); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidInput, &scheduling.SessionError{Session: i + 1, Err: err})
			}
		}
		if !s.Time.IsZero() {
			if err := s.Time.Validate(); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidInput, &scheduling.SessionError{Session: i + 1, Err: err})
			}
		}
	}
	return nil
}
