package scheduling

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

// WizardConfig параметры мастера выбора сеансов
type WizardConfig struct {
	Service      domain.Service
	WorkingHours domain.WorkingHours
	Existing     []domain.OccupiesTime
	Clock        TimeProvider
	Logger       Logger
}

// Customer данные клиента, записываемые в каждый сеанс
type Customer struct {
	Name  string
	Phone string
}

// Hold временная бронь сеанса, выбранного в мастере, но еще не сохраненного
type Hold struct {
	Session         int // 1-based
	Start           time.Time
	DurationMinutes int
}

// Occupancy implements domain.OccupiesTime
func (h Hold) Occupancy() (domain.Occupancy, bool) {
	return domain.Occupancy{Start: h.Start, DurationMinutes: h.DurationMinutes}, true
}

// Wizard пошаговый выбор даты и времени для каждого сеанса услуги.
// Сеанс i не может быть раньше сеанса i-1, сеансы одной серии не пересекаются.
// Не безопасен для конкурентного использования.
type Wizard struct {
	service  domain.Service
	wh       domain.WorkingHours
	loc      *time.Location
	existing []domain.OccupiesTime
	clock    TimeProvider
	logger   Logger

	picks []domain.SessionPick
	step  int
}

// NewWizard создает мастер; все сеансы по умолчанию на сегодня без времени
func NewWizard(cfg WizardConfig) (*Wizard, error) {
	loc, err := cfg.WorkingHours.Location()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	w := &Wizard{
		wh:       cfg.WorkingHours,
		loc:      loc,
		existing: slices.Clone(cfg.Existing),
		clock:    cfg.Clock,
		logger:   cfg.Logger,
	}
	if w.clock == nil {
		w.clock = &RealTimeProvider{}
	}
	if w.logger == nil {
		w.logger = nopLogger{}
	}

	if err := w.Reset(cfg.Service); err != nil {
		return nil, err
	}
	return w, nil
}

// Reset переключает мастер на услугу и сбрасывает выбор
func (w *Wizard) Reset(service domain.Service) error {
	if service.DurationMinutes <= 0 {
		return fmt.Errorf("%w: service %s has no duration", ErrInvalidConfig, service.ID)
	}

	today := ToLocalISODate(w.clock.Now().In(w.loc))
	picks := make([]domain.SessionPick, service.Sessions())
	for i := range picks {
		picks[i] = domain.SessionPick{DateISO: today}
	}

	w.service = service
	w.picks = picks
	w.step = 0
	return nil
}

// Picks копия текущего выбора по всем сеансам
func (w *Wizard) Picks() []domain.SessionPick {
	return slices.Clone(w.picks)
}

// CurrentStep индекс редактируемого сеанса (0-based)
func (w *Wizard) CurrentStep() int {
	return w.step
}

// Sessions количество сеансов
func (w *Wizard) Sessions() int {
	return len(w.picks)
}

// Next переходит к следующему сеансу, если он есть
func (w *Wizard) Next() bool {
	if w.step >= len(w.picks)-1 {
		return false
	}
	w.step++
	w.reconcile()
	return true
}

// Prev возвращается к предыдущему сеансу, если он есть
func (w *Wizard) Prev() bool {
	if w.step == 0 {
		return false
	}
	w.step--
	w.reconcile()
	return true
}

// GoTo переходит к любому шагу без проверки заполненности промежуточных
func (w *Wizard) GoTo(step int) error {
	if step < 0 || step >= len(w.picks) {
		return fmt.Errorf("%w: %d not in 0..%d", ErrStepOutOfRange, step, len(w.picks)-1)
	}
	w.step = step
	w.reconcile()
	return nil
}

// SetDate меняет дату текущего сеанса. Пустая строка снимает выбор даты.
func (w *Wizard) SetDate(dateISO string) error {
	if dateISO != "" {
		if _, err := ParseISODate(dateISO, w.loc); err != nil {
			return err
		}
	}
	w.picks[w.step].DateISO = dateISO
	w.reconcile()
	return nil
}

// SetSlot выбирает время текущего сеанса из доступных. Пустая строка снимает выбор.
func (w *Wizard) SetSlot(slot string) error {
	if slot == "" {
		w.picks[w.step].Slot = ""
		return nil
	}
	if _, err := ParseClockToMinutes(slot); err != nil {
		return err
	}

	available, err := w.AvailableSlotsForStep(w.step)
	if err != nil {
		return err
	}
	if !slices.Contains(available, slot) {
		return &SessionError{
			Session: w.step + 1,
			Err:     fmt.Errorf("%w: %s %s", ErrSlotNotAvailable, w.picks[w.step].DateISO, slot),
		}
	}

	w.picks[w.step].Slot = slot
	return nil
}

// SetPick задает дату и время текущего сеанса; при недоступном слоте выбор не меняется
func (w *Wizard) SetPick(pick domain.SessionPick) error {
	prev := w.picks[w.step]
	if err := w.SetDate(pick.DateISO); err != nil {
		return err
	}
	if err := w.SetSlot(pick.Slot); err != nil {
		w.picks[w.step] = prev
		return err
	}
	return nil
}

// Refresh заменяет снимок сохраненных занятостей и пересчитывает текущий шаг
func (w *Wizard) Refresh(existing []domain.OccupiesTime) {
	w.existing = slices.Clone(existing)
	w.reconcile()
}

// AvailableSlotsForCurrentStep доступные слоты для редактируемого сеанса
func (w *Wizard) AvailableSlotsForCurrentStep() ([]string, error) {
	return w.AvailableSlotsForStep(w.step)
}

// AvailableSlotsForStep доступные слоты сеанса step: сохраненные занятости
// плюс временные брони других сеансов на ту же дату, не раньше сеанса step-1
func (w *Wizard) AvailableSlotsForStep(step int) ([]string, error) {
	if step < 0 || step >= len(w.picks) {
		return nil, fmt.Errorf("%w: %d not in 0..%d", ErrStepOutOfRange, step, len(w.picks)-1)
	}

	pick := w.picks[step]
	if pick.DateISO == "" {
		return []string{}, nil
	}

	existing := make([]domain.OccupiesTime, 0, len(w.existing)+len(w.picks))
	existing = append(existing, w.existing...)
	for _, h := range w.holds(step, pick.DateISO) {
		existing = append(existing, h)
	}

	raw, err := AvailableSlotsForDate(pick.DateISO, w.service, w.wh, existing, w.clock.Now())
	if err != nil {
		return nil, err
	}

	if step == 0 || !w.picks[step-1].IsComplete() {
		return raw, nil
	}

	floor, err := w.instant(step - 1)
	if err != nil {
		return nil, err
	}

	filtered := make([]string, 0, len(raw))
	for _, hhmm := range raw {
		start, err := LocalDateTime(pick.DateISO, hhmm, w.loc)
		if err != nil {
			return nil, err
		}
		if !start.Before(floor) {
			filtered = append(filtered, hhmm)
		}
	}
	return filtered, nil
}

// Holds временные брони всех заполненных сеансов
func (w *Wizard) Holds() []Hold {
	return w.holds(-1, "")
}

// Validate проверяет выбор целиком: у каждого сеанса есть дата и время,
// и каждый сеанс не раньше предыдущего
func (w *Wizard) Validate() error {
	for i, p := range w.picks {
		if !p.IsComplete() {
			return &SessionError{Session: i + 1, Err: ErrSessionIncomplete}
		}
	}

	var prev time.Time
	for i := range w.picks {
		at, err := w.instant(i)
		if err != nil {
			return &SessionError{Session: i + 1, Err: err}
		}
		if i > 0 && at.Before(prev) {
			return &SessionError{Session: i + 1, Err: ErrSessionOutOfOrder}
		}
		prev = at
	}
	return nil
}

// Submit проверяет выбор и последовательно записывает сеансы.
// Сеансы многосеансовой услуги получают общий seriesId.
// При ошибке записи возвращает *PartialSeriesError с уже созданными сеансами.
func (w *Wizard) Submit(ctx context.Context, store BookingCreator, customer Customer) ([]*domain.Booking, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	total := len(w.picks)
	var seriesID *string
	if total > 1 {
		seriesID = ptr.Ptr(uuid.NewString())
	}

	created := make([]*domain.Booking, 0, total)
	for i := range w.picks {
		at, err := w.instant(i)
		if err != nil {
			return created, &SessionError{Session: i + 1, Err: err}
		}

		booking := &domain.Booking{
			ServiceID:       w.service.ID,
			Name:            customer.Name,
			Phone:           customer.Phone,
			DateTime:        at,
			DurationMinutes: w.service.DurationMinutes,
		}
		if seriesID != nil {
			booking.SeriesID = seriesID
			booking.SessionIndex = ptr.Ptr(i + 1)
			booking.TotalSessions = ptr.Ptr(total)
		}

		saved, err := store.Create(ctx, booking)
		if err != nil {
			perr := &PartialSeriesError{
				SeriesID:      ptr.Deref(seriesID, ""),
				Created:       created,
				FailedSession: i + 1,
				Err:           err,
			}
			w.logger.Error("Wizard.Submit: %v", perr)
			return created, perr
		}
		created = append(created, saved)
	}

	w.logger.Info("Wizard.Submit: service=%s, sessions=%d, series=%s, first=%s",
		w.service.ID, total, ptr.Deref(seriesID, "-"), created[0].ID)
	return created, nil
}

// reconcile снимает выбор времени текущего шага, если слот перестал быть доступен
func (w *Wizard) reconcile() {
	pick := w.picks[w.step]
	if pick.Slot == "" {
		return
	}

	available, err := w.AvailableSlotsForStep(w.step)
	if err != nil || !slices.Contains(available, pick.Slot) {
		w.logger.Info("Wizard: session %d slot %s %s is no longer available, cleared",
			w.step+1, pick.DateISO, pick.Slot)
		w.picks[w.step].Slot = ""
	}
}

// holds временные брони всех сеансов кроме skip на дату dateISO (пусто = любая дата)
func (w *Wizard) holds(skip int, dateISO string) []Hold {
	holds := make([]Hold, 0, len(w.picks))
	for j, p := range w.picks {
		if j == skip || !p.IsComplete() {
			continue
		}
		if dateISO != "" && p.DateISO != dateISO {
			continue
		}
		start, err := LocalDateTime(p.DateISO, p.Slot, w.loc)
		if err != nil {
			continue
		}
		holds = append(holds, Hold{
			Session:         j + 1,
			Start:           start,
			DurationMinutes: w.service.DurationMinutes,
		})
	}
	return holds
}

func (w *Wizard) instant(step int) (time.Time, error) {
	p := w.picks[step]
	return LocalDateTime(p.DateISO, p.Slot, w.loc)
}
