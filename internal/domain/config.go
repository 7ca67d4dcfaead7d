package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

var (
	// ErrInvalidWorkingHours возвращается при некорректной конфигурации рабочих часов
	ErrInvalidWorkingHours = errors.New("domain: invalid working hours")

	// ErrInvalidService возвращается при некорректной конфигурации услуги
	ErrInvalidService = errors.New("domain: invalid service")
)

// WorkingHours рабочие часы бизнеса, единые для всех услуг
type WorkingHours struct {
	Timezone       string // IANA, пусто = локальная зона процесса
	Start          string // HH:MM
	End            string // HH:MM
	SlotMinutes    int
	WorkingDays    []int    // 1=Monday..7=Sunday
	Holidays       []string // YYYY-MM-DD
	MinLeadMinutes int
}

// Location возвращает зону, в которой считаются все даты и слоты
func (wh *WorkingHours) Location() (*time.Location, error) {
	if wh.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(wh.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidWorkingHours, wh.Timezone, err)
	}
	return loc, nil
}

// Validate проверяет конфигурацию рабочих часов
func (wh *WorkingHours) Validate() error {
	if _, err := wh.Location(); err != nil {
		return err
	}

	start, err := types.ParseMinutes(wh.Start)
	if err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidWorkingHours, err)
	}
	end, err := types.ParseMinutes(wh.End)
	if err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidWorkingHours, err)
	}
	if start >= end {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidWorkingHours, wh.Start, wh.End)
	}

	if wh.SlotMinutes <= 0 {
		return fmt.Errorf("%w: slotMinutes must be positive", ErrInvalidWorkingHours)
	}
	if wh.MinLeadMinutes < 0 {
		return fmt.Errorf("%w: minLeadMinutes must not be negative", ErrInvalidWorkingHours)
	}

	for _, d := range wh.WorkingDays {
		if d < 1 || d > 7 {
			return fmt.Errorf("%w: working day %d out of 1..7", ErrInvalidWorkingHours, d)
		}
	}
	for _, h := range wh.Holidays {
		if _, err := time.Parse(DateFormat, h); err != nil {
			return fmt.Errorf("%w: holiday %q", ErrInvalidWorkingHours, h)
		}
	}

	return nil
}

// Service услуга из каталога бизнеса
type Service struct {
	ID                 string
	Name               string
	Category           string
	Description        string
	Price              float64
	DurationMinutes    int
	SessionsCount      int
	RequiresEvaluation bool
}

// Sessions количество сеансов, не меньше одного
func (s *Service) Sessions() int {
	if s.SessionsCount < 1 {
		return 1
	}
	return s.SessionsCount
}

// IsSeries true, если услуга продается несколькими сеансами
func (s *Service) IsSeries() bool {
	return s.Sessions() > 1
}

// Validate проверяет конфигурацию услуги
func (s *Service) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidService)
	}
	if s.DurationMinutes <= 0 || s.DurationMinutes > MaxDurationMinutes {
		return fmt.Errorf("%w: %s: durationMinutes must be in 1..%d", ErrInvalidService, s.ID, MaxDurationMinutes)
	}
	if s.SessionsCount < 0 || s.SessionsCount > MaxSessionsCount {
		return fmt.Errorf("%w: %s: sessionsCount must be in 1..%d", ErrInvalidService, s.ID, MaxSessionsCount)
	}
	if s.Price < 0 {
		return fmt.Errorf("%w: %s: negative price", ErrInvalidService, s.ID)
	}
	return nil
}

// Product товар каталога, в расписании не участвует
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Image       string
}
