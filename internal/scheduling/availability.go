package scheduling

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// FilterParams входные данные фильтра доступности
type FilterParams struct {
	DateISO      string
	Slots        []string
	Service      domain.Service
	WorkingHours domain.WorkingHours
	Existing     []domain.OccupiesTime
	Now          time.Time
}

type window struct {
	start time.Time
	end   time.Time
}

// FilterAvailableSlots оставляет слоты, которые не раньше now+minLead,
// целиком помещают услугу в рабочий день и не пересекаются с занятыми интервалами
// той же даты. Порядок слотов сохраняется.
func FilterAvailableSlots(p FilterParams) ([]string, error) {
	loc, err := p.WorkingHours.Location()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	workStart, err := LocalDateTime(p.DateISO, p.WorkingHours.Start, loc)
	if err != nil {
		return nil, err
	}
	workEnd, err := LocalDateTime(p.DateISO, p.WorkingHours.End, loc)
	if err != nil {
		return nil, err
	}

	leadLimit := p.Now.Add(time.Duration(p.WorkingHours.MinLeadMinutes) * time.Minute)
	duration := time.Duration(max(1, p.Service.DurationMinutes)) * time.Minute
	busy := occupiedWindows(p, loc)

	available := make([]string, 0, len(p.Slots))
	for _, hhmm := range p.Slots {
		start, err := LocalDateTime(p.DateISO, hhmm, loc)
		if err != nil {
			return nil, err
		}
		end := start.Add(duration)

		if start.Before(leadLimit) {
			continue
		}
		if start.Before(workStart) || end.After(workEnd) {
			continue
		}
		if collides(start, end, busy) {
			continue
		}
		available = append(available, hhmm)
	}

	return available, nil
}

// AvailableSlotsForDate генерирует сетку на дату и фильтрует ее
func AvailableSlotsForDate(
	dateISO string,
	service domain.Service,
	wh domain.WorkingHours,
	existing []domain.OccupiesTime,
	now time.Time,
) ([]string, error) {
	loc, err := wh.Location()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	date, err := ParseISODate(dateISO, loc)
	if err != nil {
		return nil, err
	}

	slots, err := GenerateDaySlots(date, wh)
	if err != nil {
		return nil, err
	}

	return FilterAvailableSlots(FilterParams{
		DateISO:      dateISO,
		Slots:        slots,
		Service:      service,
		WorkingHours: wh,
		Existing:     existing,
		Now:          now,
	})
}

// Overlaps пересечение полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd).
// Интервалы встык не пересекаются.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

func occupiedWindows(p FilterParams, loc *time.Location) []window {
	windows := make([]window, 0, len(p.Existing))
	for _, item := range p.Existing {
		if item == nil {
			continue
		}
		occ, ok := item.Occupancy()
		if !ok {
			continue
		}
		if ToLocalISODate(occ.Start.In(loc)) != p.DateISO {
			continue
		}

		mins := occ.DurationMinutes
		if mins <= 0 {
			mins = p.Service.DurationMinutes
		}
		if mins <= 0 {
			mins = p.WorkingHours.SlotMinutes
		}
		mins = max(1, mins)

		windows = append(windows, window{
			start: occ.Start,
			end:   occ.Start.Add(time.Duration(mins) * time.Minute),
		})
	}
	return windows
}

func collides(start, end time.Time, busy []window) bool {
	for _, w := range busy {
		if Overlaps(start, end, w.start, w.end) {
			return true
		}
	}
	return false
}
