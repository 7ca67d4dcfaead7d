package scheduling

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// GenerateDaySlots строит сетку начал слотов на дату: от start до end-slotMinutes
// с шагом slotMinutes. Для нерабочей даты возвращает пустой список.
func GenerateDaySlots(date time.Time, wh domain.WorkingHours) ([]string, error) {
	if !IsWorkingDate(date, wh) {
		return []string{}, nil
	}

	if wh.SlotMinutes <= 0 {
		return nil, fmt.Errorf("%w: slotMinutes must be positive", ErrInvalidConfig)
	}
	start, err := ParseClockToMinutes(wh.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: start: %v", ErrInvalidConfig, err)
	}
	end, err := ParseClockToMinutes(wh.End)
	if err != nil {
		return nil, fmt.Errorf("%w: end: %v", ErrInvalidConfig, err)
	}

	slots := make([]string, 0, max(0, (end-start)/wh.SlotMinutes))
	for t := start; t+wh.SlotMinutes <= end; t += wh.SlotMinutes {
		slots = append(slots, MinutesToClock(t))
	}
	return slots, nil
}
