package scheduling

import (
	"fmt"
	"slices"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// ParseClockToMinutes разбирает HH:MM в минуты от полуночи
func ParseClockToMinutes(hhmm string) (int, error) {
	m, err := types.ParseMinutes(hhmm)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedClock, err)
	}
	return m, nil
}

// MustParseClockToMinutes как ParseClockToMinutes, но паникует.
// Только для значений из проверенной конфигурации и тестов.
func MustParseClockToMinutes(hhmm string) int {
	m, err := ParseClockToMinutes(hhmm)
	if err != nil {
		panic(err)
	}
	return m
}

// MinutesToClock форматирует минуты от полуночи в HH:MM
func MinutesToClock(mins int) string {
	return types.FormatMinutes(mins)
}

// ToLocalISODate YYYY-MM-DD по календарным полям t в его собственной локации
func ToLocalISODate(t time.Time) string {
	return t.Format(domain.DateFormat)
}

// ParseISODate разбирает YYYY-MM-DD как полночь в loc
func ParseISODate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(domain.DateFormat, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	return d, nil
}

// LocalDateTime соединяет дату и время суток в момент времени в loc
func LocalDateTime(dateISO, hhmm string, loc *time.Location) (time.Time, error) {
	d, err := ParseISODate(dateISO, loc)
	if err != nil {
		return time.Time{}, err
	}
	m, err := ParseClockToMinutes(hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), m/60, m%60, 0, 0, loc), nil
}

// IsWorkingDate true, если день недели рабочий и дата не праздник
func IsWorkingDate(date time.Time, wh domain.WorkingHours) bool {
	if !slices.Contains(wh.WorkingDays, isoWeekday(date)) {
		return false
	}
	return !slices.Contains(wh.Holidays, ToLocalISODate(date))
}

// isoWeekday 1=Monday..7=Sunday
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
