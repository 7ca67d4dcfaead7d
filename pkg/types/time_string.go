package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

const (
	// MinutesPerDay количество минут в сутках
	MinutesPerDay = 24 * 60

	timeStringLayout = "15:04"
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате HH:MM
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow возвращается, когда результат выходит за пределы суток
	ErrTimeOverflow = errors.New("time string overflows the day")
)

// TimeString время суток в формате HH:MM без даты и часового пояса
type TimeString string

// ParseMinutes разбирает строгий формат HH:MM в минуты от полуночи.
// Часы 00-23, минуты 00-59, ровно две цифры в каждой части.
func ParseMinutes(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	if !isDigits(s[:2]) || !isDigits(s[3:]) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	h, _ := strconv.Atoi(s[:2])
	m, _ := strconv.Atoi(s[3:])
	if h > 23 || m > 59 {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidTimeString, s)
	}

	return h*60 + m, nil
}

// FormatMinutes форматирует минуты от полуночи в HH:MM (по модулю суток)
func FormatMinutes(mins int) string {
	mins %= MinutesPerDay
	if mins < 0 {
		mins += MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// NewTimeStringFromString создает TimeString из строки HH:MM с валидацией
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := ParseMinutes(s); err != nil {
		return "", err
	}
	return TimeString(s), nil
}

// NewTimeString берет время суток из time.Time (в его собственной локации)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromMinutes создает TimeString из минут от полуночи
func NewTimeStringFromMinutes(mins int) TimeString {
	return TimeString(FormatMinutes(mins))
}

// Minutes возвращает количество минут от полуночи
func (t TimeString) Minutes() (int, error) {
	return ParseMinutes(string(t))
}

// Validate проверяет формат
func (t TimeString) Validate() error {
	_, err := t.Minutes()
	return err
}

// IsZero true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String implements fmt.Stringer
func (t TimeString) String() string {
	return string(t)
}

// AddMinutes сдвигает время на delta минут.
// Переход через полночь считается ошибкой: слоты живут внутри одного дня.
func (t TimeString) AddMinutes(delta int) (TimeString, error) {
	m, err := t.Minutes()
	if err != nil {
		return "", err
	}
	res := m + delta
	if res < 0 || res > MinutesPerDay {
		return "", fmt.Errorf("%w: %s%+d min", ErrTimeOverflow, t, delta)
	}
	if res == MinutesPerDay {
		// 24:00 допустим только как граница конца дня
		return "24:00", nil
	}
	return NewTimeStringFromMinutes(res), nil
}

// IsBefore сравнивает время суток; некорректные значения считаются полуночью
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutesOrEdge() < other.minutesOrEdge()
}

// IsAfter сравнивает время суток
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutesOrEdge() > other.minutesOrEdge()
}

// On комбинирует время суток с календарной датой в указанной локации
func (t TimeString) On(date time.Time, loc *time.Location) (time.Time, error) {
	m, err := t.minutesWithEdge()
	if err != nil {
		return time.Time{}, err
	}
	y, mo, d := date.Date()
	return time.Date(y, mo, d, m/60, m%60, 0, 0, loc), nil
}

// Scan implements sql.Scanner
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.setFromDB(v)
	case []byte:
		return t.setFromDB(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
}

// Value implements driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// MarshalJSON implements json.Marshaler
func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// UnmarshalJSON implements json.Unmarshaler
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*t = ""
		return nil
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// setFromDB принимает как HH:MM, так и postgres TIME (HH:MM:SS)
func (t *TimeString) setFromDB(s string) error {
	if len(s) >= 8 && s[5] == ':' {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TimeString) minutesWithEdge() (int, error) {
	if t == "24:00" {
		return MinutesPerDay, nil
	}
	return t.Minutes()
}

func (t TimeString) minutesOrEdge() int {
	m, err := t.minutesWithEdge()
	if err != nil {
		return 0
	}
	return m
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
