package domain

// Default configuration values
const (
	DefaultTimezone       = "America/Bogota"
	DefaultWorkStart      = "08:00"
	DefaultWorkEnd        = "17:00"
	DefaultSlotMinutes    = 30
	DefaultMinLeadMinutes = 60

	// EvaluationDurationMinutes длительность очной оценки независимо от услуги
	EvaluationDurationMinutes = 30
)

// DefaultWorkingDays понедельник-суббота
var DefaultWorkingDays = []int{1, 2, 3, 4, 5, 6}

// Business validation constants
const (
	MinSlotMinutes      = 5
	MaxSlotMinutes      = 480
	MaxDurationMinutes  = 24 * 60
	MaxSessionsCount    = 52
	MaxLeadMinutes      = 10080 // 1 week
	MaxNameLength       = 120
	MaxPhoneLength      = 32
	MaxEvaluationImages = 10
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
