package get_available_slots

// Purpose для чего подбираются слоты
type Purpose string

const (
	PurposeBooking    Purpose = "booking"
	PurposeEvaluation Purpose = "evaluation"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID string  // ID услуги
	Date      string  // Дата YYYY-MM-DD в часовом поясе бизнеса
	Purpose   Purpose // booking (по умолчанию) или evaluation
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            string
	ServiceID       string
	Purpose         Purpose
	DurationMinutes int      // Длительность, под которую подобраны слоты
	Slots           []string // Начала слотов HH:MM по возрастанию
}
