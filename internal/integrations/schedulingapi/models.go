package schedulingapi

// AvailableSlots ответ GET /services/{id}/available-slots
type AvailableSlots struct {
	Date            string   `json:"date"`
	ServiceID       string   `json:"serviceId"`
	Purpose         string   `json:"purpose"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"`
}

// Session сеанс серии
type Session struct {
	ID              string `json:"id"`
	ServiceID       string `json:"serviceId"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	DateTime        string `json:"dateTime"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	SessionIndex    *int   `json:"sessionIndex"`
}

// Series ответ GET /series/{id}
type Series struct {
	SeriesID      string    `json:"seriesId"`
	TotalSessions int       `json:"totalSessions"`
	Complete      bool      `json:"complete"`
	Sessions      []Session `json:"sessions"`
}

// ErrorResponse модель ошибки сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
