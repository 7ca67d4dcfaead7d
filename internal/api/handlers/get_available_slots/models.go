package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string   `json:"date"`
	ServiceID       string   `json:"serviceId"`
	Purpose         string   `json:"purpose"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"` // ["09:00", "09:30", ...]
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := resp.Slots
	if slots == nil {
		slots = []string{}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date,
		ServiceID:       resp.ServiceID,
		Purpose:         string(resp.Purpose),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из пути и query параметров
func ToUseCaseRequest(serviceID, date, purpose string) *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		ServiceID: serviceID,
		Date:      date,
		Purpose:   getAvailableSlots.Purpose(purpose),
	}
}
