package create_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// validateRequest валидирует и нормализует входные данные запроса
func validateRequest(req *Request) error {
	req.ServiceID = strings.TrimSpace(req.ServiceID)
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)

	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is longer than %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is longer than %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if len(req.Sessions) == 0 {
		return fmt.Errorf("%w: at least one session is required", ErrInvalidInput)
	}
	if len(req.Sessions) > domain.MaxSessionsCount {
		return fmt.Errorf("%w: too many sessions", ErrInvalidInput)
	}

	return nil
}

// validateSessionCount количество сеансов должно совпадать с услугой
func validateSessionCount(req *Request, service domain.Service) error {
	if len(req.Sessions) != service.Sessions() {
		return fmt.Errorf("%w: service %s needs %d sessions, got %d",
			ErrInvalidInput, service.ID, service.Sessions(), len(req.Sessions))
	}
	return nil
}

func sessionDates(sessions []SessionRequest) []string {
	dates := make([]string, 0, len(sessions))
	for _, s := range sessions {
		if s.Date != "" {
			dates = append(dates, s.Date)
		}
	}
	return dates
}
