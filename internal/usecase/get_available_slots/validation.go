package get_available_slots

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса и проставляет purpose по умолчанию
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	switch req.Purpose {
	case "":
		req.Purpose = PurposeBooking
	case PurposeBooking, PurposeEvaluation:
	default:
		return fmt.Errorf("%w: unknown purpose %q", ErrInvalidInput, req.Purpose)
	}

	return nil
}
