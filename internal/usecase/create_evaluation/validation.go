package create_evaluation

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
	if req.Name == "" || utf8.RuneCountInString(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is required and must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if req.Phone == "" || utf8.RuneCountInString(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is required and must be at most %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if !req.Type.IsValid() {
		return fmt.Errorf("%w: unknown evaluation type %q", ErrInvalidInput, req.Type)
	}

	if len(req.Images) > domain.MaxEvaluationImages {
		return fmt.Errorf("%w: at most %d images", ErrInvalidInput, domain.MaxEvaluationImages)
	}
	for _, img := range req.Images {
		if strings.TrimSpace(img) == "" {
			return fmt.Errorf("%w: empty image reference", ErrInvalidInput)
		}
	}

	switch req.Type {
	case domain.EvaluationPresencial:
		if req.Date == "" || req.Time.IsZero() {
			return fmt.Errorf("%w: date and time are required for presencial evaluation", ErrInvalidInput)
		}
		if err := req.Time.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	case domain.EvaluationOnline:
		if req.Date != "" || !req.Time.IsZero() {
			return fmt.Errorf("%w: online evaluation takes no date and time", ErrInvalidInput)
		}
	}

	return nil
}
