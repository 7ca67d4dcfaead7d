package evaluations

import (
	"context"
	"errors"
	"fmt"
	"time"

	evaluationRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/evaluation"
	"github.com/m04kA/SMC-SchedulingService/internal/service/evaluations/models"
)

// Service сервис для чтения заявок на оценку
type Service struct {
	evaluationRepo EvaluationRepository
	loc            *time.Location
	logger         Logger
}

// NewService создает новый экземпляр сервиса оценок
func NewService(evaluationRepo EvaluationRepository, loc *time.Location, logger Logger) *Service {
	return &Service{
		evaluationRepo: evaluationRepo,
		loc:            loc,
		logger:         logger,
	}
}

// GetByID получает заявку на оценку по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.EvaluationResponse, error) {
	evaluation, err := s.evaluationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, evaluationRepo.ErrEvaluationNotFound) {
			s.logger.Warn("GetByID: evaluation id=%s not found", id)
			return nil, ErrEvaluationNotFound
		}
		s.logger.Error("GetByID: repository error for evaluation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEvaluation(evaluation, s.loc), nil
}
