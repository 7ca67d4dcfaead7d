package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/catalog/models"
)

// Business данные бизнеса для витрины
type Business struct {
	Name         string
	Tagline      string
	ContactPhone string
	ContactEmail string
}

// Service каталог услуг и товаров из конфигурации. Только чтение.
type Service struct {
	business     Business
	workingHours domain.WorkingHours
	services     []domain.Service
	byID         map[string]domain.Service
	products     []domain.Product
	logger       Logger
}

// NewService создает каталог
func NewService(
	business Business,
	workingHours domain.WorkingHours,
	services []domain.Service,
	products []domain.Product,
	logger Logger,
) *Service {
	byID := make(map[string]domain.Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}

	return &Service{
		business:     business,
		workingHours: workingHours,
		services:     services,
		byID:         byID,
		products:     products,
		logger:       logger,
	}
}

// FindService услуга по ID для сценариев записи
func (s *Service) FindService(_ context.Context, id string) (domain.Service, error) {
	svc, ok := s.byID[id]
	if !ok {
		return domain.Service{}, fmt.Errorf("%w: %s", ErrServiceNotFound, id)
	}
	return svc, nil
}

// WorkingHours рабочие часы бизнеса
func (s *Service) WorkingHours() domain.WorkingHours {
	return s.workingHours
}

// ListServices список услуг
func (s *Service) ListServices(_ context.Context) *models.ServiceListResponse {
	return models.FromDomainServices(s.services)
}

// GetService услуга по ID
func (s *Service) GetService(ctx context.Context, id string) (*models.ServiceResponse, error) {
	svc, err := s.FindService(ctx, id)
	if err != nil {
		s.logger.Warn("GetService: service id=%s not found", id)
		return nil, err
	}
	return models.FromDomainService(svc), nil
}

// ListProducts список товаров
func (s *Service) ListProducts(_ context.Context) *models.ProductListResponse {
	return models.FromDomainProducts(s.products)
}

// GetBusiness данные бизнеса и рабочие часы
func (s *Service) GetBusiness(_ context.Context) *models.BusinessResponse {
	wh := s.workingHours
	return &models.BusinessResponse{
		Name:         s.business.Name,
		Tagline:      s.business.Tagline,
		ContactPhone: s.business.ContactPhone,
		ContactEmail: s.business.ContactEmail,
		WorkingHours: models.WorkingHoursResponse{
			Timezone:       wh.Timezone,
			Start:          wh.Start,
			End:            wh.End,
			SlotMinutes:    wh.SlotMinutes,
			WorkingDays:    append([]int{}, wh.WorkingDays...),
			Holidays:       append([]string{}, wh.Holidays...),
			MinLeadMinutes: wh.MinLeadMinutes,
		},
	}
}
