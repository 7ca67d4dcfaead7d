package models

import "github.com/m04kA/SMC-SchedulingService/internal/domain"

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Category           string  `json:"category"`
	Description        string  `json:"description"`
	Price              float64 `json:"price"`
	DurationMinutes    int     `json:"durationMinutes"`
	SessionsCount      int     `json:"sessionsCount"`
	RequiresEvaluation bool    `json:"requiresEvaluation"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// ProductResponse товар каталога
type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

// ProductListResponse список товаров
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// WorkingHoursResponse рабочие часы
type WorkingHoursResponse struct {
	Timezone       string   `json:"timezone"`
	Start          string   `json:"start"`
	End            string   `json:"end"`
	SlotMinutes    int      `json:"slotMinutes"`
	WorkingDays    []int    `json:"workingDays"`
	Holidays       []string `json:"holidays"`
	MinLeadMinutes int      `json:"minLeadMinutes"`
}

// BusinessResponse данные бизнеса
type BusinessResponse struct {
	Name         string               `json:"name"`
	Tagline      string               `json:"tagline"`
	ContactPhone string               `json:"contactPhone"`
	ContactEmail string               `json:"contactEmail"`
	WorkingHours WorkingHoursResponse `json:"workingHours"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:                 s.ID,
		Name:               s.Name,
		Category:           s.Category,
		Description:        s.Description,
		Price:              s.Price,
		DurationMinutes:    s.DurationMinutes,
		SessionsCount:      s.Sessions(),
		RequiresEvaluation: s.RequiresEvaluation,
	}
}

// FromDomainServices конвертирует список услуг
func FromDomainServices(services []domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{Services: make([]ServiceResponse, 0, len(services))}
	for _, s := range services {
		resp.Services = append(resp.Services, *FromDomainService(s))
	}
	return resp
}

// FromDomainProducts конвертирует список товаров
func FromDomainProducts(products []domain.Product) *ProductListResponse {
	resp := &ProductListResponse{Products: make([]ProductResponse, 0, len(products))}
	for _, p := range products {
		resp.Products = append(resp.Products, ProductResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Image:       p.Image,
		})
	}
	return resp
}
