package list_services

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListServices(ctx context.Context) *models.ServiceListResponse
}
