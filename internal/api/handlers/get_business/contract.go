package get_business

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetBusiness(ctx context.Context) *models.BusinessResponse
}
