package list_products

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListProducts(ctx context.Context) *models.ProductListResponse
}
