package product

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)

	// Option ops
	CreateOptionGroup(ctx context.Context, input *dto.CreateOptionGroupInput) (*model.ProductOptionGroup, error)
	AddOptionGroupToProduct(ctx context.Context, productID, optionGroupID string) (*model.Product, error)
}
