package variant

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/variant/dto"
)

type UseCase interface {
	// Create stores one variant of product. The result carries its channel
	// prices but is not price-projected.
	Create(ctx context.Context, product *model.Product, input *dto.CreateVariantInput) (*model.ProductVariant, error)
	// CreateVariant loads the product named by input.ProductID and calls Create.
	CreateVariant(ctx context.Context, input *dto.CreateVariantInput) (*model.ProductVariant, error)
	Update(ctx context.Context, input *dto.UpdateVariantInput) (*model.ProductVariant, error)
	GenerateVariantsForProduct(ctx context.Context, input *dto.GenerateVariantsInput) ([]model.ProductVariant, error)
	AddFacetValues(ctx context.Context, variantIDs, facetValueIDs []string) ([]model.ProductVariant, error)

	// FindOne returns nil when the variant does not exist.
	FindOne(ctx context.Context, id string) (*model.ProductVariant, error)
	ListByProduct(ctx context.Context, filters *dto.VariantFilters) ([]model.ProductVariant, int, error)
}
