package variant

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/translatable"
	"github.com/fekuna/omnipos-catalog-service/internal/variant/dto"
)

// Relations accepted by the Find methods. Translations and channel prices
// are always loaded.
const (
	RelationProduct     = translatable.RelationProduct
	RelationOptions     = translatable.RelationOptions
	RelationFacetValues = translatable.RelationFacetValues
)

type Repository interface {
	// Create stores the variant, its translations, its option links and, when
	// given, its first channel price in one transaction.
	Create(ctx context.Context, v *model.ProductVariant, initialPrice *model.ChannelPrice) error
	// Update stores the variant's own columns and applies the translation diff.
	Update(ctx context.Context, v *model.ProductVariant, translations translatable.Diff) error

	FindByID(ctx context.Context, id string, relations ...string) (*model.ProductVariant, error)
	FindByIDs(ctx context.Context, ids []string, relations ...string) ([]model.ProductVariant, error)
	FindByProduct(ctx context.Context, filters *dto.VariantFilters, relations ...string) ([]model.ProductVariant, int, error)

	AddFacetValues(ctx context.Context, variantID string, facetValueIDs []string) error
	FindOptionsByCodes(ctx context.Context, codes []string) ([]model.ProductOption, error)
}
