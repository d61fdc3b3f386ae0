package facet

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/facet/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type Repository interface {
	// Create stores the facet with its values and all translations.
	Create(ctx context.Context, facet *model.Facet) error
	FindByID(ctx context.Context, id string) (*model.Facet, error)
	FindAll(ctx context.Context, filters *dto.FacetFilters) ([]model.Facet, int, error)

	CreateValue(ctx context.Context, value *model.FacetValue) error
	FindValuesByIDs(ctx context.Context, ids []string) ([]model.FacetValue, error)
}
