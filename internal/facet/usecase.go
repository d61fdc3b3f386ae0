package facet

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/facet/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type UseCase interface {
	CreateFacet(ctx context.Context, input *dto.CreateFacetInput) (*model.Facet, error)
	GetFacet(ctx context.Context, id string) (*model.Facet, error)
	ListFacets(ctx context.Context, filters *dto.FacetFilters) ([]model.Facet, int, error)
	CreateFacetValue(ctx context.Context, input *dto.CreateFacetValueInput) (*model.FacetValue, error)

	// GetFacetValues returns the values in the order of ids, failing on the
	// first id that does not exist.
	GetFacetValues(ctx context.Context, ids []string) ([]model.FacetValue, error)
}
