package tax

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type UseCase interface {
	// DefaultTaxCategory is the fallback used when no tax category is given.
	DefaultTaxCategory(ctx context.Context) (*model.TaxCategory, error)
	GetTaxCategory(ctx context.Context, id string) (*model.TaxCategory, error)
	GetTaxCategories(ctx context.Context, ids []string) (map[string]*model.TaxCategory, error)
}
