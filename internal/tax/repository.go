package tax

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type Repository interface {
	FindByID(ctx context.Context, id string) (*model.TaxCategory, error)
	FindByIDs(ctx context.Context, ids []string) ([]model.TaxCategory, error)
	FindDefault(ctx context.Context) (*model.TaxCategory, error)
}
