package pricing

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/pricing/dto"
)

type UseCase interface {
	// InitialPrice builds the first price record of a new variant without
	// persisting it.
	InitialPrice(ctx context.Context, variantID, channelID string, price int64, taxCategoryID string) (*model.ChannelPrice, error)
	SetChannelPrice(ctx context.Context, input *dto.SetChannelPriceInput) (*model.ChannelPrice, error)
	ListPriceChanges(ctx context.Context, filters *dto.PriceChangeFilters) ([]model.PriceChange, int, error)
}
