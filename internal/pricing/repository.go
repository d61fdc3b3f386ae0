package pricing

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/pricing/dto"
)

type Repository interface {
	VariantExists(ctx context.Context, variantID string) (bool, error)
	FindByVariantAndChannel(ctx context.Context, variantID, channelID string) (*model.ChannelPrice, error)

	// UpsertWithChange writes the price record and its history row in one transaction.
	UpsertWithChange(ctx context.Context, price *model.ChannelPrice, change *model.PriceChange) error
	ListChanges(ctx context.Context, filters *dto.PriceChangeFilters) ([]model.PriceChange, int, error)
}
