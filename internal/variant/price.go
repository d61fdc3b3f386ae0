package variant

import (
	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

// ApplyChannelPrice returns a copy of v with Price, PriceBeforeTax and
// TaxCategory taken from its price record for channelID. v itself is left
// unchanged.
func ApplyChannelPrice(v model.ProductVariant, channelID string) (model.ProductVariant, error) {
	for _, p := range v.Prices {
		if p.ChannelID != channelID {
			continue
		}
		v.Price = p.Price
		v.PriceBeforeTax = p.PriceBeforeTax
		if p.TaxCategory != nil {
			v.TaxCategory = p.TaxCategory.Summary()
		} else {
			v.TaxCategory = &model.TaxCategorySummary{ID: p.TaxCategoryID}
		}
		return v, nil
	}
	return v, apperror.NoPriceForChannel(channelID)
}
