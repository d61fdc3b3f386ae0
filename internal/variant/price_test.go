package variant

import (
	"testing"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pricedVariant() model.ProductVariant {
	reduced := &model.TaxCategory{
		BaseModel: model.BaseModel{ID: "reduced"},
		Name:      "Reduced",
		Rates: []model.TaxRate{
			{Value: decimal.NewFromInt(20), Enabled: false},
			{Value: decimal.NewFromInt(5), Enabled: true},
		},
	}
	return model.ProductVariant{
		BaseModel: model.BaseModel{ID: "v1"},
		Prices: []model.ChannelPrice{
			{ChannelID: "1", Price: 100, PriceBeforeTax: 95, TaxCategoryID: "reduced", TaxCategory: reduced},
			{ChannelID: "2", Price: 200, PriceBeforeTax: 190, TaxCategoryID: "reduced", TaxCategory: reduced},
		},
	}
}

func TestApplyChannelPrice(t *testing.T) {
	in := pricedVariant()

	out, err := ApplyChannelPrice(in, "2")
	require.NoError(t, err)
	assert.Equal(t, int64(200), out.Price)
	assert.Equal(t, int64(190), out.PriceBeforeTax)
	require.NotNil(t, out.TaxCategory)
	assert.Equal(t, "reduced", out.TaxCategory.ID)
	assert.Equal(t, "Reduced", out.TaxCategory.Name)
	assert.True(t, decimal.NewFromInt(5).Equal(out.TaxCategory.TaxRate), "first enabled rate")

	assert.Zero(t, in.Price, "input is not modified")
	assert.Nil(t, in.TaxCategory)
}

func TestApplyChannelPriceMissingChannel(t *testing.T) {
	_, err := ApplyChannelPrice(pricedVariant(), "3")
	require.Error(t, err)

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindNoPriceForChannel, appErr.Kind)
	assert.Equal(t, "error.no-price-found-for-channel", appErr.MessageKey)
	assert.Equal(t, "3", appErr.Params["channelId"])
}

func TestApplyChannelPriceWithoutLoadedCategory(t *testing.T) {
	v := model.ProductVariant{Prices: []model.ChannelPrice{{ChannelID: "web", Price: 10, TaxCategoryID: "std"}}}

	out, err := ApplyChannelPrice(v, "web")
	require.NoError(t, err)
	assert.Equal(t, &model.TaxCategorySummary{ID: "std"}, out.TaxCategory)
}
