package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductVariant struct {
	BaseModel
	ProductID     string `db:"product_id" json:"product_id"`
	SKU           string `db:"sku" json:"sku"`
	TaxCategoryID string `db:"tax_category_id" json:"tax_category_id"`

	Translations []Translation   `db:"-" json:"translations"`
	Options      []ProductOption `db:"-" json:"options"`
	FacetValues  []FacetValue    `db:"-" json:"facet_values"`
	Prices       []ChannelPrice  `db:"-" json:"prices"`
	Product      *Product        `db:"-" json:"product,omitempty"`

	LanguageCode string `db:"-" json:"language_code"`
	Name         string `db:"-" json:"name"`

	// Projected from the channel price record of the channel being read.
	Price          int64               `db:"-" json:"price"`
	PriceBeforeTax int64               `db:"-" json:"price_before_tax"`
	TaxCategory    *TaxCategorySummary `db:"-" json:"tax_category,omitempty"`
}

type TaxCategorySummary struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	TaxRate decimal.Decimal `json:"tax_rate"`
}

// HasFacetValue reports whether a facet value with id is already attached.
func (v *ProductVariant) HasFacetValue(id string) bool {
	for _, fv := range v.FacetValues {
		if fv.ID == id {
			return true
		}
	}
	return false
}

// ChannelPrice is the price of a variant in one sales channel. Prices are in
// minor currency units; Price includes tax, PriceBeforeTax does not.
type ChannelPrice struct {
	BaseModel
	VariantID      string       `db:"variant_id" json:"variant_id"`
	ChannelID      string       `db:"channel_id" json:"channel_id"`
	Price          int64        `db:"price" json:"price"`
	PriceBeforeTax int64        `db:"price_before_tax" json:"price_before_tax"`
	TaxCategoryID  string       `db:"tax_category_id" json:"tax_category_id"`
	TaxCategory    *TaxCategory `db:"-" json:"tax_category,omitempty"`
}

type PriceChange struct {
	ID            string    `db:"id" json:"id"`
	VariantID     string    `db:"variant_id" json:"variant_id"`
	ChannelID     string    `db:"channel_id" json:"channel_id"`
	PriceBefore   int64     `db:"price_before" json:"price_before"`
	PriceAfter    int64     `db:"price_after" json:"price_after"`
	TaxCategoryID string    `db:"tax_category_id" json:"tax_category_id"`
	ReferenceType *string   `db:"reference_type" json:"reference_type"`
	ReferenceID   *string   `db:"reference_id" json:"reference_id"`
	Notes         string    `db:"notes" json:"notes"`
	CreatedBy     *string   `db:"created_by" json:"created_by"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
