package dto

import "github.com/fekuna/omnipos-catalog-service/internal/translatable"

type CreateVariantInput struct {
	ProductID string
	SKU       string
	// Price includes tax and is assigned to the request channel.
	Price         int64
	TaxCategoryID string
	// OptionCodes are matched against every option in the catalogue.
	OptionCodes  []string
	Translations []translatable.Input
}

type UpdateVariantInput struct {
	ID            string
	SKU           *string
	Price         *int64
	TaxCategoryID *string
	Translations  []translatable.Input
}

type GenerateVariantsInput struct {
	ProductID            string
	DefaultTaxCategoryID *string
	DefaultPrice         *int64
	DefaultSKU           *string
}
