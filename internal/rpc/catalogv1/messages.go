package catalogv1

import "time"

type Translation struct {
	LanguageCode string `json:"languageCode"`
	Name         string `json:"name"`
	Slug         string `json:"slug,omitempty"`
	Description  string `json:"description,omitempty"`
}

type Option struct {
	ID           string `json:"id"`
	GroupID      string `json:"groupId"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	LanguageCode string `json:"languageCode"`
}

type OptionGroup struct {
	ID           string   `json:"id"`
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	LanguageCode string   `json:"languageCode"`
	Options      []Option `json:"options"`
}

type Product struct {
	ID           string        `json:"id"`
	Enabled      bool          `json:"enabled"`
	Name         string        `json:"name"`
	Slug         string        `json:"slug"`
	Description  string        `json:"description"`
	LanguageCode string        `json:"languageCode"`
	OptionGroups []OptionGroup `json:"optionGroups,omitempty"`
	Translations []Translation `json:"translations"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

type TaxCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// TaxRate is a decimal percentage rendered as a string, e.g. "11".
	TaxRate string `json:"taxRate"`
}

type FacetValue struct {
	ID           string `json:"id"`
	FacetID      string `json:"facetId"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	LanguageCode string `json:"languageCode"`
}

type Facet struct {
	ID           string        `json:"id"`
	Code         string        `json:"code"`
	IsPrivate    bool          `json:"isPrivate"`
	Name         string        `json:"name"`
	LanguageCode string        `json:"languageCode"`
	Values       []FacetValue  `json:"values"`
	Translations []Translation `json:"translations"`
}

type ChannelPrice struct {
	VariantID      string `json:"variantId"`
	ChannelID      string `json:"channelId"`
	Price          int64  `json:"price"`
	PriceBeforeTax int64  `json:"priceBeforeTax"`
	TaxCategoryID  string `json:"taxCategoryId"`
}

type ProductVariant struct {
	ID             string        `json:"id"`
	ProductID      string        `json:"productId"`
	SKU            string        `json:"sku"`
	Name           string        `json:"name"`
	LanguageCode   string        `json:"languageCode"`
	Price          int64         `json:"price"`
	PriceBeforeTax int64         `json:"priceBeforeTax"`
	TaxCategory    *TaxCategory  `json:"taxCategory,omitempty"`
	Options        []Option      `json:"options"`
	FacetValues    []FacetValue  `json:"facetValues"`
	Product        *Product      `json:"product,omitempty"`
	Translations   []Translation `json:"translations"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

type PriceChange struct {
	ID            string    `json:"id"`
	VariantID     string    `json:"variantId"`
	ChannelID     string    `json:"channelId"`
	PriceBefore   int64     `json:"priceBefore"`
	PriceAfter    int64     `json:"priceAfter"`
	TaxCategoryID string    `json:"taxCategoryId"`
	ReferenceType string    `json:"referenceType,omitempty"`
	ReferenceID   string    `json:"referenceId,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedBy     string    `json:"createdBy,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ProductService

type CreateProductRequest struct {
	Enabled      *bool         `json:"enabled,omitempty"`
	Translations []Translation `json:"translations"`
}

type GetProductRequest struct {
	ID string `json:"id"`
}

type ListProductsRequest struct {
	Page     int32 `json:"page"`
	PageSize int32 `json:"pageSize"`
}

type ListProductsResponse struct {
	Products []Product `json:"products"`
	Total    int32     `json:"total"`
}

type ProductResponse struct {
	Product *Product `json:"product"`
}

type CreateOptionInput struct {
	Code         string        `json:"code"`
	Translations []Translation `json:"translations"`
}

type CreateOptionGroupRequest struct {
	Code         string              `json:"code"`
	Translations []Translation       `json:"translations"`
	Options      []CreateOptionInput `json:"options"`
}

type OptionGroupResponse struct {
	OptionGroup *OptionGroup `json:"optionGroup"`
}

type AddOptionGroupToProductRequest struct {
	ProductID     string `json:"productId"`
	OptionGroupID string `json:"optionGroupId"`
}

// ProductVariantService

type GetVariantRequest struct {
	ID string `json:"id"`
}

type VariantResponse struct {
	Variant *ProductVariant `json:"variant"`
}

type ListVariantsRequest struct {
	ProductID string `json:"productId"`
	Query     string `json:"query,omitempty"`
	Page      int32  `json:"page"`
	PageSize  int32  `json:"pageSize"`
}

type ListVariantsResponse struct {
	Variants []ProductVariant `json:"variants"`
	Total    int32            `json:"total"`
}

type CreateVariantRequest struct {
	ProductID     string        `json:"productId"`
	SKU           string        `json:"sku"`
	Price         int64         `json:"price"`
	TaxCategoryID string        `json:"taxCategoryId"`
	OptionCodes   []string      `json:"optionCodes"`
	Translations  []Translation `json:"translations"`
}

type UpdateVariantRequest struct {
	ID            string        `json:"id"`
	SKU           *string       `json:"sku,omitempty"`
	Price         *int64        `json:"price,omitempty"`
	TaxCategoryID *string       `json:"taxCategoryId,omitempty"`
	Translations  []Translation `json:"translations,omitempty"`
}

type GenerateVariantsRequest struct {
	ProductID            string  `json:"productId"`
	DefaultTaxCategoryID *string `json:"defaultTaxCategoryId,omitempty"`
	DefaultPrice         *int64  `json:"defaultPrice,omitempty"`
	DefaultSKU           *string `json:"defaultSku,omitempty"`
}

type AddFacetValuesToVariantsRequest struct {
	VariantIDs    []string `json:"variantIds"`
	FacetValueIDs []string `json:"facetValueIds"`
}

type VariantsResponse struct {
	Variants []ProductVariant `json:"variants"`
}

// FacetService

type CreateFacetValueInput struct {
	Code         string        `json:"code"`
	Translations []Translation `json:"translations"`
}

type CreateFacetRequest struct {
	Code         string                  `json:"code"`
	IsPrivate    bool                    `json:"isPrivate"`
	Translations []Translation           `json:"translations"`
	Values       []CreateFacetValueInput `json:"values"`
}

type GetFacetRequest struct {
	ID string `json:"id"`
}

type FacetResponse struct {
	Facet *Facet `json:"facet"`
}

type ListFacetsRequest struct {
	Page     int32 `json:"page"`
	PageSize int32 `json:"pageSize"`
}

type ListFacetsResponse struct {
	Facets []Facet `json:"facets"`
	Total  int32   `json:"total"`
}

type CreateFacetValueRequest struct {
	FacetID      string        `json:"facetId"`
	Code         string        `json:"code"`
	Translations []Translation `json:"translations"`
}

type FacetValueResponse struct {
	FacetValue *FacetValue `json:"facetValue"`
}

// PricingService

type SetChannelPriceRequest struct {
	VariantID     string  `json:"variantId"`
	ChannelID     string  `json:"channelId,omitempty"`
	Price         int64   `json:"price"`
	TaxCategoryID *string `json:"taxCategoryId,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

type ChannelPriceResponse struct {
	Price *ChannelPrice `json:"price"`
}

type ListPriceChangesRequest struct {
	VariantID string `json:"variantId"`
	ChannelID string `json:"channelId,omitempty"`
	Page      int32  `json:"page"`
	PageSize  int32  `json:"pageSize"`
}

type ListPriceChangesResponse struct {
	Changes []PriceChange `json:"changes"`
	Total   int32         `json:"total"`
}
