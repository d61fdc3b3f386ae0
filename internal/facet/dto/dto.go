package dto

type FacetFilters struct {
	MerchantID string
	Page       int
	PageSize   int
}
