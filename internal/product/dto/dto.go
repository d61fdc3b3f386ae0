package dto

type ProductFilters struct {
	MerchantID string
	Page       int
	PageSize   int
}
