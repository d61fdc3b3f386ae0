package dto

type PriceChangeFilters struct {
	VariantID string
	ChannelID string
	Page      int
	PageSize  int
}
