package dto

type VariantFilters struct {
	ProductID string
	// Query switches listing to full-text search when set.
	Query    string
	Page     int
	PageSize int
}
