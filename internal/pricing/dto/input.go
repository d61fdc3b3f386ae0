package dto

type SetChannelPriceInput struct {
	VariantID string
	ChannelID string
	// Price includes tax, in minor currency units.
	Price int64
	// TaxCategoryID keeps the current category when nil.
	TaxCategoryID *string
	Notes         string
	ReferenceID   string
	ReferenceType string // 'manual', 'event'
	UserID        string
}
