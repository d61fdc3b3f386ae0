package model

type Product struct {
	BaseModel
	MerchantID   string               `db:"merchant_id" json:"merchant_id"`
	Enabled      bool                 `db:"enabled" json:"enabled"`
	Translations []Translation        `db:"-" json:"translations"`
	OptionGroups []ProductOptionGroup `db:"-" json:"option_groups"`

	// Resolved from Translations for the requested language.
	LanguageCode string `db:"-" json:"language_code"`
	Name         string `db:"-" json:"name"`
	Slug         string `db:"-" json:"slug"`
	Description  string `db:"-" json:"description"`
}

type ProductOptionGroup struct {
	BaseModel
	Code         string          `db:"code" json:"code"`
	SortOrder    int             `db:"sort_order" json:"sort_order"` // position within a product
	Translations []Translation   `db:"-" json:"translations"`
	Options      []ProductOption `db:"-" json:"options"`

	LanguageCode string `db:"-" json:"language_code"`
	Name         string `db:"-" json:"name"`
}

type ProductOption struct {
	BaseModel
	GroupID      string        `db:"group_id" json:"group_id"`
	Code         string        `db:"code" json:"code"`
	SortOrder    int           `db:"sort_order" json:"sort_order"`
	Translations []Translation `db:"-" json:"translations"`

	LanguageCode string `db:"-" json:"language_code"`
	Name         string `db:"-" json:"name"`
}
