package model

type Facet struct {
	BaseModel
	MerchantID   string        `db:"merchant_id" json:"merchant_id"`
	Code         string        `db:"code" json:"code"`
	IsPrivate    bool          `db:"is_private" json:"is_private"`
	Translations []Translation `db:"-" json:"translations"`
	Values       []FacetValue  `db:"-" json:"values"`

	LanguageCode string `db:"-" json:"language_code"`
	Name         string `db:"-" json:"name"`
}

type FacetValue struct {
	BaseModel
	FacetID      string        `db:"facet_id" json:"facet_id"`
	Code         string        `db:"code" json:"code"`
	Translations []Translation `db:"-" json:"translations"`

	LanguageCode string `db:"-" json:"language_code"`
	Name         string `db:"-" json:"name"`
}
