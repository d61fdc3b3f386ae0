package model

import "github.com/shopspring/decimal"

type TaxCategory struct {
	BaseModel
	Name      string    `db:"name" json:"name"`
	IsDefault bool      `db:"is_default" json:"is_default"`
	Rates     []TaxRate `db:"-" json:"rates"`
}

// TaxRate is a percentage, e.g. 20 for 20%.
type TaxRate struct {
	BaseModel
	CategoryID string          `db:"category_id" json:"category_id"`
	Name       string          `db:"name" json:"name"`
	Value      decimal.Decimal `db:"value" json:"value"`
	Enabled    bool            `db:"enabled" json:"enabled"`
	ZoneID     *string         `db:"zone_id" json:"zone_id"`
}

// Rate resolves the applicable rate of the category: the first enabled rate,
// or zero when the category has none. Zone and customer-group specific
// selection is not modelled.
func (c *TaxCategory) Rate() decimal.Decimal {
	for _, r := range c.Rates {
		if r.Enabled {
			return r.Value
		}
	}
	return decimal.Zero
}

func (c *TaxCategory) Summary() *TaxCategorySummary {
	return &TaxCategorySummary{ID: c.ID, Name: c.Name, TaxRate: c.Rate()}
}
