package model

import "time"

type BaseModel struct {
	ID        string    `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Translation is one localized row of a translatable entity. Slug and
// Description are only stored for products.
type Translation struct {
	ID           string `db:"id" json:"id"`
	BaseID       string `db:"base_id" json:"base_id"`
	LanguageCode string `db:"language_code" json:"language_code"`
	Name         string `db:"name" json:"name"`
	Slug         string `db:"slug" json:"slug,omitempty"`
	Description  string `db:"description" json:"description,omitempty"`
}
