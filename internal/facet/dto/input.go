package dto

import "github.com/fekuna/omnipos-catalog-service/internal/translatable"

type CreateFacetValueInput struct {
	FacetID      string
	Code         string
	Translations []translatable.Input
}

type CreateFacetInput struct {
	MerchantID   string
	Code         string
	IsPrivate    bool
	Translations []translatable.Input
	Values       []CreateFacetValueInput
}
