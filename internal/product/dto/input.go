package dto

import "github.com/fekuna/omnipos-catalog-service/internal/translatable"

type CreateProductInput struct {
	MerchantID   string
	Enabled      bool
	Translations []translatable.Input
}

type CreateOptionInput struct {
	Code         string
	Translations []translatable.Input
}

type CreateOptionGroupInput struct {
	Code         string
	Translations []translatable.Input
	Options      []CreateOptionInput
}
