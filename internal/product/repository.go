package product

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
)

// Relations accepted by Repository.FindByID.
const (
	RelationOptionGroups       = "optionGroups"
	RelationOptionGroupOptions = "optionGroups.options"
)

type Repository interface {
	// Create stores the product together with its translations.
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id string, relations ...string) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)

	// CreateOptionGroup stores the group with its options and all translations.
	CreateOptionGroup(ctx context.Context, group *model.ProductOptionGroup) error
	FindOptionGroupByID(ctx context.Context, id string) (*model.ProductOptionGroup, error)
	HasOptionGroup(ctx context.Context, productID, groupID string) (bool, error)
	// AddOptionGroup appends the group after the product's existing groups.
	AddOptionGroup(ctx context.Context, productID, groupID string) error
}
