package usecase

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/tax"
)

const keyNoDefaultTaxCategory = "error.no-default-tax-category"

type taxUseCase struct {
	repo   tax.Repository
	logger logger.ZapLogger
}

func NewTaxUseCase(repo tax.Repository, log logger.ZapLogger) tax.UseCase {
	return &taxUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *taxUseCase) DefaultTaxCategory(ctx context.Context) (*model.TaxCategory, error) {
	c, err := uc.repo.FindDefault(ctx)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.Invalid(keyNoDefaultTaxCategory, nil)
	}
	return c, nil
}

func (uc *taxUseCase) GetTaxCategory(ctx context.Context, id string) (*model.TaxCategory, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.NotFound("TaxCategory", id)
	}
	return c, nil
}

// GetTaxCategories returns the categories keyed by id. Unknown ids are
// absent from the map.
func (uc *taxUseCase) GetTaxCategories(ctx context.Context, ids []string) (map[string]*model.TaxCategory, error) {
	seen := make(map[string]bool, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" && !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	categories, err := uc.repo.FindByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*model.TaxCategory, len(categories))
	for i := range categories {
		out[categories[i].ID] = &categories[i]
	}
	return out, nil
}
