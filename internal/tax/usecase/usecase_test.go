package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	categories map[string]model.TaxCategory
	defaultID  string
	lookups    [][]string
}

func (f *fakeRepo) FindByID(_ context.Context, id string) (*model.TaxCategory, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeRepo) FindByIDs(_ context.Context, ids []string) ([]model.TaxCategory, error) {
	f.lookups = append(f.lookups, ids)
	var out []model.TaxCategory
	for _, id := range ids {
		if c, ok := f.categories[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindDefault(ctx context.Context) (*model.TaxCategory, error) {
	if f.defaultID == "" {
		return nil, nil
	}
	return f.FindByID(ctx, f.defaultID)
}

func standard() model.TaxCategory {
	return model.TaxCategory{
		BaseModel: model.BaseModel{ID: "tc-standard"},
		Name:      "Standard",
		IsDefault: true,
		Rates:     []model.TaxRate{{Value: decimal.NewFromInt(20), Enabled: true}},
	}
}

func TestDefaultTaxCategory(t *testing.T) {
	repo := &fakeRepo{categories: map[string]model.TaxCategory{"tc-standard": standard()}, defaultID: "tc-standard"}
	uc := NewTaxUseCase(repo, logger.NewNop())

	c, err := uc.DefaultTaxCategory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tc-standard", c.ID)
	assert.True(t, c.Rate().Equal(decimal.NewFromInt(20)))
}

func TestDefaultTaxCategoryMissing(t *testing.T) {
	uc := NewTaxUseCase(&fakeRepo{}, logger.NewNop())

	_, err := uc.DefaultTaxCategory(context.Background())
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidInput))
}

func TestGetTaxCategoryNotFound(t *testing.T) {
	uc := NewTaxUseCase(&fakeRepo{}, logger.NewNop())

	_, err := uc.GetTaxCategory(context.Background(), "nope")
	assert.True(t, apperror.IsKind(err, apperror.KindEntityNotFound))
}

func TestGetTaxCategoriesDeduplicates(t *testing.T) {
	repo := &fakeRepo{categories: map[string]model.TaxCategory{"tc-standard": standard()}}
	uc := NewTaxUseCase(repo, logger.NewNop())

	got, err := uc.GetTaxCategories(context.Background(), []string{"tc-standard", "", "tc-standard", "tc-unknown"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, [][]string{{"tc-standard", "tc-unknown"}}, repo.lookups)
}
