package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/requestctx"
	"github.com/fekuna/omnipos-catalog-service/internal/translatable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	products    map[string]*model.Product
	groups      map[string]*model.ProductOptionGroup
	assignments map[string][]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		products:    map[string]*model.Product{},
		groups:      map[string]*model.ProductOptionGroup{},
		assignments: map[string][]string{},
	}
}

func (f *fakeRepo) Create(_ context.Context, p *model.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id string, relations ...string) (*model.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	cp.OptionGroups = nil
	if len(relations) > 0 {
		for _, gid := range f.assignments[id] {
			cp.OptionGroups = append(cp.OptionGroups, *f.groups[gid])
		}
	}
	return &cp, nil
}

func (f *fakeRepo) FindAll(_ context.Context, _ *dto.ProductFilters) ([]model.Product, int, error) {
	var out []model.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, len(out), nil
}

func (f *fakeRepo) CreateOptionGroup(_ context.Context, g *model.ProductOptionGroup) error {
	cp := *g
	f.groups[g.ID] = &cp
	return nil
}

func (f *fakeRepo) FindOptionGroupByID(_ context.Context, id string) (*model.ProductOptionGroup, error) {
	g, ok := f.groups[id]
	if !ok {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (f *fakeRepo) HasOptionGroup(_ context.Context, productID, groupID string) (bool, error) {
	for _, gid := range f.assignments[productID] {
		if gid == groupID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) AddOptionGroup(_ context.Context, productID, groupID string) error {
	f.assignments[productID] = append(f.assignments[productID], groupID)
	return nil
}

func ctxIn(lang string) context.Context {
	return requestctx.With(context.Background(), requestctx.RequestContext{LanguageCode: lang, ChannelID: "default"})
}

func TestCreateProduct(t *testing.T) {
	repo := newFakeRepo()
	uc := NewProductUseCase(repo, translatable.NewResolver("en"), logger.NewNop())

	p, err := uc.CreateProduct(ctxIn("id"), &dto.CreateProductInput{
		MerchantID: "m1",
		Enabled:    true,
		Translations: []translatable.Input{
			{LanguageCode: "en", Name: "Shirt", Slug: "shirt"},
			{LanguageCode: "id", Name: "Kemeja", Slug: "kemeja"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Kemeja", p.Name)
	assert.Equal(t, "kemeja", p.Slug)
	assert.Len(t, repo.products, 1)
	assert.Len(t, repo.products[p.ID].Translations, 2)
}

func TestCreateProductRequiresTranslation(t *testing.T) {
	uc := NewProductUseCase(newFakeRepo(), translatable.NewResolver("en"), logger.NewNop())

	_, err := uc.CreateProduct(ctxIn("en"), &dto.CreateProductInput{MerchantID: "m1"})
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidInput))
}

func TestCreateOptionGroupRejectsDuplicateCodes(t *testing.T) {
	repo := newFakeRepo()
	uc := NewProductUseCase(repo, translatable.NewResolver("en"), logger.NewNop())

	_, err := uc.CreateOptionGroup(ctxIn("en"), &dto.CreateOptionGroupInput{
		Code:         "size",
		Translations: []translatable.Input{{LanguageCode: "en", Name: "Size"}},
		Options: []dto.CreateOptionInput{
			{Code: "s", Translations: []translatable.Input{{LanguageCode: "en", Name: "S"}}},
			{Code: "s", Translations: []translatable.Input{{LanguageCode: "en", Name: "Small"}}},
		},
	})
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, "s", appErr.Params["code"])
	assert.Empty(t, repo.groups)
}

func TestAddOptionGroupToProduct(t *testing.T) {
	repo := newFakeRepo()
	uc := NewProductUseCase(repo, translatable.NewResolver("en"), logger.NewNop())
	ctx := ctxIn("en")

	p, err := uc.CreateProduct(ctx, &dto.CreateProductInput{
		MerchantID:   "m1",
		Translations: []translatable.Input{{LanguageCode: "en", Name: "Shirt"}},
	})
	require.NoError(t, err)
	g, err := uc.CreateOptionGroup(ctx, &dto.CreateOptionGroupInput{
		Code:         "size",
		Translations: []translatable.Input{{LanguageCode: "en", Name: "Size"}},
		Options: []dto.CreateOptionInput{
			{Code: "s", Translations: []translatable.Input{{LanguageCode: "en", Name: "Small"}}},
			{Code: "m", Translations: []translatable.Input{{LanguageCode: "en", Name: "Medium"}}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Size", g.Name)
	assert.Equal(t, []string{"Small", "Medium"}, []string{g.Options[0].Name, g.Options[1].Name})

	got, err := uc.AddOptionGroupToProduct(ctx, p.ID, g.ID)
	require.NoError(t, err)
	require.Len(t, got.OptionGroups, 1)
	assert.Equal(t, "Size", got.OptionGroups[0].Name)

	_, err = uc.AddOptionGroupToProduct(ctx, p.ID, g.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
}

func TestAddOptionGroupToProductNotFound(t *testing.T) {
	uc := NewProductUseCase(newFakeRepo(), translatable.NewResolver("en"), logger.NewNop())

	_, err := uc.AddOptionGroupToProduct(ctxIn("en"), "missing", "g1")
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindEntityNotFound, appErr.Kind)
	assert.Equal(t, "Product", appErr.Params["entityName"])
	assert.Equal(t, "missing", appErr.Params["id"])
}

func TestGetProductMissing(t *testing.T) {
	uc := NewProductUseCase(newFakeRepo(), translatable.NewResolver("en"), logger.NewNop())

	p, err := uc.GetProduct(ctxIn("en"), "missing")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestUntranslatedOptionsAreNamedByCode(t *testing.T) {
	repo := newFakeRepo()
	uc := NewProductUseCase(repo, translatable.NewResolver("en"), logger.NewNop())
	ctx := ctxIn("en")

	p, err := uc.CreateProduct(ctx, &dto.CreateProductInput{
		MerchantID:   "m1",
		Translations: []translatable.Input{{LanguageCode: "en", Name: "Trousers"}},
	})
	require.NoError(t, err)
	g, err := uc.CreateOptionGroup(ctx, &dto.CreateOptionGroupInput{
		Code:         "fit",
		Translations: []translatable.Input{{LanguageCode: "en", Name: "Fit"}},
		Options:      []dto.CreateOptionInput{{Code: "xl"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "xl", g.Options[0].Name)
	assert.Empty(t, repo.groups[g.ID].Options[0].Translations)

	_, err = uc.AddOptionGroupToProduct(ctx, p.ID, g.ID)
	require.NoError(t, err)

	got, err := uc.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.OptionGroups, 1)
	assert.Equal(t, "xl", got.OptionGroups[0].Options[0].Name)
}

func TestCreateOptionGroupRequiresTranslation(t *testing.T) {
	repo := newFakeRepo()
	uc := NewProductUseCase(repo, translatable.NewResolver("en"), logger.NewNop())

	_, err := uc.CreateOptionGroup(ctxIn("en"), &dto.CreateOptionGroupInput{
		Code:    "fit",
		Options: []dto.CreateOptionInput{{Code: "xl"}},
	})
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidInput))
	assert.Empty(t, repo.groups)
}
