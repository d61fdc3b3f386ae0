package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	facetdto "github.com/fekuna/omnipos-catalog-service/internal/facet/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/search"
	pricingdto "github.com/fekuna/omnipos-catalog-service/internal/pricing/dto"
	productdto "github.com/fekuna/omnipos-catalog-service/internal/product/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/translatable"
	"github.com/fekuna/omnipos-catalog-service/internal/variant/dto"
	"github.com/shopspring/decimal"
)

var errCreateFailed = errors.New("create failed")

type fakeRepo struct {
	mu          sync.Mutex
	variants    map[string]model.ProductVariant
	order       []string
	catalogue   []model.ProductOption
	facetValues map[string]model.FacetValue
	updates     int
	links       int
	creates     int
	failCreate  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		variants:    map[string]model.ProductVariant{},
		facetValues: map[string]model.FacetValue{},
	}
}

func (f *fakeRepo) put(v model.ProductVariant) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.variants[v.ID]; !ok {
		f.order = append(f.order, v.ID)
	}
	f.variants[v.ID] = v
}

func (f *fakeRepo) Create(_ context.Context, v *model.ProductVariant, price *model.ChannelPrice) error {
	f.mu.Lock()
	f.creates++
	fail := f.failCreate != 0 && f.creates == f.failCreate
	f.mu.Unlock()
	if fail {
		return errCreateFailed
	}

	cp := *v
	if price != nil {
		cp.Prices = []model.ChannelPrice{*price}
	}
	f.put(cp)
	return nil
}

func (f *fakeRepo) Update(_ context.Context, v *model.ProductVariant, d translatable.Diff) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates++
	stored := f.variants[v.ID]
	stored.SKU = v.SKU
	stored.TaxCategoryID = v.TaxCategoryID
	stored.UpdatedAt = v.UpdatedAt
	stored.Translations = translatable.Apply(stored.Translations, d)
	f.variants[v.ID] = stored
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id string, _ ...string) (*model.ProductVariant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.variants[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (f *fakeRepo) FindByIDs(_ context.Context, ids []string, _ ...string) ([]model.ProductVariant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.ProductVariant
	for _, id := range ids {
		if v, ok := f.variants[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindByProduct(_ context.Context, filters *dto.VariantFilters, _ ...string) ([]model.ProductVariant, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.ProductVariant
	for _, id := range f.order {
		if v := f.variants[id]; v.ProductID == filters.ProductID {
			out = append(out, v)
		}
	}
	return out, len(out), nil
}

func (f *fakeRepo) AddFacetValues(_ context.Context, variantID string, ids []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	v := f.variants[variantID]
	for _, id := range ids {
		f.links++
		v.FacetValues = append(v.FacetValues, f.facetValues[id])
	}
	f.variants[variantID] = v
	return nil
}

func (f *fakeRepo) FindOptionsByCodes(_ context.Context, codes []string) ([]model.ProductOption, error) {
	var out []model.ProductOption
	for _, code := range codes {
		for _, o := range f.catalogue {
			if o.Code == code {
				out = append(out, o)
			}
		}
	}
	return out, nil
}

type fakeProducts struct {
	products map[string]*model.Product
}

func (f *fakeProducts) Create(context.Context, *model.Product) error { return nil }

func (f *fakeProducts) FindByID(_ context.Context, id string, _ ...string) (*model.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProducts) FindAll(context.Context, *productdto.ProductFilters) ([]model.Product, int, error) {
	return nil, 0, nil
}

func (f *fakeProducts) CreateOptionGroup(context.Context, *model.ProductOptionGroup) error {
	return nil
}

func (f *fakeProducts) FindOptionGroupByID(context.Context, string) (*model.ProductOptionGroup, error) {
	return nil, nil
}

func (f *fakeProducts) HasOptionGroup(context.Context, string, string) (bool, error) {
	return false, nil
}

func (f *fakeProducts) AddOptionGroup(context.Context, string, string) error { return nil }

type fakeFacets struct {
	values map[string]model.FacetValue
}

func (f *fakeFacets) CreateFacet(context.Context, *facetdto.CreateFacetInput) (*model.Facet, error) {
	return nil, nil
}

func (f *fakeFacets) GetFacet(context.Context, string) (*model.Facet, error) { return nil, nil }

func (f *fakeFacets) ListFacets(context.Context, *facetdto.FacetFilters) ([]model.Facet, int, error) {
	return nil, 0, nil
}

func (f *fakeFacets) CreateFacetValue(context.Context, *facetdto.CreateFacetValueInput) (*model.FacetValue, error) {
	return nil, nil
}

func (f *fakeFacets) GetFacetValues(_ context.Context, ids []string) ([]model.FacetValue, error) {
	out := make([]model.FacetValue, 0, len(ids))
	for _, id := range ids {
		v, ok := f.values[id]
		if !ok {
			return nil, apperror.NotFound("FacetValue", id)
		}
		out = append(out, v)
	}
	return out, nil
}

// fakePricing stores prices straight into the variant repository.
type fakePricing struct {
	repo *fakeRepo
	sets []pricingdto.SetChannelPriceInput
}

func (f *fakePricing) InitialPrice(_ context.Context, variantID, channelID string, price int64, taxCategoryID string) (*model.ChannelPrice, error) {
	if price < 0 {
		return nil, apperror.Invalid("error.price-must-not-be-negative", nil)
	}
	return &model.ChannelPrice{
		BaseModel:      model.BaseModel{ID: "price-" + variantID},
		VariantID:      variantID,
		ChannelID:      channelID,
		Price:          price,
		PriceBeforeTax: price,
		TaxCategoryID:  taxCategoryID,
	}, nil
}

func (f *fakePricing) SetChannelPrice(_ context.Context, input *pricingdto.SetChannelPriceInput) (*model.ChannelPrice, error) {
	f.sets = append(f.sets, *input)

	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	v := f.repo.variants[input.VariantID]
	taxCategoryID := v.TaxCategoryID
	if input.TaxCategoryID != nil {
		taxCategoryID = *input.TaxCategoryID
	}
	price := model.ChannelPrice{
		VariantID:      input.VariantID,
		ChannelID:      input.ChannelID,
		Price:          input.Price,
		PriceBeforeTax: input.Price,
		TaxCategoryID:  taxCategoryID,
	}
	prices := make([]model.ChannelPrice, 0, len(v.Prices)+1)
	for _, p := range v.Prices {
		if p.ChannelID != input.ChannelID {
			prices = append(prices, p)
		}
	}
	v.Prices = append(prices, price)
	f.repo.variants[input.VariantID] = v
	return &price, nil
}

func (f *fakePricing) ListPriceChanges(context.Context, *pricingdto.PriceChangeFilters) ([]model.PriceChange, int, error) {
	return nil, 0, nil
}

type fakeTax struct {
	categories map[string]*model.TaxCategory
}

func newFakeTax() *fakeTax {
	return &fakeTax{categories: map[string]*model.TaxCategory{
		"standard": {BaseModel: model.BaseModel{ID: "standard"}, Name: "Standard", IsDefault: true,
			Rates: []model.TaxRate{{Value: decimal.NewFromInt(10), Enabled: true}}},
		"zero": {BaseModel: model.BaseModel{ID: "zero"}, Name: "Zero"},
	}}
}

func (f *fakeTax) DefaultTaxCategory(ctx context.Context) (*model.TaxCategory, error) {
	return f.GetTaxCategory(ctx, "standard")
}

func (f *fakeTax) GetTaxCategory(_ context.Context, id string) (*model.TaxCategory, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, apperror.NotFound("TaxCategory", id)
	}
	return c, nil
}

func (f *fakeTax) GetTaxCategories(_ context.Context, ids []string) (map[string]*model.TaxCategory, error) {
	out := map[string]*model.TaxCategory{}
	for _, id := range ids {
		if c, ok := f.categories[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []any
}

func (f *fakePublisher) Publish(_ context.Context, _ string, event any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakePublisher) published() []any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]any(nil), f.events...)
}

type fakeIndexer struct {
	mu      sync.Mutex
	indexed map[string]any
	hits    []string
}

func (f *fakeIndexer) Index(_ context.Context, _ string, id string, doc any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.indexed == nil {
		f.indexed = map[string]any{}
	}
	f.indexed[id] = doc
	return nil
}

func (f *fakeIndexer) Search(_ context.Context, _ string, _ map[string]any) (*search.SearchResponse, error) {
	res := &search.SearchResponse{}
	res.Hits.Total.Value = len(f.hits)
	for _, id := range f.hits {
		res.Hits.Hits = append(res.Hits.Hits, search.Hit{ID: id})
	}
	return res, nil
}
