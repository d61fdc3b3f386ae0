package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/combination"
	"github.com/fekuna/omnipos-catalog-service/internal/facet"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/broker"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/cache"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/pricing"
	pricingdto "github.com/fekuna/omnipos-catalog-service/internal/pricing/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/internal/requestctx"
	"github.com/fekuna/omnipos-catalog-service/internal/tax"
	"github.com/fekuna/omnipos-catalog-service/internal/translatable"
	"github.com/fekuna/omnipos-catalog-service/internal/variant"
	"github.com/fekuna/omnipos-catalog-service/internal/variant/dto"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	keyTranslationsRequired = "error.translations-required"
	keyGenerationLimit      = "error.variant-generation-limit-exceeded"

	defaultSKU = "sku-not-set"
)

// Options tune the variant use-case.
type Options struct {
	DefaultLanguageCode string
	// DefaultChannelID is used when the request names no channel.
	DefaultChannelID string
	// GenerationLimit caps the variants one generation may create. Zero
	// disables the check.
	GenerationLimit int
	CacheTTL        time.Duration
}

// Deps lists the collaborators of the variant use-case. Cache, Search and
// Publisher are optional.
type Deps struct {
	Repo      variant.Repository
	Products  product.Repository
	Facets    facet.UseCase
	Pricing   pricing.UseCase
	Tax       tax.UseCase
	Cache     *cache.RedisClient
	Search    Indexer
	Publisher broker.Publisher
	Logger    logger.ZapLogger
	Tracer    trace.Tracer
	Options   Options
	Now       func() time.Time
}

type variantUseCase struct {
	repo      variant.Repository
	products  product.Repository
	facets    facet.UseCase
	pricing   pricing.UseCase
	tax       tax.UseCase
	cache     *cache.RedisClient
	search    Indexer
	publisher broker.Publisher
	resolver  translatable.Resolver
	logger    logger.ZapLogger
	tracer    trace.Tracer
	opts      Options
	now       func() time.Time
}

func NewVariantUseCase(deps Deps) variant.UseCase {
	uc := &variantUseCase{
		repo:      deps.Repo,
		products:  deps.Products,
		facets:    deps.Facets,
		pricing:   deps.Pricing,
		tax:       deps.Tax,
		cache:     deps.Cache,
		search:    deps.Search,
		publisher: deps.Publisher,
		resolver:  translatable.NewResolver(deps.Options.DefaultLanguageCode),
		logger:    deps.Logger,
		tracer:    deps.Tracer,
		opts:      deps.Options,
		now:       deps.Now,
	}
	uc.opts.DefaultLanguageCode = uc.resolver.DefaultLanguage
	if uc.logger == nil {
		uc.logger = logger.NewNop()
	}
	if uc.tracer == nil {
		uc.tracer = otel.Tracer("catalog/variant")
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	if uc.opts.CacheTTL <= 0 {
		uc.opts.CacheTTL = 5 * time.Minute
	}
	return uc
}

func (uc *variantUseCase) GenerateVariantsForProduct(ctx context.Context, input *dto.GenerateVariantsInput) (_ []model.ProductVariant, err error) {
	ctx, span := uc.tracer.Start(ctx, "variant.GenerateVariantsForProduct",
		trace.WithAttributes(attribute.String("product.id", input.ProductID)))
	defer func() { endSpan(span, err) }()

	p, err := uc.products.FindByID(ctx, input.ProductID, product.RelationOptionGroupOptions)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound("Product", input.ProductID)
	}

	defaultLang := uc.opts.DefaultLanguageCode
	productName := "product_" + p.ID
	if t, ok := translatable.Exact(p.Translations, defaultLang); ok {
		productName = t.Name
	}

	groups := make([][]model.ProductOption, len(p.OptionGroups))
	for i, g := range p.OptionGroups {
		groups[i] = g.Options
	}
	combos := [][]model.ProductOption{{}}
	if len(groups) > 0 {
		count := combination.Count(groups)
		if uc.opts.GenerationLimit > 0 && count > uc.opts.GenerationLimit {
			return nil, apperror.Invalid(keyGenerationLimit, map[string]any{
				"count": count,
				"limit": uc.opts.GenerationLimit,
			})
		}
		combos = combination.Generate(groups)
	}

	taxCategoryID := ""
	if input.DefaultTaxCategoryID != nil {
		taxCategoryID = *input.DefaultTaxCategoryID
	}
	if taxCategoryID == "" {
		category, err := uc.tax.DefaultTaxCategory(ctx)
		if err != nil {
			return nil, err
		}
		taxCategoryID = category.ID
	}
	sku := defaultSKU
	if input.DefaultSKU != nil && *input.DefaultSKU != "" {
		sku = *input.DefaultSKU
	}
	var price int64
	if input.DefaultPrice != nil {
		price = *input.DefaultPrice
	}

	lang := uc.language(ctx)
	variants := make([]model.ProductVariant, 0, len(combos))
	for _, combo := range combos {
		optionCodes := make([]string, len(combo))
		for i, o := range combo {
			optionCodes[i] = o.Code
		}
		v, err := uc.Create(ctx, p, &dto.CreateVariantInput{
			ProductID:     p.ID,
			SKU:           sku,
			Price:         price,
			TaxCategoryID: taxCategoryID,
			OptionCodes:   optionCodes,
			Translations: []translatable.Input{{
				LanguageCode: lang,
				Name:         variantName(productName, combo, defaultLang),
			}},
		})
		if err != nil {
			return nil, err
		}
		variants = append(variants, *v)
	}

	for i, v := range variants {
		if variants[i], err = uc.resolver.Variant(v, defaultLang, variant.RelationOptions); err != nil {
			return nil, err
		}
	}
	uc.logger.Info("variants generated",
		zap.String("product_id", p.ID),
		zap.Int("count", len(variants)),
	)
	return variants, nil
}

// variantName joins the product name with the names of the chosen options.
func variantName(productName string, options []model.ProductOption, languageCode string) string {
	if len(options) == 0 {
		return productName
	}
	names := make([]string, len(options))
	for i, o := range options {
		names[i] = o.Code
		if t, ok := translatable.Exact(o.Translations, languageCode); ok {
			names[i] = t.Name
		}
	}
	return productName + " " + strings.Join(names, " ")
}

func (uc *variantUseCase) CreateVariant(ctx context.Context, input *dto.CreateVariantInput) (*model.ProductVariant, error) {
	p, err := uc.products.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound("Product", input.ProductID)
	}
	return uc.Create(ctx, p, input)
}

func (uc *variantUseCase) Create(ctx context.Context, p *model.Product, input *dto.CreateVariantInput) (_ *model.ProductVariant, err error) {
	ctx, span := uc.tracer.Start(ctx, "variant.Create",
		trace.WithAttributes(attribute.String("product.id", p.ID)))
	defer func() { endSpan(span, err) }()

	id := uuid.New().String()
	translations := translatable.Build(id, input.Translations)
	if len(translations) == 0 {
		return nil, apperror.Invalid(keyTranslationsRequired, nil)
	}

	taxCategoryID := input.TaxCategoryID
	if taxCategoryID == "" {
		category, err := uc.tax.DefaultTaxCategory(ctx)
		if err != nil {
			return nil, err
		}
		taxCategoryID = category.ID
	}

	options, err := uc.repo.FindOptionsByCodes(ctx, input.OptionCodes)
	if err != nil {
		return nil, err
	}

	channelID := uc.channel(ctx)
	price, err := uc.pricing.InitialPrice(ctx, id, channelID, input.Price, taxCategoryID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	v := &model.ProductVariant{
		BaseModel:     model.BaseModel{ID: id, CreatedAt: now, UpdatedAt: now},
		ProductID:     p.ID,
		SKU:           input.SKU,
		TaxCategoryID: taxCategoryID,
		Translations:  translations,
		Options:       options,
		Prices:        []model.ChannelPrice{*price},
	}
	out, err := uc.resolver.Variant(*v, uc.language(ctx), variant.RelationOptions)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, v, price); err != nil {
		return nil, err
	}

	uc.logger.Info("variant created",
		zap.String("variant_id", id),
		zap.String("product_id", p.ID),
		zap.Int("options", len(options)),
	)
	uc.afterWrite(ctx, variant.EventVariantCreated, p.ID, channelID, []model.ProductVariant{*v})
	return &out, nil
}

func (uc *variantUseCase) Update(ctx context.Context, input *dto.UpdateVariantInput) (_ *model.ProductVariant, err error) {
	ctx, span := uc.tracer.Start(ctx, "variant.Update",
		trace.WithAttributes(attribute.String("variant.id", input.ID)))
	defer func() { endSpan(span, err) }()

	v, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apperror.NotFound("ProductVariant", input.ID)
	}

	if input.TaxCategoryID != nil && *input.TaxCategoryID != "" {
		if _, err := uc.tax.GetTaxCategory(ctx, *input.TaxCategoryID); err != nil {
			return nil, err
		}
		v.TaxCategoryID = *input.TaxCategoryID
	}
	if input.SKU != nil {
		v.SKU = *input.SKU
	}
	diff := translatable.Compute(v.ID, v.Translations, input.Translations)
	v.UpdatedAt = uc.now()

	if err := uc.repo.Update(ctx, v, diff); err != nil {
		return nil, err
	}

	channelID := uc.channel(ctx)
	if err := uc.updatePrice(ctx, v, channelID, input); err != nil {
		return nil, err
	}

	updated, err := uc.repo.FindByID(ctx, v.ID, variant.RelationOptions, variant.RelationFacetValues)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NotFound("ProductVariant", v.ID)
	}
	uc.afterWrite(ctx, variant.EventVariantUpdated, updated.ProductID, channelID, []model.ProductVariant{*updated})

	out, err := uc.present(ctx, []model.ProductVariant{*updated}, channelID, uc.opts.DefaultLanguageCode,
		variant.RelationOptions, variant.RelationFacetValues)
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// updatePrice writes the channel price when the update names a price or a
// tax category. A tax category change alone only touches an existing price.
func (uc *variantUseCase) updatePrice(ctx context.Context, v *model.ProductVariant, channelID string, input *dto.UpdateVariantInput) error {
	taxChanged := input.TaxCategoryID != nil && *input.TaxCategoryID != ""
	if input.Price == nil && !taxChanged {
		return nil
	}

	var amount int64
	switch {
	case input.Price != nil:
		amount = *input.Price
	default:
		current := findPrice(v.Prices, channelID)
		if current == nil {
			return nil
		}
		amount = current.Price
	}

	var taxCategoryID *string
	if taxChanged {
		taxCategoryID = input.TaxCategoryID
	}
	rc := requestctx.From(ctx)
	_, err := uc.pricing.SetChannelPrice(ctx, &pricingdto.SetChannelPriceInput{
		VariantID:     v.ID,
		ChannelID:     channelID,
		Price:         amount,
		TaxCategoryID: taxCategoryID,
		ReferenceType: "variant_update",
		ReferenceID:   v.ID,
		UserID:        rc.UserID,
	})
	return err
}

func findPrice(prices []model.ChannelPrice, channelID string) *model.ChannelPrice {
	for i := range prices {
		if prices[i].ChannelID == channelID {
			return &prices[i]
		}
	}
	return nil
}

func (uc *variantUseCase) AddFacetValues(ctx context.Context, variantIDs, facetValueIDs []string) (_ []model.ProductVariant, err error) {
	ctx, span := uc.tracer.Start(ctx, "variant.AddFacetValues",
		trace.WithAttributes(attribute.Int("variants", len(variantIDs)), attribute.Int("facet_values", len(facetValueIDs))))
	defer func() { endSpan(span, err) }()

	values, err := uc.facets.GetFacetValues(ctx, unique(facetValueIDs))
	if err != nil {
		return nil, err
	}

	variantIDs = unique(variantIDs)
	found, err := uc.repo.FindByIDs(ctx, variantIDs, variant.RelationOptions, variant.RelationFacetValues)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.ProductVariant, len(found))
	for _, v := range found {
		byID[v.ID] = v
	}
	variants := make([]model.ProductVariant, 0, len(variantIDs))
	for _, id := range variantIDs {
		v, ok := byID[id]
		if !ok {
			return nil, apperror.NotFound("ProductVariant", id)
		}
		variants = append(variants, v)
	}

	for i := range variants {
		v := &variants[i]
		var added []string
		for _, fv := range values {
			if v.HasFacetValue(fv.ID) {
				continue
			}
			v.FacetValues = append(v.FacetValues, fv)
			added = append(added, fv.ID)
		}
		if len(added) == 0 {
			continue
		}
		if err := uc.repo.AddFacetValues(ctx, v.ID, added); err != nil {
			return nil, err
		}
	}

	channelID := uc.channel(ctx)
	for productID, group := range groupByProduct(variants) {
		uc.afterWrite(ctx, variant.EventVariantFacetValuesAdded, productID, channelID, group)
	}

	return uc.present(ctx, variants, channelID, uc.opts.DefaultLanguageCode,
		variant.RelationOptions, variant.RelationFacetValues)
}

func (uc *variantUseCase) FindOne(ctx context.Context, id string) (_ *model.ProductVariant, err error) {
	ctx, span := uc.tracer.Start(ctx, "variant.FindOne", trace.WithAttributes(attribute.String("variant.id", id)))
	defer func() { endSpan(span, err) }()

	relations := []string{variant.RelationProduct, variant.RelationOptions, variant.RelationFacetValues}
	v, err := uc.repo.FindByID(ctx, id, relations...)
	if err != nil || v == nil {
		return nil, err
	}
	out, err := uc.present(ctx, []model.ProductVariant{*v}, uc.channel(ctx), uc.language(ctx), relations...)
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

type cachedList struct {
	Variants []model.ProductVariant `json:"variants"`
	Total    int                    `json:"total"`
}

func (uc *variantUseCase) ListByProduct(ctx context.Context, filters *dto.VariantFilters) (_ []model.ProductVariant, _ int, err error) {
	ctx, span := uc.tracer.Start(ctx, "variant.ListByProduct",
		trace.WithAttributes(attribute.String("product.id", filters.ProductID)))
	defer func() { endSpan(span, err) }()

	if filters.Query != "" && uc.search == nil {
		// Without an index the query cannot narrow the listing.
		uc.logger.Debug("variant search disabled, ignoring query", zap.String("product_id", filters.ProductID))
		unfiltered := *filters
		unfiltered.Query = ""
		filters = &unfiltered
	}

	channelID, lang := uc.channel(ctx), uc.language(ctx)
	key := listCacheKey(filters, channelID, lang)
	if uc.cache != nil {
		var cached cachedList
		hit, err := uc.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			uc.logger.Warn("variant list cache read failed", zap.String("key", key), zap.Error(err))
		}
		if hit {
			return cached.Variants, cached.Total, nil
		}
	}

	relations := []string{variant.RelationOptions, variant.RelationFacetValues}
	var (
		variants []model.ProductVariant
		total    int
	)
	if filters.Query != "" {
		variants, total, err = uc.searchVariants(ctx, filters, relations)
	} else {
		variants, total, err = uc.repo.FindByProduct(ctx, filters, relations...)
	}
	if err != nil {
		return nil, 0, err
	}

	variants, err = uc.present(ctx, variants, channelID, lang, relations...)
	if err != nil {
		return nil, 0, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetJSON(ctx, key, cachedList{Variants: variants, Total: total}, uc.opts.CacheTTL); err != nil {
			uc.logger.Warn("variant list cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return variants, total, nil
}

// present attaches tax categories to the channel prices, projects the price
// of channelID and translates the variants into languageCode.
func (uc *variantUseCase) present(ctx context.Context, variants []model.ProductVariant, channelID, languageCode string, relations ...string) ([]model.ProductVariant, error) {
	var ids []string
	for _, v := range variants {
		for _, p := range v.Prices {
			ids = append(ids, p.TaxCategoryID)
		}
	}
	categories, err := uc.tax.GetTaxCategories(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]model.ProductVariant, len(variants))
	for i, v := range variants {
		prices := make([]model.ChannelPrice, len(v.Prices))
		for j, p := range v.Prices {
			p.TaxCategory = categories[p.TaxCategoryID]
			prices[j] = p
		}
		v.Prices = prices

		if v, err = variant.ApplyChannelPrice(v, channelID); err != nil {
			return nil, err
		}
		if out[i], err = uc.resolver.Variant(v, languageCode, relations...); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (uc *variantUseCase) channel(ctx context.Context) string {
	if id := requestctx.From(ctx).ChannelID; id != "" {
		return id
	}
	return uc.opts.DefaultChannelID
}

func (uc *variantUseCase) language(ctx context.Context) string {
	if code := requestctx.From(ctx).LanguageCode; code != "" {
		return code
	}
	return uc.opts.DefaultLanguageCode
}

func listCacheKey(f *dto.VariantFilters, channelID, languageCode string) string {
	return fmt.Sprintf("%s%s:%s:%d:%d:%s", listCachePrefix(f.ProductID), channelID, languageCode, f.Page, f.PageSize, f.Query)
}

func listCachePrefix(productID string) string {
	return "variants:list:" + productID + ":"
}

func groupByProduct(variants []model.ProductVariant) map[string][]model.ProductVariant {
	out := make(map[string][]model.ProductVariant)
	for _, v := range variants {
		out[v.ProductID] = append(out[v.ProductID], v)
	}
	return out
}

func unique(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
