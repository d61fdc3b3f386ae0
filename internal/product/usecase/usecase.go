package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/requestctx"
	"github.com/fekuna/omnipos-catalog-service/internal/translatable"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	keyTranslationsRequired       = "error.translations-required"
	keyOptionCodeDuplicate        = "error.option-code-duplicate"
	keyOptionGroupAlreadyAssigned = "error.option-group-already-assigned"
)

type productUseCase struct {
	repo     product.Repository
	resolver translatable.Resolver
	logger   logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, resolver translatable.Resolver, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:     repo,
		resolver: resolver,
		logger:   log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	id := uuid.New().String()
	translations := translatable.Build(id, input.Translations)
	if len(translations) == 0 {
		return nil, apperror.Invalid(keyTranslationsRequired, nil)
	}

	now := time.Now()
	p := &model.Product{
		BaseModel:    model.BaseModel{ID: id, CreatedAt: now, UpdatedAt: now},
		MerchantID:   input.MerchantID,
		Enabled:      input.Enabled,
		Translations: translations,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.logger.Info("product created", zap.String("product_id", id))
	return uc.translate(ctx, *p)
}

// GetProduct returns nil when the product does not exist.
func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id, product.RelationOptionGroupOptions)
	if err != nil || p == nil {
		return nil, err
	}
	return uc.translate(ctx, *p)
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	products, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, err
	}

	lang := requestctx.From(ctx).LanguageCode
	for i, p := range products {
		if products[i], err = uc.resolver.Product(p, lang); err != nil {
			return nil, 0, err
		}
	}
	return products, count, nil
}

func (uc *productUseCase) CreateOptionGroup(ctx context.Context, input *dto.CreateOptionGroupInput) (*model.ProductOptionGroup, error) {
	id := uuid.New().String()
	translations := translatable.Build(id, input.Translations)
	if len(translations) == 0 {
		return nil, apperror.Invalid(keyTranslationsRequired, nil)
	}

	now := time.Now()
	g := &model.ProductOptionGroup{
		BaseModel:    model.BaseModel{ID: id, CreatedAt: now, UpdatedAt: now},
		Code:         input.Code,
		Translations: translations,
	}

	seen := make(map[string]bool, len(input.Options))
	for i, in := range input.Options {
		if seen[in.Code] {
			return nil, apperror.Invalid(keyOptionCodeDuplicate, map[string]any{"code": in.Code})
		}
		seen[in.Code] = true

		optionID := uuid.New().String()
		g.Options = append(g.Options, model.ProductOption{
			BaseModel:    model.BaseModel{ID: optionID, CreatedAt: now, UpdatedAt: now},
			GroupID:      id,
			Code:         in.Code,
			SortOrder:    i,
			Translations: translatable.Build(optionID, in.Translations),
		})
	}

	out, err := uc.resolver.OptionGroup(*g, requestctx.From(ctx).LanguageCode)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.CreateOptionGroup(ctx, g); err != nil {
		return nil, err
	}
	return &out, nil
}

func (uc *productUseCase) AddOptionGroupToProduct(ctx context.Context, productID, optionGroupID string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound("Product", productID)
	}

	g, err := uc.repo.FindOptionGroupByID(ctx, optionGroupID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, apperror.NotFound("ProductOptionGroup", optionGroupID)
	}

	assigned, err := uc.repo.HasOptionGroup(ctx, productID, optionGroupID)
	if err != nil {
		return nil, err
	}
	if assigned {
		return nil, apperror.Conflict(keyOptionGroupAlreadyAssigned, map[string]any{"optionGroupId": optionGroupID})
	}

	if err := uc.repo.AddOptionGroup(ctx, productID, optionGroupID); err != nil {
		return nil, err
	}

	p, err = uc.repo.FindByID(ctx, productID, product.RelationOptionGroupOptions)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound("Product", productID)
	}
	return uc.translate(ctx, *p)
}

func (uc *productUseCase) translate(ctx context.Context, p model.Product) (*model.Product, error) {
	out, err := uc.resolver.Product(p, requestctx.From(ctx).LanguageCode, translatable.RelationOptionGroups)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
