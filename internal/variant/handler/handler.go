package handler

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	catalogv1 "github.com/fekuna/omnipos-catalog-service/internal/rpc/catalogv1"
	"github.com/fekuna/omnipos-catalog-service/internal/variant"
	"github.com/fekuna/omnipos-catalog-service/internal/variant/dto"
	"go.uber.org/zap"
)

var _ catalogv1.ProductVariantServiceServer = (*VariantHandler)(nil)

type VariantHandler struct {
	uc     variant.UseCase
	logger logger.ZapLogger
}

func NewVariantHandler(uc variant.UseCase, log logger.ZapLogger) *VariantHandler {
	return &VariantHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *VariantHandler) GetVariant(ctx context.Context, req *catalogv1.GetVariantRequest) (*catalogv1.VariantResponse, error) {
	v, err := h.uc.FindOne(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apperror.NotFound("ProductVariant", req.ID)
	}

	out := catalogv1.FromVariant(*v)
	return &catalogv1.VariantResponse{Variant: &out}, nil
}

func (h *VariantHandler) ListVariants(ctx context.Context, req *catalogv1.ListVariantsRequest) (*catalogv1.ListVariantsResponse, error) {
	variants, total, err := h.uc.ListByProduct(ctx, &dto.VariantFilters{
		ProductID: req.ProductID,
		Query:     req.Query,
		Page:      int(req.Page),
		PageSize:  int(req.PageSize),
	})
	if err != nil {
		return nil, err
	}
	return &catalogv1.ListVariantsResponse{
		Variants: catalogv1.FromVariants(variants),
		Total:    int32(total),
	}, nil
}

func (h *VariantHandler) CreateVariant(ctx context.Context, req *catalogv1.CreateVariantRequest) (*catalogv1.VariantResponse, error) {
	v, err := h.uc.CreateVariant(ctx, &dto.CreateVariantInput{
		ProductID:     req.ProductID,
		SKU:           req.SKU,
		Price:         req.Price,
		TaxCategoryID: req.TaxCategoryID,
		OptionCodes:   req.OptionCodes,
		Translations:  catalogv1.ToTranslationInputs(req.Translations),
	})
	if err != nil {
		h.logger.Error("failed to create variant", zap.String("product_id", req.ProductID), zap.Error(err))
		return nil, err
	}

	out := catalogv1.FromVariant(*v)
	return &catalogv1.VariantResponse{Variant: &out}, nil
}

func (h *VariantHandler) UpdateVariant(ctx context.Context, req *catalogv1.UpdateVariantRequest) (*catalogv1.VariantResponse, error) {
	v, err := h.uc.Update(ctx, &dto.UpdateVariantInput{
		ID:            req.ID,
		SKU:           req.SKU,
		Price:         req.Price,
		TaxCategoryID: req.TaxCategoryID,
		Translations:  catalogv1.ToTranslationInputs(req.Translations),
	})
	if err != nil {
		h.logger.Error("failed to update variant", zap.String("variant_id", req.ID), zap.Error(err))
		return nil, err
	}

	out := catalogv1.FromVariant(*v)
	return &catalogv1.VariantResponse{Variant: &out}, nil
}

func (h *VariantHandler) GenerateVariants(ctx context.Context, req *catalogv1.GenerateVariantsRequest) (*catalogv1.VariantsResponse, error) {
	variants, err := h.uc.GenerateVariantsForProduct(ctx, &dto.GenerateVariantsInput{
		ProductID:            req.ProductID,
		DefaultTaxCategoryID: req.DefaultTaxCategoryID,
		DefaultPrice:         req.DefaultPrice,
		DefaultSKU:           req.DefaultSKU,
	})
	if err != nil {
		h.logger.Error("failed to generate variants", zap.String("product_id", req.ProductID), zap.Error(err))
		return nil, err
	}
	return &catalogv1.VariantsResponse{Variants: catalogv1.FromVariants(variants)}, nil
}

func (h *VariantHandler) AddFacetValuesToVariants(ctx context.Context, req *catalogv1.AddFacetValuesToVariantsRequest) (*catalogv1.VariantsResponse, error) {
	variants, err := h.uc.AddFacetValues(ctx, req.VariantIDs, req.FacetValueIDs)
	if err != nil {
		h.logger.Error("failed to add facet values", zap.Strings("variant_ids", req.VariantIDs), zap.Error(err))
		return nil, err
	}
	return &catalogv1.VariantsResponse{Variants: catalogv1.FromVariants(variants)}, nil
}
