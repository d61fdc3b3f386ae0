package handler

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/requestctx"
	catalogv1 "github.com/fekuna/omnipos-catalog-service/internal/rpc/catalogv1"
	"go.uber.org/zap"
)

const keyMissingMerchant = "error.missing-merchant"

var _ catalogv1.ProductServiceServer = (*ProductHandler)(nil)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) CreateProduct(ctx context.Context, req *catalogv1.CreateProductRequest) (*catalogv1.ProductResponse, error) {
	merchantID := requestctx.From(ctx).MerchantID
	if merchantID == "" {
		return nil, apperror.Unauthenticated(keyMissingMerchant)
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	p, err := h.uc.CreateProduct(ctx, &dto.CreateProductInput{
		MerchantID:   merchantID,
		Enabled:      enabled,
		Translations: catalogv1.ToTranslationInputs(req.Translations),
	})
	if err != nil {
		h.logger.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	out := catalogv1.FromProduct(*p)
	return &catalogv1.ProductResponse{Product: &out}, nil
}

func (h *ProductHandler) GetProduct(ctx context.Context, req *catalogv1.GetProductRequest) (*catalogv1.ProductResponse, error) {
	p, err := h.uc.GetProduct(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound("Product", req.ID)
	}

	out := catalogv1.FromProduct(*p)
	return &catalogv1.ProductResponse{Product: &out}, nil
}

func (h *ProductHandler) ListProducts(ctx context.Context, req *catalogv1.ListProductsRequest) (*catalogv1.ListProductsResponse, error) {
	products, count, err := h.uc.ListProducts(ctx, &dto.ProductFilters{
		MerchantID: requestctx.From(ctx).MerchantID,
		Page:       int(req.Page),
		PageSize:   int(req.PageSize),
	})
	if err != nil {
		return nil, err
	}

	out := make([]catalogv1.Product, len(products))
	for i, p := range products {
		out[i] = catalogv1.FromProduct(p)
	}
	return &catalogv1.ListProductsResponse{Products: out, Total: int32(count)}, nil
}

func (h *ProductHandler) CreateOptionGroup(ctx context.Context, req *catalogv1.CreateOptionGroupRequest) (*catalogv1.OptionGroupResponse, error) {
	input := &dto.CreateOptionGroupInput{
		Code:         req.Code,
		Translations: catalogv1.ToTranslationInputs(req.Translations),
	}
	for _, o := range req.Options {
		input.Options = append(input.Options, dto.CreateOptionInput{
			Code:         o.Code,
			Translations: catalogv1.ToTranslationInputs(o.Translations),
		})
	}

	g, err := h.uc.CreateOptionGroup(ctx, input)
	if err != nil {
		h.logger.Error("failed to create option group", zap.Error(err))
		return nil, err
	}

	out := catalogv1.FromOptionGroup(*g)
	return &catalogv1.OptionGroupResponse{OptionGroup: &out}, nil
}

func (h *ProductHandler) AddOptionGroupToProduct(ctx context.Context, req *catalogv1.AddOptionGroupToProductRequest) (*catalogv1.ProductResponse, error) {
	p, err := h.uc.AddOptionGroupToProduct(ctx, req.ProductID, req.OptionGroupID)
	if err != nil {
		return nil, err
	}

	out := catalogv1.FromProduct(*p)
	return &catalogv1.ProductResponse{Product: &out}, nil
}
