package handler

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/facet"
	"github.com/fekuna/omnipos-catalog-service/internal/facet/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/requestctx"
	catalogv1 "github.com/fekuna/omnipos-catalog-service/internal/rpc/catalogv1"
	"go.uber.org/zap"
)

const keyMissingMerchant = "error.missing-merchant"

var _ catalogv1.FacetServiceServer = (*FacetHandler)(nil)

type FacetHandler struct {
	uc     facet.UseCase
	logger logger.ZapLogger
}

func NewFacetHandler(uc facet.UseCase, log logger.ZapLogger) *FacetHandler {
	return &FacetHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *FacetHandler) CreateFacet(ctx context.Context, req *catalogv1.CreateFacetRequest) (*catalogv1.FacetResponse, error) {
	merchantID := requestctx.From(ctx).MerchantID
	if merchantID == "" {
		return nil, apperror.Unauthenticated(keyMissingMerchant)
	}

	input := &dto.CreateFacetInput{
		MerchantID:   merchantID,
		Code:         req.Code,
		IsPrivate:    req.IsPrivate,
		Translations: catalogv1.ToTranslationInputs(req.Translations),
	}
	for _, v := range req.Values {
		input.Values = append(input.Values, dto.CreateFacetValueInput{
			Code:         v.Code,
			Translations: catalogv1.ToTranslationInputs(v.Translations),
		})
	}

	f, err := h.uc.CreateFacet(ctx, input)
	if err != nil {
		h.logger.Error("failed to create facet", zap.Error(err))
		return nil, err
	}

	out := catalogv1.FromFacet(*f)
	return &catalogv1.FacetResponse{Facet: &out}, nil
}

func (h *FacetHandler) GetFacet(ctx context.Context, req *catalogv1.GetFacetRequest) (*catalogv1.FacetResponse, error) {
	f, err := h.uc.GetFacet(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	// Facets of other merchants are reported as missing.
	if f == nil || f.MerchantID != requestctx.From(ctx).MerchantID {
		return nil, apperror.NotFound("Facet", req.ID)
	}

	out := catalogv1.FromFacet(*f)
	return &catalogv1.FacetResponse{Facet: &out}, nil
}

func (h *FacetHandler) ListFacets(ctx context.Context, req *catalogv1.ListFacetsRequest) (*catalogv1.ListFacetsResponse, error) {
	facets, count, err := h.uc.ListFacets(ctx, &dto.FacetFilters{
		MerchantID: requestctx.From(ctx).MerchantID,
		Page:       int(req.Page),
		PageSize:   int(req.PageSize),
	})
	if err != nil {
		return nil, err
	}

	out := make([]catalogv1.Facet, len(facets))
	for i, f := range facets {
		out[i] = catalogv1.FromFacet(f)
	}
	return &catalogv1.ListFacetsResponse{Facets: out, Total: int32(count)}, nil
}

func (h *FacetHandler) CreateFacetValue(ctx context.Context, req *catalogv1.CreateFacetValueRequest) (*catalogv1.FacetValueResponse, error) {
	v, err := h.uc.CreateFacetValue(ctx, &dto.CreateFacetValueInput{
		FacetID:      req.FacetID,
		Code:         req.Code,
		Translations: catalogv1.ToTranslationInputs(req.Translations),
	})
	if err != nil {
		h.logger.Error("failed to create facet value", zap.Error(err))
		return nil, err
	}

	out := catalogv1.FromFacetValue(*v)
	return &catalogv1.FacetValueResponse{FacetValue: &out}, nil
}
