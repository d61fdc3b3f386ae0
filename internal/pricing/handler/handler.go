package handler

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/pricing"
	"github.com/fekuna/omnipos-catalog-service/internal/pricing/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/requestctx"
	catalogv1 "github.com/fekuna/omnipos-catalog-service/internal/rpc/catalogv1"
	"go.uber.org/zap"
)

var _ catalogv1.PricingServiceServer = (*PricingHandler)(nil)

type PricingHandler struct {
	uc     pricing.UseCase
	logger logger.ZapLogger
}

func NewPricingHandler(uc pricing.UseCase, log logger.ZapLogger) *PricingHandler {
	return &PricingHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *PricingHandler) SetChannelPrice(ctx context.Context, req *catalogv1.SetChannelPriceRequest) (*catalogv1.ChannelPriceResponse, error) {
	rc := requestctx.From(ctx)
	channelID := req.ChannelID
	if channelID == "" {
		channelID = rc.ChannelID
	}

	price, err := h.uc.SetChannelPrice(ctx, &dto.SetChannelPriceInput{
		VariantID:     req.VariantID,
		ChannelID:     channelID,
		Price:         req.Price,
		TaxCategoryID: req.TaxCategoryID,
		Notes:         req.Notes,
		ReferenceType: "manual",
		UserID:        rc.UserID,
	})
	if err != nil {
		h.logger.Error("failed to set channel price", zap.String("variant_id", req.VariantID), zap.Error(err))
		return nil, err
	}

	out := catalogv1.FromChannelPrice(*price)
	return &catalogv1.ChannelPriceResponse{Price: &out}, nil
}

func (h *PricingHandler) ListPriceChanges(ctx context.Context, req *catalogv1.ListPriceChangesRequest) (*catalogv1.ListPriceChangesResponse, error) {
	changes, count, err := h.uc.ListPriceChanges(ctx, &dto.PriceChangeFilters{
		VariantID: req.VariantID,
		ChannelID: req.ChannelID,
		Page:      int(req.Page),
		PageSize:  int(req.PageSize),
	})
	if err != nil {
		return nil, err
	}

	out := make([]catalogv1.PriceChange, len(changes))
	for i, c := range changes {
		out[i] = catalogv1.FromPriceChange(c)
	}
	return &catalogv1.ListPriceChangesResponse{Changes: out, Total: int32(count)}, nil
}
