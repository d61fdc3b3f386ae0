package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/cache"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/pricing"
	"github.com/fekuna/omnipos-catalog-service/internal/pricing/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/tax"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	keyPriceNegative = "error.price-must-not-be-negative"
	keyResourceBusy  = "error.resource-busy"

	lockAttempts = 3
	lockTTL      = 5 * time.Second
)

var hundred = decimal.NewFromInt(100)

type pricingUseCase struct {
	repo   pricing.Repository
	tax    tax.UseCase
	cache  *cache.RedisClient
	logger logger.ZapLogger
}

// NewPricingUseCase builds the pricing use-case. A nil cache disables
// locking around price updates.
func NewPricingUseCase(repo pricing.Repository, taxUC tax.UseCase, cache *cache.RedisClient, log logger.ZapLogger) pricing.UseCase {
	return &pricingUseCase{
		repo:   repo,
		tax:    taxUC,
		cache:  cache,
		logger: log,
	}
}

// PriceBeforeTax removes a percentage rate from a gross price, rounding to
// the nearest minor unit.
func PriceBeforeTax(price int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(price).
		Mul(hundred).
		Div(hundred.Add(rate)).
		Round(0).
		IntPart()
}

func (uc *pricingUseCase) InitialPrice(ctx context.Context, variantID, channelID string, price int64, taxCategoryID string) (*model.ChannelPrice, error) {
	if price < 0 {
		return nil, apperror.Invalid(keyPriceNegative, nil)
	}
	category, err := uc.tax.GetTaxCategory(ctx, taxCategoryID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &model.ChannelPrice{
		BaseModel:      model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		VariantID:      variantID,
		ChannelID:      channelID,
		Price:          price,
		PriceBeforeTax: PriceBeforeTax(price, category.Rate()),
		TaxCategoryID:  category.ID,
		TaxCategory:    category,
	}, nil
}

func (uc *pricingUseCase) SetChannelPrice(ctx context.Context, input *dto.SetChannelPriceInput) (*model.ChannelPrice, error) {
	if input.Price < 0 {
		return nil, apperror.Invalid(keyPriceNegative, nil)
	}

	exists, err := uc.repo.VariantExists(ctx, input.VariantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.NotFound("ProductVariant", input.VariantID)
	}

	if uc.cache != nil {
		lockKey := fmt.Sprintf("lock:price:%s:%s", input.VariantID, input.ChannelID)
		lockValue := uuid.New().String()
		if !uc.acquire(ctx, lockKey, lockValue) {
			return nil, apperror.Unavailable(keyResourceBusy)
		}
		defer uc.cache.ReleaseLock(context.WithoutCancel(ctx), lockKey, lockValue)
	}

	current, err := uc.repo.FindByVariantAndChannel(ctx, input.VariantID, input.ChannelID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	price := current
	if price == nil {
		price = &model.ChannelPrice{
			BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now},
			VariantID: input.VariantID,
			ChannelID: input.ChannelID,
		}
	}
	priceBefore := price.Price

	var category *model.TaxCategory
	switch {
	case input.TaxCategoryID != nil && *input.TaxCategoryID != "":
		category, err = uc.tax.GetTaxCategory(ctx, *input.TaxCategoryID)
	case price.TaxCategoryID != "":
		category, err = uc.tax.GetTaxCategory(ctx, price.TaxCategoryID)
	default:
		category, err = uc.tax.DefaultTaxCategory(ctx)
	}
	if err != nil {
		return nil, err
	}

	price.Price = input.Price
	price.PriceBeforeTax = PriceBeforeTax(input.Price, category.Rate())
	price.TaxCategoryID = category.ID
	price.TaxCategory = category
	price.UpdatedAt = now

	change := &model.PriceChange{
		ID:            uuid.New().String(),
		VariantID:     input.VariantID,
		ChannelID:     input.ChannelID,
		PriceBefore:   priceBefore,
		PriceAfter:    input.Price,
		TaxCategoryID: category.ID,
		ReferenceType: optional(input.ReferenceType),
		ReferenceID:   optional(input.ReferenceID),
		Notes:         input.Notes,
		CreatedBy:     optional(input.UserID),
		CreatedAt:     now,
	}

	if err := uc.repo.UpsertWithChange(ctx, price, change); err != nil {
		return nil, err
	}

	uc.logger.Info("channel price set",
		zap.String("variant_id", input.VariantID),
		zap.String("channel_id", input.ChannelID),
		zap.Int64("price_before", priceBefore),
		zap.Int64("price_after", input.Price),
	)
	return price, nil
}

func (uc *pricingUseCase) ListPriceChanges(ctx context.Context, filters *dto.PriceChangeFilters) ([]model.PriceChange, int, error) {
	return uc.repo.ListChanges(ctx, filters)
}

func (uc *pricingUseCase) acquire(ctx context.Context, key, value string) bool {
	for i := 0; i < lockAttempts; i++ {
		ok, err := uc.cache.AcquireLock(ctx, key, value, lockTTL)
		if err != nil {
			uc.logger.Error("failed to acquire price lock", zap.String("key", key), zap.Error(err))
		}
		if ok {
			return true
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(100 * time.Millisecond):
		}
	}
	return false
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
