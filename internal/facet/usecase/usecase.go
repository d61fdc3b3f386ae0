package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/facet"
	"github.com/fekuna/omnipos-catalog-service/internal/facet/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/requestctx"
	"github.com/fekuna/omnipos-catalog-service/internal/translatable"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const keyTranslationsRequired = "error.translations-required"

type facetUseCase struct {
	repo     facet.Repository
	resolver translatable.Resolver
	logger   logger.ZapLogger
}

func NewFacetUseCase(repo facet.Repository, resolver translatable.Resolver, log logger.ZapLogger) facet.UseCase {
	return &facetUseCase{
		repo:     repo,
		resolver: resolver,
		logger:   log,
	}
}

func (uc *facetUseCase) CreateFacet(ctx context.Context, input *dto.CreateFacetInput) (*model.Facet, error) {
	id := uuid.New().String()
	translations := translatable.Build(id, input.Translations)
	if len(translations) == 0 {
		return nil, apperror.Invalid(keyTranslationsRequired, nil)
	}

	now := time.Now()
	f := &model.Facet{
		BaseModel:    model.BaseModel{ID: id, CreatedAt: now, UpdatedAt: now},
		MerchantID:   input.MerchantID,
		Code:         input.Code,
		IsPrivate:    input.IsPrivate,
		Translations: translations,
	}
	for _, in := range input.Values {
		v, err := newValue(id, in, now)
		if err != nil {
			return nil, err
		}
		f.Values = append(f.Values, *v)
	}

	if err := uc.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	uc.logger.Info("facet created", zap.String("facet_id", id), zap.Int("values", len(f.Values)))

	out, err := uc.resolver.Facet(*f, requestctx.From(ctx).LanguageCode)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetFacet returns nil when the facet does not exist.
func (uc *facetUseCase) GetFacet(ctx context.Context, id string) (*model.Facet, error) {
	f, err := uc.repo.FindByID(ctx, id)
	if err != nil || f == nil {
		return nil, err
	}
	out, err := uc.resolver.Facet(*f, requestctx.From(ctx).LanguageCode)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (uc *facetUseCase) ListFacets(ctx context.Context, filters *dto.FacetFilters) ([]model.Facet, int, error) {
	facets, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, err
	}
	lang := requestctx.From(ctx).LanguageCode
	for i, f := range facets {
		if facets[i], err = uc.resolver.Facet(f, lang); err != nil {
			return nil, 0, err
		}
	}
	return facets, count, nil
}

func (uc *facetUseCase) CreateFacetValue(ctx context.Context, input *dto.CreateFacetValueInput) (*model.FacetValue, error) {
	f, err := uc.repo.FindByID(ctx, input.FacetID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, apperror.NotFound("Facet", input.FacetID)
	}

	v, err := newValue(f.ID, *input, time.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.CreateValue(ctx, v); err != nil {
		return nil, err
	}

	out, err := uc.resolver.FacetValue(*v, requestctx.From(ctx).LanguageCode)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (uc *facetUseCase) GetFacetValues(ctx context.Context, ids []string) ([]model.FacetValue, error) {
	values, err := uc.repo.FindValuesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]model.FacetValue, len(values))
	for _, v := range values {
		byID[v.ID] = v
	}
	out := make([]model.FacetValue, 0, len(ids))
	for _, id := range ids {
		v, ok := byID[id]
		if !ok {
			return nil, apperror.NotFound("FacetValue", id)
		}
		out = append(out, v)
	}
	return out, nil
}

func newValue(facetID string, in dto.CreateFacetValueInput, now time.Time) (*model.FacetValue, error) {
	id := uuid.New().String()
	translations := translatable.Build(id, in.Translations)
	if len(translations) == 0 {
		return nil, apperror.Invalid(keyTranslationsRequired, nil)
	}
	return &model.FacetValue{
		BaseModel:    model.BaseModel{ID: id, CreatedAt: now, UpdatedAt: now},
		FacetID:      facetID,
		Code:         in.Code,
		Translations: translations,
	}, nil
}
