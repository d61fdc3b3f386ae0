package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/search"
	"github.com/fekuna/omnipos-catalog-service/internal/variant"
	"github.com/fekuna/omnipos-catalog-service/internal/variant/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const SearchIndex = "product_variants"

// SearchMapping is the index mapping of SearchIndex.
const SearchMapping = `{
  "mappings": {
    "properties": {
      "id":              {"type": "keyword"},
      "product_id":      {"type": "keyword"},
      "sku":             {"type": "keyword"},
      "names":           {"type": "object", "dynamic": true},
      "option_codes":    {"type": "keyword"},
      "facet_value_ids": {"type": "keyword"},
      "updated_at":      {"type": "date"}
    }
  }
}`

// Indexer is the part of the search client the variant use-case needs.
type Indexer interface {
	Index(ctx context.Context, index, id string, doc any) error
	Search(ctx context.Context, index string, query map[string]any) (*search.SearchResponse, error)
}

type variantDocument struct {
	ID            string            `json:"id"`
	ProductID     string            `json:"product_id"`
	SKU           string            `json:"sku"`
	Names         map[string]string `json:"names"`
	OptionCodes   []string          `json:"option_codes"`
	FacetValueIDs []string          `json:"facet_value_ids"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func newDocument(v model.ProductVariant) variantDocument {
	doc := variantDocument{
		ID:        v.ID,
		ProductID: v.ProductID,
		SKU:       v.SKU,
		Names:     make(map[string]string, len(v.Translations)),
		UpdatedAt: v.UpdatedAt,
	}
	for _, t := range v.Translations {
		doc.Names[t.LanguageCode] = t.Name
	}
	for _, o := range v.Options {
		doc.OptionCodes = append(doc.OptionCodes, o.Code)
	}
	for _, fv := range v.FacetValues {
		doc.FacetValueIDs = append(doc.FacetValueIDs, fv.ID)
	}
	return doc
}

// afterWrite invalidates cached listings of the product, refreshes the
// search index and publishes an event. It runs in the background and only
// logs failures.
func (uc *variantUseCase) afterWrite(ctx context.Context, eventType, productID, channelID string, variants []model.ProductVariant) {
	if uc.cache == nil && uc.search == nil && uc.publisher == nil {
		return
	}

	ctx = context.WithoutCancel(ctx)
	ids := make([]string, len(variants))
	docs := make([]variantDocument, len(variants))
	for i, v := range variants {
		ids[i] = v.ID
		docs[i] = newDocument(v)
	}
	event := variant.ProductVariantEvent{
		EventID:    uuid.New().String(),
		EventType:  eventType,
		ProductID:  productID,
		VariantIDs: ids,
		ChannelID:  channelID,
		Timestamp:  uc.now(),
	}

	go func() {
		log := uc.logger.With(zap.String("event_type", eventType), zap.String("product_id", productID))

		if uc.cache != nil {
			if err := uc.cache.DeletePattern(ctx, listCachePrefix(productID)+"*"); err != nil {
				log.Warn("failed to invalidate variant list cache", zap.Error(err))
			}
		}
		if uc.search != nil {
			for _, doc := range docs {
				if err := uc.search.Index(ctx, SearchIndex, doc.ID, doc); err != nil {
					log.Warn("failed to index variant", zap.String("variant_id", doc.ID), zap.Error(err))
				}
			}
		}
		if uc.publisher != nil {
			if err := uc.publisher.Publish(ctx, productID, event); err != nil {
				log.Error("failed to publish variant event", zap.Error(err))
			}
		}
	}()
}

// searchVariants resolves a full-text query through the search index and
// loads the hits from the repository in hit order.
func (uc *variantUseCase) searchVariants(ctx context.Context, f *dto.VariantFilters, relations []string) ([]model.ProductVariant, int, error) {
	size := f.PageSize
	if size <= 0 {
		size = 20
	}
	page := f.Page
	if page < 1 {
		page = 1
	}

	query := map[string]any{
		"from": (page - 1) * size,
		"size": size,
		"query": map[string]any{
			"bool": map[string]any{
				"filter": []any{
					map[string]any{"term": map[string]any{"product_id": f.ProductID}},
				},
				"must": []any{
					map[string]any{"multi_match": map[string]any{
						"query":  f.Query,
						"fields": []string{"names.*", "sku", "option_codes"},
					}},
				},
			},
		},
	}
	res, err := uc.search.Search(ctx, SearchIndex, query)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]string, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		id := hit.ID
		if id == "" {
			var doc variantDocument
			if err := json.Unmarshal(hit.Source, &doc); err == nil {
				id = doc.ID
			}
		}
		if id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, res.Hits.Total.Value, nil
	}

	found, err := uc.repo.FindByIDs(ctx, ids, relations...)
	if err != nil {
		return nil, 0, err
	}
	byID := make(map[string]model.ProductVariant, len(found))
	for _, v := range found {
		byID[v.ID] = v
	}
	variants := make([]model.ProductVariant, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			variants = append(variants, v)
		}
	}
	return variants, res.Hits.Total.Value, nil
}
