package catalogv1

import (
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/translatable"
)

func ToTranslationInputs(in []Translation) []translatable.Input {
	out := make([]translatable.Input, len(in))
	for i, t := range in {
		out[i] = translatable.Input{
			LanguageCode: t.LanguageCode,
			Name:         t.Name,
			Slug:         t.Slug,
			Description:  t.Description,
		}
	}
	return out
}

func FromTranslations(in []model.Translation) []Translation {
	out := make([]Translation, len(in))
	for i, t := range in {
		out[i] = Translation{
			LanguageCode: t.LanguageCode,
			Name:         t.Name,
			Slug:         t.Slug,
			Description:  t.Description,
		}
	}
	return out
}

func FromOption(o model.ProductOption) Option {
	return Option{
		ID:           o.ID,
		GroupID:      o.GroupID,
		Code:         o.Code,
		Name:         o.Name,
		LanguageCode: o.LanguageCode,
	}
}

func FromOptionGroup(g model.ProductOptionGroup) OptionGroup {
	out := OptionGroup{
		ID:           g.ID,
		Code:         g.Code,
		Name:         g.Name,
		LanguageCode: g.LanguageCode,
		Options:      make([]Option, len(g.Options)),
	}
	for i, o := range g.Options {
		out.Options[i] = FromOption(o)
	}
	return out
}

func FromProduct(p model.Product) Product {
	out := Product{
		ID:           p.ID,
		Enabled:      p.Enabled,
		Name:         p.Name,
		Slug:         p.Slug,
		Description:  p.Description,
		LanguageCode: p.LanguageCode,
		Translations: FromTranslations(p.Translations),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	for _, g := range p.OptionGroups {
		out.OptionGroups = append(out.OptionGroups, FromOptionGroup(g))
	}
	return out
}

func FromFacetValue(fv model.FacetValue) FacetValue {
	return FacetValue{
		ID:           fv.ID,
		FacetID:      fv.FacetID,
		Code:         fv.Code,
		Name:         fv.Name,
		LanguageCode: fv.LanguageCode,
	}
}

func FromFacet(f model.Facet) Facet {
	out := Facet{
		ID:           f.ID,
		Code:         f.Code,
		IsPrivate:    f.IsPrivate,
		Name:         f.Name,
		LanguageCode: f.LanguageCode,
		Values:       make([]FacetValue, len(f.Values)),
		Translations: FromTranslations(f.Translations),
	}
	for i, fv := range f.Values {
		out.Values[i] = FromFacetValue(fv)
	}
	return out
}

func FromVariant(v model.ProductVariant) ProductVariant {
	out := ProductVariant{
		ID:             v.ID,
		ProductID:      v.ProductID,
		SKU:            v.SKU,
		Name:           v.Name,
		LanguageCode:   v.LanguageCode,
		Price:          v.Price,
		PriceBeforeTax: v.PriceBeforeTax,
		Options:        make([]Option, len(v.Options)),
		FacetValues:    make([]FacetValue, len(v.FacetValues)),
		Translations:   FromTranslations(v.Translations),
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
	if v.TaxCategory != nil {
		out.TaxCategory = &TaxCategory{
			ID:      v.TaxCategory.ID,
			Name:    v.TaxCategory.Name,
			TaxRate: v.TaxCategory.TaxRate.String(),
		}
	}
	for i, o := range v.Options {
		out.Options[i] = FromOption(o)
	}
	for i, fv := range v.FacetValues {
		out.FacetValues[i] = FromFacetValue(fv)
	}
	if v.Product != nil {
		p := FromProduct(*v.Product)
		out.Product = &p
	}
	return out
}

func FromVariants(in []model.ProductVariant) []ProductVariant {
	out := make([]ProductVariant, len(in))
	for i, v := range in {
		out[i] = FromVariant(v)
	}
	return out
}

func FromChannelPrice(p model.ChannelPrice) ChannelPrice {
	return ChannelPrice{
		VariantID:      p.VariantID,
		ChannelID:      p.ChannelID,
		Price:          p.Price,
		PriceBeforeTax: p.PriceBeforeTax,
		TaxCategoryID:  p.TaxCategoryID,
	}
}

func FromPriceChange(c model.PriceChange) PriceChange {
	return PriceChange{
		ID:            c.ID,
		VariantID:     c.VariantID,
		ChannelID:     c.ChannelID,
		PriceBefore:   c.PriceBefore,
		PriceAfter:    c.PriceAfter,
		TaxCategoryID: c.TaxCategoryID,
		ReferenceType: deref(c.ReferenceType),
		ReferenceID:   deref(c.ReferenceID),
		Notes:         c.Notes,
		CreatedBy:     deref(c.CreatedBy),
		CreatedAt:     c.CreatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
