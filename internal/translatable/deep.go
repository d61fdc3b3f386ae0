package translatable

import (
	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

// Relation names accepted by the deep resolvers.
const (
	RelationProduct      = "product"
	RelationOptions      = "options"
	RelationFacetValues  = "facetValues"
	RelationOptionGroups = "optionGroups"
)

// Resolver translates entity graphs into one language, falling back to the
// default language. Nested collections are only translated when named.
type Resolver struct {
	DefaultLanguage string
}

func NewResolver(defaultLanguage string) Resolver {
	if defaultLanguage == "" {
		defaultLanguage = DefaultLanguageCode
	}
	return Resolver{DefaultLanguage: defaultLanguage}
}

func has(relations []string, name string) bool {
	for _, r := range relations {
		if r == name {
			return true
		}
	}
	return false
}

// Variant returns a copy of v with its name resolved in languageCode. The
// input is not modified.
func (r Resolver) Variant(v model.ProductVariant, languageCode string, relations ...string) (model.ProductVariant, error) {
	t, err := Find("ProductVariant", v.Translations, languageCode, r.DefaultLanguage)
	if err != nil {
		return v, err
	}
	v.Name = t.Name
	v.LanguageCode = t.LanguageCode

	if has(relations, RelationOptions) && len(v.Options) > 0 {
		opts := make([]model.ProductOption, len(v.Options))
		for i, o := range v.Options {
			if opts[i], err = r.Option(o, languageCode); err != nil {
				return v, err
			}
		}
		v.Options = opts
	}
	if has(relations, RelationFacetValues) && len(v.FacetValues) > 0 {
		values := make([]model.FacetValue, len(v.FacetValues))
		for i, fv := range v.FacetValues {
			if values[i], err = r.FacetValue(fv, languageCode); err != nil {
				return v, err
			}
		}
		v.FacetValues = values
	}
	if has(relations, RelationProduct) && v.Product != nil {
		p, err := r.Product(*v.Product, languageCode)
		if err != nil {
			return v, err
		}
		v.Product = &p
	}
	return v, nil
}

func (r Resolver) Product(p model.Product, languageCode string, relations ...string) (model.Product, error) {
	t, err := Find("Product", p.Translations, languageCode, r.DefaultLanguage)
	if err != nil {
		return p, err
	}
	p.Name = t.Name
	p.Slug = t.Slug
	p.Description = t.Description
	p.LanguageCode = t.LanguageCode

	if has(relations, RelationOptionGroups) && len(p.OptionGroups) > 0 {
		groups := make([]model.ProductOptionGroup, len(p.OptionGroups))
		for i, g := range p.OptionGroups {
			if groups[i], err = r.OptionGroup(g, languageCode); err != nil {
				return p, err
			}
		}
		p.OptionGroups = groups
	}
	return p, nil
}

// OptionGroup translates the group together with its options.
func (r Resolver) OptionGroup(g model.ProductOptionGroup, languageCode string) (model.ProductOptionGroup, error) {
	t, err := Find("ProductOptionGroup", g.Translations, languageCode, r.DefaultLanguage)
	if err != nil {
		return g, err
	}
	g.Name = t.Name
	g.LanguageCode = t.LanguageCode

	if len(g.Options) > 0 {
		opts := make([]model.ProductOption, len(g.Options))
		for i, o := range g.Options {
			if opts[i], err = r.Option(o, languageCode); err != nil {
				return g, err
			}
		}
		g.Options = opts
	}
	return g, nil
}

// Option names an untranslated option by its code.
func (r Resolver) Option(o model.ProductOption, languageCode string) (model.ProductOption, error) {
	if len(o.Translations) == 0 {
		o.Name = o.Code
		o.LanguageCode = languageCode
		return o, nil
	}
	t, err := Find("ProductOption", o.Translations, languageCode, r.DefaultLanguage)
	if err != nil {
		return o, err
	}
	o.Name = t.Name
	o.LanguageCode = t.LanguageCode
	return o, nil
}

// Facet translates the facet together with its values.
func (r Resolver) Facet(f model.Facet, languageCode string) (model.Facet, error) {
	t, err := Find("Facet", f.Translations, languageCode, r.DefaultLanguage)
	if err != nil {
		return f, err
	}
	f.Name = t.Name
	f.LanguageCode = t.LanguageCode

	if len(f.Values) > 0 {
		values := make([]model.FacetValue, len(f.Values))
		for i, fv := range f.Values {
			if values[i], err = r.FacetValue(fv, languageCode); err != nil {
				return f, err
			}
		}
		f.Values = values
	}
	return f, nil
}

func (r Resolver) FacetValue(fv model.FacetValue, languageCode string) (model.FacetValue, error) {
	t, err := Find("FacetValue", fv.Translations, languageCode, r.DefaultLanguage)
	if err != nil {
		return fv, err
	}
	fv.Name = t.Name
	fv.LanguageCode = t.LanguageCode
	return fv, nil
}
