package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/postgres"
	"github.com/fekuna/omnipos-catalog-service/internal/translatable"
	"github.com/fekuna/omnipos-catalog-service/internal/variant"
	"github.com/fekuna/omnipos-catalog-service/internal/variant/dto"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const variantColumns = "id, product_id, sku, tax_category_id, created_at, updated_at"

var (
	variantTranslations    = translatable.NewStore("product_variant_translations")
	optionTranslations     = translatable.NewStore("product_option_translations")
	facetValueTranslations = translatable.NewStore("facet_value_translations")
	productTranslations    = translatable.NewStore("product_translations")
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, v *model.ProductVariant, initialPrice *model.ChannelPrice) error {
	return postgres.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		query := `
            INSERT INTO product_variants (id, product_id, sku, tax_category_id, created_at, updated_at)
            VALUES (:id, :product_id, :sku, :tax_category_id, :created_at, :updated_at)
        `
		if _, err := tx.NamedExecContext(ctx, query, v); err != nil {
			return errors.Wrap(err, "insert variant")
		}
		if err := variantTranslations.Insert(ctx, tx, v.Translations); err != nil {
			return err
		}

		for i, o := range v.Options {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO product_variant_options (variant_id, option_id, position) VALUES ($1, $2, $3)`,
				v.ID, o.ID, i,
			)
			if err != nil {
				return errors.Wrap(err, "link variant option")
			}
		}

		if initialPrice == nil {
			return nil
		}
		query = `
            INSERT INTO product_variant_prices (id, variant_id, channel_id, price, price_before_tax, tax_category_id, created_at, updated_at)
            VALUES (:id, :variant_id, :channel_id, :price, :price_before_tax, :tax_category_id, :created_at, :updated_at)
        `
		if _, err := tx.NamedExecContext(ctx, query, initialPrice); err != nil {
			return errors.Wrap(err, "insert variant price")
		}
		return nil
	})
}

func (r *PGRepository) Update(ctx context.Context, v *model.ProductVariant, translations translatable.Diff) error {
	return postgres.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		query := `
            UPDATE product_variants
            SET sku = :sku, tax_category_id = :tax_category_id, updated_at = :updated_at
            WHERE id = :id
        `
		if _, err := tx.NamedExecContext(ctx, query, v); err != nil {
			return errors.Wrap(err, "update variant")
		}
		return variantTranslations.Save(ctx, tx, translations)
	})
}

func (r *PGRepository) FindByID(ctx context.Context, id string, relations ...string) (*model.ProductVariant, error) {
	var v model.ProductVariant
	query := `SELECT ` + variantColumns + ` FROM product_variants WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &v, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find variant")
	}

	variants := []model.ProductVariant{v}
	if err := r.hydrate(ctx, variants, relations); err != nil {
		return nil, err
	}
	return &variants[0], nil
}

func (r *PGRepository) FindByIDs(ctx context.Context, ids []string, relations ...string) ([]model.ProductVariant, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(`SELECT `+variantColumns+` FROM product_variants WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}

	var variants []model.ProductVariant
	if err := r.DB.SelectContext(ctx, &variants, r.DB.Rebind(query), args...); err != nil {
		return nil, errors.Wrap(err, "find variants")
	}
	if err := r.hydrate(ctx, variants, relations); err != nil {
		return nil, err
	}
	return variants, nil
}

func (r *PGRepository) FindByProduct(ctx context.Context, f *dto.VariantFilters, relations ...string) ([]model.ProductVariant, int, error) {
	var count int
	if err := r.DB.GetContext(ctx, &count, `SELECT count(*) FROM product_variants WHERE product_id = $1`, f.ProductID); err != nil {
		return nil, 0, errors.Wrap(err, "count variants")
	}

	query := `SELECT ` + variantColumns + ` FROM product_variants WHERE product_id = $1 ORDER BY created_at, id`
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, (page-1)*f.PageSize)
	}

	var variants []model.ProductVariant
	if err := r.DB.SelectContext(ctx, &variants, query, f.ProductID); err != nil {
		return nil, 0, errors.Wrap(err, "list variants")
	}
	if err := r.hydrate(ctx, variants, relations); err != nil {
		return nil, 0, err
	}
	return variants, count, nil
}

func (r *PGRepository) AddFacetValues(ctx context.Context, variantID string, facetValueIDs []string) error {
	return postgres.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		for _, id := range facetValueIDs {
			_, err := tx.ExecContext(ctx, `
                INSERT INTO product_variant_facet_values (variant_id, facet_value_id)
                VALUES ($1, $2) ON CONFLICT DO NOTHING
            `, variantID, id)
			if err != nil {
				return errors.Wrap(err, "link facet value")
			}
		}
		return nil
	})
}

// FindOptionsByCodes returns every option whose code is in codes, ordered
// by the position of its code in codes.
func (r *PGRepository) FindOptionsByCodes(ctx context.Context, codes []string) ([]model.ProductOption, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(`
        SELECT id, group_id, code, sort_order, created_at, updated_at
        FROM product_options WHERE code IN (?)
        ORDER BY group_id, sort_order
    `, codes)
	if err != nil {
		return nil, err
	}

	var found []model.ProductOption
	if err := r.DB.SelectContext(ctx, &found, r.DB.Rebind(query), args...); err != nil {
		return nil, errors.Wrap(err, "find options by code")
	}
	if err := r.loadOptionTranslations(ctx, found); err != nil {
		return nil, err
	}

	byCode := make(map[string][]model.ProductOption, len(codes))
	for _, o := range found {
		byCode[o.Code] = append(byCode[o.Code], o)
	}
	options := make([]model.ProductOption, 0, len(found))
	seen := make(map[string]bool, len(codes))
	for _, code := range codes {
		if seen[code] {
			continue
		}
		seen[code] = true
		options = append(options, byCode[code]...)
	}
	return options, nil
}

// hydrate loads translations and prices of variants in place, plus the
// named relations.
func (r *PGRepository) hydrate(ctx context.Context, variants []model.ProductVariant, relations []string) error {
	if len(variants) == 0 {
		return nil
	}
	ids := make([]string, len(variants))
	for i, v := range variants {
		ids[i] = v.ID
	}

	translations, err := variantTranslations.Load(ctx, r.DB, ids...)
	if err != nil {
		return err
	}
	prices, err := r.loadPrices(ctx, ids)
	if err != nil {
		return err
	}
	for i := range variants {
		variants[i].Translations = translations[variants[i].ID]
		variants[i].Prices = prices[variants[i].ID]
	}

	for _, rel := range relations {
		switch rel {
		case variant.RelationOptions:
			err = r.loadOptions(ctx, variants, ids)
		case variant.RelationFacetValues:
			err = r.loadFacetValues(ctx, variants, ids)
		case variant.RelationProduct:
			err = r.loadProducts(ctx, variants)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *PGRepository) loadPrices(ctx context.Context, ids []string) (map[string][]model.ChannelPrice, error) {
	query, args, err := sqlx.In(`
        SELECT id, variant_id, channel_id, price, price_before_tax, tax_category_id, created_at, updated_at
        FROM product_variant_prices WHERE variant_id IN (?)
        ORDER BY variant_id, channel_id
    `, ids)
	if err != nil {
		return nil, err
	}

	var rows []model.ChannelPrice
	if err := r.DB.SelectContext(ctx, &rows, r.DB.Rebind(query), args...); err != nil {
		return nil, errors.Wrap(err, "find variant prices")
	}
	out := make(map[string][]model.ChannelPrice, len(ids))
	for _, p := range rows {
		out[p.VariantID] = append(out[p.VariantID], p)
	}
	return out, nil
}

type variantOption struct {
	model.ProductOption
	VariantID string `db:"variant_id"`
}

func (r *PGRepository) loadOptions(ctx context.Context, variants []model.ProductVariant, ids []string) error {
	query, args, err := sqlx.In(`
        SELECT vo.variant_id, o.id, o.group_id, o.code, o.sort_order, o.created_at, o.updated_at
        FROM product_variant_options vo
        JOIN product_options o ON o.id = vo.option_id
        WHERE vo.variant_id IN (?)
        ORDER BY vo.variant_id, vo.position
    `, ids)
	if err != nil {
		return err
	}

	var rows []variantOption
	if err := r.DB.SelectContext(ctx, &rows, r.DB.Rebind(query), args...); err != nil {
		return errors.Wrap(err, "find variant options")
	}

	options := make([]model.ProductOption, len(rows))
	for i, row := range rows {
		options[i] = row.ProductOption
	}
	if err := r.loadOptionTranslations(ctx, options); err != nil {
		return err
	}

	byVariant := make(map[string][]model.ProductOption, len(variants))
	for i, row := range rows {
		byVariant[row.VariantID] = append(byVariant[row.VariantID], options[i])
	}
	for i := range variants {
		variants[i].Options = byVariant[variants[i].ID]
	}
	return nil
}

func (r *PGRepository) loadOptionTranslations(ctx context.Context, options []model.ProductOption) error {
	if len(options) == 0 {
		return nil
	}
	ids := make([]string, len(options))
	for i, o := range options {
		ids[i] = o.ID
	}
	translations, err := optionTranslations.Load(ctx, r.DB, ids...)
	if err != nil {
		return err
	}
	for i := range options {
		options[i].Translations = translations[options[i].ID]
	}
	return nil
}

type variantFacetValue struct {
	model.FacetValue
	VariantID string `db:"variant_id"`
}

func (r *PGRepository) loadFacetValues(ctx context.Context, variants []model.ProductVariant, ids []string) error {
	query, args, err := sqlx.In(`
        SELECT vf.variant_id, fv.id, fv.facet_id, fv.code, fv.created_at, fv.updated_at
        FROM product_variant_facet_values vf
        JOIN facet_values fv ON fv.id = vf.facet_value_id
        WHERE vf.variant_id IN (?)
        ORDER BY vf.variant_id, fv.code
    `, ids)
	if err != nil {
		return err
	}

	var rows []variantFacetValue
	if err := r.DB.SelectContext(ctx, &rows, r.DB.Rebind(query), args...); err != nil {
		return errors.Wrap(err, "find variant facet values")
	}
	if len(rows) == 0 {
		return nil
	}

	valueIDs := make([]string, len(rows))
	for i, row := range rows {
		valueIDs[i] = row.ID
	}
	translations, err := facetValueTranslations.Load(ctx, r.DB, valueIDs...)
	if err != nil {
		return err
	}

	byVariant := make(map[string][]model.FacetValue, len(variants))
	for _, row := range rows {
		fv := row.FacetValue
		fv.Translations = translations[fv.ID]
		byVariant[row.VariantID] = append(byVariant[row.VariantID], fv)
	}
	for i := range variants {
		variants[i].FacetValues = byVariant[variants[i].ID]
	}
	return nil
}

func (r *PGRepository) loadProducts(ctx context.Context, variants []model.ProductVariant) error {
	seen := make(map[string]bool, len(variants))
	var ids []string
	for _, v := range variants {
		if !seen[v.ProductID] {
			seen[v.ProductID] = true
			ids = append(ids, v.ProductID)
		}
	}

	query, args, err := sqlx.In(`
        SELECT id, merchant_id, enabled, created_at, updated_at
        FROM products WHERE id IN (?)
    `, ids)
	if err != nil {
		return err
	}
	var products []model.Product
	if err := r.DB.SelectContext(ctx, &products, r.DB.Rebind(query), args...); err != nil {
		return errors.Wrap(err, "find variant products")
	}
	translations, err := productTranslations.Load(ctx, r.DB, ids...)
	if err != nil {
		return err
	}

	byID := make(map[string]*model.Product, len(products))
	for i := range products {
		products[i].Translations = translations[products[i].ID]
		byID[products[i].ID] = &products[i]
	}
	for i := range variants {
		if p, ok := byID[variants[i].ProductID]; ok {
			cp := *p
			variants[i].Product = &cp
		}
	}
	return nil
}
