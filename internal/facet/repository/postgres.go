package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fekuna/omnipos-catalog-service/internal/facet/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/postgres"
	"github.com/fekuna/omnipos-catalog-service/internal/translatable"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

var (
	facetTranslations = translatable.NewStore("facet_translations")
	valueTranslations = translatable.NewStore("facet_value_translations")
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, f *model.Facet) error {
	return postgres.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		query := `
            INSERT INTO facets (id, merchant_id, code, is_private, created_at, updated_at)
            VALUES (:id, :merchant_id, :code, :is_private, :created_at, :updated_at)
        `
		if _, err := tx.NamedExecContext(ctx, query, f); err != nil {
			return errors.Wrap(err, "insert facet")
		}
		if err := facetTranslations.Insert(ctx, tx, f.Translations); err != nil {
			return err
		}
		for i := range f.Values {
			if err := insertValue(ctx, tx, &f.Values[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Facet, error) {
	var f model.Facet
	query := `SELECT id, merchant_id, code, is_private, created_at, updated_at FROM facets WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &f, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find facet")
	}

	facets := []model.Facet{f}
	if err := r.hydrate(ctx, facets); err != nil {
		return nil, err
	}
	return &facets[0], nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.FacetFilters) ([]model.Facet, int, error) {
	where := ""
	args := []any{}
	if f.MerchantID != "" {
		where = " WHERE merchant_id = $1"
		args = append(args, f.MerchantID)
	}

	var count int
	if err := r.DB.GetContext(ctx, &count, "SELECT count(*) FROM facets"+where, args...); err != nil {
		return nil, 0, errors.Wrap(err, "count facets")
	}

	query := "SELECT id, merchant_id, code, is_private, created_at, updated_at FROM facets" + where + " ORDER BY code"
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, (page-1)*f.PageSize)
	}

	var facets []model.Facet
	if err := r.DB.SelectContext(ctx, &facets, query, args...); err != nil {
		return nil, 0, errors.Wrap(err, "list facets")
	}
	if err := r.hydrate(ctx, facets); err != nil {
		return nil, 0, err
	}
	return facets, count, nil
}

func (r *PGRepository) CreateValue(ctx context.Context, v *model.FacetValue) error {
	return postgres.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		return insertValue(ctx, tx, v)
	})
}

func (r *PGRepository) FindValuesByIDs(ctx context.Context, ids []string) ([]model.FacetValue, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(`
        SELECT id, facet_id, code, created_at, updated_at
        FROM facet_values WHERE id IN (?)
    `, ids)
	if err != nil {
		return nil, err
	}

	var values []model.FacetValue
	if err := r.DB.SelectContext(ctx, &values, r.DB.Rebind(query), args...); err != nil {
		return nil, errors.Wrap(err, "find facet values")
	}
	if err := r.loadValueTranslations(ctx, values); err != nil {
		return nil, err
	}
	return values, nil
}

func insertValue(ctx context.Context, tx *sqlx.Tx, v *model.FacetValue) error {
	query := `
        INSERT INTO facet_values (id, facet_id, code, created_at, updated_at)
        VALUES (:id, :facet_id, :code, :created_at, :updated_at)
    `
	if _, err := tx.NamedExecContext(ctx, query, v); err != nil {
		return errors.Wrap(err, "insert facet value")
	}
	return valueTranslations.Insert(ctx, tx, v.Translations)
}

// hydrate loads translations and values of facets in place.
func (r *PGRepository) hydrate(ctx context.Context, facets []model.Facet) error {
	if len(facets) == 0 {
		return nil
	}
	ids := make([]string, len(facets))
	for i, f := range facets {
		ids[i] = f.ID
	}

	translations, err := facetTranslations.Load(ctx, r.DB, ids...)
	if err != nil {
		return err
	}

	query, args, err := sqlx.In(`
        SELECT id, facet_id, code, created_at, updated_at
        FROM facet_values WHERE facet_id IN (?)
        ORDER BY code
    `, ids)
	if err != nil {
		return err
	}
	var values []model.FacetValue
	if err := r.DB.SelectContext(ctx, &values, r.DB.Rebind(query), args...); err != nil {
		return errors.Wrap(err, "find facet values")
	}
	if err := r.loadValueTranslations(ctx, values); err != nil {
		return err
	}

	byFacet := make(map[string][]model.FacetValue, len(facets))
	for _, v := range values {
		byFacet[v.FacetID] = append(byFacet[v.FacetID], v)
	}
	for i := range facets {
		facets[i].Translations = translations[facets[i].ID]
		facets[i].Values = byFacet[facets[i].ID]
	}
	return nil
}

func (r *PGRepository) loadValueTranslations(ctx context.Context, values []model.FacetValue) error {
	if len(values) == 0 {
		return nil
	}
	ids := make([]string, len(values))
	for i, v := range values {
		ids[i] = v.ID
	}
	translations, err := valueTranslations.Load(ctx, r.DB, ids...)
	if err != nil {
		return err
	}
	for i := range values {
		values[i].Translations = translations[values[i].ID]
	}
	return nil
}
