package repository

import (
	"context"
	"database/sql"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.TaxCategory, error) {
	var category model.TaxCategory
	query := `SELECT id, name, is_default, created_at, updated_at FROM tax_categories WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &category, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find tax category")
	}
	if err := r.loadRates(ctx, []*model.TaxCategory{&category}); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *PGRepository) FindByIDs(ctx context.Context, ids []string) ([]model.TaxCategory, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(`SELECT id, name, is_default, created_at, updated_at FROM tax_categories WHERE id IN (?) ORDER BY name`, ids)
	if err != nil {
		return nil, err
	}

	var categories []model.TaxCategory
	if err := r.DB.SelectContext(ctx, &categories, r.DB.Rebind(query), args...); err != nil {
		return nil, errors.Wrap(err, "find tax categories")
	}

	ptrs := make([]*model.TaxCategory, len(categories))
	for i := range categories {
		ptrs[i] = &categories[i]
	}
	if err := r.loadRates(ctx, ptrs); err != nil {
		return nil, err
	}
	return categories, nil
}

// FindDefault returns the category flagged as default, or the first one by
// name when none is flagged.
func (r *PGRepository) FindDefault(ctx context.Context) (*model.TaxCategory, error) {
	var category model.TaxCategory
	query := `
        SELECT id, name, is_default, created_at, updated_at FROM tax_categories
        ORDER BY is_default DESC, name ASC
        LIMIT 1
    `
	err := r.DB.GetContext(ctx, &category, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find default tax category")
	}
	if err := r.loadRates(ctx, []*model.TaxCategory{&category}); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *PGRepository) loadRates(ctx context.Context, categories []*model.TaxCategory) error {
	ids := make([]string, len(categories))
	byID := make(map[string]*model.TaxCategory, len(categories))
	for i, c := range categories {
		ids[i] = c.ID
		byID[c.ID] = c
	}

	query, args, err := sqlx.In(`
        SELECT id, category_id, name, value, enabled, zone_id, created_at, updated_at
        FROM tax_rates WHERE category_id IN (?) ORDER BY created_at
    `, ids)
	if err != nil {
		return err
	}

	var rates []model.TaxRate
	if err := r.DB.SelectContext(ctx, &rates, r.DB.Rebind(query), args...); err != nil {
		return errors.Wrap(err, "find tax rates")
	}
	for _, rate := range rates {
		if c, ok := byID[rate.CategoryID]; ok {
			c.Rates = append(c.Rates, rate)
		}
	}
	return nil
}
