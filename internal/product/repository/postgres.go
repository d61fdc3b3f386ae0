package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/postgres"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/translatable"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

var (
	productTranslations = translatable.NewStore("product_translations")
	groupTranslations   = translatable.NewStore("product_option_group_translations")
	optionTranslations  = translatable.NewStore("product_option_translations")
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	return postgres.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		query := `
            INSERT INTO products (id, merchant_id, enabled, created_at, updated_at)
            VALUES (:id, :merchant_id, :enabled, :created_at, :updated_at)
        `
		if _, err := tx.NamedExecContext(ctx, query, p); err != nil {
			return errors.Wrap(err, "insert product")
		}
		return productTranslations.Insert(ctx, tx, p.Translations)
	})
}

func (r *PGRepository) FindByID(ctx context.Context, id string, relations ...string) (*model.Product, error) {
	var p model.Product
	query := `SELECT id, merchant_id, enabled, created_at, updated_at FROM products WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find product")
	}

	translations, err := productTranslations.Load(ctx, r.DB, p.ID)
	if err != nil {
		return nil, err
	}
	p.Translations = translations[p.ID]

	withGroups, withOptions := false, false
	for _, rel := range relations {
		switch rel {
		case product.RelationOptionGroups:
			withGroups = true
		case product.RelationOptionGroupOptions:
			withGroups, withOptions = true, true
		}
	}
	if withGroups {
		if p.OptionGroups, err = r.loadOptionGroups(ctx, p.ID, withOptions); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	where := ""
	args := []any{}
	if f.MerchantID != "" {
		where = " WHERE merchant_id = $1"
		args = append(args, f.MerchantID)
	}

	var count int
	if err := r.DB.GetContext(ctx, &count, "SELECT count(*) FROM products"+where, args...); err != nil {
		return nil, 0, errors.Wrap(err, "count products")
	}

	query := "SELECT id, merchant_id, enabled, created_at, updated_at FROM products" + where + " ORDER BY created_at DESC"
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, (page-1)*f.PageSize)
	}

	var products []model.Product
	if err := r.DB.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, 0, errors.Wrap(err, "list products")
	}
	if len(products) == 0 {
		return products, count, nil
	}

	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	translations, err := productTranslations.Load(ctx, r.DB, ids...)
	if err != nil {
		return nil, 0, err
	}
	for i := range products {
		products[i].Translations = translations[products[i].ID]
	}
	return products, count, nil
}

func (r *PGRepository) CreateOptionGroup(ctx context.Context, g *model.ProductOptionGroup) error {
	return postgres.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		query := `
            INSERT INTO product_option_groups (id, code, created_at, updated_at)
            VALUES (:id, :code, :created_at, :updated_at)
        `
		if _, err := tx.NamedExecContext(ctx, query, g); err != nil {
			return errors.Wrap(err, "insert option group")
		}
		if err := groupTranslations.Insert(ctx, tx, g.Translations); err != nil {
			return err
		}

		for _, o := range g.Options {
			query := `
                INSERT INTO product_options (id, group_id, code, sort_order, created_at, updated_at)
                VALUES (:id, :group_id, :code, :sort_order, :created_at, :updated_at)
            `
			if _, err := tx.NamedExecContext(ctx, query, o); err != nil {
				return errors.Wrap(err, "insert option")
			}
			if err := optionTranslations.Insert(ctx, tx, o.Translations); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *PGRepository) FindOptionGroupByID(ctx context.Context, id string) (*model.ProductOptionGroup, error) {
	var g model.ProductOptionGroup
	query := `SELECT id, code, 0 AS sort_order, created_at, updated_at FROM product_option_groups WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &g, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find option group")
	}

	groups := []model.ProductOptionGroup{g}
	if err := r.hydrateGroups(ctx, groups, true); err != nil {
		return nil, err
	}
	return &groups[0], nil
}

func (r *PGRepository) HasOptionGroup(ctx context.Context, productID, groupID string) (bool, error) {
	var count int
	query := `SELECT count(*) FROM product_option_groups_products WHERE product_id = $1 AND option_group_id = $2`
	if err := r.DB.GetContext(ctx, &count, query, productID, groupID); err != nil {
		return false, errors.Wrap(err, "check option group assignment")
	}
	return count > 0, nil
}

func (r *PGRepository) AddOptionGroup(ctx context.Context, productID, groupID string) error {
	query := `
        INSERT INTO product_option_groups_products (product_id, option_group_id, sort_order)
        SELECT $1, $2, COALESCE(MAX(sort_order) + 1, 0)
        FROM product_option_groups_products WHERE product_id = $1
    `
	_, err := r.DB.ExecContext(ctx, query, productID, groupID)
	return errors.Wrap(err, "assign option group")
}

func (r *PGRepository) loadOptionGroups(ctx context.Context, productID string, withOptions bool) ([]model.ProductOptionGroup, error) {
	var groups []model.ProductOptionGroup
	query := `
        SELECT g.id, g.code, pg.sort_order, g.created_at, g.updated_at
        FROM product_option_groups g
        JOIN product_option_groups_products pg ON pg.option_group_id = g.id
        WHERE pg.product_id = $1
        ORDER BY pg.sort_order
    `
	if err := r.DB.SelectContext(ctx, &groups, query, productID); err != nil {
		return nil, errors.Wrap(err, "find option groups")
	}
	if err := r.hydrateGroups(ctx, groups, withOptions); err != nil {
		return nil, err
	}
	return groups, nil
}

// hydrateGroups fills translations and, when asked, the options of groups in place.
func (r *PGRepository) hydrateGroups(ctx context.Context, groups []model.ProductOptionGroup, withOptions bool) error {
	if len(groups) == 0 {
		return nil
	}
	ids := make([]string, len(groups))
	for i, g := range groups {
		ids[i] = g.ID
	}

	translations, err := groupTranslations.Load(ctx, r.DB, ids...)
	if err != nil {
		return err
	}
	for i := range groups {
		groups[i].Translations = translations[groups[i].ID]
	}
	if !withOptions {
		return nil
	}

	query, args, err := sqlx.In(`
        SELECT id, group_id, code, sort_order, created_at, updated_at
        FROM product_options WHERE group_id IN (?)
        ORDER BY sort_order, code
    `, ids)
	if err != nil {
		return err
	}
	var options []model.ProductOption
	if err := r.DB.SelectContext(ctx, &options, r.DB.Rebind(query), args...); err != nil {
		return errors.Wrap(err, "find options")
	}
	if len(options) == 0 {
		return nil
	}

	optionIDs := make([]string, len(options))
	for i, o := range options {
		optionIDs[i] = o.ID
	}
	optTranslations, err := optionTranslations.Load(ctx, r.DB, optionIDs...)
	if err != nil {
		return err
	}

	byGroup := make(map[string][]model.ProductOption, len(groups))
	for _, o := range options {
		o.Translations = optTranslations[o.ID]
		byGroup[o.GroupID] = append(byGroup[o.GroupID], o)
	}
	for i := range groups {
		groups[i].Options = byGroup[groups[i].ID]
	}
	return nil
}
