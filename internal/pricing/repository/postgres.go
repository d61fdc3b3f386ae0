package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/postgres"
	"github.com/fekuna/omnipos-catalog-service/internal/pricing/dto"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) VariantExists(ctx context.Context, variantID string) (bool, error) {
	var count int
	if err := r.DB.GetContext(ctx, &count, `SELECT count(*) FROM product_variants WHERE id = $1`, variantID); err != nil {
		return false, errors.Wrap(err, "check variant")
	}
	return count > 0, nil
}

func (r *PGRepository) FindByVariantAndChannel(ctx context.Context, variantID, channelID string) (*model.ChannelPrice, error) {
	var price model.ChannelPrice
	query := `
        SELECT id, variant_id, channel_id, price, price_before_tax, tax_category_id, created_at, updated_at
        FROM product_variant_prices
        WHERE variant_id = $1 AND channel_id = $2
    `
	err := r.DB.GetContext(ctx, &price, query, variantID, channelID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find channel price")
	}
	return &price, nil
}

func (r *PGRepository) UpsertWithChange(ctx context.Context, price *model.ChannelPrice, change *model.PriceChange) error {
	return postgres.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		query := `
            INSERT INTO product_variant_prices (id, variant_id, channel_id, price, price_before_tax, tax_category_id, created_at, updated_at)
            VALUES (:id, :variant_id, :channel_id, :price, :price_before_tax, :tax_category_id, :created_at, :updated_at)
            ON CONFLICT (variant_id, channel_id) DO UPDATE SET
                price = EXCLUDED.price,
                price_before_tax = EXCLUDED.price_before_tax,
                tax_category_id = EXCLUDED.tax_category_id,
                updated_at = EXCLUDED.updated_at
        `
		if _, err := tx.NamedExecContext(ctx, query, price); err != nil {
			return errors.Wrap(err, "upsert channel price")
		}

		query = `
            INSERT INTO price_changes (
                id, variant_id, channel_id, price_before, price_after, tax_category_id,
                reference_type, reference_id, notes, created_by, created_at
            )
            VALUES (
                :id, :variant_id, :channel_id, :price_before, :price_after, :tax_category_id,
                :reference_type, :reference_id, :notes, :created_by, :created_at
            )
        `
		if _, err := tx.NamedExecContext(ctx, query, change); err != nil {
			return errors.Wrap(err, "insert price change")
		}
		return nil
	})
}

func (r *PGRepository) ListChanges(ctx context.Context, f *dto.PriceChangeFilters) ([]model.PriceChange, int, error) {
	conditions := []string{"variant_id = :variant_id"}
	args := map[string]any{"variant_id": f.VariantID}
	if f.ChannelID != "" {
		conditions = append(conditions, "channel_id = :channel_id")
		args["channel_id"] = f.ChannelID
	}
	where := " WHERE " + strings.Join(conditions, " AND ")

	countQuery, countArgs, err := sqlx.Named("SELECT count(*) FROM price_changes"+where, args)
	if err != nil {
		return nil, 0, err
	}
	var count int
	if err := r.DB.GetContext(ctx, &count, r.DB.Rebind(countQuery), countArgs...); err != nil {
		return nil, 0, errors.Wrap(err, "count price changes")
	}

	query := "SELECT * FROM price_changes" + where + " ORDER BY created_at DESC"
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, (page-1)*f.PageSize)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	var changes []model.PriceChange
	if err := nstmt.SelectContext(ctx, &changes, args); err != nil {
		return nil, 0, errors.Wrap(err, "list price changes")
	}
	return changes, count, nil
}
