package translatable

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// Store reads and writes the translation rows of one entity kind. Every
// translation table shares the columns of model.Translation.
type Store struct {
	Table string
}

func NewStore(table string) Store {
	return Store{Table: table}
}

func (s Store) Insert(ctx context.Context, ext sqlx.ExtContext, rows []model.Translation) error {
	query := fmt.Sprintf(`
        INSERT INTO %s (id, base_id, language_code, name, slug, description)
        VALUES (:id, :base_id, :language_code, :name, :slug, :description)
    `, s.Table)
	for _, row := range rows {
		if _, err := sqlx.NamedExecContext(ctx, ext, query, row); err != nil {
			return errors.Wrapf(err, "insert %s", s.Table)
		}
	}
	return nil
}

// Load returns the translations of baseIDs grouped by base id.
func (s Store) Load(ctx context.Context, ext sqlx.ExtContext, baseIDs ...string) (map[string][]model.Translation, error) {
	out := make(map[string][]model.Translation, len(baseIDs))
	if len(baseIDs) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(fmt.Sprintf(`
        SELECT id, base_id, language_code, name, slug, description
        FROM %s WHERE base_id IN (?) ORDER BY base_id, language_code
    `, s.Table), baseIDs)
	if err != nil {
		return nil, err
	}

	var rows []model.Translation
	if err := sqlx.SelectContext(ctx, ext, &rows, ext.Rebind(query), args...); err != nil {
		return nil, errors.Wrapf(err, "select %s", s.Table)
	}
	for _, row := range rows {
		out[row.BaseID] = append(out[row.BaseID], row)
	}
	return out, nil
}

// Save writes a computed diff: removals first, then updates, then inserts.
func (s Store) Save(ctx context.Context, ext sqlx.ExtContext, d Diff) error {
	for _, t := range d.ToRemove {
		query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, s.Table)
		if _, err := ext.ExecContext(ctx, query, t.ID); err != nil {
			return errors.Wrapf(err, "delete %s", s.Table)
		}
	}
	for _, t := range d.ToUpdate {
		query := fmt.Sprintf(`
            UPDATE %s SET name = :name, slug = :slug, description = :description
            WHERE id = :id
        `, s.Table)
		if _, err := sqlx.NamedExecContext(ctx, ext, query, t); err != nil {
			return errors.Wrapf(err, "update %s", s.Table)
		}
	}
	return s.Insert(ctx, ext, d.ToAdd)
}
