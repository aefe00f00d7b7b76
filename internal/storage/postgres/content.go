package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"media_core/internal/content"
	"media_core/internal/domain"
)

// ContentRows keeps each content row as one table row per column group.
type ContentRows struct {
	db *sqlx.DB
	tm *TransactionManager
}

func NewContentRows(db *sqlx.DB, tm *TransactionManager) *ContentRows {
	return &ContentRows{db: db, tm: tm}
}

type columnRow struct {
	RowID int64          `db:"row_id"`
	Col   content.Column `db:"col"`
	Value []byte         `db:"value"`
}

func (s *ContentRows) ReadRows(ctx context.Context, ids []domain.ID) (map[domain.ID]content.Row, error) {
	out := make(map[domain.ID]content.Row, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var cols []columnRow
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &cols,
		`SELECT row_id, col, value FROM content_columns WHERE row_id = ANY($1)`, idArray(ids))
	if err != nil {
		return nil, fmt.Errorf("read content rows: %w", err)
	}

	for _, c := range cols {
		id := domain.ID(c.RowID)
		row, ok := out[id]
		if !ok {
			row = content.Row{ID: id, Columns: map[content.Column][]byte{}}
			out[id] = row
		}
		row.Columns[c.Col] = c.Value
	}
	return out, nil
}

// WriteBatch applies the batch in one transaction. Rows carrying a hash
// condition are locked before the condition is checked.
func (s *ContentRows) WriteBatch(ctx context.Context, batch content.Batch) error {
	return s.tm.WithTransaction(ctx, func(ctx context.Context) error {
		ex := GetExecutor(ctx, s.db)

		var guarded []domain.ID
		for _, m := range batch.Mutations {
			if m.ExpectHash != nil {
				guarded = append(guarded, m.RowID)
			}
		}
		if err := lockRows(ctx, ex, guarded); err != nil {
			return err
		}

		for _, m := range batch.Mutations {
			if m.ExpectHash == nil {
				continue
			}
			var current []byte
			err := sqlx.GetContext(ctx, ex, &current,
				`SELECT value FROM content_columns WHERE row_id = $1 AND col = $2`, int64(m.RowID), content.ColHash)
			if err != nil && !errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("read hash of row %d: %w", m.RowID, err)
			}
			if string(current) != *m.ExpectHash {
				return fmt.Errorf("row %d: %w", m.RowID, content.ErrConditionFailed)
			}
		}

		for _, m := range batch.Mutations {
			if err := s.applyMutation(ctx, ex, m); err != nil {
				return err
			}
		}

		for _, e := range batch.UnindexAliases {
			_, err := ex.ExecContext(ctx,
				`DELETE FROM content_aliases WHERE publisher = $1 AND namespace = $2 AND value = $3 AND content_id = $4`,
				e.Publisher, e.Alias.Namespace, e.Alias.Value, int64(e.ID))
			if err != nil {
				return fmt.Errorf("unindex alias %s:%s: %w", e.Alias.Namespace, e.Alias.Value, err)
			}
		}
		for _, e := range batch.IndexAliases {
			_, err := ex.ExecContext(ctx, `
				INSERT INTO content_aliases (publisher, namespace, value, content_id)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (publisher, namespace, value) DO UPDATE SET content_id = EXCLUDED.content_id`,
				e.Publisher, e.Alias.Namespace, e.Alias.Value, int64(e.ID))
			if err != nil {
				return fmt.Errorf("index alias %s:%s: %w", e.Alias.Namespace, e.Alias.Value, err)
			}
		}
		return nil
	})
}

func (s *ContentRows) applyMutation(ctx context.Context, ex sqlx.ExtContext, m content.Mutation) error {
	if len(m.Delete) > 0 {
		cols := make([]string, len(m.Delete))
		for i, c := range m.Delete {
			cols[i] = string(c)
		}
		_, err := ex.ExecContext(ctx,
			`DELETE FROM content_columns WHERE row_id = $1 AND col = ANY($2)`, int64(m.RowID), pq.Array(cols))
		if err != nil {
			return fmt.Errorf("delete columns of row %d: %w", m.RowID, err)
		}
	}
	for col, value := range m.Put {
		_, err := ex.ExecContext(ctx, `
			INSERT INTO content_columns (row_id, col, value)
			VALUES ($1, $2, $3)
			ON CONFLICT (row_id, col) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
			int64(m.RowID), col, value)
		if err != nil {
			return fmt.Errorf("write %s column of row %d: %w", col, m.RowID, err)
		}
	}
	return nil
}

type aliasRow struct {
	Namespace string `db:"namespace"`
	Value     string `db:"value"`
	ContentID int64  `db:"content_id"`
}

func (s *ContentRows) LookupAliases(ctx context.Context, publisher domain.Publisher, aliases []domain.Alias) (map[domain.Alias]domain.ID, error) {
	out := map[domain.Alias]domain.ID{}
	if len(aliases) == 0 {
		return out, nil
	}
	namespaces := make([]string, len(aliases))
	values := make([]string, len(aliases))
	for i, a := range aliases {
		namespaces[i], values[i] = a.Namespace, a.Value
	}

	var rows []aliasRow
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, `
		SELECT namespace, value, content_id FROM content_aliases
		WHERE publisher = $1
		  AND (namespace, value) IN (SELECT * FROM unnest($2::text[], $3::text[]))`,
		publisher, pq.Array(namespaces), pq.Array(values))
	if err != nil {
		return nil, fmt.Errorf("lookup aliases: %w", err)
	}
	for _, r := range rows {
		out[domain.Alias{Namespace: r.Namespace, Value: r.Value}] = domain.ID(r.ContentID)
	}
	return out, nil
}

// IDSequence mints content ids from content_id_seq.
type IDSequence struct {
	db *sqlx.DB
}

func NewIDSequence(db *sqlx.DB) *IDSequence {
	return &IDSequence{db: db}
}

func (s *IDSequence) GenerateRaw(ctx context.Context) (int64, error) {
	var id int64
	if err := s.db.GetContext(ctx, &id, `SELECT nextval('content_id_seq')`); err != nil {
		return 0, fmt.Errorf("next content id: %w", err)
	}
	return id, nil
}
