package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"media_core/internal/domain"
	"media_core/internal/equivcontent"
)

// EquivalentContent stores equivalent content rows keyed by set and content
// id. A set exists while it has a graph or at least one row.
type EquivalentContent struct {
	db *sqlx.DB
	tm *TransactionManager
}

func NewEquivalentContent(db *sqlx.DB, tm *TransactionManager) *EquivalentContent {
	return &EquivalentContent{db: db, tm: tm}
}

type equivalentRow struct {
	SetID     int64  `db:"set_id"`
	ContentID int64  `db:"content_id"`
	Data      []byte `db:"data"`
}

func (s *EquivalentContent) LookupSets(ctx context.Context, ids []domain.ID) (map[domain.ID]domain.ID, error) {
	return readIndex(ctx, GetExecutor(ctx, s.db), "equivalent_index", ids)
}

func (s *EquivalentContent) ReadSets(ctx context.Context, setIDs []domain.ID) (map[domain.ID]*equivcontent.Set, error) {
	out := map[domain.ID]*equivcontent.Set{}
	if len(setIDs) == 0 {
		return out, nil
	}
	ex := GetExecutor(ctx, s.db)

	set := func(id domain.ID) *equivcontent.Set {
		if existing, ok := out[id]; ok {
			return existing
		}
		created := &equivcontent.Set{ID: id, Members: map[domain.ID][]byte{}}
		out[id] = created
		return created
	}

	var graphs []graphRow
	err := sqlx.SelectContext(ctx, ex, &graphs,
		`SELECT set_id, graph FROM equivalent_sets WHERE set_id = ANY($1) AND graph IS NOT NULL`, idArray(setIDs))
	if err != nil {
		return nil, fmt.Errorf("read equivalent sets: %w", err)
	}
	for _, r := range graphs {
		var g domain.EquivalenceGraph
		if err := json.Unmarshal(r.Graph, &g); err != nil {
			return nil, &domain.CorruptDataError{ID: domain.ID(r.SetID), Reason: fmt.Sprintf("decode set graph: %v", err)}
		}
		set(domain.ID(r.SetID)).Graph = &g
	}

	var rows []equivalentRow
	err = sqlx.SelectContext(ctx, ex, &rows,
		`SELECT set_id, content_id, data FROM equivalent_rows WHERE set_id = ANY($1)`, idArray(setIDs))
	if err != nil {
		return nil, fmt.Errorf("read equivalent rows: %w", err)
	}
	for _, r := range rows {
		set(domain.ID(r.SetID)).Members[domain.ID(r.ContentID)] = r.Data
	}
	return out, nil
}

func (s *EquivalentContent) WriteSet(ctx context.Context, w equivcontent.SetWrite) error {
	var graph []byte
	if w.Graph != nil {
		raw, err := json.Marshal(w.Graph)
		if err != nil {
			return fmt.Errorf("encode graph of set %d: %w", w.SetID, err)
		}
		graph = raw
	}

	return s.tm.WithTransaction(ctx, func(ctx context.Context) error {
		ex := GetExecutor(ctx, s.db)
		setID := int64(w.SetID)

		if graph != nil {
			if _, err := ex.ExecContext(ctx, `
				INSERT INTO equivalent_sets (set_id, graph) VALUES ($1, $2)
				ON CONFLICT (set_id) DO UPDATE SET graph = EXCLUDED.graph`, setID, graph); err != nil {
				return fmt.Errorf("write graph of set %d: %w", w.SetID, err)
			}
		}
		if len(w.Deletes) > 0 {
			if _, err := ex.ExecContext(ctx,
				`DELETE FROM equivalent_rows WHERE set_id = $1 AND content_id = ANY($2)`,
				setID, idArray(w.Deletes)); err != nil {
				return fmt.Errorf("delete rows of set %d: %w", w.SetID, err)
			}
		}
		for id, data := range w.Upserts {
			if _, err := ex.ExecContext(ctx, `
				INSERT INTO equivalent_rows (set_id, content_id, data) VALUES ($1, $2, $3)
				ON CONFLICT (set_id, content_id) DO UPDATE SET data = EXCLUDED.data`,
				setID, int64(id), data); err != nil {
				return fmt.Errorf("write row %d of set %d: %w", id, w.SetID, err)
			}
		}
		return writeIndex(ctx, ex, "equivalent_index", w.SetID, w.Index)
	})
}

func (s *EquivalentContent) DeleteSets(ctx context.Context, setIDs []domain.ID) error {
	if len(setIDs) == 0 {
		return nil
	}
	return s.tm.WithTransaction(ctx, func(ctx context.Context) error {
		ex := GetExecutor(ctx, s.db)
		ids := idArray(setIDs)
		for _, q := range []string{
			`DELETE FROM equivalent_rows WHERE set_id = ANY($1)`,
			`DELETE FROM equivalent_sets WHERE set_id = ANY($1)`,
			`DELETE FROM equivalent_index WHERE set_id = ANY($1)`,
		} {
			if _, err := ex.ExecContext(ctx, q, ids); err != nil {
				return fmt.Errorf("delete equivalent sets: %w", err)
			}
		}
		return nil
	})
}
