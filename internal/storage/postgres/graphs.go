package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"media_core/internal/domain"
)

type Graphs struct {
	db *sqlx.DB
	tm *TransactionManager
}

func NewGraphs(db *sqlx.DB, tm *TransactionManager) *Graphs {
	return &Graphs{db: db, tm: tm}
}

type indexRow struct {
	ContentID int64 `db:"content_id"`
	SetID     int64 `db:"set_id"`
}

type graphRow struct {
	SetID int64  `db:"set_id"`
	Graph []byte `db:"graph"`
}

func (s *Graphs) ReadIndex(ctx context.Context, ids []domain.ID) (map[domain.ID]domain.ID, error) {
	return readIndex(ctx, GetExecutor(ctx, s.db), "equivalence_index", ids)
}

func (s *Graphs) ReadGraphs(ctx context.Context, setIDs []domain.ID) (map[domain.ID]*domain.EquivalenceGraph, error) {
	out := map[domain.ID]*domain.EquivalenceGraph{}
	if len(setIDs) == 0 {
		return out, nil
	}
	var rows []graphRow
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows,
		`SELECT set_id, graph FROM equivalence_graphs WHERE set_id = ANY($1)`, idArray(setIDs))
	if err != nil {
		return nil, fmt.Errorf("read graphs: %w", err)
	}
	for _, r := range rows {
		var g domain.EquivalenceGraph
		if err := json.Unmarshal(r.Graph, &g); err != nil {
			return nil, &domain.CorruptDataError{ID: domain.ID(r.SetID), Reason: fmt.Sprintf("decode graph: %v", err)}
		}
		out[domain.ID(r.SetID)] = &g
	}
	return out, nil
}

func (s *Graphs) WriteGraphs(ctx context.Context, graphs []*domain.EquivalenceGraph, deleted []domain.ID) error {
	return s.tm.WithTransaction(ctx, func(ctx context.Context) error {
		ex := GetExecutor(ctx, s.db)

		if len(deleted) > 0 {
			if _, err := ex.ExecContext(ctx,
				`DELETE FROM equivalence_graphs WHERE set_id = ANY($1)`, idArray(deleted)); err != nil {
				return fmt.Errorf("delete graphs: %w", err)
			}
		}

		for _, g := range graphs {
			raw, err := json.Marshal(g)
			if err != nil {
				return fmt.Errorf("encode graph %d: %w", g.ID, err)
			}
			if _, err := ex.ExecContext(ctx, `
				INSERT INTO equivalence_graphs (set_id, graph)
				VALUES ($1, $2)
				ON CONFLICT (set_id) DO UPDATE SET graph = EXCLUDED.graph, updated_at = NOW()`,
				int64(g.ID), raw); err != nil {
				return fmt.Errorf("write graph %d: %w", g.ID, err)
			}
			if err := writeIndex(ctx, ex, "equivalence_index", g.ID, g.Members()); err != nil {
				return err
			}
		}
		return nil
	})
}

// readIndex and writeIndex serve both content id to set id tables.
func readIndex(ctx context.Context, ex sqlx.ExtContext, table string, ids []domain.ID) (map[domain.ID]domain.ID, error) {
	out := map[domain.ID]domain.ID{}
	if len(ids) == 0 {
		return out, nil
	}
	var rows []indexRow
	query := fmt.Sprintf(`SELECT content_id, set_id FROM %s WHERE content_id = ANY($1)`, table)
	if err := sqlx.SelectContext(ctx, ex, &rows, query, idArray(ids)); err != nil {
		return nil, fmt.Errorf("read %s: %w", table, err)
	}
	for _, r := range rows {
		out[domain.ID(r.ContentID)] = domain.ID(r.SetID)
	}
	return out, nil
}

func writeIndex(ctx context.Context, ex sqlx.ExtContext, table string, setID domain.ID, members []domain.ID) error {
	if len(members) == 0 {
		return nil
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (content_id, set_id)
		SELECT unnest($1::bigint[]), $2
		ON CONFLICT (content_id) DO UPDATE SET set_id = EXCLUDED.set_id`, table)
	if _, err := ex.ExecContext(ctx, query, idArray(members), int64(setID)); err != nil {
		return fmt.Errorf("write %s for set %d: %w", table, setID, err)
	}
	return nil
}
