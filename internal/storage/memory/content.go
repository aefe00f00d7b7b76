// Package memory holds in-memory backends with the same contracts as the
// postgres ones. They are safe for concurrent use.
package memory

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"media_core/internal/content"
	"media_core/internal/domain"
)

type aliasKey struct {
	publisher domain.Publisher
	alias     domain.Alias
}

type ContentRows struct {
	mu      sync.RWMutex
	rows    map[domain.ID]map[content.Column][]byte
	aliases map[aliasKey]domain.ID
}

func NewContentRows() *ContentRows {
	return &ContentRows{
		rows:    map[domain.ID]map[content.Column][]byte{},
		aliases: map[aliasKey]domain.ID{},
	}
}

func (m *ContentRows) ReadRows(_ context.Context, ids []domain.ID) (map[domain.ID]content.Row, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[domain.ID]content.Row, len(ids))
	for _, id := range ids {
		cols, ok := m.rows[id]
		if !ok || len(cols) == 0 {
			continue
		}
		row := content.Row{ID: id, Columns: make(map[content.Column][]byte, len(cols))}
		for c, v := range cols {
			row.Columns[c] = bytes.Clone(v)
		}
		out[id] = row
	}
	return out, nil
}

// WriteBatch checks every condition before applying anything.
func (m *ContentRows) WriteBatch(_ context.Context, batch content.Batch) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, mut := range batch.Mutations {
		if mut.ExpectHash == nil {
			continue
		}
		current := string(m.rows[mut.RowID][content.ColHash])
		if current != *mut.ExpectHash {
			return fmt.Errorf("row %d: %w", mut.RowID, content.ErrConditionFailed)
		}
	}

	for _, mut := range batch.Mutations {
		cols, ok := m.rows[mut.RowID]
		if !ok {
			cols = map[content.Column][]byte{}
			m.rows[mut.RowID] = cols
		}
		for _, c := range mut.Delete {
			delete(cols, c)
		}
		for c, v := range mut.Put {
			cols[c] = bytes.Clone(v)
		}
	}
	for _, e := range batch.UnindexAliases {
		key := aliasKey{publisher: e.Publisher, alias: e.Alias}
		if m.aliases[key] == e.ID {
			delete(m.aliases, key)
		}
	}
	for _, e := range batch.IndexAliases {
		m.aliases[aliasKey{publisher: e.Publisher, alias: e.Alias}] = e.ID
	}
	return nil
}

func (m *ContentRows) LookupAliases(_ context.Context, publisher domain.Publisher, aliases []domain.Alias) (map[domain.Alias]domain.ID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := map[domain.Alias]domain.ID{}
	for _, a := range aliases {
		if id, ok := m.aliases[aliasKey{publisher: publisher, alias: a}]; ok {
			out[a] = id
		}
	}
	return out, nil
}

// PutColumn overwrites one column, bypassing the write path.
func (m *ContentRows) PutColumn(id domain.ID, col content.Column, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rows[id] == nil {
		m.rows[id] = map[content.Column][]byte{}
	}
	m.rows[id][col] = bytes.Clone(value)
}

func (m *ContentRows) DeleteColumn(id domain.ID, col content.Column) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows[id], col)
}

// IDSequence mints increasing ids starting after start.
type IDSequence struct {
	next atomic.Int64
}

func NewIDSequence(start int64) *IDSequence {
	s := &IDSequence{}
	s.next.Store(start)
	return s
}

func (s *IDSequence) GenerateRaw(context.Context) (int64, error) {
	return s.next.Add(1), nil
}
