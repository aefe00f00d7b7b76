package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"media_core/internal/domain"
)

type Graphs struct {
	mu     sync.RWMutex
	graphs map[domain.ID][]byte
	index  map[domain.ID]domain.ID
}

func NewGraphs() *Graphs {
	return &Graphs{graphs: map[domain.ID][]byte{}, index: map[domain.ID]domain.ID{}}
}

func (m *Graphs) ReadIndex(_ context.Context, ids []domain.ID) (map[domain.ID]domain.ID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := map[domain.ID]domain.ID{}
	for _, id := range ids {
		if setID, ok := m.index[id]; ok {
			out[id] = setID
		}
	}
	return out, nil
}

func (m *Graphs) ReadGraphs(_ context.Context, setIDs []domain.ID) (map[domain.ID]*domain.EquivalenceGraph, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := map[domain.ID]*domain.EquivalenceGraph{}
	for _, id := range setIDs {
		raw, ok := m.graphs[id]
		if !ok {
			continue
		}
		var g domain.EquivalenceGraph
		if err := json.Unmarshal(raw, &g); err != nil {
			return nil, fmt.Errorf("decode graph %d: %w", id, err)
		}
		out[id] = &g
	}
	return out, nil
}

func (m *Graphs) WriteGraphs(_ context.Context, graphs []*domain.EquivalenceGraph, deleted []domain.ID) error {
	encoded := make([][]byte, len(graphs))
	for i, g := range graphs {
		raw, err := json.Marshal(g)
		if err != nil {
			return fmt.Errorf("encode graph %d: %w", g.ID, err)
		}
		encoded[i] = raw
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range deleted {
		delete(m.graphs, id)
	}
	for i, g := range graphs {
		m.graphs[g.ID] = encoded[i]
		for member := range g.Adjacents {
			m.index[member] = g.ID
		}
	}
	return nil
}
