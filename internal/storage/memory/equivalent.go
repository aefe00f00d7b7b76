package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"sync"

	"media_core/internal/domain"
	"media_core/internal/equivcontent"
)

type equivalentSet struct {
	graph []byte
	rows  map[domain.ID][]byte
}

type EquivalentContent struct {
	mu    sync.RWMutex
	sets  map[domain.ID]*equivalentSet
	index map[domain.ID]domain.ID
}

func NewEquivalentContent() *EquivalentContent {
	return &EquivalentContent{sets: map[domain.ID]*equivalentSet{}, index: map[domain.ID]domain.ID{}}
}

func (m *EquivalentContent) LookupSets(_ context.Context, ids []domain.ID) (map[domain.ID]domain.ID, error) {
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

func (m *EquivalentContent) ReadSets(_ context.Context, setIDs []domain.ID) (map[domain.ID]*equivcontent.Set, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := map[domain.ID]*equivcontent.Set{}
	for _, id := range setIDs {
		set, ok := m.sets[id]
		if !ok {
			continue
		}
		s := &equivcontent.Set{ID: id, Members: maps.Clone(set.rows)}
		if set.graph != nil {
			var g domain.EquivalenceGraph
			if err := json.Unmarshal(set.graph, &g); err != nil {
				return nil, fmt.Errorf("decode graph of set %d: %w", id, err)
			}
			s.Graph = &g
		}
		out[id] = s
	}
	return out, nil
}

func (m *EquivalentContent) WriteSet(_ context.Context, w equivcontent.SetWrite) error {
	var graph []byte
	if w.Graph != nil {
		raw, err := json.Marshal(w.Graph)
		if err != nil {
			return fmt.Errorf("encode graph of set %d: %w", w.SetID, err)
		}
		graph = raw
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	set, ok := m.sets[w.SetID]
	if !ok {
		set = &equivalentSet{rows: map[domain.ID][]byte{}}
		m.sets[w.SetID] = set
	}
	if graph != nil {
		set.graph = graph
	}
	for _, id := range w.Deletes {
		delete(set.rows, id)
	}
	for id, data := range w.Upserts {
		set.rows[id] = slices.Clone(data)
	}
	for _, id := range w.Index {
		m.index[id] = w.SetID
	}
	if len(set.rows) == 0 && set.graph == nil {
		delete(m.sets, w.SetID)
	}
	return nil
}

func (m *EquivalentContent) DeleteSets(_ context.Context, setIDs []domain.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, setID := range setIDs {
		delete(m.sets, setID)
	}
	for id, setID := range m.index {
		if slices.Contains(setIDs, setID) {
			delete(m.index, id)
		}
	}
	return nil
}

// Rows returns the content ids stored under setID, for assertions.
func (m *EquivalentContent) Rows(setID domain.ID) []domain.ID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	set, ok := m.sets[setID]
	if !ok {
		return nil
	}
	return slices.Sorted(maps.Keys(set.rows))
}

// PutRow stores a raw row without touching the index or graph.
func (m *EquivalentContent) PutRow(setID, contentID domain.ID, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	set, ok := m.sets[setID]
	if !ok {
		set = &equivalentSet{rows: map[domain.ID][]byte{}}
		m.sets[setID] = set
	}
	set.rows[contentID] = data
}
