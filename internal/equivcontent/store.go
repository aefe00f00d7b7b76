package equivcontent

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"media_core/internal/domain"
	"media_core/internal/grouplock"
)

const writeConcurrency = 8

// ResolvedEquivalents maps each requested id to the members of its
// equivalence set, best source first.
type ResolvedEquivalents map[domain.ID][]domain.Content

// Store materialises one row per (equivalence set, content) pair so a whole
// set reads back in one lookup.
type Store struct {
	backend  Backend
	contents ContentResolver
	graphs   GraphResolver
	clock    Clock
	sender   MessageSender
	locks    *grouplock.GroupLock
	logger   *slog.Logger
}

func NewStore(
	backend Backend,
	contents ContentResolver,
	graphs GraphResolver,
	clock Clock,
	sender MessageSender,
	logger *slog.Logger,
) *Store {
	return &Store{
		backend:  backend,
		contents: contents,
		graphs:   graphs,
		clock:    clock,
		sender:   sender,
		locks:    grouplock.New(),
		logger:   logger.With("component", "equivalent_content_store"),
	}
}

// UpdateContent rewrites the row of one content under its current set.
func (s *Store) UpdateContent(ctx context.Context, id domain.ID) error {
	ids := []domain.ID{id}
	if err := s.locks.Lock(ctx, ids); err != nil {
		return fmt.Errorf("lock content %d: %w", id, err)
	}
	defer s.locks.Unlock(ids)

	resolved, err := s.contents.ResolveIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("resolve content %d: %w", id, err)
	}
	c, ok := resolved[id]
	if !ok {
		return &domain.NotFoundError{Kind: "content", IDs: ids}
	}

	graphs, err := s.graphs.ResolveIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("resolve graph of %d: %w", id, err)
	}
	graph, ok := graphs[id]
	if !ok {
		graph = domain.SingletonGraph(domain.RefOf(c), s.clock.Now())
	}

	index, err := s.backend.LookupSets(ctx, ids)
	if err != nil {
		return fmt.Errorf("lookup set of %d: %w", id, err)
	}

	data, err := domain.MarshalContent(c)
	if err != nil {
		return fmt.Errorf("encode content %d: %w", id, err)
	}
	err = s.backend.WriteSet(ctx, SetWrite{
		SetID:   graph.ID,
		Graph:   graph,
		Upserts: map[domain.ID][]byte{id: data},
		Index:   ids,
	})
	if err != nil {
		return fmt.Errorf("write set %d: %w", graph.ID, err)
	}

	if old, ok := index[id]; ok && old != graph.ID {
		if err := s.backend.WriteSet(ctx, SetWrite{SetID: old, Deletes: ids}); err != nil {
			return fmt.Errorf("remove %d from set %d: %w", id, old, err)
		}
	}

	s.notify(ctx, graph.ID, []domain.Content{c})
	return nil
}

// UpdateEquivalences moves rows to match update. Graphs older than the one
// already stored for the same set are ignored, so redelivered or reordered
// updates are harmless.
func (s *Store) UpdateEquivalences(ctx context.Context, update domain.EquivalenceGraphUpdate) error {
	if update.Updated == nil {
		return nil
	}
	ids := updateIDs(update)

	stale, err := s.applyLocked(ctx, update, ids)
	if err != nil {
		return err
	}

	// Stale members may include ids of the deleted sets, which were held above.
	for _, id := range stale {
		if err := s.UpdateContent(ctx, id); err != nil {
			s.logger.Warn("update stale content", "content_id", id, "error", err)
		}
	}
	return nil
}

func (s *Store) applyLocked(ctx context.Context, update domain.EquivalenceGraphUpdate, ids []domain.ID) ([]domain.ID, error) {
	if err := s.locks.Lock(ctx, ids); err != nil {
		return nil, fmt.Errorf("lock equivalence update: %w", err)
	}
	defer s.locks.Unlock(ids)

	contents, err := s.contents.ResolveIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve content: %w", err)
	}
	index, err := s.backend.LookupSets(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("lookup sets: %w", err)
	}

	graphs := update.AllGraphs()
	setIDs := make([]domain.ID, 0, len(graphs)+len(update.Deleted))
	for _, g := range graphs {
		setIDs = append(setIDs, g.ID)
	}
	setIDs = append(setIDs, update.Deleted...)
	stored, err := s.backend.ReadSets(ctx, setIDs)
	if err != nil {
		return nil, fmt.Errorf("read sets: %w", err)
	}

	var (
		writes  []SetWrite
		written = map[domain.ID]bool{}
		homed   = map[domain.ID]bool{}
		sent    = map[domain.ID][]domain.Content{}
	)
	for _, g := range graphs {
		if prev, ok := stored[g.ID]; ok && prev.Graph != nil && prev.Graph.Updated.After(g.Updated) {
			s.logger.Debug("skip outdated graph", "set_id", g.ID, "updated", g.Updated, "stored", prev.Graph.Updated)
			continue
		}
		for _, member := range g.Members() {
			homed[member] = true
		}
		w := SetWrite{SetID: g.ID, Graph: g, Upserts: map[domain.ID][]byte{}, Index: g.Members()}
		for _, member := range g.Members() {
			c, ok := contents[member]
			if !ok {
				continue
			}
			data, err := domain.MarshalContent(c)
			if err != nil {
				return nil, fmt.Errorf("encode content %d: %w", member, err)
			}
			w.Upserts[member] = data
			sent[g.ID] = append(sent[g.ID], c)
		}
		if prev, ok := stored[g.ID]; ok {
			for member := range prev.Members {
				if !g.Contains(member) {
					w.Deletes = append(w.Deletes, member)
				}
			}
			slices.Sort(w.Deletes)
		}
		writes = append(writes, w)
		written[g.ID] = true
	}

	deleted := map[domain.ID]bool{}
	for _, id := range update.Deleted {
		if written[id] {
			continue
		}
		// A set recreated after this update keeps its rows.
		if prev, ok := stored[id]; ok && prev.Graph != nil && prev.Graph.Updated.After(update.Updated.Updated) {
			s.logger.Debug("skip outdated set deletion", "set_id", id, "updated", update.Updated.Updated, "stored", prev.Graph.Updated)
			continue
		}
		deleted[id] = true
	}

	// Rows left behind in sets this update does not rewrite.
	moved := map[domain.ID][]domain.ID{}
	for _, w := range writes {
		for _, member := range w.Index {
			old, ok := index[member]
			if ok && old != w.SetID && !written[old] && !deleted[old] {
				moved[old] = append(moved[old], member)
			}
		}
	}
	for old, members := range moved {
		slices.Sort(members)
		writes = append(writes, SetWrite{SetID: old, Deletes: members})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(writeConcurrency)
	for _, w := range writes {
		g.Go(func() error {
			if err := s.backend.WriteSet(gctx, w); err != nil {
				return fmt.Errorf("write set %d: %w", w.SetID, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var stale []domain.ID
	if len(deleted) > 0 {
		drop := make([]domain.ID, 0, len(deleted))
		for id := range deleted {
			drop = append(drop, id)
			if prev, ok := stored[id]; ok {
				for member := range prev.Members {
					if !homed[member] {
						stale = append(stale, member)
					}
				}
			}
		}
		slices.Sort(drop)
		if err := s.backend.DeleteSets(ctx, drop); err != nil {
			return nil, fmt.Errorf("delete sets %v: %w", drop, err)
		}
	}
	slices.Sort(stale)
	stale = slices.Compact(stale)

	for setID, cs := range sent {
		s.notify(ctx, setID, cs)
	}
	return stale, nil
}

// ResolveIDs returns the members of each id's set that belong to one of
// sources, ordered by their position in sources and then by id. An empty
// sources list admits every publisher. Ids with no set are absent.
func (s *Store) ResolveIDs(ctx context.Context, ids []domain.ID, sources []domain.Publisher, annotations domain.Annotations) (ResolvedEquivalents, error) {
	index, err := s.backend.LookupSets(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("lookup sets: %w", err)
	}
	setIDs := make([]domain.ID, 0, len(index))
	for _, setID := range index {
		if !slices.Contains(setIDs, setID) {
			setIDs = append(setIDs, setID)
		}
	}
	sets, err := s.backend.ReadSets(ctx, setIDs)
	if err != nil {
		return nil, fmt.Errorf("read sets: %w", err)
	}

	decoded := make(map[domain.ID][]domain.Content, len(sets))
	for setID, set := range sets {
		members, err := s.decodeSet(set, sources, annotations)
		if err != nil {
			return nil, err
		}
		decoded[setID] = members
	}

	out := make(ResolvedEquivalents, len(index))
	for _, id := range ids {
		setID, ok := index[id]
		if !ok {
			continue
		}
		if members := decoded[setID]; len(members) > 0 {
			out[id] = members
		}
	}
	return out, nil
}

// ResolveIDsWithoutEquivalence is ResolveIDs keeping only the requested rows.
func (s *Store) ResolveIDsWithoutEquivalence(ctx context.Context, ids []domain.ID, sources []domain.Publisher, annotations domain.Annotations) (map[domain.ID]domain.Content, error) {
	resolved, err := s.ResolveIDs(ctx, ids, sources, annotations)
	if err != nil {
		return nil, err
	}
	out := make(map[domain.ID]domain.Content, len(resolved))
	for id, members := range resolved {
		for _, c := range members {
			if c.Base().ID == id {
				out[id] = c
			}
		}
	}
	return out, nil
}

func (s *Store) decodeSet(set *Set, sources []domain.Publisher, annotations domain.Annotations) ([]domain.Content, error) {
	var out []domain.Content
	for member, data := range set.Members {
		if data == nil {
			continue
		}
		if set.Graph != nil && !set.Graph.Contains(member) {
			continue
		}
		c, err := domain.UnmarshalContent(data)
		if err != nil {
			return nil, &domain.CorruptDataError{ID: member, Reason: err.Error()}
		}
		if len(sources) > 0 && !slices.Contains(sources, c.Base().Publisher) {
			continue
		}
		annotations.Trim(c)
		out = append(out, c)
	}
	rank := func(c domain.Content) int {
		if len(sources) == 0 {
			return 0
		}
		return slices.Index(sources, c.Base().Publisher)
	}
	slices.SortFunc(out, func(a, b domain.Content) int {
		if r := cmp.Compare(rank(a), rank(b)); r != 0 {
			return r
		}
		return cmp.Compare(a.Base().ID, b.Base().ID)
	})
	return out, nil
}

func (s *Store) notify(ctx context.Context, setID domain.ID, cs []domain.Content) {
	if s.sender == nil {
		return
	}
	now := s.clock.Now()
	for _, c := range cs {
		msg := domain.NewEquivalentContentUpdatedMessage(setID, domain.RefOf(c), now)
		if err := s.sender.SendEquivalentContentUpdated(ctx, msg); err != nil {
			s.logger.Warn("send equivalent content updated", "set_id", setID, "content_id", c.Base().ID, "error", err)
		}
	}
}

func updateIDs(update domain.EquivalenceGraphUpdate) []domain.ID {
	var ids []domain.ID
	for _, g := range update.AllGraphs() {
		ids = append(ids, g.Members()...)
	}
	ids = append(ids, update.Deleted...)
	slices.Sort(ids)
	return slices.Compact(ids)
}
