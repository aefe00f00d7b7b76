package equivalence

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"media_core/internal/config"
	"media_core/internal/domain"
	"media_core/internal/grouplock"
)

const maxLockAttempts = 5

// Store maintains the directed equivalence relation and the connected
// components (equivalence sets) it induces.
type Store struct {
	backend Backend
	clock   Clock
	sender  MessageSender
	locks   *grouplock.GroupLock
	logger  *slog.Logger
	config  config.EquivalenceConfig
}

func NewStore(backend Backend, clock Clock, sender MessageSender, logger *slog.Logger, cfg config.EquivalenceConfig) *Store {
	return &Store{
		backend: backend,
		clock:   clock,
		sender:  sender,
		locks:   grouplock.New(),
		logger:  logger.With("component", "equivalence_graph_store"),
		config:  cfg,
	}
}

// ResolveIDs returns the graph each id belongs to. Ids never asserted on are
// absent.
func (s *Store) ResolveIDs(ctx context.Context, ids []domain.ID) (map[domain.ID]*domain.EquivalenceGraph, error) {
	index, err := s.backend.ReadIndex(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("read graph index: %w", err)
	}
	graphs, err := s.backend.ReadGraphs(ctx, distinctValues(index))
	if err != nil {
		return nil, fmt.Errorf("read graphs: %w", err)
	}
	out := make(map[domain.ID]*domain.EquivalenceGraph, len(index))
	for id, setID := range index {
		if g, ok := graphs[setID]; ok && g.Contains(id) {
			out[id] = g
		}
	}
	return out, nil
}

// UpdateEquivalences replaces subject's outgoing edges to publishers in
// sources with asserted. An empty sources list covers every publisher. It
// returns nil when the edges do not change.
func (s *Store) UpdateEquivalences(ctx context.Context, subject domain.ResourceRef, asserted []domain.ResourceRef, sources []domain.Publisher) (*domain.EquivalenceGraphUpdate, error) {
	seed := []domain.ID{subject.ID}
	for _, a := range asserted {
		seed = append(seed, a.ID)
	}

	var (
		locked []domain.ID
		graphs map[domain.ID]*domain.EquivalenceGraph
		index  map[domain.ID]domain.ID
	)
	for attempt := 0; ; attempt++ {
		if attempt == maxLockAttempts {
			return nil, fmt.Errorf("lock equivalence graphs of %d: membership kept changing", subject.ID)
		}
		var err error
		index, graphs, err = s.readInvolved(ctx, seed)
		if err != nil {
			return nil, err
		}
		want := involvedIDs(seed, graphs)
		if err := s.locks.Lock(ctx, want); err != nil {
			return nil, fmt.Errorf("lock equivalence graphs: %w", err)
		}
		index, graphs, err = s.readInvolved(ctx, seed)
		if err != nil {
			s.locks.Unlock(want)
			return nil, err
		}
		if isSubset(involvedIDs(seed, graphs), want) {
			locked = want
			break
		}
		s.locks.Unlock(want)
	}
	defer s.locks.Unlock(locked)

	update := s.apply(subject, asserted, sources, index, graphs)
	if update == nil {
		return nil, nil
	}

	if err := s.backend.WriteGraphs(ctx, update.AllGraphs(), update.Deleted); err != nil {
		return nil, fmt.Errorf("write graphs: %w", err)
	}

	for _, g := range update.AllGraphs() {
		if s.config.MaxGraphSize > 0 && g.Size() > s.config.MaxGraphSize {
			s.logger.Warn("large equivalence graph", "set_id", g.ID, "size", g.Size(), "subject", subject.ID)
		}
	}
	s.logger.Debug("equivalences updated",
		"subject", subject.ID,
		"set_id", update.Updated.ID,
		"created", len(update.Created),
		"deleted", update.Deleted,
	)

	if s.sender != nil {
		msg := domain.NewEquivalenceGraphUpdateMessage(*update, s.clock.Now())
		if err := s.sender.SendGraphUpdate(ctx, msg); err != nil {
			s.logger.Warn("send graph update", "subject", subject.ID, "error", err)
		}
	}
	return update, nil
}

func (s *Store) readInvolved(ctx context.Context, ids []domain.ID) (map[domain.ID]domain.ID, map[domain.ID]*domain.EquivalenceGraph, error) {
	index, err := s.backend.ReadIndex(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("read graph index: %w", err)
	}
	graphs, err := s.backend.ReadGraphs(ctx, distinctValues(index))
	if err != nil {
		return nil, nil, fmt.Errorf("read graphs: %w", err)
	}
	return index, graphs, nil
}

func (s *Store) apply(
	subject domain.ResourceRef,
	asserted []domain.ResourceRef,
	sources []domain.Publisher,
	index map[domain.ID]domain.ID,
	graphs map[domain.ID]*domain.EquivalenceGraph,
) *domain.EquivalenceGraphUpdate {
	now := s.clock.Now()

	nodes := map[domain.ID]domain.Adjacents{}
	created := map[domain.ID]time.Time{}
	for _, g := range graphs {
		created[g.ID] = g.Created
		for id, adj := range g.Adjacents {
			nodes[id] = cloneAdjacents(adj)
		}
	}
	ensure := func(ref domain.ResourceRef) domain.Adjacents {
		adj, ok := nodes[ref.ID]
		if !ok {
			adj = domain.NewAdjacents(ref, now)
			nodes[ref.ID] = adj
		}
		return adj
	}

	subjectAdj := ensure(subject)
	inScope := func(p domain.Publisher) bool {
		return len(sources) == 0 || slices.Contains(sources, p)
	}

	efferent := []domain.ResourceRef{subjectAdj.Subject}
	for _, r := range subjectAdj.Efferent {
		if r.ID != subject.ID && !inScope(r.Publisher) {
			efferent = append(efferent, r)
		}
	}
	for _, a := range asserted {
		if a.ID != subject.ID && inScope(a.Publisher) && !hasRef(efferent, a.ID) {
			efferent = append(efferent, a)
		}
	}
	if sameIDs(subjectAdj.Efferent, efferent) {
		return nil
	}

	for _, r := range efferent {
		if r.ID == subject.ID || subjectAdj.HasEfferent(r.ID) {
			continue
		}
		adj := ensure(r)
		adj.Afferent = append(adj.Afferent, subjectAdj.Subject)
		nodes[r.ID] = adj
	}
	for _, r := range subjectAdj.Efferent {
		if r.ID == subject.ID || hasRef(efferent, r.ID) {
			continue
		}
		if adj, ok := nodes[r.ID]; ok {
			adj.Afferent = slices.DeleteFunc(adj.Afferent, func(x domain.ResourceRef) bool { return x.ID == subject.ID })
			nodes[r.ID] = adj
		}
	}
	subjectAdj.Efferent = efferent
	nodes[subject.ID] = subjectAdj

	components := connectedComponents(nodes)

	oldSets := map[domain.ID]bool{}
	for id := range nodes {
		if setID, ok := index[id]; ok {
			oldSets[setID] = true
		} else {
			oldSets[id] = true
		}
	}

	update := &domain.EquivalenceGraphUpdate{}
	newSets := map[domain.ID]bool{}
	for _, members := range components {
		adjacents := make(map[domain.ID]domain.Adjacents, len(members))
		for _, id := range members {
			adjacents[id] = nodes[id]
		}
		g := domain.NewEquivalenceGraph(adjacents, now, now)
		if c, ok := created[g.ID]; ok {
			g.Created = c
		}
		newSets[g.ID] = true
		if g.Contains(subject.ID) {
			update.Updated = g
		} else {
			update.Created = append(update.Created, g)
		}
	}
	for id := range oldSets {
		if !newSets[id] {
			update.Deleted = append(update.Deleted, id)
		}
	}
	slices.Sort(update.Deleted)
	slices.SortFunc(update.Created, func(a, b *domain.EquivalenceGraph) int { return cmp.Compare(a.ID, b.ID) })
	return update
}

// connectedComponents groups nodes linked in either direction. Members of
// each component are sorted ascending.
func connectedComponents(nodes map[domain.ID]domain.Adjacents) [][]domain.ID {
	ids := make([]domain.ID, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	seen := map[domain.ID]bool{}
	var components [][]domain.ID
	for _, start := range ids {
		if seen[start] {
			continue
		}
		var members []domain.ID
		queue := []domain.ID{start}
		seen[start] = true
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			members = append(members, id)
			for _, n := range nodes[id].Neighbours() {
				if _, ok := nodes[n.ID]; ok && !seen[n.ID] {
					seen[n.ID] = true
					queue = append(queue, n.ID)
				}
			}
		}
		slices.Sort(members)
		components = append(components, members)
	}
	return components
}

func cloneAdjacents(a domain.Adjacents) domain.Adjacents {
	a.Efferent = slices.Clone(a.Efferent)
	a.Afferent = slices.Clone(a.Afferent)
	return a
}

func involvedIDs(seed []domain.ID, graphs map[domain.ID]*domain.EquivalenceGraph) []domain.ID {
	ids := slices.Clone(seed)
	for _, g := range graphs {
		ids = append(ids, g.Members()...)
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}

func isSubset(ids, of []domain.ID) bool {
	for _, id := range ids {
		if !slices.Contains(of, id) {
			return false
		}
	}
	return true
}

func distinctValues(m map[domain.ID]domain.ID) []domain.ID {
	out := make([]domain.ID, 0, len(m))
	for _, v := range m {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return out
}

func hasRef(refs []domain.ResourceRef, id domain.ID) bool {
	return slices.ContainsFunc(refs, func(r domain.ResourceRef) bool { return r.ID == id })
}

func sameIDs(a, b []domain.ResourceRef) bool {
	if len(a) != len(b) {
		return false
	}
	for _, r := range a {
		if !hasRef(b, r.ID) {
			return false
		}
	}
	return true
}
