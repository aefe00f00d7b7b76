package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"media_core/internal/config"
	"media_core/internal/domain"
)

type WriteResult struct {
	Resource domain.Content
	Previous domain.Content
	Written  bool
}

// Store is the authoritative per-publisher content repository. Writes keep the
// brand/series/item hierarchy's denormalised references in step.
type Store struct {
	backend    Backend
	ids        IDGenerator
	hasher     Hasher
	clock      Clock
	sender     MessageSender
	graphs     GraphResolver
	normalizer *domain.AliasNormalizer
	logger     *slog.Logger
	config     config.ContentConfig
}

// NewStore builds a Store. sender and graphs may be nil.
func NewStore(
	backend Backend,
	ids IDGenerator,
	hasher Hasher,
	clock Clock,
	sender MessageSender,
	graphs GraphResolver,
	normalizer *domain.AliasNormalizer,
	logger *slog.Logger,
	cfg config.ContentConfig,
) *Store {
	return &Store{
		backend:    backend,
		ids:        ids,
		hasher:     hasher,
		clock:      clock,
		sender:     sender,
		graphs:     graphs,
		normalizer: normalizer,
		logger:     logger.With("component", "content_store"),
		config:     cfg,
	}
}

// parents are the containers content hangs off, read before the write.
type parents struct {
	container domain.ContainerContent
	series    *domain.Series
	brand     *domain.Brand
}

func (s *Store) WriteContent(ctx context.Context, c domain.Content) (*WriteResult, error) {
	if c == nil {
		return nil, errors.New("write content: nil content")
	}
	content, err := domain.Clone(c)
	if err != nil {
		return nil, fmt.Errorf("write content: %w", err)
	}
	base := content.Base()
	if base.Publisher == "" {
		return nil, &domain.WriteError{Reason: domain.ReasonInvalid, Resource: domain.RefOf(content), Detail: "no publisher"}
	}

	previous, err := s.resolvePrevious(ctx, content)
	if err != nil {
		return nil, err
	}
	if previous != nil {
		base.ID = previous.content.Base().ID
	}

	ps, err := s.resolveParents(ctx, content)
	if err != nil {
		return nil, err
	}
	s.prepare(content, previous, ps)

	if base.ID == 0 {
		raw, err := s.ids.GenerateRaw(ctx)
		if err != nil {
			return nil, fmt.Errorf("generate id: %w", err)
		}
		base.ID = domain.ID(raw)
	}

	hash, err := s.hasher.Hash(content)
	if err != nil {
		return nil, fmt.Errorf("hash content: %w", err)
	}
	if previous != nil {
		previousHash := previous.hash
		if previousHash == "" {
			if previousHash, err = s.hasher.Hash(previous.content); err != nil {
				return nil, fmt.Errorf("hash previous content: %w", err)
			}
		}
		if previousHash == hash {
			s.logger.Debug("content unchanged, skipping write", "id", base.ID, "publisher", base.Publisher)
			return &WriteResult{Resource: previous.content, Previous: previous.content, Written: false}, nil
		}
	}

	now := s.clock.Now()
	if previous != nil && !previous.content.Base().FirstSeen.IsZero() {
		base.FirstSeen = previous.content.Base().FirstSeen
	} else {
		base.FirstSeen = now
	}
	base.LastUpdated = now
	base.ThisOrChildLastUpdated = now

	put, del, err := encodeContent(content, hash)
	if err != nil {
		return nil, err
	}
	expect := ""
	var previousContent domain.Content
	if previous != nil {
		expect = previous.hash
		previousContent = previous.content
	}
	batch := Batch{
		Mutations: []Mutation{{RowID: base.ID, Put: put, Delete: del, ExpectHash: &expect}},
	}
	s.indexAliases(&batch, content, previousContent)

	if err := s.backend.WriteBatch(ctx, batch); err != nil {
		if errors.Is(err, ErrConditionFailed) {
			return nil, &domain.WriteError{Reason: domain.ReasonConditionFailed, Resource: domain.RefOf(content)}
		}
		return nil, fmt.Errorf("write content row %d: %w", base.ID, err)
	}

	written := []domain.ResourceRef{domain.RefOf(content)}
	propagated, err := s.propagate(ctx, content, previousContent, now)
	if err != nil {
		return nil, fmt.Errorf("propagate %s %d: %w", content.Type(), base.ID, err)
	}
	written = append(written, propagated...)

	s.notify(ctx, written)

	s.logger.Debug("content written",
		"id", base.ID,
		"type", content.Type(),
		"publisher", base.Publisher,
		"propagated", len(propagated),
	)

	return &WriteResult{Resource: content, Previous: previousContent, Written: true}, nil
}

// resolvePrevious finds the stored row content replaces, by id or else by
// any of its aliases within its publisher. An alias never moves between rows:
// a write with an id fails if one of its aliases is indexed to another row.
func (s *Store) resolvePrevious(ctx context.Context, content domain.Content) (*stored, error) {
	base := content.Base()
	id := base.ID
	if len(base.Aliases) > 0 {
		matches, err := s.backend.LookupAliases(ctx, base.Publisher, base.Aliases)
		if err != nil {
			return nil, fmt.Errorf("lookup aliases: %w", err)
		}
		var ids []domain.ID
		for _, matched := range matches {
			if !slices.Contains(ids, matched) {
				ids = append(ids, matched)
			}
		}
		if id != 0 {
			ids = slices.DeleteFunc(ids, func(matched domain.ID) bool { return matched == id })
			if len(ids) > 0 {
				slices.Sort(ids)
				return nil, &domain.WriteError{
					Reason:   domain.ReasonAmbiguousAlias,
					Resource: domain.RefOf(content),
					Detail:   fmt.Sprintf("aliases already belong to %v", ids),
				}
			}
		} else if len(ids) > 1 {
			slices.Sort(ids)
			return nil, &domain.WriteError{
				Reason:   domain.ReasonAmbiguousAlias,
				Resource: domain.RefOf(content),
				Detail:   fmt.Sprintf("aliases resolve to %v", ids),
			}
		}
		if len(ids) == 1 {
			id = ids[0]
		}
	}
	if id == 0 {
		return nil, nil
	}

	found, err := s.read(ctx, []domain.ID{id})
	if err != nil {
		return nil, err
	}
	previous, ok := found[id]
	if !ok {
		return nil, nil
	}
	if previous.content.Base().Publisher != base.Publisher {
		return nil, &domain.WriteError{
			Reason:   domain.ReasonInvalid,
			Resource: domain.RefOf(content),
			Detail:   fmt.Sprintf("row %d belongs to %s", id, previous.content.Base().Publisher),
		}
	}
	return previous, nil
}

func (s *Store) resolveParents(ctx context.Context, content domain.Content) (*parents, error) {
	var containerRef, seriesRef, brandRef *domain.ResourceRef
	switch v := content.(type) {
	case domain.ItemContent:
		containerRef = v.ItemBase().ContainerRef
		seriesRef = domain.SeriesRefOf(v)
	case *domain.Series:
		brandRef = v.BrandRef
	}

	var ids []domain.ID
	for _, ref := range []*domain.ResourceRef{containerRef, seriesRef, brandRef} {
		if ref != nil && !slices.Contains(ids, ref.ID) {
			ids = append(ids, ref.ID)
		}
	}
	ps := &parents{}
	if len(ids) == 0 {
		return ps, nil
	}

	found, err := s.read(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve parents: %w", err)
	}
	lookup := func(ref *domain.ResourceRef) (domain.Content, error) {
		parent, ok := found[ref.ID]
		if !ok {
			return nil, &domain.WriteError{
				Reason:   domain.ReasonMissingParent,
				Resource: domain.RefOf(content),
				Detail:   fmt.Sprintf("%d not found", ref.ID),
			}
		}
		return parent.content, nil
	}
	badParent := func(id domain.ID, want string) error {
		return &domain.WriteError{
			Reason:   domain.ReasonInvalid,
			Resource: domain.RefOf(content),
			Detail:   fmt.Sprintf("parent %d is not a %s", id, want),
		}
	}

	if containerRef != nil {
		parent, err := lookup(containerRef)
		if err != nil {
			return nil, err
		}
		container, ok := parent.(domain.ContainerContent)
		if !ok {
			return nil, badParent(containerRef.ID, "container")
		}
		ps.container = container
	}
	if seriesRef != nil {
		parent, err := lookup(seriesRef)
		if err != nil {
			return nil, err
		}
		series, ok := parent.(*domain.Series)
		if !ok {
			return nil, badParent(seriesRef.ID, "series")
		}
		ps.series = series
	}
	if brandRef != nil {
		parent, err := lookup(brandRef)
		if err != nil {
			return nil, err
		}
		brand, ok := parent.(*domain.Brand)
		if !ok {
			return nil, badParent(brandRef.ID, "brand")
		}
		ps.brand = brand
	}
	return ps, nil
}

// prepare fills in what the write path owns: container summaries and
// published broadcasts on items, stored child collections on containers.
func (s *Store) prepare(content domain.Content, previous *stored, ps *parents) {
	if i, ok := content.(domain.ItemContent); ok {
		item := i.ItemBase()
		item.ContainerSummary = nil
		if ps.container != nil {
			item.ContainerSummary = domain.SummarizeContainer(ps.container)
		}
		var published []domain.Broadcast
		for _, b := range item.Broadcasts {
			if b.ActivelyPublished {
				published = s.normalizer.MergeBroadcasts(published, b)
			}
		}
		item.Broadcasts = published
	}

	cc, ok := content.(domain.ContainerContent)
	if !ok {
		return
	}
	container := cc.ContainerBase()
	container.ItemRefs, container.ItemSummaries = nil, nil
	container.UpcomingContent, container.AvailableContent = nil, nil
	if brand, ok := content.(*domain.Brand); ok {
		brand.SeriesRefs = nil
	}
	if previous == nil {
		return
	}
	prev, ok := previous.content.(domain.ContainerContent)
	if !ok {
		return
	}
	kept := prev.ContainerBase()
	container.ItemRefs = kept.ItemRefs
	container.ItemSummaries = kept.ItemSummaries
	container.UpcomingContent = kept.UpcomingContent
	container.AvailableContent = kept.AvailableContent
	if brand, ok := content.(*domain.Brand); ok {
		if prevBrand, ok := previous.content.(*domain.Brand); ok {
			brand.SeriesRefs = prevBrand.SeriesRefs
		}
	}
}

func (s *Store) indexAliases(batch *Batch, content, previous domain.Content) {
	base := content.Base()
	for _, a := range base.Aliases {
		batch.IndexAliases = append(batch.IndexAliases, AliasEntry{Publisher: base.Publisher, Alias: a, ID: base.ID})
	}
	if previous == nil {
		return
	}
	for _, a := range previous.Base().Aliases {
		if !slices.Contains(base.Aliases, a) {
			batch.UnindexAliases = append(batch.UnindexAliases, AliasEntry{Publisher: base.Publisher, Alias: a, ID: base.ID})
		}
	}
}

// ResolveIDs returns the content stored under ids. Missing ids are absent
// from the result.
func (s *Store) ResolveIDs(ctx context.Context, ids []domain.ID) (map[domain.ID]domain.Content, error) {
	found, err := s.read(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[domain.ID]domain.Content, len(found))
	for id, st := range found {
		out[id] = st.content
	}
	return out, nil
}

func (s *Store) ResolveAliases(ctx context.Context, aliases []domain.Alias, publisher domain.Publisher) (map[domain.Alias]domain.Content, error) {
	if len(aliases) == 0 {
		return map[domain.Alias]domain.Content{}, nil
	}
	matches, err := s.backend.LookupAliases(ctx, publisher, aliases)
	if err != nil {
		return nil, fmt.Errorf("lookup aliases: %w", err)
	}
	var ids []domain.ID
	for _, id := range matches {
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	resolved, err := s.ResolveIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[domain.Alias]domain.Content, len(matches))
	for alias, id := range matches {
		if c, ok := resolved[id]; ok {
			out[alias] = c
		}
	}
	return out, nil
}

func (s *Store) read(ctx context.Context, ids []domain.ID) (map[domain.ID]*stored, error) {
	if len(ids) == 0 {
		return map[domain.ID]*stored{}, nil
	}
	rows, err := s.backend.ReadRows(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	out := make(map[domain.ID]*stored, len(rows))
	for id, row := range rows {
		st, err := decodeRow(row)
		if err != nil {
			return nil, err
		}
		if st != nil {
			out[id] = st
		}
	}
	return out, nil
}

// notify sends one message per written resource. Failures are logged.
func (s *Store) notify(ctx context.Context, refs []domain.ResourceRef) {
	if s.sender == nil || len(refs) == 0 {
		return
	}
	var unique []domain.ResourceRef
	ids := make([]domain.ID, 0, len(refs))
	for _, ref := range refs {
		if !slices.Contains(ids, ref.ID) {
			ids = append(ids, ref.ID)
			unique = append(unique, ref)
		}
	}

	var graphs map[domain.ID]*domain.EquivalenceGraph
	if s.graphs != nil {
		var err error
		graphs, err = s.graphs.ResolveIDs(ctx, ids)
		if err != nil {
			s.logger.Warn("resolve graphs for partition keys", "error", err)
		}
	}

	now := s.clock.Now()
	for _, ref := range unique {
		key := ref.ID
		if g, ok := graphs[ref.ID]; ok && g != nil {
			key = g.ID
		}
		if err := s.sender.SendResourceUpdated(ctx, domain.NewResourceUpdatedMessage(ref, key, now)); err != nil {
			s.logger.Warn("send resource updated",
				"id", ref.ID,
				"type", ref.Type,
				"error", err,
			)
		}
	}
}
