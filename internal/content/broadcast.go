package content

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"media_core/internal/domain"
)

// WriteBroadcast merges b into the item's broadcasts, replacing any broadcast
// for the same slot, and keeps the containers' upcoming content in step.
// A broadcast that is not actively published removes its slot.
func (s *Store) WriteBroadcast(ctx context.Context, itemRef domain.ResourceRef, containerRef, seriesRef *domain.ResourceRef, b domain.Broadcast) error {
	found, err := s.read(ctx, []domain.ID{itemRef.ID})
	if err != nil {
		return err
	}
	st, ok := found[itemRef.ID]
	if !ok {
		return &domain.NotFoundError{Kind: "item", IDs: []domain.ID{itemRef.ID}}
	}
	item, ok := st.content.(domain.ItemContent)
	if !ok {
		return &domain.WriteError{Reason: domain.ReasonInvalid, Resource: domain.RefOf(st.content), Detail: "not an item"}
	}

	base := item.ItemBase()
	if b.ActivelyPublished {
		base.Broadcasts = s.normalizer.MergeBroadcasts(base.Broadcasts, b)
	} else {
		key := s.normalizer.Key(b)
		base.Broadcasts = slices.DeleteFunc(base.Broadcasts, func(x domain.Broadcast) bool {
			return s.normalizer.Key(x) == key
		})
	}

	hash, err := s.hasher.Hash(item)
	if err != nil {
		return fmt.Errorf("hash item: %w", err)
	}
	now := s.clock.Now()
	base.LastUpdated = now
	base.ThisOrChildLastUpdated = now

	put := map[Column][]byte{ColHash: []byte(hash)}
	if err := putJSON(put, ColBroadcasts, base.Broadcasts); err != nil {
		return err
	}
	if err := putJSON(put, ColTimestamps, timestamps{
		FirstSeen:              base.FirstSeen,
		LastUpdated:            base.LastUpdated,
		ThisOrChildLastUpdated: base.ThisOrChildLastUpdated,
	}); err != nil {
		return err
	}
	expect := st.hash
	batch := Batch{Mutations: []Mutation{{RowID: base.ID, Put: put, ExpectHash: &expect}}}
	if err := s.backend.WriteBatch(ctx, batch); err != nil {
		if errors.Is(err, ErrConditionFailed) {
			return &domain.WriteError{Reason: domain.ReasonConditionFailed, Resource: domain.RefOf(item)}
		}
		return fmt.Errorf("write broadcast on %d: %w", base.ID, err)
	}

	written := []domain.ResourceRef{domain.RefOf(item)}
	upcoming := b.ActivelyPublished && b.IsUpcoming(now)
	changes := newAncestorChanges()
	for _, ref := range []*domain.ResourceRef{containerRef, seriesRef} {
		if ref == nil {
			continue
		}
		changes.get(ref.ID).upcoming = &upcomingChange{
			item:       domain.ItemRefOf(item),
			broadcast:  b.Ref(),
			remove:     !upcoming,
			addItemRef: ref == seriesRef,
		}
	}
	propagated, err := s.applyAncestorChanges(ctx, changes, now)
	if err != nil {
		return fmt.Errorf("propagate broadcast: %w", err)
	}
	written = append(written, propagated...)

	s.notify(ctx, written)
	return nil
}
