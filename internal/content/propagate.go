package content

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"media_core/internal/domain"
)

const defaultMaxItemSummaries = 200

type itemAddition struct {
	ref       domain.ItemRef
	upcoming  []domain.BroadcastRef
	available []domain.LocationSummary
	// summary is nil when the ancestor should not carry one for this item.
	summary *domain.ItemSummary
}

type upcomingChange struct {
	item       domain.ItemRef
	broadcast  domain.BroadcastRef
	remove     bool
	addItemRef bool
}

// ancestorChange collects everything one write does to one container.
type ancestorChange struct {
	retract      []domain.ID
	add          *itemAddition
	addSeries    *domain.SeriesRef
	removeSeries []domain.ID
	upcoming     *upcomingChange
}

type ancestorChanges struct {
	order []domain.ID
	byID  map[domain.ID]*ancestorChange
}

func newAncestorChanges() *ancestorChanges {
	return &ancestorChanges{byID: map[domain.ID]*ancestorChange{}}
}

func (a *ancestorChanges) get(id domain.ID) *ancestorChange {
	if ch, ok := a.byID[id]; ok {
		return ch
	}
	ch := &ancestorChange{}
	a.byID[id] = ch
	a.order = append(a.order, id)
	return ch
}

func (s *Store) propagate(ctx context.Context, content, previous domain.Content, now time.Time) ([]domain.ResourceRef, error) {
	changes := newAncestorChanges()
	s.planItem(changes, content, previous, now)
	s.planSeries(changes, content, previous)

	written, err := s.applyAncestorChanges(ctx, changes, now)
	if err != nil {
		return nil, err
	}

	children, err := s.rewriteChildSummaries(ctx, content, previous)
	if err != nil {
		return nil, err
	}
	return append(written, children...), nil
}

func isActive(c domain.Content) bool {
	b := c.Base()
	return b.ActivelyPublished && !b.GenericDescription
}

func refID(ref *domain.ResourceRef) domain.ID {
	if ref == nil {
		return 0
	}
	return ref.ID
}

// planItem retracts the item from containers it has left, or from every
// container when it is no longer published, and adds it to its current ones.
func (s *Store) planItem(changes *ancestorChanges, content, previous domain.Content, now time.Time) {
	itemID := content.Base().ID

	var prevContainer, prevSeries domain.ID
	if prev, ok := previous.(domain.ItemContent); ok {
		prevContainer = refID(prev.ItemBase().ContainerRef)
		prevSeries = refID(domain.SeriesRefOf(prev))
	}

	item, isItem := content.(domain.ItemContent)
	var curContainer, curSeries domain.ID
	if isItem {
		curContainer = refID(item.ItemBase().ContainerRef)
		curSeries = refID(domain.SeriesRefOf(item))
	}

	for _, id := range []domain.ID{prevContainer, prevSeries} {
		if id != 0 && id != curContainer && id != curSeries {
			changes.get(id).retract = append(changes.get(id).retract, itemID)
		}
	}
	if !isItem {
		return
	}

	if !isActive(item) {
		for _, id := range []domain.ID{curContainer, curSeries} {
			if id != 0 {
				changes.get(id).retract = append(changes.get(id).retract, itemID)
			}
		}
		return
	}

	base := item.ItemBase()
	addition := itemAddition{ref: domain.ItemRefOf(item)}
	for _, b := range base.Broadcasts {
		if b.ActivelyPublished && b.IsUpcoming(now) {
			addition.upcoming = append(addition.upcoming, b.Ref())
		}
	}
	for _, l := range base.Locations {
		if l.AvailableAt(now) {
			addition.available = append(addition.available, l.Summary())
		}
	}
	summary := domain.SummarizeItem(item)

	if curContainer != 0 {
		add := addition
		if curSeries == 0 || curSeries == curContainer {
			add.summary = &summary
		}
		changes.get(curContainer).add = &add
	}
	if curSeries != 0 && curSeries != curContainer {
		add := addition
		add.summary = &summary
		changes.get(curSeries).add = &add
	}
}

func (s *Store) planSeries(changes *ancestorChanges, content, previous domain.Content) {
	var prevBrand domain.ID
	if prev, ok := previous.(*domain.Series); ok {
		prevBrand = refID(prev.BrandRef)
	}
	series, isSeries := content.(*domain.Series)
	var curBrand domain.ID
	if isSeries {
		curBrand = refID(series.BrandRef)
	}

	if prevBrand != 0 && prevBrand != curBrand {
		ch := changes.get(prevBrand)
		ch.removeSeries = append(ch.removeSeries, content.Base().ID)
	}
	if curBrand == 0 {
		return
	}
	ch := changes.get(curBrand)
	if isActive(series) {
		ref := domain.SeriesRefFrom(series)
		ch.addSeries = &ref
	} else {
		ch.removeSeries = append(ch.removeSeries, series.ID)
	}
}

// applyAncestorChanges is a read-modify-write of each affected container.
// Concurrent sibling writes can race; the next write of either repairs it.
func (s *Store) applyAncestorChanges(ctx context.Context, changes *ancestorChanges, now time.Time) ([]domain.ResourceRef, error) {
	if len(changes.order) == 0 {
		return nil, nil
	}
	found, err := s.read(ctx, changes.order)
	if err != nil {
		return nil, fmt.Errorf("read ancestors: %w", err)
	}

	var batch Batch
	var written []domain.ResourceRef
	for _, id := range changes.order {
		st, ok := found[id]
		if !ok {
			s.logger.Debug("ancestor not found", "id", id)
			continue
		}
		cc, ok := st.content.(domain.ContainerContent)
		if !ok {
			s.logger.Warn("ancestor is not a container", "id", id, "type", st.content.Type())
			continue
		}
		s.applyChange(cc, changes.byID[id])
		cc.Base().ThisOrChildLastUpdated = now

		mutation, err := ancestorMutation(cc)
		if err != nil {
			return nil, err
		}
		batch.Mutations = append(batch.Mutations, mutation)
		written = append(written, domain.RefOf(cc))
	}
	if len(batch.Mutations) == 0 {
		return nil, nil
	}
	if err := s.backend.WriteBatch(ctx, batch); err != nil {
		return nil, fmt.Errorf("write ancestors: %w", err)
	}
	return written, nil
}

func (s *Store) applyChange(cc domain.ContainerContent, ch *ancestorChange) {
	container := cc.ContainerBase()
	for _, itemID := range ch.retract {
		removeItem(container, itemID)
	}
	if add := ch.add; add != nil {
		upsertItemRef(container, add.ref)
		setUpcoming(container, add.ref.ID, add.upcoming)
		setAvailable(container, add.ref.ID, add.available)
		if add.summary != nil {
			s.upsertSummary(container, *add.summary)
		} else {
			removeSummary(container, add.ref.ID)
		}
	}
	if u := ch.upcoming; u != nil {
		s.applyUpcoming(container, u)
	}

	brand, ok := cc.(*domain.Brand)
	if !ok {
		return
	}
	for _, seriesID := range ch.removeSeries {
		brand.SeriesRefs = slices.DeleteFunc(brand.SeriesRefs, func(r domain.SeriesRef) bool { return r.ID == seriesID })
	}
	if ch.addSeries != nil {
		ref := *ch.addSeries
		if i := slices.IndexFunc(brand.SeriesRefs, func(r domain.SeriesRef) bool { return r.ID == ref.ID }); i >= 0 {
			brand.SeriesRefs[i] = ref
		} else {
			brand.SeriesRefs = append(brand.SeriesRefs, ref)
		}
	}
}

func (s *Store) applyUpcoming(container *domain.Container, u *upcomingChange) {
	id := u.item.ID
	key := s.normalizer.Key(broadcastOf(u.broadcast))
	refs := slices.DeleteFunc(slices.Clone(container.UpcomingContent[id]), func(r domain.BroadcastRef) bool {
		return s.normalizer.Key(broadcastOf(r)) == key
	})
	if !u.remove {
		refs = append(refs, u.broadcast)
		slices.SortFunc(refs, func(a, b domain.BroadcastRef) int { return a.Start.Compare(b.Start) })
	}
	setUpcoming(container, id, refs)
	if u.addItemRef && !u.remove {
		upsertItemRef(container, u.item)
	}
}

func broadcastOf(r domain.BroadcastRef) domain.Broadcast {
	return domain.Broadcast{ChannelID: r.ChannelID, Start: r.Start, End: r.End, SourceID: r.SourceID}
}

func removeItem(container *domain.Container, itemID domain.ID) {
	container.ItemRefs = slices.DeleteFunc(container.ItemRefs, func(r domain.ItemRef) bool { return r.ID == itemID })
	delete(container.UpcomingContent, itemID)
	delete(container.AvailableContent, itemID)
	removeSummary(container, itemID)
}

func upsertItemRef(container *domain.Container, ref domain.ItemRef) {
	if i := slices.IndexFunc(container.ItemRefs, func(r domain.ItemRef) bool { return r.ID == ref.ID }); i >= 0 {
		container.ItemRefs[i] = ref
	} else {
		container.ItemRefs = append(container.ItemRefs, ref)
	}
	slices.SortStableFunc(container.ItemRefs, func(a, b domain.ItemRef) int {
		return cmp.Or(cmp.Compare(a.SortKey, b.SortKey), cmp.Compare(a.ID, b.ID))
	})
}

func setUpcoming(container *domain.Container, itemID domain.ID, refs []domain.BroadcastRef) {
	if len(refs) == 0 {
		delete(container.UpcomingContent, itemID)
		return
	}
	if container.UpcomingContent == nil {
		container.UpcomingContent = map[domain.ID][]domain.BroadcastRef{}
	}
	container.UpcomingContent[itemID] = refs
}

func setAvailable(container *domain.Container, itemID domain.ID, locations []domain.LocationSummary) {
	if len(locations) == 0 {
		delete(container.AvailableContent, itemID)
		return
	}
	if container.AvailableContent == nil {
		container.AvailableContent = map[domain.ID][]domain.LocationSummary{}
	}
	container.AvailableContent[itemID] = locations
}

func removeSummary(container *domain.Container, itemID domain.ID) {
	container.ItemSummaries = slices.DeleteFunc(container.ItemSummaries, func(s domain.ItemSummary) bool {
		return s.Item.ID == itemID
	})
}

// upsertSummary keeps at most the configured number of summaries, evicting
// the least recently updated item.
func (s *Store) upsertSummary(container *domain.Container, summary domain.ItemSummary) {
	if i := slices.IndexFunc(container.ItemSummaries, func(x domain.ItemSummary) bool { return x.Item.ID == summary.Item.ID }); i >= 0 {
		container.ItemSummaries[i] = summary
		return
	}
	container.ItemSummaries = append(container.ItemSummaries, summary)

	limit := s.config.MaxItemSummaries
	if limit <= 0 {
		limit = defaultMaxItemSummaries
	}
	for len(container.ItemSummaries) > limit {
		oldest := 0
		for i, x := range container.ItemSummaries {
			if x.Item.Updated.Before(container.ItemSummaries[oldest].Item.Updated) {
				oldest = i
			}
		}
		container.ItemSummaries = slices.Delete(container.ItemSummaries, oldest, oldest+1)
	}
}

func ancestorMutation(cc domain.ContainerContent) (Mutation, error) {
	container := cc.ContainerBase()
	put := map[Column][]byte{}
	b := cc.Base()
	if err := putJSON(put, ColTimestamps, timestamps{
		FirstSeen:              b.FirstSeen,
		LastUpdated:            b.LastUpdated,
		ThisOrChildLastUpdated: b.ThisOrChildLastUpdated,
	}); err != nil {
		return Mutation{}, err
	}
	for col, v := range map[Column]any{
		ColItemRefs:      container.ItemRefs,
		ColItemSummaries: container.ItemSummaries,
		ColUpcoming:      container.UpcomingContent,
		ColAvailable:     container.AvailableContent,
	} {
		if err := putJSON(put, col, v); err != nil {
			return Mutation{}, err
		}
	}
	if brand, ok := cc.(*domain.Brand); ok {
		if err := putJSON(put, ColSeriesRefs, brand.SeriesRefs); err != nil {
			return Mutation{}, err
		}
	}
	return Mutation{RowID: b.ID, Put: put}, nil
}

// rewriteChildSummaries copies a changed container summary onto every child.
func (s *Store) rewriteChildSummaries(ctx context.Context, content, previous domain.Content) ([]domain.ResourceRef, error) {
	cc, ok := content.(domain.ContainerContent)
	if !ok {
		return nil, nil
	}
	prev, ok := previous.(domain.ContainerContent)
	if !ok {
		return nil, nil
	}
	summary := domain.SummarizeContainer(cc)
	if summary.Equal(domain.SummarizeContainer(prev)) {
		return nil, nil
	}
	children := cc.ContainerBase().ItemRefs
	if len(children) == 0 {
		return nil, nil
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("encode container summary: %w", err)
	}
	var batch Batch
	refs := make([]domain.ResourceRef, 0, len(children))
	for _, child := range children {
		batch.Mutations = append(batch.Mutations, Mutation{
			RowID: child.ID,
			Put:   map[Column][]byte{ColContainerSummary: data},
		})
		refs = append(refs, domain.ResourceRef{ID: child.ID, Publisher: child.Publisher, Type: child.Type})
	}
	if err := s.backend.WriteBatch(ctx, batch); err != nil {
		return nil, fmt.Errorf("write child summaries: %w", err)
	}
	return refs, nil
}
