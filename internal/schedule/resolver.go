package schedule

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"media_core/internal/config"
	"media_core/internal/domain"
)

// Window is either Interval or, when Count is positive, the first Count
// entries from Interval.Start.
type Window struct {
	Interval domain.Interval
	Count    int
}

// Resolver reads stored schedules and attaches to every entry the equivalents
// of its item.
type Resolver struct {
	store       Store
	equivalents EquivalentsResolver
	contents    ContentResolver
	graphs      GraphResolver
	logger      *slog.Logger
	concurrency int
}

func NewResolver(
	store Store,
	equivalents EquivalentsResolver,
	contents ContentResolver,
	graphs GraphResolver,
	logger *slog.Logger,
	cfg config.ScheduleConfig,
) *Resolver {
	concurrency := cfg.MaxConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Resolver{
		store:       store,
		equivalents: equivalents,
		contents:    contents,
		graphs:      graphs,
		logger:      logger.With("component", "equivalent_schedule_resolver"),
		concurrency: concurrency,
	}
}

// ResolveSchedules returns one schedule per channel, in the order given.
// Equivalents are limited to selected; an empty selected list keeps all.
func (r *Resolver) ResolveSchedules(
	ctx context.Context,
	channels []domain.Channel,
	window Window,
	source domain.Publisher,
	selected []domain.Publisher,
) (domain.EquivalentSchedule, error) {
	refs, err := r.resolveRefs(ctx, channels, window, source)
	if err != nil {
		return domain.EquivalentSchedule{}, err
	}

	var itemIDs []domain.ID
	for _, rs := range refs {
		for _, ref := range rs {
			itemIDs = append(itemIDs, ref.ItemID)
		}
	}
	slices.Sort(itemIDs)
	itemIDs = slices.Compact(itemIDs)

	items, equivalents, graphs, err := r.resolveItems(ctx, itemIDs)
	if err != nil {
		return domain.EquivalentSchedule{}, err
	}

	out := domain.EquivalentSchedule{Interval: window.Interval}
	for _, ch := range channels {
		cs := domain.EquivalentChannelSchedule{Channel: ch, Interval: window.Interval}
		for _, ref := range refs[ch.ID] {
			item, ok := items[ref.ItemID]
			if !ok {
				r.logger.Debug("scheduled item not found", "channel_id", ch.ID, "item_id", ref.ItemID)
				continue
			}
			cs.Entries = append(cs.Entries, domain.EquivalentScheduleEntry{
				Broadcast:   ref.Broadcast,
				Item:        item,
				Graph:       graphs[ref.ItemID],
				Equivalents: selectItems(equivalents[ref.ItemID], selected),
			})
		}
		if window.Count > 0 {
			cs.Interval.End = cs.Interval.Start
			if n := len(cs.Entries); n > 0 {
				cs.Interval.End = cs.Entries[n-1].Broadcast.End
			}
			out.Interval = out.Interval.Span(cs.Interval)
		}
		out.Schedules = append(out.Schedules, cs)
	}
	return out, nil
}

func (r *Resolver) resolveRefs(ctx context.Context, channels []domain.Channel, window Window, source domain.Publisher) (map[domain.ID][]domain.ScheduleRef, error) {
	ids := make([]domain.ID, len(channels))
	for i, ch := range channels {
		ids[i] = ch.ID
	}

	var refs map[domain.ID][]domain.ScheduleRef
	if window.Count <= 0 {
		var err error
		refs, err = r.store.ResolveSchedules(ctx, source, ids, window.Interval)
		if err != nil {
			return nil, fmt.Errorf("resolve schedules: %w", err)
		}
	} else {
		refs = make(map[domain.ID][]domain.ScheduleRef, len(ids))
		var mu sync.Mutex
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.concurrency)
		for _, id := range ids {
			g.Go(func() error {
				rs, err := r.store.ResolveScheduleCount(gctx, source, id, window.Interval.Start, window.Count)
				if err != nil {
					return fmt.Errorf("resolve schedule of channel %d: %w", id, err)
				}
				mu.Lock()
				refs[id] = rs
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	for id, rs := range refs {
		slices.SortStableFunc(rs, func(a, b domain.ScheduleRef) int {
			return cmp.Or(a.Broadcast.Start.Compare(b.Broadcast.Start), a.Broadcast.End.Compare(b.Broadcast.End))
		})
		refs[id] = rs
	}
	return refs, nil
}

// resolveItems looks up equivalents and graphs concurrently, then falls back
// to the content store for items missing from the equivalent content store.
func (r *Resolver) resolveItems(ctx context.Context, ids []domain.ID) (
	map[domain.ID]domain.ItemContent,
	map[domain.ID][]domain.ItemContent,
	map[domain.ID]*domain.EquivalenceGraph,
	error,
) {
	if len(ids) == 0 {
		return nil, nil, nil, nil
	}

	var (
		resolved map[domain.ID][]domain.Content
		graphs   map[domain.ID]*domain.EquivalenceGraph
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		eq, err := r.equivalents.ResolveIDs(gctx, ids, nil, nil)
		if err != nil {
			return fmt.Errorf("resolve equivalents: %w", err)
		}
		resolved = eq
		return nil
	})
	g.Go(func() error {
		gs, err := r.graphs.ResolveIDs(gctx, ids)
		if err != nil {
			return fmt.Errorf("resolve graphs: %w", err)
		}
		graphs = gs
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}

	items := make(map[domain.ID]domain.ItemContent, len(ids))
	equivalents := make(map[domain.ID][]domain.ItemContent, len(ids))
	var missing []domain.ID
	for _, id := range ids {
		for _, c := range resolved[id] {
			item, ok := c.(domain.ItemContent)
			if !ok {
				continue
			}
			equivalents[id] = append(equivalents[id], item)
			if c.Base().ID == id {
				items[id] = item
			}
		}
		if _, ok := items[id]; !ok {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		contents, err := r.contents.ResolveIDs(ctx, missing)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("resolve content: %w", err)
		}
		for _, id := range missing {
			item, ok := contents[id].(domain.ItemContent)
			if !ok {
				continue
			}
			items[id] = item
			if len(equivalents[id]) == 0 {
				equivalents[id] = []domain.ItemContent{item}
			}
		}
	}
	return items, equivalents, graphs, nil
}

func selectItems(items []domain.ItemContent, selected []domain.Publisher) []domain.ItemContent {
	if len(selected) == 0 {
		return items
	}
	var out []domain.ItemContent
	for _, item := range items {
		if slices.Contains(selected, item.Base().Publisher) {
			out = append(out, item)
		}
	}
	return out
}
