package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"media_core/internal/config"
	"media_core/internal/domain"
)

type ScheduleQuery struct {
	ChannelIDs []domain.ID
	Start      time.Time
	// End bounds the query unless Count is positive.
	End         time.Time
	Count       int
	Source      domain.Publisher
	Override    *domain.Publisher
	Application domain.Application
}

func (q ScheduleQuery) window() Window {
	return Window{Interval: domain.Interval{Start: q.Start, End: q.End}, Count: q.Count}
}

// QueryExecutor answers schedule queries: it resolves channels and
// schedules, folds in the override source and substitutes each entry with
// the application's preferred equivalent.
type QueryExecutor struct {
	channels ChannelResolver
	resolver EquivalentScheduleResolver
	merger   EquivalentsMerger
	matcher  *BroadcastMatcher
	timeout  time.Duration
	logger   *slog.Logger
}

func NewQueryExecutor(
	channels ChannelResolver,
	resolver EquivalentScheduleResolver,
	matcher *BroadcastMatcher,
	logger *slog.Logger,
	cfg config.ScheduleConfig,
) *QueryExecutor {
	return &QueryExecutor{
		channels: channels,
		resolver: resolver,
		matcher:  matcher,
		timeout:  cfg.QueryTimeout,
		logger:   logger.With("component", "schedule_query_executor"),
	}
}

// Execute returns one schedule per resolved channel in the order the query
// names them. It fails with a not-found error only when no channel resolves.
func (e *QueryExecutor) Execute(ctx context.Context, q ScheduleQuery) ([]domain.ChannelSchedule, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	channels, err := e.resolveChannels(ctx, q.ChannelIDs)
	if err != nil {
		return nil, err
	}

	selected := []domain.Publisher{q.Source}
	if q.Application.PrecedenceEnabled {
		selected = q.Application.EnabledSources
	}

	base, err := e.resolver.ResolveSchedules(ctx, channels, q.window(), q.Source, selected)
	if err != nil {
		return nil, fmt.Errorf("resolve %s schedules: %w", q.Source, err)
	}
	schedules := base.Schedules

	if q.Override != nil {
		override, err := e.resolver.ResolveSchedules(ctx, channels, q.window(), *q.Override, selected)
		if err != nil {
			return nil, fmt.Errorf("resolve %s override schedules: %w", *q.Override, err)
		}
		overrides := make(map[domain.ID]domain.EquivalentChannelSchedule, len(override.Schedules))
		for _, s := range override.Schedules {
			overrides[s.Channel.ID] = s
		}
		for i, s := range schedules {
			ov, ok := overrides[s.Channel.ID]
			if !ok {
				continue
			}
			merged, err := MergeEquivalent(s, ov)
			if err != nil {
				return nil, err
			}
			schedules[i] = merged
		}
	}

	out := make([]domain.ChannelSchedule, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, e.substitute(s, q.Application))
	}
	return out, nil
}

func (e *QueryExecutor) resolveChannels(ctx context.Context, ids []domain.ID) ([]domain.Channel, error) {
	resolved, err := e.channels.ResolveIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve channels: %w", err)
	}
	channels := make([]domain.Channel, 0, len(ids))
	seen := map[domain.ID]bool{}
	for _, id := range ids {
		ch, ok := resolved[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		channels = append(channels, ch)
	}
	if len(channels) == 0 {
		return nil, &domain.NotFoundError{Kind: "channel", IDs: ids}
	}
	return channels, nil
}

// substitute swaps each item for the preferred equivalent carrying the same
// broadcast. The scheduled interval is kept so entries never overlap.
func (e *QueryExecutor) substitute(s domain.EquivalentChannelSchedule, app domain.Application) domain.ChannelSchedule {
	out := domain.ChannelSchedule{Channel: s.Channel, Interval: s.Interval}
	out.Entries = make([]domain.ItemAndBroadcast, 0, len(s.Entries))
	for _, entry := range s.Entries {
		scheduled := domain.ItemAndBroadcast{Item: entry.Item, Broadcast: entry.Broadcast}
		if !app.PrecedenceEnabled {
			out.Entries = append(out.Entries, scheduled)
			continue
		}

		item := e.merger.Select(entry.Item, entry.Equivalents, app)
		if item.Base().ID == entry.Item.Base().ID {
			out.Entries = append(out.Entries, scheduled)
			continue
		}
		matched, ok := e.matcher.FindMatching(entry.Broadcast, item.ItemBase().Broadcasts)
		if !ok {
			e.logger.Debug("no matching broadcast on equivalent",
				"channel_id", s.Channel.ID,
				"item_id", entry.Item.Base().ID,
				"equivalent_id", item.Base().ID,
			)
			out.Entries = append(out.Entries, scheduled)
			continue
		}
		out.Entries = append(out.Entries, domain.ItemAndBroadcast{
			Item:      item,
			Broadcast: matched.WithInterval(entry.Broadcast.Start, entry.Broadcast.End),
		})
	}
	return out
}
