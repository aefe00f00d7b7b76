package schedule

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"media_core/internal/domain"
	"media_core/internal/equivcontent"
)

// Store holds which item fills each broadcast slot, per channel and source.
type Store interface {
	// WriteSchedule replaces the source's entries on the channel that
	// overlap interval.
	WriteSchedule(ctx context.Context, source domain.Publisher, channelID domain.ID, interval domain.Interval, refs []domain.ScheduleRef) error
	// ReplaceItemBroadcasts replaces every entry of the item with broadcasts.
	ReplaceItemBroadcasts(ctx context.Context, source domain.Publisher, itemID domain.ID, broadcasts []domain.Broadcast) error
	ResolveSchedules(ctx context.Context, source domain.Publisher, channelIDs []domain.ID, interval domain.Interval) (map[domain.ID][]domain.ScheduleRef, error)
	// ResolveScheduleCount returns up to count entries starting at or after start.
	ResolveScheduleCount(ctx context.Context, source domain.Publisher, channelID domain.ID, start time.Time, count int) ([]domain.ScheduleRef, error)
}

type ChannelResolver interface {
	ResolveIDs(ctx context.Context, ids []domain.ID) (map[domain.ID]domain.Channel, error)
}

type EquivalentsResolver interface {
	ResolveIDs(ctx context.Context, ids []domain.ID, sources []domain.Publisher, annotations domain.Annotations) (equivcontent.ResolvedEquivalents, error)
}

type ContentResolver interface {
	ResolveIDs(ctx context.Context, ids []domain.ID) (map[domain.ID]domain.Content, error)
}

type GraphResolver interface {
	ResolveIDs(ctx context.Context, ids []domain.ID) (map[domain.ID]*domain.EquivalenceGraph, error)
}

type EquivalentScheduleResolver interface {
	ResolveSchedules(ctx context.Context, channels []domain.Channel, window Window, source domain.Publisher, selected []domain.Publisher) (domain.EquivalentSchedule, error)
}
