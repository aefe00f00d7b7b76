package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"media_core/internal/domain"
)

type scheduleRow struct {
	source    domain.Publisher
	channelID domain.ID
	ref       domain.ScheduleRef
}

type Schedules struct {
	mu   sync.RWMutex
	rows []scheduleRow
}

func NewSchedules() *Schedules {
	return &Schedules{}
}

func (m *Schedules) WriteSchedule(_ context.Context, source domain.Publisher, channelID domain.ID, interval domain.Interval, refs []domain.ScheduleRef) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = slices.DeleteFunc(m.rows, func(r scheduleRow) bool {
		return r.source == source && r.channelID == channelID &&
			interval.Overlaps(r.ref.Broadcast.Start, r.ref.Broadcast.End)
	})
	for _, ref := range refs {
		m.rows = append(m.rows, scheduleRow{source: source, channelID: channelID, ref: ref})
	}
	return nil
}

func (m *Schedules) ReplaceItemBroadcasts(_ context.Context, source domain.Publisher, itemID domain.ID, broadcasts []domain.Broadcast) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = slices.DeleteFunc(m.rows, func(r scheduleRow) bool {
		return r.source == source && r.ref.ItemID == itemID
	})
	for _, b := range broadcasts {
		m.rows = append(m.rows, scheduleRow{
			source:    source,
			channelID: b.ChannelID,
			ref:       domain.ScheduleRef{ItemID: itemID, Broadcast: b},
		})
	}
	return nil
}

func (m *Schedules) ResolveSchedules(_ context.Context, source domain.Publisher, channelIDs []domain.ID, interval domain.Interval) (map[domain.ID][]domain.ScheduleRef, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[domain.ID][]domain.ScheduleRef, len(channelIDs))
	for _, r := range m.rows {
		if r.source != source || !slices.Contains(channelIDs, r.channelID) {
			continue
		}
		if interval.Overlaps(r.ref.Broadcast.Start, r.ref.Broadcast.End) {
			out[r.channelID] = append(out[r.channelID], r.ref)
		}
	}
	for id := range out {
		slices.SortFunc(out[id], byBroadcastStart)
	}
	return out, nil
}

func (m *Schedules) ResolveScheduleCount(_ context.Context, source domain.Publisher, channelID domain.ID, start time.Time, count int) ([]domain.ScheduleRef, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.ScheduleRef
	for _, r := range m.rows {
		if r.source == source && r.channelID == channelID && !r.ref.Broadcast.Start.Before(start) {
			out = append(out, r.ref)
		}
	}
	slices.SortFunc(out, byBroadcastStart)
	if len(out) > count {
		out = out[:count]
	}
	return out, nil
}

func byBroadcastStart(a, b domain.ScheduleRef) int {
	return cmp.Or(
		a.Broadcast.Start.Compare(b.Broadcast.Start),
		a.Broadcast.End.Compare(b.Broadcast.End),
		cmp.Compare(a.ItemID, b.ItemID),
	)
}

type Channels struct {
	mu       sync.RWMutex
	channels map[domain.ID]domain.Channel
}

func NewChannels(channels ...domain.Channel) *Channels {
	m := &Channels{channels: map[domain.ID]domain.Channel{}}
	for _, ch := range channels {
		m.channels[ch.ID] = ch
	}
	return m
}

func (m *Channels) ResolveIDs(_ context.Context, ids []domain.ID) (map[domain.ID]domain.Channel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := map[domain.ID]domain.Channel{}
	for _, id := range ids {
		if ch, ok := m.channels[id]; ok {
			out[id] = ch
		}
	}
	return out, nil
}

func (m *Channels) WriteChannel(_ context.Context, ch domain.Channel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.channels[ch.ID] = ch
	return nil
}
