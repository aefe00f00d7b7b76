package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"media_core/internal/domain"
)

type Schedules struct {
	db *sqlx.DB
	tm *TransactionManager
}

func NewSchedules(db *sqlx.DB, tm *TransactionManager) *Schedules {
	return &Schedules{db: db, tm: tm}
}

type scheduleRow struct {
	ChannelID int64  `db:"channel_id"`
	ItemID    int64  `db:"item_id"`
	Broadcast []byte `db:"broadcast"`
}

// overlapClause matches rows intersecting [$3, $4), with zero-length rows
// matched by their instant.
const overlapClause = `
	((broadcast_start = broadcast_end AND broadcast_start >= $3 AND broadcast_start < $4)
	 OR (broadcast_start < broadcast_end AND broadcast_start < $4 AND broadcast_end > $3))`

func (s *Schedules) WriteSchedule(ctx context.Context, source domain.Publisher, channelID domain.ID, interval domain.Interval, refs []domain.ScheduleRef) error {
	return s.tm.WithTransaction(ctx, func(ctx context.Context) error {
		ex := GetExecutor(ctx, s.db)
		_, err := ex.ExecContext(ctx,
			`DELETE FROM schedule_entries WHERE source = $1 AND channel_id = $2 AND`+overlapClause,
			source, int64(channelID), interval.Start, interval.End)
		if err != nil {
			return fmt.Errorf("clear schedule of channel %d: %w", channelID, err)
		}
		for _, ref := range refs {
			if err := insertEntry(ctx, ex, source, channelID, ref); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Schedules) ReplaceItemBroadcasts(ctx context.Context, source domain.Publisher, itemID domain.ID, broadcasts []domain.Broadcast) error {
	return s.tm.WithTransaction(ctx, func(ctx context.Context) error {
		ex := GetExecutor(ctx, s.db)
		if _, err := ex.ExecContext(ctx,
			`DELETE FROM schedule_entries WHERE source = $1 AND item_id = $2`, source, int64(itemID)); err != nil {
			return fmt.Errorf("clear broadcasts of item %d: %w", itemID, err)
		}
		for _, b := range broadcasts {
			if err := insertEntry(ctx, ex, source, b.ChannelID, domain.ScheduleRef{ItemID: itemID, Broadcast: b}); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertEntry(ctx context.Context, ex sqlx.ExtContext, source domain.Publisher, channelID domain.ID, ref domain.ScheduleRef) error {
	raw, err := json.Marshal(ref.Broadcast)
	if err != nil {
		return fmt.Errorf("encode broadcast of item %d: %w", ref.ItemID, err)
	}
	_, err = ex.ExecContext(ctx, `
		INSERT INTO schedule_entries (source, channel_id, item_id, broadcast_start, broadcast_end, broadcast)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		source, int64(channelID), int64(ref.ItemID), ref.Broadcast.Start, ref.Broadcast.End, raw)
	if err != nil {
		return fmt.Errorf("write schedule entry of item %d: %w", ref.ItemID, err)
	}
	return nil
}

func (s *Schedules) ResolveSchedules(ctx context.Context, source domain.Publisher, channelIDs []domain.ID, interval domain.Interval) (map[domain.ID][]domain.ScheduleRef, error) {
	out := make(map[domain.ID][]domain.ScheduleRef, len(channelIDs))
	if len(channelIDs) == 0 {
		return out, nil
	}
	var rows []scheduleRow
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, `
		SELECT channel_id, item_id, broadcast FROM schedule_entries
		WHERE source = $1 AND channel_id = ANY($2) AND`+overlapClause+`
		ORDER BY broadcast_start, broadcast_end, item_id`,
		source, idArray(channelIDs), interval.Start, interval.End)
	if err != nil {
		return nil, fmt.Errorf("resolve schedules: %w", err)
	}
	for _, r := range rows {
		ref, err := r.ref()
		if err != nil {
			return nil, err
		}
		out[domain.ID(r.ChannelID)] = append(out[domain.ID(r.ChannelID)], ref)
	}
	return out, nil
}

func (s *Schedules) ResolveScheduleCount(ctx context.Context, source domain.Publisher, channelID domain.ID, start time.Time, count int) ([]domain.ScheduleRef, error) {
	var rows []scheduleRow
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, `
		SELECT channel_id, item_id, broadcast FROM schedule_entries
		WHERE source = $1 AND channel_id = $2 AND broadcast_start >= $3
		ORDER BY broadcast_start, broadcast_end, item_id
		LIMIT $4`,
		source, int64(channelID), start, count)
	if err != nil {
		return nil, fmt.Errorf("resolve schedule of channel %d: %w", channelID, err)
	}
	out := make([]domain.ScheduleRef, 0, len(rows))
	for _, r := range rows {
		ref, err := r.ref()
		if err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, nil
}

func (r scheduleRow) ref() (domain.ScheduleRef, error) {
	ref := domain.ScheduleRef{ItemID: domain.ID(r.ItemID)}
	if err := json.Unmarshal(r.Broadcast, &ref.Broadcast); err != nil {
		return ref, &domain.CorruptDataError{ID: ref.ItemID, Reason: fmt.Sprintf("decode schedule broadcast: %v", err)}
	}
	return ref, nil
}

type Channels struct {
	db *sqlx.DB
}

func NewChannels(db *sqlx.DB) *Channels {
	return &Channels{db: db}
}

func (s *Channels) ResolveIDs(ctx context.Context, ids []domain.ID) (map[domain.ID]domain.Channel, error) {
	out := map[domain.ID]domain.Channel{}
	if len(ids) == 0 {
		return out, nil
	}
	var channels []domain.Channel
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &channels,
		`SELECT id, key, title, publisher FROM channels WHERE id = ANY($1)`, idArray(ids))
	if err != nil {
		return nil, fmt.Errorf("resolve channels: %w", err)
	}
	for _, ch := range channels {
		out[ch.ID] = ch
	}
	return out, nil
}

func (s *Channels) WriteChannel(ctx context.Context, ch domain.Channel) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		INSERT INTO channels (id, key, title, publisher)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			key = EXCLUDED.key,
			title = EXCLUDED.title,
			publisher = EXCLUDED.publisher`,
		int64(ch.ID), ch.Key, ch.Title, ch.Publisher)
	if err != nil {
		return fmt.Errorf("write channel %d: %w", ch.ID, err)
	}
	return nil
}
