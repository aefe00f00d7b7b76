// Package cached decorates stores with a read-through cache. Cache failures
// are logged and the call falls through to the store.
package cached

import (
	"context"
	"log/slog"

	"media_core/internal/domain"
)

type Channels struct {
	store  ChannelStore
	cache  ChannelCache
	logger *slog.Logger
}

func NewChannels(store ChannelStore, cache ChannelCache, logger *slog.Logger) *Channels {
	return &Channels{store: store, cache: cache, logger: logger.With("component", "cached_channels")}
}

func (c *Channels) ResolveIDs(ctx context.Context, ids []domain.ID) (map[domain.ID]domain.Channel, error) {
	out, err := c.cache.GetChannels(ctx, ids)
	if err != nil {
		c.logger.Warn("channel cache read failed", "error", err)
		out = nil
	}
	if out == nil {
		out = map[domain.ID]domain.Channel{}
	}

	var missing []domain.ID
	for _, id := range ids {
		if _, ok := out[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return out, nil
	}

	loaded, err := c.store.ResolveIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	fill := make([]domain.Channel, 0, len(loaded))
	for id, ch := range loaded {
		out[id] = ch
		fill = append(fill, ch)
	}
	if len(fill) > 0 {
		if err := c.cache.PutChannels(ctx, fill); err != nil {
			c.logger.Warn("channel cache fill failed", "error", err)
		}
	}
	return out, nil
}

func (c *Channels) WriteChannel(ctx context.Context, ch domain.Channel) error {
	if err := c.store.WriteChannel(ctx, ch); err != nil {
		return err
	}
	if err := c.cache.Invalidate(ctx, []domain.ID{ch.ID}); err != nil {
		c.logger.Warn("channel cache invalidation failed", "channel_id", ch.ID, "error", err)
	}
	return nil
}
