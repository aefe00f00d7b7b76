package cache

import (
	"context"
	"strconv"
	"time"

	"media_core/internal/domain"
)

const channelKeyPrefix = "media_core:channel:"

// Channels caches channels by id in Redis.
type Channels struct {
	redis *Redis
	ttl   time.Duration
}

func NewChannels(r *Redis, ttl time.Duration) *Channels {
	return &Channels{redis: r, ttl: ttl}
}

func channelKey(id domain.ID) string {
	return channelKeyPrefix + strconv.FormatInt(int64(id), 10)
}

func (c *Channels) GetChannels(ctx context.Context, ids []domain.ID) (map[domain.ID]domain.Channel, error) {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = channelKey(id)
	}
	found, err := GetMany[domain.Channel](ctx, c.redis, keys)
	if err != nil {
		return nil, err
	}
	out := make(map[domain.ID]domain.Channel, len(found))
	for _, ch := range found {
		out[ch.ID] = ch
	}
	return out, nil
}

func (c *Channels) PutChannels(ctx context.Context, channels []domain.Channel) error {
	values := make(map[string]domain.Channel, len(channels))
	for _, ch := range channels {
		values[channelKey(ch.ID)] = ch
	}
	return SetMany(ctx, c.redis, values, c.ttl)
}

func (c *Channels) Invalidate(ctx context.Context, ids []domain.ID) error {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = channelKey(id)
	}
	return Del(ctx, c.redis, keys...)
}
