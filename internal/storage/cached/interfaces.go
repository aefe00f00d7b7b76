package cached

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"media_core/internal/domain"
)

type ChannelStore interface {
	ResolveIDs(ctx context.Context, ids []domain.ID) (map[domain.ID]domain.Channel, error)
	WriteChannel(ctx context.Context, ch domain.Channel) error
}

type ChannelCache interface {
	GetChannels(ctx context.Context, ids []domain.ID) (map[domain.ID]domain.Channel, error)
	PutChannels(ctx context.Context, channels []domain.Channel) error
	Invalidate(ctx context.Context, ids []domain.ID) error
}
