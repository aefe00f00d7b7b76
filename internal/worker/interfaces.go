package worker

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"media_core/internal/domain"
)

type EquivalentContentStore interface {
	UpdateContent(ctx context.Context, id domain.ID) error
	UpdateEquivalences(ctx context.Context, update domain.EquivalenceGraphUpdate) error
}

type ContentResolver interface {
	ResolveIDs(ctx context.Context, ids []domain.ID) (map[domain.ID]domain.Content, error)
}

type ScheduleWriter interface {
	ReplaceItemBroadcasts(ctx context.Context, source domain.Publisher, itemID domain.ID, broadcasts []domain.Broadcast) error
}
