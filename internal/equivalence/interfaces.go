package equivalence

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"media_core/internal/domain"
)

// Backend persists graphs keyed by set id with a member id to set id index.
type Backend interface {
	ReadIndex(ctx context.Context, ids []domain.ID) (map[domain.ID]domain.ID, error)
	ReadGraphs(ctx context.Context, setIDs []domain.ID) (map[domain.ID]*domain.EquivalenceGraph, error)
	// WriteGraphs stores graphs, points every member at its graph and drops
	// the deleted sets.
	WriteGraphs(ctx context.Context, graphs []*domain.EquivalenceGraph, deleted []domain.ID) error
}

type Clock interface {
	Now() time.Time
}

type MessageSender interface {
	SendGraphUpdate(ctx context.Context, msg domain.EquivalenceGraphUpdateMessage) error
}
