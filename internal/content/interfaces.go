package content

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"media_core/internal/domain"
)

// Backend is a column-oriented row store with a per-publisher alias index.
// Each mutation is applied atomically to its row; a batch may span rows.
type Backend interface {
	ReadRows(ctx context.Context, ids []domain.ID) (map[domain.ID]Row, error)
	WriteBatch(ctx context.Context, batch Batch) error
	LookupAliases(ctx context.Context, publisher domain.Publisher, aliases []domain.Alias) (map[domain.Alias]domain.ID, error)
}

type IDGenerator interface {
	GenerateRaw(ctx context.Context) (int64, error)
}

type Hasher interface {
	Hash(c domain.Content) (string, error)
}

type Clock interface {
	Now() time.Time
}

type MessageSender interface {
	SendResourceUpdated(ctx context.Context, msg domain.ResourceUpdatedMessage) error
}

// GraphResolver supplies equivalence set ids used as message partition keys.
type GraphResolver interface {
	ResolveIDs(ctx context.Context, ids []domain.ID) (map[domain.ID]*domain.EquivalenceGraph, error)
}
