package equivcontent

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"media_core/internal/domain"
)

// Set is one stored equivalence set. A nil member value is a row whose
// content column was never written.
type Set struct {
	ID      domain.ID
	Graph   *domain.EquivalenceGraph
	Members map[domain.ID][]byte
}

// SetWrite changes one set. A nil Graph leaves the stored graph alone. Index
// points the listed content ids at SetID.
type SetWrite struct {
	SetID   domain.ID
	Graph   *domain.EquivalenceGraph
	Upserts map[domain.ID][]byte
	Deletes []domain.ID
	Index   []domain.ID
}

// Backend stores rows keyed by (set id, content id) with a content id to set
// id index.
type Backend interface {
	LookupSets(ctx context.Context, ids []domain.ID) (map[domain.ID]domain.ID, error)
	ReadSets(ctx context.Context, setIDs []domain.ID) (map[domain.ID]*Set, error)
	WriteSet(ctx context.Context, w SetWrite) error
	// DeleteSets drops every row of the sets and any index entry still
	// pointing at them.
	DeleteSets(ctx context.Context, setIDs []domain.ID) error
}

type ContentResolver interface {
	ResolveIDs(ctx context.Context, ids []domain.ID) (map[domain.ID]domain.Content, error)
}

type GraphResolver interface {
	ResolveIDs(ctx context.Context, ids []domain.ID) (map[domain.ID]*domain.EquivalenceGraph, error)
}

type Clock interface {
	Now() time.Time
}

type MessageSender interface {
	SendEquivalentContentUpdated(ctx context.Context, msg domain.EquivalentContentUpdatedMessage) error
}
