// Package worker turns queued update messages into Equivalent Content Store
// and schedule index writes.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"media_core/internal/domain"
	"media_core/internal/messaging"
)

type Handlers struct {
	equivalents EquivalentContentStore
	contents    ContentResolver
	schedules   ScheduleWriter
	logger      *slog.Logger
}

// NewHandlers builds the handlers. contents and schedules may both be nil,
// which turns off schedule indexing.
func NewHandlers(equivalents EquivalentContentStore, contents ContentResolver, schedules ScheduleWriter, logger *slog.Logger) *Handlers {
	return &Handlers{
		equivalents: equivalents,
		contents:    contents,
		schedules:   schedules,
		logger:      logger.With("component", "worker"),
	}
}

// ContentUpdated refreshes the written resource's equivalent content row and,
// for items, its schedule entries.
func (h *Handlers) ContentUpdated(ctx context.Context, body []byte) error {
	var msg domain.ResourceUpdatedMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return fmt.Errorf("decode resource updated message: %w: %v", messaging.ErrPermanent, err)
	}
	id := msg.Resource.ID

	if err := h.equivalents.UpdateContent(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.logger.Warn("updated content not found", "id", id, "message_id", msg.MessageID)
			return nil
		}
		return fmt.Errorf("update equivalent content %d: %w", id, err)
	}

	if err := h.indexBroadcasts(ctx, id); err != nil {
		return err
	}

	h.logger.Debug("content update applied", "id", id, "message_id", msg.MessageID)
	return nil
}

func (h *Handlers) indexBroadcasts(ctx context.Context, id domain.ID) error {
	if h.schedules == nil || h.contents == nil {
		return nil
	}
	resolved, err := h.contents.ResolveIDs(ctx, []domain.ID{id})
	if err != nil {
		return fmt.Errorf("resolve content %d: %w", id, err)
	}
	item, ok := resolved[id].(domain.ItemContent)
	if !ok {
		return nil
	}
	var broadcasts []domain.Broadcast
	for _, b := range item.ItemBase().Broadcasts {
		if b.ActivelyPublished {
			broadcasts = append(broadcasts, b)
		}
	}
	if err := h.schedules.ReplaceItemBroadcasts(ctx, item.Base().Publisher, id, broadcasts); err != nil {
		return fmt.Errorf("index broadcasts of item %d: %w", id, err)
	}
	return nil
}

func (h *Handlers) GraphUpdated(ctx context.Context, body []byte) error {
	var msg domain.EquivalenceGraphUpdateMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return fmt.Errorf("decode graph update message: %w: %v", messaging.ErrPermanent, err)
	}
	if msg.Update.Updated == nil {
		h.logger.Warn("graph update without graph", "message_id", msg.MessageID)
		return nil
	}

	if err := h.equivalents.UpdateEquivalences(ctx, msg.Update); err != nil {
		return fmt.Errorf("apply graph update for set %d: %w", msg.PartitionKey(), err)
	}

	h.logger.Debug("graph update applied",
		"set_id", msg.PartitionKey(),
		"created", len(msg.Update.Created),
		"deleted", len(msg.Update.Deleted),
		"message_id", msg.MessageID,
	)
	return nil
}
