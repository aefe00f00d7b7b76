package domain

import (
	"time"

	"github.com/google/uuid"
)

// ResourceUpdatedMessage is sent once for every content row actually written.
type ResourceUpdatedMessage struct {
	MessageID    string      `json:"message_id"`
	Timestamp    time.Time   `json:"timestamp"`
	Resource     ResourceRef `json:"resource"`
	PartitionKey ID          `json:"partition_key"`
}

func NewResourceUpdatedMessage(ref ResourceRef, partitionKey ID, now time.Time) ResourceUpdatedMessage {
	return ResourceUpdatedMessage{
		MessageID:    uuid.NewString(),
		Timestamp:    now,
		Resource:     ref,
		PartitionKey: partitionKey,
	}
}

type EquivalenceGraphUpdateMessage struct {
	MessageID string                 `json:"message_id"`
	Timestamp time.Time              `json:"timestamp"`
	Update    EquivalenceGraphUpdate `json:"update"`
}

func NewEquivalenceGraphUpdateMessage(update EquivalenceGraphUpdate, now time.Time) EquivalenceGraphUpdateMessage {
	return EquivalenceGraphUpdateMessage{MessageID: uuid.NewString(), Timestamp: now, Update: update}
}

// PartitionKey keeps updates to one set in order.
func (m EquivalenceGraphUpdateMessage) PartitionKey() ID {
	if m.Update.Updated != nil {
		return m.Update.Updated.ID
	}
	return 0
}

type EquivalentContentUpdatedMessage struct {
	MessageID string      `json:"message_id"`
	Timestamp time.Time   `json:"timestamp"`
	SetID     ID          `json:"set_id"`
	Content   ResourceRef `json:"content"`
}

func NewEquivalentContentUpdatedMessage(setID ID, ref ResourceRef, now time.Time) EquivalentContentUpdatedMessage {
	return EquivalentContentUpdatedMessage{MessageID: uuid.NewString(), Timestamp: now, SetID: setID, Content: ref}
}
