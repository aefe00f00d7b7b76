// Package hashing computes the durable-field digest that lets the content
// store skip writes which would not change anything.
package hashing

import (
	"cmp"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"time"

	"media_core/internal/domain"
)

const domainContent = "media_core/content/v1"

type ContentHasher struct{}

func NewContentHasher() *ContentHasher {
	return &ContentHasher{}
}

// Hash ignores timestamps and everything the write path denormalises onto
// the content from its parents and children.
func (h *ContentHasher) Hash(c domain.Content) (string, error) {
	durable, err := domain.Clone(c)
	if err != nil {
		return "", fmt.Errorf("clone for hash: %w", err)
	}
	strip(durable)

	data, err := domain.MarshalContent(durable)
	if err != nil {
		return "", fmt.Errorf("marshal for hash: %w", err)
	}
	return hashWithDomain(domainContent, data), nil
}

func strip(c domain.Content) {
	b := c.Base()
	b.FirstSeen = time.Time{}
	b.LastUpdated = time.Time{}
	b.ThisOrChildLastUpdated = time.Time{}
	slices.SortFunc(b.Aliases, func(x, y domain.Alias) int {
		return cmp.Or(cmp.Compare(x.Namespace, y.Namespace), cmp.Compare(x.Value, y.Value))
	})
	slices.SortFunc(b.Equivalents, func(x, y domain.ResourceRef) int {
		return cmp.Compare(x.ID, y.ID)
	})

	switch v := c.(type) {
	case domain.ContainerContent:
		container := v.ContainerBase()
		container.ItemRefs = nil
		container.ItemSummaries = nil
		container.UpcomingContent = nil
		container.AvailableContent = nil
		if brand, ok := v.(*domain.Brand); ok {
			brand.SeriesRefs = nil
		}
	case domain.ItemContent:
		item := v.ItemBase()
		item.ContainerSummary = nil
		slices.SortFunc(item.Broadcasts, func(x, y domain.Broadcast) int {
			return cmp.Or(
				x.Start.Compare(y.Start),
				cmp.Compare(x.ChannelID, y.ChannelID),
				cmp.Compare(x.SourceID, y.SourceID),
			)
		})
		slices.SortFunc(item.Locations, func(x, y domain.Location) int {
			return cmp.Compare(x.URI, y.URI)
		})
	}
}

func hashWithDomain(prefix string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(prefix))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
