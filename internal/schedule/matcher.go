package schedule

import (
	"time"

	"media_core/internal/domain"
)

// BroadcastMatcher decides whether a broadcast on one item is the same
// transmission as a broadcast on an equivalent item.
type BroadcastMatcher struct {
	normalizer *domain.AliasNormalizer
	start      time.Duration
	end        *time.Duration
}

// NewBroadcastMatcher matches broadcasts on the same channel whose starts are
// within start of each other and, when end is set, whose ends are within *end.
func NewBroadcastMatcher(normalizer *domain.AliasNormalizer, start time.Duration, end *time.Duration) *BroadcastMatcher {
	return &BroadcastMatcher{normalizer: normalizer, start: start, end: end}
}

func ExactStartMatcher(normalizer *domain.AliasNormalizer) *BroadcastMatcher {
	return NewBroadcastMatcher(normalizer, 0, nil)
}

func ExactStartEndMatcher(normalizer *domain.AliasNormalizer) *BroadcastMatcher {
	var zero time.Duration
	return NewBroadcastMatcher(normalizer, 0, &zero)
}

// Matches compares channel and times only.
func (m *BroadcastMatcher) Matches(a, b domain.Broadcast) bool {
	if a.ChannelID != b.ChannelID {
		return false
	}
	if absDiff(a.Start, b.Start) > m.start {
		return false
	}
	return m.end == nil || absDiff(a.End, b.End) <= *m.end
}

// FindMatching returns the candidate for subject. A candidate sharing its
// normalised source alias wins; otherwise the first candidate that Matches.
func (m *BroadcastMatcher) FindMatching(subject domain.Broadcast, candidates []domain.Broadcast) (domain.Broadcast, bool) {
	if alias := m.normalizer.Normalize(subject.SourceID); alias != "" {
		for _, c := range candidates {
			if c.ChannelID == subject.ChannelID && m.normalizer.Normalize(c.SourceID) == alias {
				return c, true
			}
		}
	}
	for _, c := range candidates {
		if m.Matches(subject, c) {
			return c, true
		}
	}
	return domain.Broadcast{}, false
}

func absDiff(a, b time.Time) time.Duration {
	d := a.Sub(b)
	if d < 0 {
		return -d
	}
	return d
}
