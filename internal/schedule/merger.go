package schedule

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"media_core/internal/domain"
)

// Merge folds override into original. Override entries are kept verbatim and
// original entries are clipped around them. Both schedules must be for the
// same channel.
func Merge(original, override domain.ChannelSchedule) (domain.ChannelSchedule, error) {
	if original.Channel.ID != override.Channel.ID {
		return domain.ChannelSchedule{}, fmt.Errorf("merge schedules: override is for channel %d, original for %d",
			override.Channel.ID, original.Channel.ID)
	}
	out := domain.ChannelSchedule{Channel: original.Channel, Interval: original.Interval}
	if len(override.Entries) > 0 {
		out.Interval = original.Interval.Span(override.Interval)
	}
	out.Entries = mergeEntries(original.Entries, override.Entries,
		func(e domain.ItemAndBroadcast) domain.Broadcast { return e.Broadcast },
		func(e domain.ItemAndBroadcast, start, end time.Time) domain.ItemAndBroadcast {
			e.Broadcast = e.Broadcast.WithInterval(start, end)
			return e
		},
	)
	return out, nil
}

// MergeEquivalent is Merge for schedules that still carry equivalents.
func MergeEquivalent(original, override domain.EquivalentChannelSchedule) (domain.EquivalentChannelSchedule, error) {
	if original.Channel.ID != override.Channel.ID {
		return domain.EquivalentChannelSchedule{}, fmt.Errorf("merge schedules: override is for channel %d, original for %d",
			override.Channel.ID, original.Channel.ID)
	}
	out := domain.EquivalentChannelSchedule{Channel: original.Channel, Interval: original.Interval}
	if len(override.Entries) > 0 {
		out.Interval = original.Interval.Span(override.Interval)
	}
	out.Entries = mergeEntries(original.Entries, override.Entries,
		func(e domain.EquivalentScheduleEntry) domain.Broadcast { return e.Broadcast },
		func(e domain.EquivalentScheduleEntry, start, end time.Time) domain.EquivalentScheduleEntry {
			e.Broadcast = e.Broadcast.WithInterval(start, end)
			return e
		},
	)
	return out, nil
}

type clip int

const (
	clipNone clip = iota
	clipKept
	clipTruncated
	clipDropped
)

func mergeEntries[E any](
	original, override []E,
	broadcast func(E) domain.Broadcast,
	move func(E, time.Time, time.Time) E,
) []E {
	byTime := func(a, b E) int {
		x, y := broadcast(a), broadcast(b)
		return cmp.Or(x.Start.Compare(y.Start), x.End.Compare(y.End))
	}

	original = slices.Clone(original)
	slices.SortStableFunc(original, byTime)
	if len(override) == 0 {
		return original
	}
	override = slices.Clone(override)
	slices.SortStableFunc(override, byTime)

	// Every override start is a cut point; only positive-length overrides
	// cover time. A zero-length override ends the original it falls inside.
	var (
		blocks []domain.Interval
		cuts   []time.Time
	)
	for _, o := range override {
		b := broadcast(o)
		cuts = append(cuts, b.Start)
		if b.Start.Before(b.End) {
			blocks = append(blocks, domain.Interval{Start: b.Start, End: b.End})
		}
	}

	covering := func(t time.Time) (domain.Interval, bool) {
		for _, blk := range blocks {
			if !t.Before(blk.Start) && t.Before(blk.End) {
				return blk, true
			}
		}
		return domain.Interval{}, false
	}

	out := make([]E, 0, len(original)+len(override))
	out = append(out, override...)

	prev := clipNone
	var prevEnd time.Time
	for _, e := range original {
		b := broadcast(e)
		if b.IsFollowOn() {
			switch prev {
			case clipDropped:
			case clipTruncated:
				out = append(out, move(e, prevEnd, prevEnd))
			default:
				if blk, ok := covering(b.Start); ok {
					out = append(out, move(e, blk.Start, blk.Start))
				} else {
					out = append(out, e)
				}
			}
			continue
		}

		start, end := b.Start, b.End
		for {
			blk, ok := covering(start)
			if !ok {
				break
			}
			start = blk.End
		}
		if !start.Before(end) {
			prev = clipDropped
			continue
		}

		// Only the part before the next override survives.
		prev = clipKept
		for _, cut := range cuts {
			if cut.After(start) && cut.Before(end) {
				end = cut
				prev = clipTruncated
				break
			}
		}
		prevEnd = end
		if !start.Equal(b.Start) || !end.Equal(b.End) {
			e = move(e, start, end)
		}
		out = append(out, e)
	}

	slices.SortStableFunc(out, byTime)
	return out
}
