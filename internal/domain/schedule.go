package domain

import "time"

// Interval is the half-open range [Start, End).
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Overlaps reports whether [start, end) intersects i. A zero-length range
// overlaps when its instant falls inside i.
func (i Interval) Overlaps(start, end time.Time) bool {
	if start.Equal(end) {
		return !start.Before(i.Start) && start.Before(i.End)
	}
	return start.Before(i.End) && end.After(i.Start)
}

// Span returns the smallest interval covering i and o.
func (i Interval) Span(o Interval) Interval {
	out := i
	if o.Start.Before(out.Start) {
		out.Start = o.Start
	}
	if o.End.After(out.End) {
		out.End = o.End
	}
	return out
}

type Channel struct {
	ID        ID        `json:"id" db:"id"`
	Key       string    `json:"key" db:"key"`
	Title     string    `json:"title" db:"title"`
	Publisher Publisher `json:"publisher" db:"publisher"`
}

type ItemAndBroadcast struct {
	Item      ItemContent
	Broadcast Broadcast
}

type ChannelSchedule struct {
	Channel  Channel
	Interval Interval
	Entries  []ItemAndBroadcast
}

// ScheduleRef is a stored schedule row: the item that fills a broadcast slot.
type ScheduleRef struct {
	ItemID    ID        `json:"item_id"`
	Broadcast Broadcast `json:"broadcast"`
}

// EquivalentScheduleEntry is a scheduled broadcast together with the item it
// was scheduled with and that item's equivalents.
type EquivalentScheduleEntry struct {
	Broadcast   Broadcast
	Item        ItemContent
	Graph       *EquivalenceGraph
	Equivalents []ItemContent
}

type EquivalentChannelSchedule struct {
	Channel  Channel
	Interval Interval
	Entries  []EquivalentScheduleEntry
}

type EquivalentSchedule struct {
	Interval  Interval
	Schedules []EquivalentChannelSchedule
}
