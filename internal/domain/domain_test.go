package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2016, 2, 10, 14, 0, 0, 0, time.UTC)

func TestInterval_Overlaps(t *testing.T) {
	i := Interval{Start: epoch, End: epoch.Add(time.Hour)}

	tests := []struct {
		name       string
		start, end time.Duration
		want       bool
	}{
		{"inside", 10 * time.Minute, 20 * time.Minute, true},
		{"straddles start", -time.Minute, time.Minute, true},
		{"touches start", -time.Hour, 0, false},
		{"touches end", time.Hour, 2 * time.Hour, false},
		{"instant at start", 0, 0, true},
		{"instant at end", time.Hour, time.Hour, false},
		{"instant before", -time.Minute, -time.Minute, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, i.Overlaps(epoch.Add(tt.start), epoch.Add(tt.end)))
		})
	}
}

func TestInterval_Span(t *testing.T) {
	a := Interval{Start: epoch, End: epoch.Add(time.Hour)}
	b := Interval{Start: epoch.Add(30 * time.Minute), End: epoch.Add(3 * time.Hour)}
	assert.Equal(t, Interval{Start: epoch, End: epoch.Add(3 * time.Hour)}, a.Span(b))
	assert.Equal(t, a.Span(b), b.Span(a))
}

func TestEquivalenceGraph_IDIsSmallestMember(t *testing.T) {
	refs := []ResourceRef{{ID: 9, Publisher: "a"}, {ID: 3, Publisher: "b"}, {ID: 5, Publisher: "c"}}
	adjacents := map[ID]Adjacents{}
	for _, r := range refs {
		adjacents[r.ID] = NewAdjacents(r, epoch)
	}

	g := NewEquivalenceGraph(adjacents, epoch, epoch)
	assert.Equal(t, ID(3), g.ID)
	assert.Equal(t, []ID{3, 5, 9}, g.Members())
	assert.Equal(t, 3, g.Size())
	assert.True(t, g.Contains(5))
	assert.False(t, g.Contains(4))
}

func TestAdjacents_Neighbours(t *testing.T) {
	subject := ResourceRef{ID: 1, Publisher: "a"}
	adj := NewAdjacents(subject, epoch)
	assert.True(t, adj.HasEfferent(1))
	assert.True(t, adj.HasAfferent(1))
	assert.Empty(t, adj.Neighbours())

	adj.Efferent = append(adj.Efferent, ResourceRef{ID: 2})
	adj.Afferent = append(adj.Afferent, ResourceRef{ID: 2}, ResourceRef{ID: 3})
	assert.ElementsMatch(t, []ResourceRef{{ID: 2}, {ID: 3}}, adj.Neighbours())
}

func TestSingletonGraph(t *testing.T) {
	g := SingletonGraph(ResourceRef{ID: 7, Publisher: "a"}, epoch)
	assert.Equal(t, ID(7), g.ID)
	assert.Equal(t, []ID{7}, g.Members())

	u := EquivalenceGraphUpdate{Updated: g, Created: []*EquivalenceGraph{SingletonGraph(ResourceRef{ID: 8}, epoch)}}
	assert.Len(t, u.AllGraphs(), 2)
	assert.Equal(t, ID(7), NewEquivalenceGraphUpdateMessage(u, epoch).PartitionKey())
	assert.Zero(t, EquivalenceGraphUpdateMessage{}.PartitionKey())
}

func TestContentCodec(t *testing.T) {
	episodeNumber := 4
	ep := &Episode{
		Item: Item{
			Described:    Described{ID: 10, Publisher: "bbc.co.uk", Title: "Ep", ActivelyPublished: true},
			ContainerRef: &ResourceRef{ID: 1, Publisher: "bbc.co.uk", Type: TypeBrand},
			Broadcasts:   []Broadcast{{ChannelID: 1, Start: epoch, End: epoch.Add(time.Hour)}},
		},
		EpisodeNumber: &episodeNumber,
	}

	raw, err := MarshalContent(ep)
	require.NoError(t, err)

	got, err := UnmarshalContent(raw)
	require.NoError(t, err)
	require.IsType(t, &Episode{}, got)
	assert.Equal(t, ep, got)

	cloned, err := Clone(ep)
	require.NoError(t, err)
	cloned.(*Episode).Title = "changed"
	assert.Equal(t, "Ep", ep.Title)
}

func TestUnmarshalContent_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"unknown type", `{"type":"podcast","data":{}}`},
		{"bad payload", `{"type":"item","data":{"id":"x"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalContent([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestErrors_Unwrap(t *testing.T) {
	assert.True(t, errors.Is(&NotFoundError{Kind: "channel", IDs: []ID{1}}, ErrNotFound))
	assert.True(t, errors.Is(&WriteError{Reason: ReasonConditionFailed}, ErrWriteConflict))
	assert.True(t, errors.Is(&CorruptDataError{ID: 1}, ErrCorruptData))
	assert.Equal(t, "channel not found: [1 2]", (&NotFoundError{Kind: "channel", IDs: []ID{1, 2}}).Error())
}

func TestApplication_RankAndAnnotations(t *testing.T) {
	app := Application{EnabledSources: []Publisher{"pa", "bbc"}}
	assert.Equal(t, 0, app.Rank("pa"))
	assert.Equal(t, 1, app.Rank("bbc"))
	assert.Equal(t, -1, app.Rank("itv"))

	var all Annotations
	assert.True(t, all.Has(AnnotationLocations))

	only := NewAnnotations(AnnotationBroadcasts)
	item := &Item{
		Broadcasts: []Broadcast{{ChannelID: 1}},
		Locations:  []Location{{}},
	}
	only.Trim(item)
	assert.Len(t, item.Broadcasts, 1)
	assert.Nil(t, item.Locations)
}
