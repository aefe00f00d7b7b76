package equivcontent_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"media_core/internal/clock"
	"media_core/internal/domain"
	"media_core/internal/equivcontent"
	"media_core/internal/equivcontent/mocks"
	"media_core/internal/storage/memory"
	"media_core/internal/testutil"
)

const (
	bbc domain.Publisher = "bbc.co.uk"
	pa  domain.Publisher = "pressassociation.com"
	yv  domain.Publisher = "youview.com"
)

type EquivalentContentStoreTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	backend  *memory.EquivalentContent
	contents map[domain.ID]domain.Content
	graphs   map[domain.ID]*domain.EquivalenceGraph
	sent     []domain.EquivalentContentUpdatedMessage
	clock    *clock.Fixed
	store    *equivcontent.Store
	ctx      context.Context
}

func (s *EquivalentContentStoreTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.backend = memory.NewEquivalentContent()
	s.contents = map[domain.ID]domain.Content{}
	s.graphs = map[domain.ID]*domain.EquivalenceGraph{}
	s.sent = nil
	s.clock = clock.NewFixed(testutil.Time("2016-02-10T14:00:00Z"))

	contents := mocks.NewMockContentResolver(s.ctrl)
	contents.EXPECT().ResolveIDs(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ids []domain.ID) (map[domain.ID]domain.Content, error) {
			out := map[domain.ID]domain.Content{}
			for _, id := range ids {
				if c, ok := s.contents[id]; ok {
					out[id] = c
				}
			}
			return out, nil
		},
	).AnyTimes()

	graphs := mocks.NewMockGraphResolver(s.ctrl)
	graphs.EXPECT().ResolveIDs(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ids []domain.ID) (map[domain.ID]*domain.EquivalenceGraph, error) {
			out := map[domain.ID]*domain.EquivalenceGraph{}
			for _, id := range ids {
				if g, ok := s.graphs[id]; ok {
					out[id] = g
				}
			}
			return out, nil
		},
	).AnyTimes()

	sender := mocks.NewMockMessageSender(s.ctrl)
	sender.EXPECT().SendEquivalentContentUpdated(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg domain.EquivalentContentUpdatedMessage) error {
			s.sent = append(s.sent, msg)
			return nil
		},
	).AnyTimes()

	s.store = equivcontent.NewStore(s.backend, contents, graphs, s.clock, sender, testutil.Logger())
}

func (s *EquivalentContentStoreTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestEquivalentContentStoreTestSuite(t *testing.T) {
	suite.Run(t, new(EquivalentContentStoreTestSuite))
}

func (s *EquivalentContentStoreTestSuite) addItem(id domain.ID, publisher domain.Publisher) *domain.Item {
	item := &domain.Item{}
	item.ID = id
	item.Publisher = publisher
	item.Title = string(publisher) + " item"
	item.ActivelyPublished = true
	item.Broadcasts = []domain.Broadcast{{
		ChannelID:         101,
		Start:             testutil.Time("2016-02-10T18:00:00Z"),
		End:               testutil.Time("2016-02-10T19:00:00Z"),
		SourceID:          "pa:1234",
		ActivelyPublished: true,
	}}
	s.contents[id] = item
	return item
}

// graph links the first content to the rest and records it as the current
// graph of every member.
func (s *EquivalentContentStoreTestSuite) graph(updated time.Time, ids ...domain.ID) *domain.EquivalenceGraph {
	refs := make([]domain.ResourceRef, len(ids))
	for i, id := range ids {
		refs[i] = domain.RefOf(s.contents[id])
	}
	adjacents := map[domain.ID]domain.Adjacents{}
	subject := domain.NewAdjacents(refs[0], updated)
	for _, r := range refs[1:] {
		subject.Efferent = append(subject.Efferent, r)
		adj := domain.NewAdjacents(r, updated)
		adj.Afferent = append(adj.Afferent, refs[0])
		adjacents[r.ID] = adj
	}
	adjacents[refs[0].ID] = subject
	g := domain.NewEquivalenceGraph(adjacents, updated, updated)
	for _, id := range ids {
		s.graphs[id] = g
	}
	return g
}

func (s *EquivalentContentStoreTestSuite) merge() {
	s.addItem(1, bbc)
	s.addItem(2, pa)
	s.Require().NoError(s.store.UpdateContent(s.ctx, 1))
	s.Require().NoError(s.store.UpdateContent(s.ctx, 2))

	s.clock.Advance(time.Minute)
	merged := s.graph(s.clock.Now(), 1, 2)
	err := s.store.UpdateEquivalences(s.ctx, domain.EquivalenceGraphUpdate{Updated: merged, Deleted: []domain.ID{2}})
	s.Require().NoError(err)
}

func (s *EquivalentContentStoreTestSuite) TestUpdateContent_WritesSingletonSet() {
	s.addItem(1, bbc)

	s.Require().NoError(s.store.UpdateContent(s.ctx, 1))

	s.Equal([]domain.ID{1}, s.backend.Rows(1))
	s.Require().Len(s.sent, 1)
	s.Equal(domain.ID(1), s.sent[0].SetID)
	s.Equal(domain.ID(1), s.sent[0].Content.ID)
}

func (s *EquivalentContentStoreTestSuite) TestUpdateContent_UnknownContent() {
	err := s.store.UpdateContent(s.ctx, 42)

	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *EquivalentContentStoreTestSuite) TestUpdateContent_MovesRowToCurrentSet() {
	s.addItem(1, bbc)
	s.addItem(2, pa)
	s.Require().NoError(s.store.UpdateContent(s.ctx, 2))

	s.graph(s.clock.Now(), 1, 2)
	s.Require().NoError(s.store.UpdateContent(s.ctx, 2))

	s.Equal([]domain.ID{2}, s.backend.Rows(1))
	s.Empty(s.backend.Rows(2))
}

func (s *EquivalentContentStoreTestSuite) TestUpdateEquivalences_MergeMovesRows() {
	s.merge()

	s.Equal([]domain.ID{1, 2}, s.backend.Rows(1))
	s.Empty(s.backend.Rows(2))

	resolved, err := s.store.ResolveIDs(s.ctx, []domain.ID{2}, nil, nil)
	s.Require().NoError(err)
	s.Require().Len(resolved[2], 2)
	s.Equal(domain.ID(1), resolved[2][0].Base().ID)
	s.Equal(domain.ID(2), resolved[2][1].Base().ID)
}

func (s *EquivalentContentStoreTestSuite) TestUpdateEquivalences_SplitReversesMerge() {
	s.merge()

	s.clock.Advance(time.Minute)
	left := s.graph(s.clock.Now(), 1)
	right := s.graph(s.clock.Now(), 2)
	err := s.store.UpdateEquivalences(s.ctx, domain.EquivalenceGraphUpdate{
		Updated: left,
		Created: []*domain.EquivalenceGraph{right},
	})

	s.Require().NoError(err)
	s.Equal([]domain.ID{1}, s.backend.Rows(1))
	s.Equal([]domain.ID{2}, s.backend.Rows(2))

	resolved, err := s.store.ResolveIDs(s.ctx, []domain.ID{1, 2}, nil, nil)
	s.Require().NoError(err)
	s.Len(resolved[1], 1)
	s.Len(resolved[2], 1)
}

func (s *EquivalentContentStoreTestSuite) TestUpdateEquivalences_DuplicateDeliveryIsIdempotent() {
	s.merge()
	update := domain.EquivalenceGraphUpdate{Updated: s.graphs[1], Deleted: []domain.ID{2}}

	s.Require().NoError(s.store.UpdateEquivalences(s.ctx, update))
	s.Require().NoError(s.store.UpdateEquivalences(s.ctx, update))

	s.Equal([]domain.ID{1, 2}, s.backend.Rows(1))
	s.Empty(s.backend.Rows(2))
}

func (s *EquivalentContentStoreTestSuite) TestUpdateEquivalences_RedeliveredMergeAfterSplit() {
	s.merge()
	merge := domain.EquivalenceGraphUpdate{Updated: s.graphs[1], Deleted: []domain.ID{2}}

	s.clock.Advance(time.Minute)
	left := s.graph(s.clock.Now(), 1)
	right := s.graph(s.clock.Now(), 2)
	s.Require().NoError(s.store.UpdateEquivalences(s.ctx, domain.EquivalenceGraphUpdate{
		Updated: left,
		Created: []*domain.EquivalenceGraph{right},
	}))

	s.Require().NoError(s.store.UpdateEquivalences(s.ctx, merge))

	s.Equal([]domain.ID{1}, s.backend.Rows(1))
	s.Equal([]domain.ID{2}, s.backend.Rows(2))
	resolved, err := s.store.ResolveIDs(s.ctx, []domain.ID{2}, nil, nil)
	s.Require().NoError(err)
	s.Require().Len(resolved[2], 1)
	s.Equal(domain.ID(2), resolved[2][0].Base().ID)
}

func (s *EquivalentContentStoreTestSuite) TestUpdateEquivalences_SkipsOutdatedGraph() {
	older := s.clock.Now()
	s.merge()

	s.addItem(3, yv)
	stale := s.graph(older, 1, 3)
	err := s.store.UpdateEquivalences(s.ctx, domain.EquivalenceGraphUpdate{Updated: stale, Deleted: []domain.ID{3}})

	s.Require().NoError(err)
	s.Equal([]domain.ID{1, 2}, s.backend.Rows(1))
}

func (s *EquivalentContentStoreTestSuite) TestUpdateEquivalences_RehomesStaleContent() {
	s.merge()
	s.addItem(9, yv)
	data, err := domain.MarshalContent(s.contents[9])
	s.Require().NoError(err)
	s.backend.PutRow(5, 9, data)

	s.clock.Advance(time.Minute)
	err = s.store.UpdateEquivalences(s.ctx, domain.EquivalenceGraphUpdate{
		Updated: s.graph(s.clock.Now(), 1, 2),
		Deleted: []domain.ID{5},
	})

	s.Require().NoError(err)
	s.Empty(s.backend.Rows(5))
	s.Equal([]domain.ID{9}, s.backend.Rows(9))
}

func (s *EquivalentContentStoreTestSuite) TestUpdateEquivalences_MemberWithoutContentIsIndexedOnly() {
	s.addItem(1, bbc)
	s.Require().NoError(s.store.UpdateContent(s.ctx, 1))
	s.contents[2] = &domain.Item{Described: domain.Described{ID: 2, Publisher: pa}}
	g := s.graph(s.clock.Now().Add(time.Minute), 1, 2)
	delete(s.contents, 2)

	s.Require().NoError(s.store.UpdateEquivalences(s.ctx, domain.EquivalenceGraphUpdate{Updated: g}))

	s.Equal([]domain.ID{1}, s.backend.Rows(1))
	resolved, err := s.store.ResolveIDs(s.ctx, []domain.ID{2}, nil, nil)
	s.Require().NoError(err)
	s.Len(resolved[2], 1)
}

func (s *EquivalentContentStoreTestSuite) TestResolveIDs_FiltersAndOrdersBySource() {
	s.merge()
	s.addItem(3, yv)
	s.clock.Advance(time.Minute)
	s.Require().NoError(s.store.UpdateEquivalences(s.ctx, domain.EquivalenceGraphUpdate{
		Updated: s.graph(s.clock.Now(), 1, 2, 3),
		Deleted: []domain.ID{3},
	}))

	resolved, err := s.store.ResolveIDs(s.ctx, []domain.ID{1}, []domain.Publisher{yv, pa}, nil)

	s.Require().NoError(err)
	s.Require().Len(resolved[1], 2)
	s.Equal(yv, resolved[1][0].Base().Publisher)
	s.Equal(pa, resolved[1][1].Base().Publisher)
}

func (s *EquivalentContentStoreTestSuite) TestResolveIDs_UnknownIDIsEmpty() {
	resolved, err := s.store.ResolveIDs(s.ctx, []domain.ID{77}, nil, nil)

	s.NoError(err)
	s.Empty(resolved)
}

func (s *EquivalentContentStoreTestSuite) TestResolveIDs_MissingContentColumnIsAbsent() {
	s.addItem(1, bbc)
	s.Require().NoError(s.store.UpdateContent(s.ctx, 1))
	s.backend.PutRow(1, 4, nil)

	resolved, err := s.store.ResolveIDs(s.ctx, []domain.ID{1}, nil, nil)

	s.Require().NoError(err)
	s.Len(resolved[1], 1)
}

func (s *EquivalentContentStoreTestSuite) TestResolveIDs_TrimsByAnnotations() {
	s.addItem(1, bbc)
	s.Require().NoError(s.store.UpdateContent(s.ctx, 1))

	resolved, err := s.store.ResolveIDs(s.ctx, []domain.ID{1}, nil, domain.NewAnnotations(domain.AnnotationLocations))
	s.Require().NoError(err)
	item := resolved[1][0].(*domain.Item)
	s.Empty(item.Broadcasts)

	resolved, err = s.store.ResolveIDs(s.ctx, []domain.ID{1}, nil, nil)
	s.Require().NoError(err)
	s.Len(resolved[1][0].(*domain.Item).Broadcasts, 1)
}

func (s *EquivalentContentStoreTestSuite) TestResolveIDs_CorruptRow() {
	s.addItem(1, bbc)
	s.Require().NoError(s.store.UpdateContent(s.ctx, 1))
	s.backend.PutRow(1, 1, []byte(`{"type":"hologram","data":{}}`))

	_, err := s.store.ResolveIDs(s.ctx, []domain.ID{1}, nil, nil)

	s.ErrorIs(err, domain.ErrCorruptData)
}

func (s *EquivalentContentStoreTestSuite) TestResolveIDsWithoutEquivalence() {
	s.merge()

	resolved, err := s.store.ResolveIDsWithoutEquivalence(s.ctx, []domain.ID{2}, nil, nil)

	s.Require().NoError(err)
	s.Require().Len(resolved, 1)
	s.Equal(pa, resolved[2].Base().Publisher)
}

func (s *EquivalentContentStoreTestSuite) TestUpdateContent_SendFailureIsAbsorbed() {
	contents := mocks.NewMockContentResolver(s.ctrl)
	contents.EXPECT().ResolveIDs(gomock.Any(), gomock.Any()).Return(
		map[domain.ID]domain.Content{1: s.addItem(1, bbc)}, nil)
	graphs := mocks.NewMockGraphResolver(s.ctrl)
	graphs.EXPECT().ResolveIDs(gomock.Any(), gomock.Any()).Return(nil, nil)
	sender := mocks.NewMockMessageSender(s.ctrl)
	sender.EXPECT().SendEquivalentContentUpdated(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
	store := equivcontent.NewStore(s.backend, contents, graphs, s.clock, sender, testutil.Logger())

	s.NoError(store.UpdateContent(s.ctx, 1))
	s.Equal([]domain.ID{1}, s.backend.Rows(1))
}

func (s *EquivalentContentStoreTestSuite) TestUpdateEquivalences_WriteFailure() {
	s.addItem(1, bbc)
	backend := mocks.NewMockBackend(s.ctrl)
	backend.EXPECT().LookupSets(gomock.Any(), gomock.Any()).Return(map[domain.ID]domain.ID{}, nil)
	backend.EXPECT().ReadSets(gomock.Any(), gomock.Any()).Return(map[domain.ID]*equivcontent.Set{}, nil)
	backend.EXPECT().WriteSet(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	contents := mocks.NewMockContentResolver(s.ctrl)
	contents.EXPECT().ResolveIDs(gomock.Any(), gomock.Any()).Return(s.contents, nil)
	store := equivcontent.NewStore(backend, contents, mocks.NewMockGraphResolver(s.ctrl), s.clock,
		mocks.NewMockMessageSender(s.ctrl), testutil.Logger())

	err := store.UpdateEquivalences(s.ctx, domain.EquivalenceGraphUpdate{Updated: s.graph(s.clock.Now(), 1)})

	s.Error(err)
}
