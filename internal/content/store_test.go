package content_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"media_core/internal/clock"
	"media_core/internal/config"
	"media_core/internal/content"
	"media_core/internal/content/mocks"
	"media_core/internal/domain"
	"media_core/internal/hashing"
	"media_core/internal/storage/memory"
	"media_core/internal/testutil"
)

const pub domain.Publisher = "bbc.co.uk"

type ContentStoreTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	rows   *memory.ContentRows
	clock  *clock.Fixed
	sender *mocks.MockMessageSender

	mu   sync.Mutex
	sent []domain.ResourceUpdatedMessage

	store *content.Store
	ctx   context.Context
}

func (s *ContentStoreTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.rows = memory.NewContentRows()
	s.clock = clock.NewFixed(testutil.Time("2016-02-10T14:00:00Z"))
	s.sender = mocks.NewMockMessageSender(s.ctrl)
	s.sent = nil

	s.sender.EXPECT().SendResourceUpdated(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg domain.ResourceUpdatedMessage) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.sent = append(s.sent, msg)
			return nil
		},
	).AnyTimes()

	s.store = s.newStore(nil, config.ContentConfig{MaxItemSummaries: 10})
}

func (s *ContentStoreTestSuite) newStore(graphs content.GraphResolver, cfg config.ContentConfig) *content.Store {
	return content.NewStore(
		s.rows,
		memory.NewIDSequence(1000),
		hashing.NewContentHasher(),
		s.clock,
		s.sender,
		graphs,
		domain.DefaultAliasNormalizer(),
		testutil.Logger(),
		cfg,
	)
}

func (s *ContentStoreTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestContentStoreTestSuite(t *testing.T) {
	suite.Run(t, new(ContentStoreTestSuite))
}

func (s *ContentStoreTestSuite) sentIDs() []domain.ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]domain.ID, len(s.sent))
	for i, m := range s.sent {
		ids[i] = m.Resource.ID
	}
	return ids
}

func (s *ContentStoreTestSuite) brand(title string) *domain.Brand {
	return &domain.Brand{Container: domain.Container{Described: domain.Described{
		Publisher:         pub,
		Title:             title,
		ActivelyPublished: true,
	}}}
}

func (s *ContentStoreTestSuite) writeBrand(title string) domain.ID {
	res, err := s.store.WriteContent(s.ctx, s.brand(title))
	s.Require().NoError(err)
	s.Require().True(res.Written)
	return res.Resource.Base().ID
}

func (s *ContentStoreTestSuite) item(containerID domain.ID) *domain.Item {
	now := s.clock.Now()
	return &domain.Item{
		Described: domain.Described{
			Publisher:         pub,
			Title:             "Episode One",
			Aliases:           []domain.Alias{{Namespace: "bbc:pid", Value: "b0001"}},
			ActivelyPublished: true,
		},
		ContainerRef: &domain.ResourceRef{ID: containerID, Publisher: pub, Type: domain.TypeBrand},
		Broadcasts: []domain.Broadcast{{
			ChannelID:         1,
			Start:             now.Add(time.Hour),
			End:               now.Add(2 * time.Hour),
			SourceID:          "youview:1",
			ActivelyPublished: true,
		}},
		Locations: []domain.Location{{
			URI:               "http://iplayer/b0001",
			Available:         true,
			AvailabilityStart: testutil.Ptr(now.Add(-time.Hour)),
			AvailabilityEnd:   testutil.Ptr(now.Add(24 * time.Hour)),
		}},
	}
}

func (s *ContentStoreTestSuite) resolve(id domain.ID) domain.Content {
	found, err := s.store.ResolveIDs(s.ctx, []domain.ID{id})
	s.Require().NoError(err)
	c, ok := found[id]
	s.Require().True(ok, "content %d not found", id)
	return c
}

func (s *ContentStoreTestSuite) resolveBrand(id domain.ID) *domain.Brand {
	b, ok := s.resolve(id).(*domain.Brand)
	s.Require().True(ok)
	return b
}

func (s *ContentStoreTestSuite) TestWriteContent_MintsIDAndStamps() {
	res, err := s.store.WriteContent(s.ctx, s.brand("Doctor Who"))

	s.Require().NoError(err)
	s.True(res.Written)
	s.Nil(res.Previous)
	b := res.Resource.Base()
	s.Equal(domain.ID(1001), b.ID)
	s.Equal(s.clock.Now(), b.FirstSeen)
	s.Equal(s.clock.Now(), b.LastUpdated)
	s.Equal(s.clock.Now(), b.ThisOrChildLastUpdated)
	s.Equal([]domain.ID{1001}, s.sentIDs())
}

func (s *ContentStoreTestSuite) TestWriteContent_DoesNotMutateInput() {
	brand := s.brand("Doctor Who")

	_, err := s.store.WriteContent(s.ctx, brand)

	s.Require().NoError(err)
	s.Equal(domain.ID(0), brand.ID)
}

func (s *ContentStoreTestSuite) TestWriteContent_UnchangedHashSkipsWrite() {
	brandID := s.writeBrand("Doctor Who")
	first, err := s.store.WriteContent(s.ctx, s.item(brandID))
	s.Require().NoError(err)
	s.Require().True(first.Written)
	sentBefore := len(s.sentIDs())

	again := s.item(brandID)
	s.clock.Advance(time.Minute)
	second, err := s.store.WriteContent(s.ctx, again)

	s.Require().NoError(err)
	s.False(second.Written)
	s.Equal(first.Resource.Base().ID, second.Resource.Base().ID)
	s.Equal(first.Resource.Base().LastUpdated, second.Previous.Base().LastUpdated)
	s.Len(s.sentIDs(), sentBefore)
}

func (s *ContentStoreTestSuite) TestWriteContent_ResolvesByAlias() {
	brandID := s.writeBrand("Doctor Who")
	first, err := s.store.WriteContent(s.ctx, s.item(brandID))
	s.Require().NoError(err)

	s.clock.Advance(time.Minute)
	changed := s.item(brandID)
	changed.Title = "Episode One (Revised)"
	second, err := s.store.WriteContent(s.ctx, changed)

	s.Require().NoError(err)
	s.True(second.Written)
	s.Equal(first.Resource.Base().ID, second.Resource.Base().ID)
	s.Equal(first.Resource.Base().FirstSeen, second.Resource.Base().FirstSeen)
	s.Equal(s.clock.Now(), second.Resource.Base().LastUpdated)
	s.Equal("Episode One", second.Previous.Base().Title)
}

func (s *ContentStoreTestSuite) TestWriteContent_AmbiguousAliasConflicts() {
	brandID := s.writeBrand("Doctor Who")
	a := s.item(brandID)
	a.Aliases = []domain.Alias{{Namespace: "ns", Value: "a"}}
	_, err := s.store.WriteContent(s.ctx, a)
	s.Require().NoError(err)
	b := s.item(brandID)
	b.Aliases = []domain.Alias{{Namespace: "ns", Value: "b"}}
	_, err = s.store.WriteContent(s.ctx, b)
	s.Require().NoError(err)

	both := s.item(brandID)
	both.Aliases = []domain.Alias{{Namespace: "ns", Value: "a"}, {Namespace: "ns", Value: "b"}}
	_, err = s.store.WriteContent(s.ctx, both)

	var werr *domain.WriteError
	s.Require().ErrorAs(err, &werr)
	s.Equal(domain.ReasonAmbiguousAlias, werr.Reason)
	s.True(errors.Is(err, domain.ErrWriteConflict))
}

func (s *ContentStoreTestSuite) TestWriteContent_IDWriteCannotTakeOverAlias() {
	brandID := s.writeBrand("Doctor Who")
	first, err := s.store.WriteContent(s.ctx, s.item(brandID))
	s.Require().NoError(err)
	firstID := first.Resource.Base().ID

	other := s.item(brandID)
	other.Aliases = []domain.Alias{{Namespace: "ns", Value: "other"}}
	second, err := s.store.WriteContent(s.ctx, other)
	s.Require().NoError(err)

	takeover := s.item(brandID)
	takeover.ID = second.Resource.Base().ID
	_, err = s.store.WriteContent(s.ctx, takeover)

	var werr *domain.WriteError
	s.Require().ErrorAs(err, &werr)
	s.Equal(domain.ReasonAmbiguousAlias, werr.Reason)

	alias := domain.Alias{Namespace: "bbc:pid", Value: "b0001"}
	found, err := s.store.ResolveAliases(s.ctx, []domain.Alias{alias}, pub)
	s.Require().NoError(err)
	s.Equal(firstID, found[alias].Base().ID)
}

func (s *ContentStoreTestSuite) TestWriteContent_AliasesArePublisherScoped() {
	brandID := s.writeBrand("Doctor Who")
	_, err := s.store.WriteContent(s.ctx, s.item(brandID))
	s.Require().NoError(err)

	other := &domain.Brand{Container: domain.Container{Described: domain.Described{
		Publisher:         "pressassociation.com",
		Aliases:           []domain.Alias{{Namespace: "bbc:pid", Value: "b0001"}},
		ActivelyPublished: true,
	}}}
	res, err := s.store.WriteContent(s.ctx, other)

	s.Require().NoError(err)
	s.Nil(res.Previous)
}

func (s *ContentStoreTestSuite) TestWriteContent_MissingParentFails() {
	_, err := s.store.WriteContent(s.ctx, s.item(4242))

	var werr *domain.WriteError
	s.Require().ErrorAs(err, &werr)
	s.Equal(domain.ReasonMissingParent, werr.Reason)
	s.Empty(s.sentIDs())
}

func (s *ContentStoreTestSuite) TestWriteContent_NoPublisherFails() {
	brand := s.brand("x")
	brand.Publisher = ""

	_, err := s.store.WriteContent(s.ctx, brand)

	s.ErrorIs(err, domain.ErrWriteConflict)
}

func (s *ContentStoreTestSuite) TestWriteContent_ItemPropagatesToBrand() {
	brandID := s.writeBrand("Doctor Who")
	s.clock.Advance(time.Minute)

	res, err := s.store.WriteContent(s.ctx, s.item(brandID))
	s.Require().NoError(err)
	itemID := res.Resource.Base().ID

	brand := s.resolveBrand(brandID)
	s.Require().Len(brand.ItemRefs, 1)
	s.Equal(itemID, brand.ItemRefs[0].ID)
	s.Equal(domain.TypeItem, brand.ItemRefs[0].Type)
	s.Require().Len(brand.ItemSummaries, 1)
	s.Equal("Episode One", brand.ItemSummaries[0].Title)
	s.Len(brand.UpcomingContent[itemID], 1)
	s.Equal("youview:1", brand.UpcomingContent[itemID][0].SourceID)
	s.Len(brand.AvailableContent[itemID], 1)
	s.Equal(s.clock.Now(), brand.ThisOrChildLastUpdated)
	s.Equal([]domain.ID{brandID, itemID, brandID}, s.sentIDs())

	item, ok := s.resolve(itemID).(*domain.Item)
	s.Require().True(ok)
	s.Require().NotNil(item.ContainerSummary)
	s.Equal("Doctor Who", item.ContainerSummary.Title)
	s.Equal(domain.TypeBrand, item.ContainerSummary.Type)
}

func (s *ContentStoreTestSuite) TestWriteContent_DeactivationRetracts() {
	brandID := s.writeBrand("Doctor Who")
	res, err := s.store.WriteContent(s.ctx, s.item(brandID))
	s.Require().NoError(err)
	itemID := res.Resource.Base().ID

	inactive := s.item(brandID)
	inactive.ActivelyPublished = false
	_, err = s.store.WriteContent(s.ctx, inactive)
	s.Require().NoError(err)

	brand := s.resolveBrand(brandID)
	s.Empty(brand.ItemRefs)
	s.Empty(brand.ItemSummaries)
	s.NotContains(brand.UpcomingContent, itemID)
	s.NotContains(brand.AvailableContent, itemID)
}

func (s *ContentStoreTestSuite) TestWriteContent_GenericDescriptionIsNotAChild() {
	brandID := s.writeBrand("Doctor Who")
	generic := s.item(brandID)
	generic.GenericDescription = true

	_, err := s.store.WriteContent(s.ctx, generic)
	s.Require().NoError(err)

	s.Empty(s.resolveBrand(brandID).ItemRefs)
}

func (s *ContentStoreTestSuite) TestWriteContent_ReparentingRetractsFromOldContainer() {
	oldID := s.writeBrand("Old")
	newID := s.writeBrand("New")
	res, err := s.store.WriteContent(s.ctx, s.item(oldID))
	s.Require().NoError(err)
	itemID := res.Resource.Base().ID

	_, err = s.store.WriteContent(s.ctx, s.item(newID))
	s.Require().NoError(err)

	old := s.resolveBrand(oldID)
	s.Empty(old.ItemRefs)
	s.Empty(old.ItemSummaries)
	s.NotContains(old.UpcomingContent, itemID)
	current := s.resolveBrand(newID)
	s.Require().Len(current.ItemRefs, 1)
	s.Equal(itemID, current.ItemRefs[0].ID)
}

func (s *ContentStoreTestSuite) TestWriteContent_EpisodeSummariesGoOnSeries() {
	brandID := s.writeBrand("Doctor Who")
	seriesRes, err := s.store.WriteContent(s.ctx, &domain.Series{
		Container: domain.Container{Described: domain.Described{
			Publisher: pub, Title: "Series 1", ActivelyPublished: true,
		}},
		BrandRef:     &domain.ResourceRef{ID: brandID, Publisher: pub, Type: domain.TypeBrand},
		SeriesNumber: testutil.Ptr(1),
	})
	s.Require().NoError(err)
	seriesID := seriesRes.Resource.Base().ID

	brand := s.resolveBrand(brandID)
	s.Require().Len(brand.SeriesRefs, 1)
	s.Equal(seriesID, brand.SeriesRefs[0].ID)

	episode := &domain.Episode{
		Item:          *s.item(brandID),
		SeriesRef:     &domain.ResourceRef{ID: seriesID, Publisher: pub, Type: domain.TypeSeries},
		EpisodeNumber: testutil.Ptr(3),
		SeriesNumber:  testutil.Ptr(1),
	}
	res, err := s.store.WriteContent(s.ctx, episode)
	s.Require().NoError(err)
	episodeID := res.Resource.Base().ID

	brand = s.resolveBrand(brandID)
	s.Require().Len(brand.ItemRefs, 1)
	s.Equal("000001.000003", brand.ItemRefs[0].SortKey)
	s.Empty(brand.ItemSummaries)
	s.Len(brand.UpcomingContent[episodeID], 1)

	series, ok := s.resolve(seriesID).(*domain.Series)
	s.Require().True(ok)
	s.Require().Len(series.ItemRefs, 1)
	s.Require().Len(series.ItemSummaries, 1)
	s.Equal(3, *series.ItemSummaries[0].EpisodeNumber)
	s.Len(series.UpcomingContent[episodeID], 1)
}

func (s *ContentStoreTestSuite) TestWriteContent_InactiveSeriesLeavesBrand() {
	brandID := s.writeBrand("Doctor Who")
	series := &domain.Series{
		Container: domain.Container{Described: domain.Described{
			Publisher: pub, Title: "Series 1", ActivelyPublished: true,
			Aliases: []domain.Alias{{Namespace: "bbc:pid", Value: "s1"}},
		}},
		BrandRef: &domain.ResourceRef{ID: brandID, Publisher: pub, Type: domain.TypeBrand},
	}
	_, err := s.store.WriteContent(s.ctx, series)
	s.Require().NoError(err)

	series.ActivelyPublished = false
	_, err = s.store.WriteContent(s.ctx, series)
	s.Require().NoError(err)

	s.Empty(s.resolveBrand(brandID).SeriesRefs)
}

func (s *ContentStoreTestSuite) TestWriteContent_ContainerKeepsStoredChildren() {
	brandID := s.writeBrand("Doctor Who")
	res, err := s.store.WriteContent(s.ctx, s.item(brandID))
	s.Require().NoError(err)
	itemID := res.Resource.Base().ID

	rewrite := s.brand("Doctor Who")
	rewrite.ID = brandID
	rewrite.Description = "Time travel"
	rewrite.ItemRefs = []domain.ItemRef{{ID: 9999, Publisher: pub, Type: domain.TypeItem}}
	written, err := s.store.WriteContent(s.ctx, rewrite)
	s.Require().NoError(err)

	brand := s.resolveBrand(brandID)
	s.Require().Len(brand.ItemRefs, 1)
	s.Equal(itemID, brand.ItemRefs[0].ID)
	s.Equal(brand.ItemRefs, written.Resource.(*domain.Brand).ItemRefs)
}

func (s *ContentStoreTestSuite) TestWriteContent_ContainerSummaryRewrittenOnChildren() {
	brandID := s.writeBrand("Doctor Who")
	res, err := s.store.WriteContent(s.ctx, s.item(brandID))
	s.Require().NoError(err)
	itemID := res.Resource.Base().ID
	sentBefore := len(s.sentIDs())

	renamed := s.brand("Doctor Who Classic")
	renamed.ID = brandID
	_, err = s.store.WriteContent(s.ctx, renamed)
	s.Require().NoError(err)

	item, ok := s.resolve(itemID).(*domain.Item)
	s.Require().True(ok)
	s.Equal("Doctor Who Classic", item.ContainerSummary.Title)
	s.Equal([]domain.ID{brandID, itemID}, s.sentIDs()[sentBefore:])
}

func (s *ContentStoreTestSuite) TestWriteContent_DropsUnpublishedBroadcasts() {
	brandID := s.writeBrand("Doctor Who")
	item := s.item(brandID)
	item.Broadcasts = append(item.Broadcasts, domain.Broadcast{
		ChannelID: 2,
		Start:     s.clock.Now().Add(3 * time.Hour),
		End:       s.clock.Now().Add(4 * time.Hour),
	})

	res, err := s.store.WriteContent(s.ctx, item)
	s.Require().NoError(err)

	stored := s.resolve(res.Resource.Base().ID).(*domain.Item)
	s.Len(stored.Broadcasts, 1)
	s.Len(s.resolveBrand(brandID).UpcomingContent[stored.ID], 1)
}

func (s *ContentStoreTestSuite) TestWriteContent_PastBroadcastIsNotUpcoming() {
	brandID := s.writeBrand("Doctor Who")
	item := s.item(brandID)
	item.Broadcasts[0].Start = s.clock.Now().Add(-2 * time.Hour)
	item.Broadcasts[0].End = s.clock.Now().Add(-time.Hour)

	res, err := s.store.WriteContent(s.ctx, item)
	s.Require().NoError(err)

	brand := s.resolveBrand(brandID)
	s.NotContains(brand.UpcomingContent, res.Resource.Base().ID)
	s.Len(brand.ItemRefs, 1)
}

func (s *ContentStoreTestSuite) TestWriteContent_SubtypeSwitch() {
	brandID := s.writeBrand("Doctor Who")
	series := &domain.Series{Container: domain.Container{Described: domain.Described{
		ID: brandID, Publisher: pub, Title: "Doctor Who", ActivelyPublished: true,
	}}}

	res, err := s.store.WriteContent(s.ctx, series)

	s.Require().NoError(err)
	s.True(res.Written)
	s.IsType(&domain.Brand{}, res.Previous)
	s.IsType(&domain.Series{}, s.resolve(brandID))
}

func (s *ContentStoreTestSuite) TestWriteContent_ItemSummariesBounded() {
	store := s.newStore(nil, config.ContentConfig{MaxItemSummaries: 2})
	res, err := store.WriteContent(s.ctx, s.brand("Doctor Who"))
	s.Require().NoError(err)
	brandID := res.Resource.Base().ID

	for i, v := range []string{"a", "b", "c"} {
		item := s.item(brandID)
		item.Aliases = []domain.Alias{{Namespace: "ns", Value: v}}
		item.Title = v
		s.clock.Advance(time.Duration(i+1) * time.Minute)
		_, err := store.WriteContent(s.ctx, item)
		s.Require().NoError(err)
	}

	brand := s.resolveBrand(brandID)
	s.Len(brand.ItemRefs, 3)
	s.Require().Len(brand.ItemSummaries, 2)
	s.Equal("b", brand.ItemSummaries[0].Title)
	s.Equal("c", brand.ItemSummaries[1].Title)
}

func (s *ContentStoreTestSuite) TestWriteContent_SendFailureDoesNotFailWrite() {
	ctrl := gomock.NewController(s.T())
	sender := mocks.NewMockMessageSender(ctrl)
	sender.EXPECT().SendResourceUpdated(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
	store := content.NewStore(
		s.rows, memory.NewIDSequence(1000), hashing.NewContentHasher(), s.clock, sender, nil,
		domain.DefaultAliasNormalizer(), testutil.Logger(), config.ContentConfig{},
	)

	res, err := store.WriteContent(s.ctx, s.brand("Doctor Who"))

	s.Require().NoError(err)
	s.True(res.Written)
}

func (s *ContentStoreTestSuite) TestWriteContent_PartitionKeyFromGraph() {
	graphs := mocks.NewMockGraphResolver(s.ctrl)
	graphs.EXPECT().ResolveIDs(gomock.Any(), []domain.ID{1001}).Return(map[domain.ID]*domain.EquivalenceGraph{
		1001: {ID: 7},
	}, nil)
	store := s.newStore(graphs, config.ContentConfig{})

	_, err := store.WriteContent(s.ctx, s.brand("Doctor Who"))

	s.Require().NoError(err)
	s.Require().Len(s.sent, 1)
	s.Equal(domain.ID(7), s.sent[0].PartitionKey)
}

func (s *ContentStoreTestSuite) TestWriteContent_ConditionFailure() {
	brandID := s.writeBrand("Doctor Who")
	backend := mocks.NewMockBackend(s.ctrl)
	backend.EXPECT().ReadRows(gomock.Any(), []domain.ID{brandID}).DoAndReturn(s.rows.ReadRows)
	backend.EXPECT().WriteBatch(gomock.Any(), gomock.Any()).Return(content.ErrConditionFailed)
	store := content.NewStore(
		backend, memory.NewIDSequence(1000), hashing.NewContentHasher(), s.clock, s.sender, nil,
		domain.DefaultAliasNormalizer(), testutil.Logger(), config.ContentConfig{},
	)

	update := s.brand("Renamed")
	update.ID = brandID
	_, err := store.WriteContent(s.ctx, update)

	var werr *domain.WriteError
	s.Require().ErrorAs(err, &werr)
	s.Equal(domain.ReasonConditionFailed, werr.Reason)
}

func (s *ContentStoreTestSuite) TestWriteBroadcast_MergesBySlotAlias() {
	brandID := s.writeBrand("Doctor Who")
	res, err := s.store.WriteContent(s.ctx, s.item(brandID))
	s.Require().NoError(err)
	itemID := res.Resource.Base().ID
	now := s.clock.Now()

	moved := domain.Broadcast{
		ChannelID:         1,
		Start:             now.Add(90 * time.Minute),
		End:               now.Add(150 * time.Minute),
		SourceID:          "http://youview.com/scheduleevent/1",
		ActivelyPublished: true,
	}
	err = s.store.WriteBroadcast(s.ctx,
		domain.ResourceRef{ID: itemID, Publisher: pub, Type: domain.TypeItem},
		&domain.ResourceRef{ID: brandID, Publisher: pub, Type: domain.TypeBrand},
		nil,
		moved,
	)
	s.Require().NoError(err)

	item := s.resolve(itemID).(*domain.Item)
	s.Require().Len(item.Broadcasts, 1)
	s.Equal(moved.Start, item.Broadcasts[0].Start)

	upcoming := s.resolveBrand(brandID).UpcomingContent[itemID]
	s.Require().Len(upcoming, 1)
	s.Equal(moved.Start, upcoming[0].Start)
}

func (s *ContentStoreTestSuite) TestWriteBroadcast_AddsNewSlot() {
	brandID := s.writeBrand("Doctor Who")
	res, err := s.store.WriteContent(s.ctx, s.item(brandID))
	s.Require().NoError(err)
	itemID := res.Resource.Base().ID
	now := s.clock.Now()

	err = s.store.WriteBroadcast(s.ctx,
		domain.ResourceRef{ID: itemID, Publisher: pub},
		&domain.ResourceRef{ID: brandID, Publisher: pub},
		nil,
		domain.Broadcast{ChannelID: 2, Start: now.Add(5 * time.Hour), End: now.Add(6 * time.Hour), ActivelyPublished: true},
	)
	s.Require().NoError(err)

	s.Len(s.resolve(itemID).(*domain.Item).Broadcasts, 2)
	s.Len(s.resolveBrand(brandID).UpcomingContent[itemID], 2)
}

func (s *ContentStoreTestSuite) TestWriteBroadcast_UnpublishedRemovesSlot() {
	brandID := s.writeBrand("Doctor Who")
	res, err := s.store.WriteContent(s.ctx, s.item(brandID))
	s.Require().NoError(err)
	itemID := res.Resource.Base().ID
	s.Require().Len(s.resolveBrand(brandID).UpcomingContent[itemID], 1)
	now := s.clock.Now()

	err = s.store.WriteBroadcast(s.ctx,
		domain.ResourceRef{ID: itemID, Publisher: pub, Type: domain.TypeItem},
		&domain.ResourceRef{ID: brandID, Publisher: pub, Type: domain.TypeBrand},
		nil,
		domain.Broadcast{ChannelID: 1, Start: now.Add(time.Hour), End: now.Add(2 * time.Hour), SourceID: "youview:1"},
	)
	s.Require().NoError(err)

	s.Empty(s.resolve(itemID).(*domain.Item).Broadcasts)
	s.NotContains(s.resolveBrand(brandID).UpcomingContent, itemID)
}

func (s *ContentStoreTestSuite) TestWriteBroadcast_PastBroadcastLeavesUpcoming() {
	brandID := s.writeBrand("Doctor Who")
	res, err := s.store.WriteContent(s.ctx, s.item(brandID))
	s.Require().NoError(err)
	itemID := res.Resource.Base().ID
	now := s.clock.Now()

	past := domain.Broadcast{
		ChannelID:         1,
		Start:             now.Add(-3 * time.Hour),
		End:               now.Add(-2 * time.Hour),
		SourceID:          "youview:1",
		ActivelyPublished: true,
	}
	err = s.store.WriteBroadcast(s.ctx,
		domain.ResourceRef{ID: itemID, Publisher: pub, Type: domain.TypeItem},
		&domain.ResourceRef{ID: brandID, Publisher: pub, Type: domain.TypeBrand},
		nil,
		past,
	)
	s.Require().NoError(err)

	item := s.resolve(itemID).(*domain.Item)
	s.Require().Len(item.Broadcasts, 1)
	s.True(past.Start.Equal(item.Broadcasts[0].Start))
	s.NotContains(s.resolveBrand(brandID).UpcomingContent, itemID)
}

func (s *ContentStoreTestSuite) TestWriteBroadcast_UnknownItem() {
	err := s.store.WriteBroadcast(s.ctx, domain.ResourceRef{ID: 5}, nil, nil, domain.Broadcast{})

	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *ContentStoreTestSuite) TestResolveAliases() {
	brandID := s.writeBrand("Doctor Who")
	res, err := s.store.WriteContent(s.ctx, s.item(brandID))
	s.Require().NoError(err)

	alias := domain.Alias{Namespace: "bbc:pid", Value: "b0001"}
	found, err := s.store.ResolveAliases(s.ctx, []domain.Alias{alias, {Namespace: "x", Value: "y"}}, pub)

	s.Require().NoError(err)
	s.Len(found, 1)
	s.Equal(res.Resource.Base().ID, found[alias].Base().ID)
}

func (s *ContentStoreTestSuite) TestResolveIDs_MissingVariantColumnIsCorrupt() {
	brandID := s.writeBrand("Doctor Who")
	res, err := s.store.WriteContent(s.ctx, s.item(brandID))
	s.Require().NoError(err)
	itemID := res.Resource.Base().ID
	s.rows.PutColumn(itemID, content.ColType, []byte(domain.TypeEpisode))

	_, err = s.store.ResolveIDs(s.ctx, []domain.ID{itemID})

	var corrupt *domain.CorruptDataError
	s.Require().ErrorAs(err, &corrupt)
	s.Equal(itemID, corrupt.ID)
}

func (s *ContentStoreTestSuite) TestResolveIDs_ForeignColumnIsCorrupt() {
	brandID := s.writeBrand("Doctor Who")
	s.rows.PutColumn(brandID, content.ColItem, []byte(`{}`))

	_, err := s.store.ResolveIDs(s.ctx, []domain.ID{brandID})

	s.ErrorIs(err, domain.ErrCorruptData)
}

func (s *ContentStoreTestSuite) TestResolveIDs_UnknownTypeIsCorrupt() {
	brandID := s.writeBrand("Doctor Who")
	s.rows.PutColumn(brandID, content.ColType, []byte("clip"))

	_, err := s.store.ResolveIDs(s.ctx, []domain.ID{brandID})

	s.ErrorIs(err, domain.ErrCorruptData)
}

func (s *ContentStoreTestSuite) TestResolveIDs_DenormalisedOnlyRowIsAbsent() {
	s.rows.PutColumn(77, content.ColItemRefs, []byte(`[]`))

	found, err := s.store.ResolveIDs(s.ctx, []domain.ID{77})

	s.Require().NoError(err)
	s.Empty(found)
}
