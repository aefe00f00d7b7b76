package hashing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"media_core/internal/domain"
)

type ContentHasherTestSuite struct {
	suite.Suite
	hasher *ContentHasher
}

func (s *ContentHasherTestSuite) SetupTest() {
	s.hasher = NewContentHasher()
}

func TestContentHasherTestSuite(t *testing.T) {
	suite.Run(t, new(ContentHasherTestSuite))
}

func (s *ContentHasherTestSuite) item() *domain.Item {
	start := time.Date(2016, 2, 10, 14, 0, 0, 0, time.UTC)
	return &domain.Item{
		Described: domain.Described{
			ID:                1,
			Publisher:         "bbc.co.uk",
			Title:             "News",
			Aliases:           []domain.Alias{{Namespace: "b", Value: "2"}, {Namespace: "a", Value: "1"}},
			ActivelyPublished: true,
		},
		Broadcasts: []domain.Broadcast{
			{ChannelID: 2, Start: start.Add(time.Hour), End: start.Add(2 * time.Hour)},
			{ChannelID: 1, Start: start, End: start.Add(time.Hour)},
		},
	}
}

func (s *ContentHasherTestSuite) TestHash_IgnoresTimestamps() {
	a := s.item()
	b := s.item()
	b.LastUpdated = time.Now()
	b.FirstSeen = time.Now().Add(-time.Hour)

	ha, err := s.hasher.Hash(a)
	s.Require().NoError(err)
	hb, err := s.hasher.Hash(b)
	s.Require().NoError(err)

	s.Equal(ha, hb)
}

func (s *ContentHasherTestSuite) TestHash_IgnoresOrdering() {
	a := s.item()
	b := s.item()
	b.Aliases[0], b.Aliases[1] = b.Aliases[1], b.Aliases[0]
	b.Broadcasts[0], b.Broadcasts[1] = b.Broadcasts[1], b.Broadcasts[0]

	ha, _ := s.hasher.Hash(a)
	hb, _ := s.hasher.Hash(b)

	s.Equal(ha, hb)
}

func (s *ContentHasherTestSuite) TestHash_ChangesWithTitle() {
	a := s.item()
	b := s.item()
	b.Title = "Weather"

	ha, _ := s.hasher.Hash(a)
	hb, _ := s.hasher.Hash(b)

	s.NotEqual(ha, hb)
}

func (s *ContentHasherTestSuite) TestHash_IgnoresContainerDenormalisations() {
	a := &domain.Brand{Container: domain.Container{Described: domain.Described{ID: 5, Publisher: "bbc.co.uk"}}}
	b := &domain.Brand{Container: domain.Container{Described: domain.Described{ID: 5, Publisher: "bbc.co.uk"}}}
	b.ItemRefs = []domain.ItemRef{{ID: 6, Publisher: "bbc.co.uk", Type: domain.TypeEpisode}}
	b.SeriesRefs = []domain.SeriesRef{{ID: 7, Publisher: "bbc.co.uk"}}

	ha, _ := s.hasher.Hash(a)
	hb, _ := s.hasher.Hash(b)

	s.Equal(ha, hb)
}

func (s *ContentHasherTestSuite) TestHash_DistinguishesVariants() {
	item := &domain.Item{Described: domain.Described{ID: 1, Publisher: "p"}}
	film := &domain.Film{Item: domain.Item{Described: domain.Described{ID: 1, Publisher: "p"}}}

	hi, _ := s.hasher.Hash(item)
	hf, _ := s.hasher.Hash(film)

	s.NotEqual(hi, hf)
}
