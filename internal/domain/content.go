package domain

import (
	"fmt"
	"time"
)

type ID int64

type Publisher string

type ContentType string

const (
	TypeBrand   ContentType = "brand"
	TypeSeries  ContentType = "series"
	TypeItem    ContentType = "item"
	TypeEpisode ContentType = "episode"
	TypeFilm    ContentType = "film"
	TypeSong    ContentType = "song"
)

func (t ContentType) IsContainer() bool {
	return t == TypeBrand || t == TypeSeries
}

func (t ContentType) IsItem() bool {
	switch t {
	case TypeItem, TypeEpisode, TypeFilm, TypeSong:
		return true
	}
	return false
}

func (t ContentType) Valid() bool {
	return t.IsContainer() || t.IsItem()
}

type Alias struct {
	Namespace string `json:"namespace"`
	Value     string `json:"value"`
}

// ResourceRef identifies a piece of content owned by a publisher.
type ResourceRef struct {
	ID        ID          `json:"id"`
	Publisher Publisher   `json:"publisher"`
	Type      ContentType `json:"type,omitempty"`
}

// Described holds the fields shared by every content variant.
type Described struct {
	ID                     ID            `json:"id"`
	Publisher              Publisher     `json:"publisher"`
	Title                  string        `json:"title,omitempty"`
	Description            string        `json:"description,omitempty"`
	Image                  string        `json:"image,omitempty"`
	Aliases                []Alias       `json:"aliases,omitempty"`
	Equivalents            []ResourceRef `json:"equivalents,omitempty"`
	FirstSeen              time.Time     `json:"first_seen"`
	LastUpdated            time.Time     `json:"last_updated"`
	ThisOrChildLastUpdated time.Time     `json:"this_or_child_last_updated"`
	ActivelyPublished      bool          `json:"actively_published"`
	GenericDescription     bool          `json:"generic_description,omitempty"`
}

func (d *Described) Base() *Described { return d }

func (d *Described) sealed() {}

// Content is the closed set of variants: *Brand, *Series, *Item, *Episode, *Film, *Song.
type Content interface {
	Base() *Described
	Type() ContentType
	sealed()
}

// ContainerContent is implemented by *Brand and *Series.
type ContainerContent interface {
	Content
	ContainerBase() *Container
}

// ItemContent is implemented by *Item, *Episode, *Film and *Song.
type ItemContent interface {
	Content
	ItemBase() *Item
}

func RefOf(c Content) ResourceRef {
	b := c.Base()
	return ResourceRef{ID: b.ID, Publisher: b.Publisher, Type: c.Type()}
}

type Container struct {
	Described
	ItemRefs         []ItemRef                `json:"item_refs,omitempty"`
	UpcomingContent  map[ID][]BroadcastRef    `json:"upcoming_content,omitempty"`
	AvailableContent map[ID][]LocationSummary `json:"available_content,omitempty"`
	ItemSummaries    []ItemSummary            `json:"item_summaries,omitempty"`
}

func (c *Container) ContainerBase() *Container { return c }

type Brand struct {
	Container
	SeriesRefs []SeriesRef `json:"series_refs,omitempty"`
}

func (*Brand) Type() ContentType { return TypeBrand }

type Series struct {
	Container
	BrandRef      *ResourceRef `json:"brand_ref,omitempty"`
	SeriesNumber  *int         `json:"series_number,omitempty"`
	TotalEpisodes *int         `json:"total_episodes,omitempty"`
}

func (*Series) Type() ContentType { return TypeSeries }

type Item struct {
	Described
	ContainerRef     *ResourceRef      `json:"container_ref,omitempty"`
	ContainerSummary *ContainerSummary `json:"container_summary,omitempty"`
	Broadcasts       []Broadcast       `json:"broadcasts,omitempty"`
	Locations        []Location        `json:"locations,omitempty"`
}

func (*Item) Type() ContentType { return TypeItem }

func (i *Item) ItemBase() *Item { return i }

type Episode struct {
	Item
	SeriesRef     *ResourceRef `json:"series_ref,omitempty"`
	EpisodeNumber *int         `json:"episode_number,omitempty"`
	SeriesNumber  *int         `json:"series_number,omitempty"`
}

func (*Episode) Type() ContentType { return TypeEpisode }

type Film struct {
	Item
	ReleaseYear *int `json:"release_year,omitempty"`
}

func (*Film) Type() ContentType { return TypeFilm }

type Song struct {
	Item
	ISRC     string        `json:"isrc,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
}

func (*Song) Type() ContentType { return TypeSong }

// New returns an empty value of the variant named by t.
func New(t ContentType) (Content, bool) {
	switch t {
	case TypeBrand:
		return &Brand{}, true
	case TypeSeries:
		return &Series{}, true
	case TypeItem:
		return &Item{}, true
	case TypeEpisode:
		return &Episode{}, true
	case TypeFilm:
		return &Film{}, true
	case TypeSong:
		return &Song{}, true
	}
	return nil, false
}

// SeriesRefOf returns the series an item belongs to, if it is an episode in one.
func SeriesRefOf(c Content) *ResourceRef {
	if e, ok := c.(*Episode); ok {
		return e.SeriesRef
	}
	return nil
}

// ItemRef is the denormalised pointer a container keeps to each child item.
type ItemRef struct {
	ID        ID          `json:"id"`
	Publisher Publisher   `json:"publisher"`
	Type      ContentType `json:"type"`
	SortKey   string      `json:"sort_key,omitempty"`
	Updated   time.Time   `json:"updated"`
}

type SeriesRef struct {
	ID           ID        `json:"id"`
	Publisher    Publisher `json:"publisher"`
	Title        string    `json:"title,omitempty"`
	SeriesNumber *int      `json:"series_number,omitempty"`
	Updated      time.Time `json:"updated"`
}

type BroadcastRef struct {
	SourceID  string    `json:"source_id,omitempty"`
	ChannelID ID        `json:"channel_id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
}

type Location struct {
	URI               string     `json:"uri"`
	Available         bool       `json:"available"`
	AvailabilityStart *time.Time `json:"availability_start,omitempty"`
	AvailabilityEnd   *time.Time `json:"availability_end,omitempty"`
}

// AvailableAt reports whether the location is available and inside its window at t.
func (l Location) AvailableAt(t time.Time) bool {
	if !l.Available {
		return false
	}
	if l.AvailabilityStart != nil && t.Before(*l.AvailabilityStart) {
		return false
	}
	if l.AvailabilityEnd != nil && !t.Before(*l.AvailabilityEnd) {
		return false
	}
	return true
}

func (l Location) Summary() LocationSummary {
	return LocationSummary{
		Available:         l.Available,
		URI:               l.URI,
		AvailabilityStart: l.AvailabilityStart,
		AvailabilityEnd:   l.AvailabilityEnd,
	}
}

type LocationSummary struct {
	Available         bool       `json:"available"`
	URI               string     `json:"uri"`
	AvailabilityStart *time.Time `json:"availability_start,omitempty"`
	AvailabilityEnd   *time.Time `json:"availability_end,omitempty"`
}

type ItemSummary struct {
	Item          ItemRef `json:"item"`
	Title         string  `json:"title,omitempty"`
	Description   string  `json:"description,omitempty"`
	Image         string  `json:"image,omitempty"`
	EpisodeNumber *int    `json:"episode_number,omitempty"`
}

// ContainerSummary is the parent metadata copied onto each child item.
type ContainerSummary struct {
	Type          ContentType `json:"type"`
	Title         string      `json:"title,omitempty"`
	Description   string      `json:"description,omitempty"`
	SeriesNumber  *int        `json:"series_number,omitempty"`
	TotalEpisodes *int        `json:"total_episodes,omitempty"`
}

func (s *ContainerSummary) Equal(o *ContainerSummary) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.Type == o.Type && s.Title == o.Title && s.Description == o.Description &&
		intPtrEqual(s.SeriesNumber, o.SeriesNumber) && intPtrEqual(s.TotalEpisodes, o.TotalEpisodes)
}

func SummarizeContainer(c ContainerContent) *ContainerSummary {
	b := c.Base()
	summary := &ContainerSummary{Type: c.Type(), Title: b.Title, Description: b.Description}
	if s, ok := c.(*Series); ok {
		summary.SeriesNumber = s.SeriesNumber
		summary.TotalEpisodes = s.TotalEpisodes
	}
	return summary
}

func ItemRefOf(i ItemContent) ItemRef {
	b := i.Base()
	ref := ItemRef{ID: b.ID, Publisher: b.Publisher, Type: i.Type(), Updated: b.LastUpdated}
	if e, ok := i.(*Episode); ok && e.EpisodeNumber != nil {
		ref.SortKey = episodeSortKey(e)
	}
	return ref
}

func SummarizeItem(i ItemContent) ItemSummary {
	b := i.Base()
	s := ItemSummary{Item: ItemRefOf(i), Title: b.Title, Description: b.Description, Image: b.Image}
	if e, ok := i.(*Episode); ok {
		s.EpisodeNumber = e.EpisodeNumber
	}
	return s
}

func SeriesRefFrom(s *Series) SeriesRef {
	return SeriesRef{
		ID:           s.ID,
		Publisher:    s.Publisher,
		Title:        s.Title,
		SeriesNumber: s.SeriesNumber,
		Updated:      s.LastUpdated,
	}
}

func episodeSortKey(e *Episode) string {
	series, episode := 0, 0
	if e.SeriesNumber != nil {
		series = *e.SeriesNumber
	}
	if e.EpisodeNumber != nil {
		episode = *e.EpisodeNumber
	}
	return fmt.Sprintf("%06d.%06d", series, episode)
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
