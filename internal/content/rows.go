package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"media_core/internal/domain"
)

// ErrConditionFailed is returned by a Backend when a mutation's hash
// condition does not hold.
var ErrConditionFailed = errors.New("row condition failed")

type Column string

const (
	ColType             Column = "type"
	ColCore             Column = "core"
	ColTimestamps       Column = "timestamps"
	ColHash             Column = "hash"
	ColItem             Column = "item"
	ColBroadcasts       Column = "broadcasts"
	ColContainerSummary Column = "container_summary"
	ColEpisode          Column = "episode"
	ColFilm             Column = "film"
	ColSong             Column = "song"
	ColSeries           Column = "series"
	ColItemRefs         Column = "item_refs"
	ColItemSummaries    Column = "item_summaries"
	ColUpcoming         Column = "upcoming"
	ColAvailable        Column = "available"
	ColSeriesRefs       Column = "series_refs"
)

// variantColumns are owned by a content variant and written with it.
var variantColumns = []Column{ColItem, ColBroadcasts, ColContainerSummary, ColEpisode, ColFilm, ColSong, ColSeries}

var itemOnlyColumns = []Column{ColItem, ColBroadcasts, ColContainerSummary, ColEpisode, ColFilm, ColSong}

var containerOnlyColumns = []Column{ColSeries, ColItemRefs, ColItemSummaries, ColUpcoming, ColAvailable, ColSeriesRefs}

type Row struct {
	ID      domain.ID
	Columns map[Column][]byte
}

func (r Row) Has(c Column) bool {
	_, ok := r.Columns[c]
	return ok && r.Columns[c] != nil
}

// Mutation writes and deletes columns of one row. When ExpectHash is set the
// mutation only applies if the stored hash equals it; the empty string means
// the row must have no hash.
type Mutation struct {
	RowID      domain.ID
	Put        map[Column][]byte
	Delete     []Column
	ExpectHash *string
}

type AliasEntry struct {
	Publisher domain.Publisher
	Alias     domain.Alias
	ID        domain.ID
}

type Batch struct {
	Mutations      []Mutation
	IndexAliases   []AliasEntry
	UnindexAliases []AliasEntry
}

type timestamps struct {
	FirstSeen              time.Time `json:"first_seen"`
	LastUpdated            time.Time `json:"last_updated"`
	ThisOrChildLastUpdated time.Time `json:"this_or_child_last_updated"`
}

type itemColumn struct {
	ContainerRef *domain.ResourceRef `json:"container_ref,omitempty"`
	Locations    []domain.Location   `json:"locations,omitempty"`
}

type episodeColumn struct {
	SeriesRef     *domain.ResourceRef `json:"series_ref,omitempty"`
	EpisodeNumber *int                `json:"episode_number,omitempty"`
	SeriesNumber  *int                `json:"series_number,omitempty"`
}

type filmColumn struct {
	ReleaseYear *int `json:"release_year,omitempty"`
}

type songColumn struct {
	ISRC     string        `json:"isrc,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
}

type seriesColumn struct {
	BrandRef      *domain.ResourceRef `json:"brand_ref,omitempty"`
	SeriesNumber  *int                `json:"series_number,omitempty"`
	TotalEpisodes *int                `json:"total_episodes,omitempty"`
}

// stored is a decoded row.
type stored struct {
	content domain.Content
	hash    string
}

// encodeContent returns the columns owned by c's variant, and the variant
// columns it must clear. Child collections on containers are left alone.
func encodeContent(c domain.Content, hash string) (map[Column][]byte, []Column, error) {
	put := map[Column][]byte{}
	b := c.Base()

	core := *b
	core.FirstSeen, core.LastUpdated, core.ThisOrChildLastUpdated = time.Time{}, time.Time{}, time.Time{}
	if err := putJSON(put, ColCore, core); err != nil {
		return nil, nil, err
	}
	if err := putJSON(put, ColTimestamps, timestamps{
		FirstSeen:              b.FirstSeen,
		LastUpdated:            b.LastUpdated,
		ThisOrChildLastUpdated: b.ThisOrChildLastUpdated,
	}); err != nil {
		return nil, nil, err
	}
	put[ColType] = []byte(c.Type())
	put[ColHash] = []byte(hash)

	if i, ok := c.(domain.ItemContent); ok {
		item := i.ItemBase()
		if err := putJSON(put, ColItem, itemColumn{ContainerRef: item.ContainerRef, Locations: item.Locations}); err != nil {
			return nil, nil, err
		}
		if err := putJSON(put, ColBroadcasts, item.Broadcasts); err != nil {
			return nil, nil, err
		}
		if item.ContainerSummary != nil {
			if err := putJSON(put, ColContainerSummary, item.ContainerSummary); err != nil {
				return nil, nil, err
			}
		}
	}

	var err error
	switch v := c.(type) {
	case *domain.Episode:
		err = putJSON(put, ColEpisode, episodeColumn{SeriesRef: v.SeriesRef, EpisodeNumber: v.EpisodeNumber, SeriesNumber: v.SeriesNumber})
	case *domain.Film:
		err = putJSON(put, ColFilm, filmColumn{ReleaseYear: v.ReleaseYear})
	case *domain.Song:
		err = putJSON(put, ColSong, songColumn{ISRC: v.ISRC, Duration: v.Duration})
	case *domain.Series:
		err = putJSON(put, ColSeries, seriesColumn{BrandRef: v.BrandRef, SeriesNumber: v.SeriesNumber, TotalEpisodes: v.TotalEpisodes})
	}
	if err != nil {
		return nil, nil, err
	}

	var del []Column
	for _, col := range variantColumns {
		if _, ok := put[col]; !ok {
			del = append(del, col)
		}
	}
	if c.Type().IsItem() {
		del = append(del, ColItemRefs, ColItemSummaries, ColUpcoming, ColAvailable, ColSeriesRefs)
	} else if c.Type() == domain.TypeSeries {
		del = append(del, ColSeriesRefs)
	}
	return put, del, nil
}

// decodeRow rebuilds the content in r. A row with neither type nor core
// columns only holds denormalisations written by children and reads as absent.
func decodeRow(r Row) (*stored, error) {
	if !r.Has(ColType) {
		if r.Has(ColCore) {
			return nil, &domain.CorruptDataError{ID: r.ID, Reason: "core columns without type"}
		}
		return nil, nil
	}
	t := domain.ContentType(r.Columns[ColType])
	c, ok := domain.New(t)
	if !ok {
		return nil, &domain.CorruptDataError{ID: r.ID, Reason: fmt.Sprintf("unknown type %q", t)}
	}
	if !r.Has(ColCore) {
		return nil, &domain.CorruptDataError{ID: r.ID, Reason: "missing core column"}
	}
	if err := checkColumns(r, t); err != nil {
		return nil, err
	}

	b := c.Base()
	if err := getJSON(r, ColCore, b); err != nil {
		return nil, err
	}
	if r.Has(ColTimestamps) {
		var ts timestamps
		if err := getJSON(r, ColTimestamps, &ts); err != nil {
			return nil, err
		}
		b.FirstSeen, b.LastUpdated, b.ThisOrChildLastUpdated = ts.FirstSeen, ts.LastUpdated, ts.ThisOrChildLastUpdated
	}
	if b.ID != r.ID {
		return nil, &domain.CorruptDataError{ID: r.ID, Reason: fmt.Sprintf("core column holds id %d", b.ID)}
	}

	if err := decodeVariant(r, c); err != nil {
		return nil, err
	}
	return &stored{content: c, hash: string(r.Columns[ColHash])}, nil
}

func checkColumns(r Row, t domain.ContentType) error {
	var required, forbidden []Column
	switch t {
	case domain.TypeItem:
		required = []Column{ColItem}
		forbidden = append([]Column{ColEpisode, ColFilm, ColSong}, containerOnlyColumns...)
	case domain.TypeEpisode:
		required = []Column{ColItem, ColEpisode}
		forbidden = append([]Column{ColFilm, ColSong}, containerOnlyColumns...)
	case domain.TypeFilm:
		required = []Column{ColItem, ColFilm}
		forbidden = append([]Column{ColEpisode, ColSong}, containerOnlyColumns...)
	case domain.TypeSong:
		required = []Column{ColItem, ColSong}
		forbidden = append([]Column{ColEpisode, ColFilm}, containerOnlyColumns...)
	case domain.TypeSeries:
		required = []Column{ColSeries}
		forbidden = append([]Column{ColSeriesRefs}, itemOnlyColumns...)
	case domain.TypeBrand:
		forbidden = append([]Column{ColSeries}, itemOnlyColumns...)
	}
	for _, col := range required {
		if !r.Has(col) {
			return &domain.CorruptDataError{ID: r.ID, Reason: fmt.Sprintf("%s row missing %s column", t, col)}
		}
	}
	for _, col := range forbidden {
		if r.Has(col) {
			return &domain.CorruptDataError{ID: r.ID, Reason: fmt.Sprintf("%s row has %s column", t, col)}
		}
	}
	return nil
}

func decodeVariant(r Row, c domain.Content) error {
	if i, ok := c.(domain.ItemContent); ok {
		item := i.ItemBase()
		var ic itemColumn
		if err := getJSON(r, ColItem, &ic); err != nil {
			return err
		}
		item.ContainerRef, item.Locations = ic.ContainerRef, ic.Locations
		if err := getJSON(r, ColBroadcasts, &item.Broadcasts); err != nil {
			return err
		}
		if r.Has(ColContainerSummary) {
			item.ContainerSummary = &domain.ContainerSummary{}
			if err := getJSON(r, ColContainerSummary, item.ContainerSummary); err != nil {
				return err
			}
		}
	}
	if cc, ok := c.(domain.ContainerContent); ok {
		container := cc.ContainerBase()
		if err := getJSON(r, ColItemRefs, &container.ItemRefs); err != nil {
			return err
		}
		if err := getJSON(r, ColItemSummaries, &container.ItemSummaries); err != nil {
			return err
		}
		if err := getJSON(r, ColUpcoming, &container.UpcomingContent); err != nil {
			return err
		}
		if err := getJSON(r, ColAvailable, &container.AvailableContent); err != nil {
			return err
		}
	}

	switch v := c.(type) {
	case *domain.Episode:
		var ec episodeColumn
		if err := getJSON(r, ColEpisode, &ec); err != nil {
			return err
		}
		v.SeriesRef, v.EpisodeNumber, v.SeriesNumber = ec.SeriesRef, ec.EpisodeNumber, ec.SeriesNumber
	case *domain.Film:
		var fc filmColumn
		if err := getJSON(r, ColFilm, &fc); err != nil {
			return err
		}
		v.ReleaseYear = fc.ReleaseYear
	case *domain.Song:
		var sc songColumn
		if err := getJSON(r, ColSong, &sc); err != nil {
			return err
		}
		v.ISRC, v.Duration = sc.ISRC, sc.Duration
	case *domain.Series:
		var sc seriesColumn
		if err := getJSON(r, ColSeries, &sc); err != nil {
			return err
		}
		v.BrandRef, v.SeriesNumber, v.TotalEpisodes = sc.BrandRef, sc.SeriesNumber, sc.TotalEpisodes
	case *domain.Brand:
		if err := getJSON(r, ColSeriesRefs, &v.SeriesRefs); err != nil {
			return err
		}
	}
	return nil
}

func putJSON(put map[Column][]byte, col Column, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s column: %w", col, err)
	}
	put[col] = data
	return nil
}

// getJSON leaves dst untouched when the column is absent.
func getJSON(r Row, col Column, dst any) error {
	raw, ok := r.Columns[col]
	if !ok || raw == nil {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return &domain.CorruptDataError{ID: r.ID, Reason: fmt.Sprintf("decode %s column: %v", col, err)}
	}
	return nil
}
