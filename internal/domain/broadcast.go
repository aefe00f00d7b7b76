package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

type Broadcast struct {
	ChannelID         ID        `json:"channel_id"`
	Start             time.Time `json:"start"`
	End               time.Time `json:"end"`
	SourceID          string    `json:"source_id,omitempty"`
	ActivelyPublished bool      `json:"actively_published"`

	Repeat         bool `json:"repeat,omitempty"`
	RevisedRepeat  bool `json:"revised_repeat,omitempty"`
	Live           bool `json:"live,omitempty"`
	Premiere       bool `json:"premiere,omitempty"`
	NewSeries      bool `json:"new_series,omitempty"`
	NewEpisode     bool `json:"new_episode,omitempty"`
	NewOneOff      bool `json:"new_one_off,omitempty"`
	Continuation   bool `json:"continuation,omitempty"`
	HighDefinition bool `json:"high_definition,omitempty"`
	Widescreen     bool `json:"widescreen,omitempty"`
	Surround       bool `json:"surround,omitempty"`
	Subtitled      bool `json:"subtitled,omitempty"`
	Signed         bool `json:"signed,omitempty"`
	AudioDescribed bool `json:"audio_described,omitempty"`
	Is3D           bool `json:"is_3d,omitempty"`
	Blackout       bool `json:"blackout,omitempty"`
}

func (b Broadcast) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// IsFollowOn reports whether the broadcast is a zero-length marker.
func (b Broadcast) IsFollowOn() bool {
	return b.End.Equal(b.Start)
}

func (b Broadcast) Ref() BroadcastRef {
	return BroadcastRef{SourceID: b.SourceID, ChannelID: b.ChannelID, Start: b.Start, End: b.End}
}

// IsUpcoming reports whether the broadcast has not finished at now.
func (b Broadcast) IsUpcoming(now time.Time) bool {
	return b.End.After(now)
}

// WithInterval returns a copy of b moved to [start, end).
func (b Broadcast) WithInterval(start, end time.Time) Broadcast {
	b.Start = start
	b.End = end
	return b
}

type AliasRule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// AliasNormalizer maps the different spellings publishers use for one
// broadcast slot onto a single alias.
type AliasNormalizer struct {
	rules []AliasRule
}

var defaultAliasRules = []AliasRule{
	{Pattern: regexp.MustCompile(`^https?://(?:www\.)?youview\.com/scheduleevent/(\d+)$`), Replacement: "youview:$1"},
	{Pattern: regexp.MustCompile(`^https?://(?:www\.)?bbc\.co\.uk/programmes/([a-z0-9]+)(?:/broadcasts)?/?$`), Replacement: "bbc:$1"},
	{Pattern: regexp.MustCompile(`^pa:(?:slot:)?(\d+)$`), Replacement: "pa:$1"},
}

func NewAliasNormalizer(rules []AliasRule) *AliasNormalizer {
	return &AliasNormalizer{rules: rules}
}

func DefaultAliasNormalizer() *AliasNormalizer {
	return NewAliasNormalizer(defaultAliasRules)
}

// CompileAliasRules builds rules from pattern/replacement pairs, as read from config.
func CompileAliasRules(pairs [][2]string) ([]AliasRule, error) {
	rules := make([]AliasRule, 0, len(pairs))
	for _, p := range pairs {
		re, err := regexp.Compile(p[0])
		if err != nil {
			return nil, fmt.Errorf("compile alias pattern %q: %w", p[0], err)
		}
		rules = append(rules, AliasRule{Pattern: re, Replacement: p[1]})
	}
	return rules, nil
}

func (n *AliasNormalizer) Normalize(sourceID string) string {
	id := strings.ToLower(strings.TrimSpace(sourceID))
	if id == "" {
		return ""
	}
	for _, r := range n.rules {
		if r.Pattern.MatchString(id) {
			return r.Pattern.ReplaceAllString(id, r.Replacement)
		}
	}
	return id
}

// Key is the slot identity of b: its channel plus its normalised source alias
// when it has one, otherwise channel and interval.
func (n *AliasNormalizer) Key(b Broadcast) string {
	if alias := n.Normalize(b.SourceID); alias != "" {
		return fmt.Sprintf("alias:%d:%s", b.ChannelID, alias)
	}
	return fmt.Sprintf("slot:%d:%d:%d", b.ChannelID, b.Start.UnixMilli(), b.End.UnixMilli())
}

// SameSlot reports whether a and b describe the same broadcast slot.
func (n *AliasNormalizer) SameSlot(a, b Broadcast) bool {
	return n.Key(a) == n.Key(b)
}

// MergeBroadcasts replaces broadcasts in existing that share a slot with b,
// appending b otherwise.
func (n *AliasNormalizer) MergeBroadcasts(existing []Broadcast, b Broadcast) []Broadcast {
	key := n.Key(b)
	out := make([]Broadcast, 0, len(existing)+1)
	replaced := false
	for _, e := range existing {
		if n.Key(e) == key {
			if !replaced {
				out = append(out, b)
				replaced = true
			}
			continue
		}
		out = append(out, e)
	}
	if !replaced {
		out = append(out, b)
	}
	return out
}
