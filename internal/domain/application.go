package domain

import "slices"

// Application is a consumer's read configuration. EnabledSources is ordered
// by precedence, highest first.
type Application struct {
	ID                string
	PrecedenceEnabled bool
	EnabledSources    []Publisher
}

// Rank returns the precedence position of p, or -1 when p is not enabled.
func (a Application) Rank(p Publisher) int {
	return slices.Index(a.EnabledSources, p)
}

type Annotation string

const (
	AnnotationBroadcasts       Annotation = "broadcasts"
	AnnotationLocations        Annotation = "locations"
	AnnotationSubItems         Annotation = "sub_items"
	AnnotationSubItemSummaries Annotation = "sub_item_summaries"
	AnnotationUpcoming         Annotation = "upcoming"
	AnnotationAvailable        Annotation = "available"
)

// Annotations selects the optional parts of content a reader wants. A nil
// set means everything.
type Annotations map[Annotation]bool

func NewAnnotations(as ...Annotation) Annotations {
	out := make(Annotations, len(as))
	for _, a := range as {
		out[a] = true
	}
	return out
}

func (a Annotations) Has(x Annotation) bool {
	return a == nil || a[x]
}

// Trim clears the parts of c that a does not ask for.
func (a Annotations) Trim(c Content) {
	if a == nil {
		return
	}
	if i, ok := c.(ItemContent); ok {
		item := i.ItemBase()
		if !a.Has(AnnotationBroadcasts) {
			item.Broadcasts = nil
		}
		if !a.Has(AnnotationLocations) {
			item.Locations = nil
		}
	}
	if cc, ok := c.(ContainerContent); ok {
		container := cc.ContainerBase()
		if !a.Has(AnnotationSubItems) {
			container.ItemRefs = nil
		}
		if !a.Has(AnnotationSubItemSummaries) {
			container.ItemSummaries = nil
		}
		if !a.Has(AnnotationUpcoming) {
			container.UpcomingContent = nil
		}
		if !a.Has(AnnotationAvailable) {
			container.AvailableContent = nil
		}
	}
}
