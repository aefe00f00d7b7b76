package schedule

import (
	"media_core/internal/domain"
)

// EquivalentsMerger picks the item an application prefers out of a set of
// equivalents.
type EquivalentsMerger struct{}

// Select returns the candidate from the highest ranked enabled source, the
// lowest id breaking ties. It returns original when precedence is off or no
// candidate comes from an enabled source.
func (EquivalentsMerger) Select(original domain.ItemContent, candidates []domain.ItemContent, app domain.Application) domain.ItemContent {
	if !app.PrecedenceEnabled {
		return original
	}
	var (
		best     domain.ItemContent
		bestRank int
	)
	for _, c := range candidates {
		rank := app.Rank(c.Base().Publisher)
		if rank < 0 {
			continue
		}
		if best == nil || rank < bestRank || (rank == bestRank && c.Base().ID < best.Base().ID) {
			best, bestRank = c, rank
		}
	}
	if best == nil {
		return original
	}
	return best
}
