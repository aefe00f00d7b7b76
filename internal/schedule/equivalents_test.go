package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"media_core/internal/domain"
	"media_core/internal/schedule"
)

func item(id domain.ID, publisher domain.Publisher) *domain.Item {
	return &domain.Item{Described: domain.Described{ID: id, Publisher: publisher}}
}

func TestEquivalentsMergerSelect(t *testing.T) {
	bbc := item(1, "bbc.co.uk")
	pa := item(2, "pressassociation.com")
	pa2 := item(3, "pressassociation.com")
	yv := item(4, "youview.com")

	app := domain.Application{
		PrecedenceEnabled: true,
		EnabledSources:    []domain.Publisher{"pressassociation.com", "bbc.co.uk"},
	}

	tests := []struct {
		name       string
		app        domain.Application
		original   domain.ItemContent
		candidates []domain.ItemContent
		want       domain.ID
	}{
		{"highest precedence wins", app, bbc, []domain.ItemContent{bbc, pa}, 2},
		{"lowest id breaks ties", app, bbc, []domain.ItemContent{pa2, pa, bbc}, 2},
		{"disabled sources ignored", app, yv, []domain.ItemContent{yv, bbc}, 1},
		{"no enabled candidate keeps original", app, yv, []domain.ItemContent{yv}, 4},
		{"no candidates keeps original", app, bbc, nil, 1},
		{"precedence off keeps original", domain.Application{EnabledSources: app.EnabledSources}, bbc, []domain.ItemContent{pa}, 1},
	}

	var merger schedule.EquivalentsMerger
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := merger.Select(tt.original, tt.candidates, tt.app)
			assert.Equal(t, tt.want, got.Base().ID)
		})
	}
}
