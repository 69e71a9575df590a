package ranking

import (
	"testing"

	"github.com/islandhop/placesearch/internal/catalog"
	"github.com/islandhop/placesearch/internal/intent"
)

func TestCategoryScorer_Score(t *testing.T) {
	config := DefaultConfig()
	scorer := NewCategoryScorer(config)

	tests := []struct {
		name        string
		categories  []catalog.Category
		entryCat    catalog.Category
		related     bool
		hasSemantic bool
		want        float64
	}{
		{
			name:        "exact match hybrid",
			categories:  []catalog.Category{catalog.CategoryBeach},
			entryCat:    catalog.CategoryBeach,
			hasSemantic: true,
			want:        config.CategoryMatchBonus,
		},
		{
			name:        "related match hybrid",
			categories:  []catalog.Category{catalog.CategoryBeach},
			entryCat:    catalog.CategoryWatersport,
			related:     true,
			hasSemantic: true,
			want:        config.RelatedCategoryBonus,
		},
		{
			name:        "off category hybrid",
			categories:  []catalog.Category{catalog.CategoryBeach},
			entryCat:    catalog.CategoryRestaurant,
			hasSemantic: true,
			want:        0,
		},
		{
			name:        "exact match fallback",
			categories:  []catalog.Category{catalog.CategoryBeach},
			entryCat:    catalog.CategoryBeach,
			hasSemantic: false,
			want:        config.FallbackCategoryBonus,
		},
		{
			name:        "related match fallback",
			categories:  []catalog.Category{catalog.CategoryBeach},
			entryCat:    catalog.CategoryDiving,
			related:     true,
			hasSemantic: false,
			want:        config.FallbackRelatedBonus,
		},
		{
			name:        "second category matches",
			categories:  []catalog.Category{catalog.CategoryRestaurant, catalog.CategoryBar},
			entryCat:    catalog.CategoryBar,
			hasSemantic: true,
			want:        config.CategoryMatchBonus,
		},
		{
			name:        "no categories detected",
			categories:  nil,
			entryCat:    catalog.CategoryBeach,
			hasSemantic: true,
			want:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := &ScoringContext{
				Intent:          &intent.Intent{Categories: tt.categories},
				Entry:           &catalog.Entry{ID: "p1", Category: tt.entryCat},
				HasSemantic:     tt.hasSemantic,
				RelatedCategory: tt.related,
			}

			got := scorer.Score(ctx)

			if got != tt.want {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCategoryScorer_NilInputs(t *testing.T) {
	config := DefaultConfig()
	scorer := NewCategoryScorer(config)

	if got := scorer.Score(&ScoringContext{Entry: &catalog.Entry{Category: catalog.CategoryBeach}}); got != 0 {
		t.Errorf("Expected 0 for nil intent, got %v", got)
	}
	if got := scorer.Score(&ScoringContext{Intent: &intent.Intent{Categories: []catalog.Category{catalog.CategoryBeach}}}); got != 0 {
		t.Errorf("Expected 0 for nil entry, got %v", got)
	}
}

func TestCategoryScorer_Name(t *testing.T) {
	scorer := NewCategoryScorer(DefaultConfig())

	if scorer.Name() != "category" {
		t.Errorf("Name() = %v, want 'category'", scorer.Name())
	}
}
