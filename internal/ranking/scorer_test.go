package ranking

import (
	"math"
	"testing"

	"github.com/islandhop/placesearch/internal/catalog"
	"github.com/islandhop/placesearch/internal/intent"
)

// fullMatchIntent and fullMatchEntry line up on every structured signal so
// the structured sum reaches its configured maximum.
func fullMatchIntent() *intent.Intent {
	return &intent.Intent{
		Categories: []catalog.Category{catalog.CategoryBeach},
		Anchor: &intent.LocationAnchor{
			Name: "Seven Mile Beach", Lat: 19.335, Lng: -81.38, RadiusKm: 3,
		},
		Price:            intent.PriceTierLuxury,
		MustHaveFeatures: []string{"beachfront", "pool"},
		Keywords:         []string{"beach", "luxury", "club"},
	}
}

func fullMatchEntry() *catalog.Entry {
	return &catalog.Entry{
		ID:           "p1",
		Name:         "Luxury Beach Club",
		Category:     catalog.CategoryBeach,
		Tags:         []string{"beachfront", "pool"},
		Location:     catalog.Location{Lat: 19.335, Lng: -81.38},
		PriceTier:    3,
		Rating:       catalog.Rating{Overall: 4.9, ReviewCount: 150},
		QualityScore: 1.0,
	}
}

func newTestScorer() *HybridScorer {
	analyzer := intent.NewAnalyzer(intent.DefaultRules())
	return NewHybridScorer(DefaultConfig(), analyzer.Related)
}

func TestHybridScorer_SemanticDominance(t *testing.T) {
	scorer := newTestScorer()
	in := fullMatchIntent()
	entry := fullMatchEntry()

	full := scorer.Score(in, entry, 1.0, true)
	structuredOnly := scorer.Score(in, entry, 0, true)

	if full.TotalScore <= structuredOnly.TotalScore {
		t.Fatalf("Full score %v should exceed structured-only %v", full.TotalScore, structuredOnly.TotalScore)
	}

	share := (full.TotalScore - structuredOnly.TotalScore) / full.TotalScore
	if share < 0.65 || share > 0.75 {
		t.Errorf("Semantic share = %v, want between 0.65 and 0.75", share)
	}
}

func TestHybridScorer_Score(t *testing.T) {
	scorer := newTestScorer()
	config := scorer.GetConfig()

	tests := []struct {
		name        string
		in          *intent.Intent
		entry       *catalog.Entry
		semantic    float64
		hasSemantic bool
		wantMin     float64
		wantMax     float64
	}{
		{
			name:        "full match hybrid",
			in:          fullMatchIntent(),
			entry:       fullMatchEntry(),
			semantic:    1.0,
			hasSemantic: true,
			wantMin:     104.9,
			wantMax:     105.1,
		},
		{
			name:        "full match fallback",
			in:          fullMatchIntent(),
			entry:       fullMatchEntry(),
			hasSemantic: false,
			wantMin:     94.9,
			wantMax:     95.1,
		},
		{
			name:     "semantic only",
			in:       &intent.Intent{},
			entry:    &catalog.Entry{ID: "p2", Category: catalog.CategoryRestaurant},
			semantic: 0.5,
			// No categories detected, so no attenuation either.
			hasSemantic: true,
			wantMin:     0.5 * config.SemanticWeight * 0.99,
			wantMax:     0.5 * config.SemanticWeight * 1.01,
		},
		{
			name: "off category attenuated",
			in: &intent.Intent{
				Categories: []catalog.Category{catalog.CategoryBeach},
			},
			entry:       &catalog.Entry{ID: "p3", Category: catalog.CategoryRestaurant},
			semantic:    0.8,
			hasSemantic: true,
			wantMin:     0.8 * config.SemanticWeight * config.OffCategoryAttenuation * 0.99,
			wantMax:     0.8 * config.SemanticWeight * config.OffCategoryAttenuation * 1.01,
		},
		{
			name: "related category not attenuated",
			in: &intent.Intent{
				Categories: []catalog.Category{catalog.CategoryBeach},
			},
			entry:       &catalog.Entry{ID: "p4", Category: catalog.CategoryWatersport},
			semantic:    0.8,
			hasSemantic: true,
			wantMin:     (0.8*config.SemanticWeight + config.RelatedCategoryBonus) * 0.99,
			wantMax:     (0.8*config.SemanticWeight + config.RelatedCategoryBonus) * 1.01,
		},
		{
			name:        "semantic clamped above one",
			in:          &intent.Intent{},
			entry:       &catalog.Entry{ID: "p5"},
			semantic:    1.7,
			hasSemantic: true,
			wantMin:     config.SemanticWeight * 0.99,
			wantMax:     config.SemanticWeight * 1.01,
		},
		{
			name:        "negative semantic clamped to zero",
			in:          &intent.Intent{},
			entry:       &catalog.Entry{ID: "p6"},
			semantic:    -0.4,
			hasSemantic: true,
			wantMin:     0,
			wantMax:     0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score(tt.in, tt.entry, tt.semantic, tt.hasSemantic)

			if got.TotalScore < tt.wantMin || got.TotalScore > tt.wantMax {
				t.Errorf("TotalScore = %v, want between %v and %v", got.TotalScore, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestHybridScorer_FallbackIgnoresSemantic(t *testing.T) {
	scorer := newTestScorer()
	in := fullMatchIntent()
	entry := fullMatchEntry()

	// Whatever similarity is passed, keyword-only mode must not use it.
	a := scorer.Score(in, entry, 0.9, false)
	b := scorer.Score(in, entry, 0, false)

	if a.TotalScore != b.TotalScore {
		t.Errorf("Fallback scores differ with semantic input: %v vs %v", a.TotalScore, b.TotalScore)
	}
	if a.SemanticScore != 0 {
		t.Errorf("SemanticScore = %v, want 0 in fallback mode", a.SemanticScore)
	}
}

func TestHybridScorer_PromotionStacksAfterAttenuation(t *testing.T) {
	scorer := newTestScorer()
	config := scorer.GetConfig()

	in := &intent.Intent{Categories: []catalog.Category{catalog.CategoryBeach}}
	entry := &catalog.Entry{
		ID:         "p1",
		Category:   catalog.CategoryRestaurant,
		IsFeatured: true,
		IsPremium:  true,
	}

	got := scorer.Score(in, entry, 1.0, true)

	want := config.SemanticWeight * config.OffCategoryAttenuation *
		config.FeaturedMultiplier * config.PremiumMultiplier
	if math.Abs(got.TotalScore-want) > 0.01 {
		t.Errorf("TotalScore = %v, want ~%v", got.TotalScore, want)
	}
}

func TestHybridScorer_ScoreWithBreakdown(t *testing.T) {
	scorer := newTestScorer()
	config := scorer.GetConfig()

	got := scorer.ScoreWithBreakdown(fullMatchIntent(), fullMatchEntry(), 1.0, true)

	if got.Breakdown == nil {
		t.Fatal("Expected breakdown to be populated")
	}
	bd := got.Breakdown

	for _, name := range []string{"category", "location", "price", "keyword", "feature", "quality"} {
		if _, ok := bd.Components[name]; !ok {
			t.Errorf("Missing component %q in breakdown", name)
		}
	}
	for _, name := range []string{"category_affinity", "promotion"} {
		if _, ok := bd.Multipliers[name]; !ok {
			t.Errorf("Missing multiplier %q in breakdown", name)
		}
	}

	if bd.Components["category"] != config.CategoryMatchBonus {
		t.Errorf("category component = %v, want %v", bd.Components["category"], config.CategoryMatchBonus)
	}
	if bd.SemanticScore != 1.0 {
		t.Errorf("SemanticScore = %v, want 1.0", bd.SemanticScore)
	}
	if bd.SemanticWeighted != config.SemanticWeight {
		t.Errorf("SemanticWeighted = %v, want %v", bd.SemanticWeighted, config.SemanticWeight)
	}
	if bd.Multipliers["category_affinity"] != 1.0 {
		t.Errorf("category_affinity factor = %v, want 1.0 for matching entry", bd.Multipliers["category_affinity"])
	}
	if bd.TotalScore != got.TotalScore {
		t.Errorf("Breakdown total %v != ScoredPlace total %v", bd.TotalScore, got.TotalScore)
	}
}

func TestHybridScorer_BreakdownRecordsAttenuation(t *testing.T) {
	scorer := newTestScorer()
	config := scorer.GetConfig()

	in := &intent.Intent{Categories: []catalog.Category{catalog.CategoryBeach}}
	entry := &catalog.Entry{ID: "p1", Category: catalog.CategoryRestaurant}

	got := scorer.ScoreWithBreakdown(in, entry, 0.9, true)

	factor := got.Breakdown.Multipliers["category_affinity"]
	if math.Abs(factor-config.OffCategoryAttenuation) > 0.001 {
		t.Errorf("category_affinity factor = %v, want ~%v", factor, config.OffCategoryAttenuation)
	}
}

func TestHybridScorer_NilConfig(t *testing.T) {
	scorer := NewHybridScorer(nil, nil)

	if scorer.GetConfig() == nil {
		t.Fatal("Expected defaults for nil config")
	}
	if scorer.GetConfig().SemanticWeight != DefaultConfig().SemanticWeight {
		t.Errorf("SemanticWeight = %v, want default %v", scorer.GetConfig().SemanticWeight, DefaultConfig().SemanticWeight)
	}
}

func TestHybridScorer_PartialConfigFilled(t *testing.T) {
	config := &Config{SemanticWeight: 50}
	scorer := NewHybridScorer(config, nil)

	if scorer.GetConfig().SemanticWeight != 50 {
		t.Errorf("SemanticWeight = %v, want 50", scorer.GetConfig().SemanticWeight)
	}
	if scorer.GetConfig().CategoryMatchBonus != DefaultConfig().CategoryMatchBonus {
		t.Errorf("CategoryMatchBonus = %v, want default", scorer.GetConfig().CategoryMatchBonus)
	}
}

func TestHybridScorer_WithMultipliers(t *testing.T) {
	scorer := newTestScorer().WithMultipliers(nil)

	in := &intent.Intent{Categories: []catalog.Category{catalog.CategoryBeach}}
	entry := &catalog.Entry{ID: "p1", Category: catalog.CategoryRestaurant}

	got := scorer.Score(in, entry, 1.0, true)

	want := scorer.GetConfig().SemanticWeight
	if math.Abs(got.TotalScore-want) > 0.01 {
		t.Errorf("TotalScore = %v, want %v with no multipliers", got.TotalScore, want)
	}
}
