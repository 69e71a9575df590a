package ranking

import (
	"testing"

	"github.com/islandhop/placesearch/internal/catalog"
	"github.com/islandhop/placesearch/internal/intent"
)

func TestFeatureScorer_Score(t *testing.T) {
	config := DefaultConfig()
	scorer := NewFeatureScorer(config)

	entry := &catalog.Entry{
		ID:               "p1",
		Name:             "Palm Heights",
		Tags:             []string{"beachfront", "pool"},
		Highlights:       []string{"live music on weekends"},
		Description:      "Boutique hotel with a pet friendly policy.",
		ShortDescription: "Beachfront boutique hotel",
	}

	tests := []struct {
		name        string
		features    []string
		hasSemantic bool
		want        float64
	}{
		{
			name:        "tag feature",
			features:    []string{"beachfront"},
			hasSemantic: true,
			want:        config.FeatureMatchBonus,
		},
		{
			name:        "highlight feature",
			features:    []string{"live music"},
			hasSemantic: true,
			want:        config.FeatureMatchBonus,
		},
		{
			name:        "description feature",
			features:    []string{"pet friendly"},
			hasSemantic: true,
			want:        config.FeatureMatchBonus,
		},
		{
			name:        "missing feature",
			features:    []string{"kids club"},
			hasSemantic: true,
			want:        0,
		},
		{
			name:        "cap applies",
			features:    []string{"beachfront", "pool", "live music"},
			hasSemantic: true,
			want:        config.FeatureBonusCap,
		},
		{
			name:        "fallback weight",
			features:    []string{"pool"},
			hasSemantic: false,
			want:        config.FallbackFeatureBonus,
		},
		{
			name:        "cap applies fallback",
			features:    []string{"beachfront", "pool", "live music"},
			hasSemantic: false,
			want:        config.FallbackFeatureCap,
		},
		{
			name:        "no features requested",
			features:    nil,
			hasSemantic: true,
			want:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := &ScoringContext{
				Intent:      &intent.Intent{MustHaveFeatures: tt.features},
				Entry:       entry,
				HasSemantic: tt.hasSemantic,
			}

			got := scorer.Score(ctx)

			if got != tt.want {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFeatureScorer_Name(t *testing.T) {
	scorer := NewFeatureScorer(DefaultConfig())

	if scorer.Name() != "feature" {
		t.Errorf("Name() = %v, want 'feature'", scorer.Name())
	}
}
