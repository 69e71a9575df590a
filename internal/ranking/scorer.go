package ranking

import (
	"github.com/islandhop/placesearch/internal/catalog"
	"github.com/islandhop/placesearch/internal/intent"
)

// RelatedFunc reports whether an entry category is related to any of the
// intent categories. Normally (*intent.Analyzer).Related.
type RelatedFunc func(entryCat catalog.Category, intentCats []catalog.Category) bool

// HybridScorer combines the weighted semantic score with all structured
// scorers and multipliers into one total per entry.
type HybridScorer struct {
	config      *Config
	scorers     []Scorer
	multipliers []Multiplier
	related     RelatedFunc
}

// NewHybridScorer creates a HybridScorer with the given configuration.
// A nil config uses defaults; zero fields are filled in.
func NewHybridScorer(config *Config, related RelatedFunc) *HybridScorer {
	if config == nil {
		config = DefaultConfig()
	}
	config.ApplyDefaults()

	return &HybridScorer{
		config: config,
		scorers: []Scorer{
			NewCategoryScorer(config),
			NewLocationScorer(config),
			NewPriceScorer(config),
			NewKeywordScorer(config),
			NewFeatureScorer(config),
			NewQualityScorer(config),
		},
		multipliers: DefaultMultipliers(config),
		related:     related,
	}
}

// WithMultipliers sets custom multipliers.
func (h *HybridScorer) WithMultipliers(multipliers []Multiplier) *HybridScorer {
	h.multipliers = multipliers
	return h
}

// GetConfig returns the scoring configuration.
func (h *HybridScorer) GetConfig() *Config {
	return h.config
}

// Score computes the total score for one entry. semantic is the raw
// cosine similarity; hasSemantic is false in keyword-only mode, which
// switches every scorer to its fallback weight.
func (h *HybridScorer) Score(in *intent.Intent, entry *catalog.Entry, semantic float64, hasSemantic bool) *ScoredPlace {
	ctx := NewScoringContext(in, entry, semantic, hasSemantic, h.related)
	return h.score(ctx, nil)
}

// ScoreWithBreakdown is Score with per-component detail attached.
func (h *HybridScorer) ScoreWithBreakdown(in *intent.Intent, entry *catalog.Entry, semantic float64, hasSemantic bool) *ScoredPlace {
	ctx := NewScoringContext(in, entry, semantic, hasSemantic, h.related)
	return h.score(ctx, NewBreakdown())
}

func (h *HybridScorer) score(ctx *ScoringContext, breakdown *Breakdown) *ScoredPlace {
	var structured float64
	for _, s := range h.scorers {
		component := s.Score(ctx)
		structured += component
		if breakdown != nil {
			breakdown.Components[s.Name()] = component
		}
	}

	var base, rawSemantic float64
	if ctx.HasSemantic {
		rawSemantic = ctx.SemanticScore
		base = rawSemantic * h.config.SemanticWeight
	}

	total := base + structured
	for _, m := range h.multipliers {
		prev := total
		total = m.Multiply(ctx, total)
		if breakdown != nil {
			if prev != 0 {
				breakdown.Multipliers[m.Name()] = total / prev
			} else {
				breakdown.Multipliers[m.Name()] = 1.0
			}
		}
	}

	if breakdown != nil {
		breakdown.SemanticScore = rawSemantic
		breakdown.SemanticWeighted = base
		breakdown.TotalScore = total
	}

	return &ScoredPlace{
		Entry:           ctx.Entry,
		SemanticScore:   rawSemantic,
		StructuredScore: structured,
		TotalScore:      total,
		Breakdown:       breakdown,
	}
}
