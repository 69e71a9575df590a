// Package ranking combines semantic similarity with structured catalog
// signals into one hybrid score per place.
package ranking

import (
	"github.com/islandhop/placesearch/internal/catalog"
	"github.com/islandhop/placesearch/internal/intent"
)

// ScoringContext provides everything needed to score one catalog entry
// against one query.
type ScoringContext struct {
	// Intent is the analyzed query.
	Intent *intent.Intent
	// Entry is the place being scored.
	Entry *catalog.Entry
	// SemanticScore is the cosine similarity clamped to [0,1]. Only valid
	// when HasSemantic is true.
	SemanticScore float64
	// HasSemantic reports whether a vector similarity was available for
	// this entry. When false the fallback weight set applies.
	HasSemantic bool
	// RelatedCategory reports whether the entry's category is related to
	// one of the intent categories per the rule table.
	RelatedCategory bool
}

// NewScoringContext builds a context for one entry. relatedTo resolves the
// related-category table, normally (*intent.Analyzer).Related.
func NewScoringContext(in *intent.Intent, entry *catalog.Entry, semantic float64, hasSemantic bool, relatedTo func(catalog.Category, []catalog.Category) bool) *ScoringContext {
	ctx := &ScoringContext{
		Intent:        in,
		Entry:         entry,
		SemanticScore: clamp01(semantic),
		HasSemantic:   hasSemantic,
	}
	if relatedTo != nil && in != nil && entry != nil {
		ctx.RelatedCategory = relatedTo(entry.Category, in.Categories)
	}
	return ctx
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Scorer is the interface for all structured scoring components.
type Scorer interface {
	// Score returns the additive bonus for the entry in ctx.
	Score(ctx *ScoringContext) float64
	// Name returns the name of the scorer for breakdown and logging.
	Name() string
}

// Multiplier is the interface for score multipliers.
type Multiplier interface {
	// Multiply applies a multiplier to the combined score.
	Multiply(ctx *ScoringContext, score float64) float64
	// Name returns the name of the multiplier for breakdown and logging.
	Name() string
}

// Breakdown holds per-component scoring detail for diagnostics.
type Breakdown struct {
	// SemanticScore is the raw [0,1] similarity, 0 when unavailable.
	SemanticScore float64 `json:"semanticScore"`
	// SemanticWeighted is the semantic contribution after weighting.
	SemanticWeighted float64 `json:"semanticWeighted"`
	// Components maps scorer name to its additive contribution.
	Components map[string]float64 `json:"components"`
	// Multipliers maps multiplier name to the factor it applied.
	Multipliers map[string]float64 `json:"multipliers"`
	// TotalScore is the final combined score.
	TotalScore float64 `json:"totalScore"`
}

// NewBreakdown creates an empty Breakdown.
func NewBreakdown() *Breakdown {
	return &Breakdown{
		Components:  make(map[string]float64),
		Multipliers: make(map[string]float64),
	}
}

// ScoredPlace is one catalog entry with its computed scores.
type ScoredPlace struct {
	Entry *catalog.Entry `json:"entry"`
	// SemanticScore is the raw [0,1] similarity, 0 when unavailable.
	SemanticScore float64 `json:"semanticScore"`
	// StructuredScore is the sum of the structured bonuses.
	StructuredScore float64 `json:"structuredScore"`
	// TotalScore is the final score after weights and multipliers.
	TotalScore float64 `json:"totalScore"`
	// Rank is the 1-based position after sorting, set by the ranker.
	Rank int `json:"rank"`
	// Breakdown is only populated when requested.
	Breakdown *Breakdown `json:"breakdown,omitempty"`
}
