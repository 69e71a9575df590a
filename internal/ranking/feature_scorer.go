package ranking

import "strings"

// FeatureScorer rewards entries that carry the query's must-have features
// in their tags, highlights, or descriptions. Each feature fires once and
// the total is capped.
type FeatureScorer struct {
	config *Config
}

// NewFeatureScorer creates a new FeatureScorer with the given config.
func NewFeatureScorer(config *Config) *FeatureScorer {
	return &FeatureScorer{config: config}
}

// Name returns the scorer name.
func (s *FeatureScorer) Name() string {
	return "feature"
}

// Score returns the capped feature coverage bonus.
func (s *FeatureScorer) Score(ctx *ScoringContext) float64 {
	if ctx.Intent == nil || ctx.Entry == nil || len(ctx.Intent.MustHaveFeatures) == 0 {
		return 0
	}

	bonus := s.config.FeatureMatchBonus
	cap := s.config.FeatureBonusCap
	if !ctx.HasSemantic {
		bonus = s.config.FallbackFeatureBonus
		cap = s.config.FallbackFeatureCap
	}

	entry := ctx.Entry
	haystack := strings.ToLower(strings.Join(entry.Tags, " ") + " " +
		strings.Join(entry.Highlights, " ") + " " +
		entry.Description + " " + entry.ShortDescription)

	var total float64
	for _, feature := range ctx.Intent.MustHaveFeatures {
		if strings.Contains(haystack, feature) {
			total += bonus
		}
	}
	if total > cap {
		total = cap
	}
	return total
}
