package ranking

// QualityScorer rewards highly rated entries. Rating thresholds are
// staged so a 4.9-star place does not dwarf a 4.0-star one, and the
// review count discounts ratings with little evidence behind them.
type QualityScorer struct {
	config *Config
}

// NewQualityScorer creates a new QualityScorer with the given config.
func NewQualityScorer(config *Config) *QualityScorer {
	return &QualityScorer{config: config}
}

// Name returns the scorer name.
func (s *QualityScorer) Name() string {
	return "quality"
}

// Score returns the quality bonus.
func (s *QualityScorer) Score(ctx *ScoringContext) float64 {
	if ctx.Entry == nil {
		return 0
	}

	ratingBonus := s.config.QualityRatingBonus
	scoreWeight := s.config.QualityScoreWeight
	if !ctx.HasSemantic {
		ratingBonus = s.config.FallbackQualityBonus
		scoreWeight = s.config.FallbackQualityScoreWt
	}

	entry := ctx.Entry
	total := ratingBonus * ratingStage(entry.Rating.Overall) * reviewEvidence(entry.Rating.ReviewCount)
	if entry.QualityScore > 0 {
		total += scoreWeight * entry.QualityScore
	}
	return total
}

// ratingStage maps an overall rating to a saturating fraction of the full
// rating bonus.
func ratingStage(overall float64) float64 {
	switch {
	case overall >= 4.8:
		return 1.0
	case overall >= 4.5:
		return 0.75
	case overall >= 4.0:
		return 0.5
	case overall >= 3.5:
		return 0.25
	default:
		return 0
	}
}

// reviewEvidence discounts ratings backed by few reviews.
func reviewEvidence(count int) float64 {
	switch {
	case count >= 50:
		return 1.0
	case count >= 10:
		return 0.85
	case count >= 1:
		return 0.7
	default:
		return 0.5
	}
}
