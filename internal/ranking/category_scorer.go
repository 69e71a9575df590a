package ranking

// CategoryScorer rewards entries whose category matches or is related to
// the detected query categories. Off-category entries are handled by the
// attenuation multiplier, not here.
type CategoryScorer struct {
	config *Config
}

// NewCategoryScorer creates a new CategoryScorer with the given config.
func NewCategoryScorer(config *Config) *CategoryScorer {
	return &CategoryScorer{config: config}
}

// Name returns the scorer name.
func (s *CategoryScorer) Name() string {
	return "category"
}

// Score returns the category alignment bonus.
func (s *CategoryScorer) Score(ctx *ScoringContext) float64 {
	if ctx.Intent == nil || ctx.Entry == nil || len(ctx.Intent.Categories) == 0 {
		return 0
	}

	match := s.config.CategoryMatchBonus
	related := s.config.RelatedCategoryBonus
	if !ctx.HasSemantic {
		match = s.config.FallbackCategoryBonus
		related = s.config.FallbackRelatedBonus
	}

	if ctx.Intent.HasCategory(ctx.Entry.Category) {
		return match
	}
	if ctx.RelatedCategory {
		return related
	}
	return 0
}
