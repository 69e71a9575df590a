package ranking

// Config holds all scoring weights. The hybrid block applies when a
// semantic score is available; the fallback block replaces it when the
// engine runs keyword-only. Weights are additive bonuses except the
// attenuation and promotion multipliers.
type Config struct {
	// SemanticWeight scales the [0,1] semantic score. It is sized so the
	// semantic share of the maximum attainable score stays dominant.
	SemanticWeight float64 `yaml:"semantic_weight"` // default: 70

	// Hybrid structured bonuses
	CategoryMatchBonus    float64 `yaml:"category_match_bonus"`    // default: 12
	RelatedCategoryBonus  float64 `yaml:"related_category_bonus"`  // default: 6
	LocationBonus         float64 `yaml:"location_bonus"`          // default: 6
	PriceMatchBonus       float64 `yaml:"price_match_bonus"`       // default: 3
	PriceAdjacentBonus    float64 `yaml:"price_adjacent_bonus"`    // default: 1.5
	NameMatchBonus        float64 `yaml:"name_match_bonus"`        // default: 2
	TagMatchBonus         float64 `yaml:"tag_match_bonus"`         // default: 1
	DescriptionMatchBonus float64 `yaml:"description_match_bonus"` // default: 0.5
	KeywordBonusCap       float64 `yaml:"keyword_bonus_cap"`       // default: 5
	FeatureMatchBonus     float64 `yaml:"feature_match_bonus"`     // default: 1.5
	FeatureBonusCap       float64 `yaml:"feature_bonus_cap"`       // default: 3
	QualityRatingBonus    float64 `yaml:"quality_rating_bonus"`    // default: 4
	QualityScoreWeight    float64 `yaml:"quality_score_weight"`    // default: 2

	// Fallback structured bonuses (keyword-only mode)
	FallbackCategoryBonus    float64 `yaml:"fallback_category_bonus"`     // default: 30
	FallbackRelatedBonus     float64 `yaml:"fallback_related_bonus"`      // default: 15
	FallbackLocationBonus    float64 `yaml:"fallback_location_bonus"`     // default: 15
	FallbackPriceBonus       float64 `yaml:"fallback_price_bonus"`        // default: 8
	FallbackPriceAdjacent    float64 `yaml:"fallback_price_adjacent"`     // default: 4
	FallbackNameBonus        float64 `yaml:"fallback_name_bonus"`         // default: 10
	FallbackTagBonus         float64 `yaml:"fallback_tag_bonus"`          // default: 5
	FallbackDescriptionBonus float64 `yaml:"fallback_description_bonus"`  // default: 2.5
	FallbackKeywordCap       float64 `yaml:"fallback_keyword_cap"`        // default: 20
	FallbackFeatureBonus     float64 `yaml:"fallback_feature_bonus"`      // default: 5
	FallbackFeatureCap       float64 `yaml:"fallback_feature_cap"`        // default: 10
	FallbackQualityBonus     float64 `yaml:"fallback_quality_bonus"`      // default: 8
	FallbackQualityScoreWt   float64 `yaml:"fallback_quality_score_wt"`   // default: 4

	// Multipliers
	OffCategoryAttenuation float64 `yaml:"off_category_attenuation"` // default: 0.35
	FeaturedMultiplier     float64 `yaml:"featured_multiplier"`      // default: 1.03
	PremiumMultiplier      float64 `yaml:"premium_multiplier"`       // default: 1.05
}

// DefaultConfig returns the default scoring configuration.
func DefaultConfig() *Config {
	return &Config{
		SemanticWeight: 70,

		CategoryMatchBonus:    12,
		RelatedCategoryBonus:  6,
		LocationBonus:         6,
		PriceMatchBonus:       3,
		PriceAdjacentBonus:    1.5,
		NameMatchBonus:        2,
		TagMatchBonus:         1,
		DescriptionMatchBonus: 0.5,
		KeywordBonusCap:       5,
		FeatureMatchBonus:     1.5,
		FeatureBonusCap:       3,
		QualityRatingBonus:    4,
		QualityScoreWeight:    2,

		FallbackCategoryBonus:    30,
		FallbackRelatedBonus:     15,
		FallbackLocationBonus:    15,
		FallbackPriceBonus:       8,
		FallbackPriceAdjacent:    4,
		FallbackNameBonus:        10,
		FallbackTagBonus:         5,
		FallbackDescriptionBonus: 2.5,
		FallbackKeywordCap:       20,
		FallbackFeatureBonus:     5,
		FallbackFeatureCap:       10,
		FallbackQualityBonus:     8,
		FallbackQualityScoreWt:   4,

		OffCategoryAttenuation: 0.35,
		FeaturedMultiplier:     1.03,
		PremiumMultiplier:      1.05,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *Config) ApplyDefaults() {
	defaults := DefaultConfig()

	if c.SemanticWeight == 0 {
		c.SemanticWeight = defaults.SemanticWeight
	}

	if c.CategoryMatchBonus == 0 {
		c.CategoryMatchBonus = defaults.CategoryMatchBonus
	}
	if c.RelatedCategoryBonus == 0 {
		c.RelatedCategoryBonus = defaults.RelatedCategoryBonus
	}
	if c.LocationBonus == 0 {
		c.LocationBonus = defaults.LocationBonus
	}
	if c.PriceMatchBonus == 0 {
		c.PriceMatchBonus = defaults.PriceMatchBonus
	}
	if c.PriceAdjacentBonus == 0 {
		c.PriceAdjacentBonus = defaults.PriceAdjacentBonus
	}
	if c.NameMatchBonus == 0 {
		c.NameMatchBonus = defaults.NameMatchBonus
	}
	if c.TagMatchBonus == 0 {
		c.TagMatchBonus = defaults.TagMatchBonus
	}
	if c.DescriptionMatchBonus == 0 {
		c.DescriptionMatchBonus = defaults.DescriptionMatchBonus
	}
	if c.KeywordBonusCap == 0 {
		c.KeywordBonusCap = defaults.KeywordBonusCap
	}
	if c.FeatureMatchBonus == 0 {
		c.FeatureMatchBonus = defaults.FeatureMatchBonus
	}
	if c.FeatureBonusCap == 0 {
		c.FeatureBonusCap = defaults.FeatureBonusCap
	}
	if c.QualityRatingBonus == 0 {
		c.QualityRatingBonus = defaults.QualityRatingBonus
	}
	if c.QualityScoreWeight == 0 {
		c.QualityScoreWeight = defaults.QualityScoreWeight
	}

	if c.FallbackCategoryBonus == 0 {
		c.FallbackCategoryBonus = defaults.FallbackCategoryBonus
	}
	if c.FallbackRelatedBonus == 0 {
		c.FallbackRelatedBonus = defaults.FallbackRelatedBonus
	}
	if c.FallbackLocationBonus == 0 {
		c.FallbackLocationBonus = defaults.FallbackLocationBonus
	}
	if c.FallbackPriceBonus == 0 {
		c.FallbackPriceBonus = defaults.FallbackPriceBonus
	}
	if c.FallbackPriceAdjacent == 0 {
		c.FallbackPriceAdjacent = defaults.FallbackPriceAdjacent
	}
	if c.FallbackNameBonus == 0 {
		c.FallbackNameBonus = defaults.FallbackNameBonus
	}
	if c.FallbackTagBonus == 0 {
		c.FallbackTagBonus = defaults.FallbackTagBonus
	}
	if c.FallbackDescriptionBonus == 0 {
		c.FallbackDescriptionBonus = defaults.FallbackDescriptionBonus
	}
	if c.FallbackKeywordCap == 0 {
		c.FallbackKeywordCap = defaults.FallbackKeywordCap
	}
	if c.FallbackFeatureBonus == 0 {
		c.FallbackFeatureBonus = defaults.FallbackFeatureBonus
	}
	if c.FallbackFeatureCap == 0 {
		c.FallbackFeatureCap = defaults.FallbackFeatureCap
	}
	if c.FallbackQualityBonus == 0 {
		c.FallbackQualityBonus = defaults.FallbackQualityBonus
	}
	if c.FallbackQualityScoreWt == 0 {
		c.FallbackQualityScoreWt = defaults.FallbackQualityScoreWt
	}

	if c.OffCategoryAttenuation == 0 {
		c.OffCategoryAttenuation = defaults.OffCategoryAttenuation
	}
	if c.FeaturedMultiplier == 0 {
		c.FeaturedMultiplier = defaults.FeaturedMultiplier
	}
	if c.PremiumMultiplier == 0 {
		c.PremiumMultiplier = defaults.PremiumMultiplier
	}
}
