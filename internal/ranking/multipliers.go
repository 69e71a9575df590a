package ranking

// CategoryAffinityMultiplier attenuates entries whose category is neither
// requested nor related when the query did detect categories. Off-category
// results are pushed down hard rather than nudged.
type CategoryAffinityMultiplier struct {
	config *Config
}

// NewCategoryAffinityMultiplier creates a new CategoryAffinityMultiplier.
func NewCategoryAffinityMultiplier(config *Config) *CategoryAffinityMultiplier {
	return &CategoryAffinityMultiplier{config: config}
}

// Name returns the multiplier name.
func (m *CategoryAffinityMultiplier) Name() string {
	return "category_affinity"
}

// Multiply attenuates the score for off-category entries.
func (m *CategoryAffinityMultiplier) Multiply(ctx *ScoringContext, score float64) float64 {
	if score == 0 || ctx.Intent == nil || ctx.Entry == nil {
		return score
	}
	if len(ctx.Intent.Categories) == 0 {
		return score
	}
	if ctx.Intent.HasCategory(ctx.Entry.Category) || ctx.RelatedCategory {
		return score
	}
	return score * m.config.OffCategoryAttenuation
}

// PromotionMultiplier applies small boosts for featured and premium
// listings. The factors stay close to 1 so promotion breaks near-ties
// without outranking relevance.
type PromotionMultiplier struct {
	config *Config
}

// NewPromotionMultiplier creates a new PromotionMultiplier.
func NewPromotionMultiplier(config *Config) *PromotionMultiplier {
	return &PromotionMultiplier{config: config}
}

// Name returns the multiplier name.
func (m *PromotionMultiplier) Name() string {
	return "promotion"
}

// Multiply applies the promotion boosts.
func (m *PromotionMultiplier) Multiply(ctx *ScoringContext, score float64) float64 {
	if score == 0 || ctx.Entry == nil {
		return score
	}
	if ctx.Entry.IsFeatured {
		score *= m.config.FeaturedMultiplier
	}
	if ctx.Entry.IsPremium {
		score *= m.config.PremiumMultiplier
	}
	return score
}

// DefaultMultipliers returns the standard multiplier chain. Attenuation
// runs before promotion.
func DefaultMultipliers(config *Config) []Multiplier {
	return []Multiplier{
		NewCategoryAffinityMultiplier(config),
		NewPromotionMultiplier(config),
	}
}
