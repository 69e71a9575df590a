package ranking

import "github.com/islandhop/placesearch/internal/intent"

// PriceScorer compares the entry's price tier to the requested tier.
// Exact match gets the full bonus, an adjacent tier a partial one,
// anything further nothing.
type PriceScorer struct {
	config *Config
}

// NewPriceScorer creates a new PriceScorer with the given config.
func NewPriceScorer(config *Config) *PriceScorer {
	return &PriceScorer{config: config}
}

// Name returns the scorer name.
func (s *PriceScorer) Name() string {
	return "price"
}

// Score returns the price alignment bonus.
func (s *PriceScorer) Score(ctx *ScoringContext) float64 {
	if ctx.Intent == nil || ctx.Entry == nil || ctx.Intent.Price == intent.PriceTierUnset {
		return 0
	}
	if ctx.Entry.PriceTier <= 0 {
		return 0
	}

	match := s.config.PriceMatchBonus
	adjacent := s.config.PriceAdjacentBonus
	if !ctx.HasSemantic {
		match = s.config.FallbackPriceBonus
		adjacent = s.config.FallbackPriceAdjacent
	}

	diff := ctx.Entry.PriceTier - int(ctx.Intent.Price)
	if diff < 0 {
		diff = -diff
	}
	switch diff {
	case 0:
		return match
	case 1:
		return adjacent
	default:
		return 0
	}
}
