package ranking

import "github.com/islandhop/placesearch/internal/geo"

// LocationScorer rewards entries close to the query's location anchor.
// Full bonus inside the anchor radius, linear decay out to twice the
// radius, nothing beyond. Entries without coordinates score zero.
type LocationScorer struct {
	config *Config
}

// NewLocationScorer creates a new LocationScorer with the given config.
func NewLocationScorer(config *Config) *LocationScorer {
	return &LocationScorer{config: config}
}

// Name returns the scorer name.
func (s *LocationScorer) Name() string {
	return "location"
}

// Score returns the proximity bonus.
func (s *LocationScorer) Score(ctx *ScoringContext) float64 {
	if ctx.Intent == nil || ctx.Entry == nil || ctx.Intent.Anchor == nil {
		return 0
	}
	if !ctx.Entry.HasCoordinates() {
		return 0
	}

	bonus := s.config.LocationBonus
	if !ctx.HasSemantic {
		bonus = s.config.FallbackLocationBonus
	}

	anchor := ctx.Intent.Anchor
	dist := geo.HaversineKm(anchor.Lat, anchor.Lng, ctx.Entry.Location.Lat, ctx.Entry.Location.Lng)
	radius := anchor.RadiusKm
	if radius <= 0 {
		return 0
	}

	switch {
	case dist <= radius:
		return bonus
	case dist <= 2*radius:
		return bonus * (1 - (dist-radius)/radius)
	default:
		return 0
	}
}
