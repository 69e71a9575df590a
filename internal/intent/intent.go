// Package intent turns free-text queries into structured search intent using
// static, data-driven trigger tables. Analysis is pure and deterministic; it
// never calls out and never fails. The worst case is an empty intent.
package intent

import "github.com/islandhop/placesearch/internal/catalog"

// PriceTier is the requested price band. Values align with the catalog's
// ordinal price tiers so the two can be compared directly.
type PriceTier int

const (
	// PriceTierUnset means the query expressed no price preference.
	PriceTierUnset       PriceTier = 0
	PriceTierBudget      PriceTier = 1
	PriceTierMid         PriceTier = 2
	PriceTierLuxury      PriceTier = 3
	PriceTierUltraLuxury PriceTier = 4
)

// String returns a human-readable tier name.
func (p PriceTier) String() string {
	switch p {
	case PriceTierBudget:
		return "budget"
	case PriceTierMid:
		return "mid"
	case PriceTierLuxury:
		return "luxury"
	case PriceTierUltraLuxury:
		return "ultra_luxury"
	default:
		return "unset"
	}
}

// LocationAnchor is a resolved spatial constraint: a center point and the
// radius inside which the location bonus is fully granted.
type LocationAnchor struct {
	Name     string  `json:"name" yaml:"name"`
	Lat      float64 `json:"lat" yaml:"lat"`
	Lng      float64 `json:"lng" yaml:"lng"`
	RadiusKm float64 `json:"radius_km" yaml:"radius_km"`
}

// Intent is the structured reading of one query. It is built fresh per query
// and never cached across queries.
type Intent struct {
	// Categories the query matched, in rule-table order. Empty means the
	// caller must not hard-constrain on category.
	Categories []catalog.Category `json:"categories,omitempty"`
	// Anchor is the resolved spatial constraint, nil when the query named no
	// known location.
	Anchor *LocationAnchor `json:"anchor,omitempty"`
	// Price is the requested tier; PriceTierUnset when none matched.
	Price PriceTier `json:"price,omitempty"`
	// MustHaveFeatures are independent feature requests (pool, beachfront, ...).
	MustHaveFeatures []string `json:"must_have_features,omitempty"`
	// Keywords are the query tokens used for term-overlap scoring.
	Keywords []string `json:"keywords,omitempty"`
	// ActivityType is the first matched activity, empty when none matched.
	ActivityType string `json:"activity_type,omitempty"`
}

// HasCategory reports whether c is among the matched categories.
func (in *Intent) HasCategory(c catalog.Category) bool {
	for _, got := range in.Categories {
		if got == c {
			return true
		}
	}
	return false
}

// AddCategory appends c if not already present. Used to merge caller hints.
func (in *Intent) AddCategory(c catalog.Category) {
	if c == "" || in.HasCategory(c) {
		return
	}
	in.Categories = append(in.Categories, c)
}

// IsEmpty reports whether analysis produced no structured signal at all.
// Downstream treats an empty intent as "no structured bias".
func (in *Intent) IsEmpty() bool {
	return len(in.Categories) == 0 &&
		in.Anchor == nil &&
		in.Price == PriceTierUnset &&
		len(in.MustHaveFeatures) == 0 &&
		len(in.Keywords) == 0 &&
		in.ActivityType == ""
}
