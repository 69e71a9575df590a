package search

import "github.com/islandhop/placesearch/internal/catalog"

// Options control one search call. The zero value uses the configured
// defaults for every field.
type Options struct {
	// MaxResults caps the result list. 0 uses the configured default, which
	// is larger for professional-services queries.
	MaxResults int
	// CategoryHint adds a category to the analyzed intent, as if the query
	// had matched its triggers. Hinting a restricted category unlocks it.
	CategoryHint catalog.Category
	// MinScore overrides the configured total-score floor when non-nil.
	MinScore *float64
	// MinSemanticScore overrides the configured similarity floor when
	// non-nil. Only consulted when vector search ran.
	MinSemanticScore *float64
	// IncludeBreakdown attaches per-component scoring detail to each result.
	IncludeBreakdown bool
}
