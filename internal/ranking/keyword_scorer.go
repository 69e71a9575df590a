package ranking

import "strings"

// KeywordScorer rewards substring matches of query keywords against entry
// text. A name match is the strongest evidence, then tags and highlights,
// then descriptions. Each keyword counts once at its strongest tier and
// the total is capped.
type KeywordScorer struct {
	config *Config
}

// NewKeywordScorer creates a new KeywordScorer with the given config.
func NewKeywordScorer(config *Config) *KeywordScorer {
	return &KeywordScorer{config: config}
}

// Name returns the scorer name.
func (s *KeywordScorer) Name() string {
	return "keyword"
}

// Score returns the capped keyword overlap bonus.
func (s *KeywordScorer) Score(ctx *ScoringContext) float64 {
	if ctx.Intent == nil || ctx.Entry == nil || len(ctx.Intent.Keywords) == 0 {
		return 0
	}

	nameBonus := s.config.NameMatchBonus
	tagBonus := s.config.TagMatchBonus
	descBonus := s.config.DescriptionMatchBonus
	cap := s.config.KeywordBonusCap
	if !ctx.HasSemantic {
		nameBonus = s.config.FallbackNameBonus
		tagBonus = s.config.FallbackTagBonus
		descBonus = s.config.FallbackDescriptionBonus
		cap = s.config.FallbackKeywordCap
	}

	entry := ctx.Entry
	name := strings.ToLower(entry.Name)
	tags := strings.ToLower(strings.Join(entry.Tags, " ") + " " + strings.Join(entry.Highlights, " "))
	desc := strings.ToLower(entry.Description + " " + entry.ShortDescription + " " + entry.Subcategory)

	var total float64
	for _, kw := range ctx.Intent.Keywords {
		switch {
		case strings.Contains(name, kw):
			total += nameBonus
		case strings.Contains(tags, kw):
			total += tagBonus
		case strings.Contains(desc, kw):
			total += descBonus
		}
	}
	if total > cap {
		total = cap
	}
	return total
}
