package intent

import (
	"strings"
	"unicode"

	"github.com/islandhop/placesearch/internal/catalog"
)

// Analyzer parses queries against its rule tables. One analyzer is built per
// engine and shared by all queries; it holds only immutable derived state.
type Analyzer struct {
	rules        *Rules
	stopWords    map[string]bool
	related      map[catalog.Category]map[catalog.Category]bool
	restricted   map[catalog.Category]bool
	professional map[catalog.Category]bool
}

// NewAnalyzer creates an analyzer for the given rules. A nil rules argument
// uses the built-in defaults.
func NewAnalyzer(rules *Rules) *Analyzer {
	if rules == nil {
		rules = DefaultRules()
	}
	a := &Analyzer{
		rules:        rules,
		stopWords:    make(map[string]bool, len(rules.StopWords)),
		related:      make(map[catalog.Category]map[catalog.Category]bool, len(rules.Categories)),
		restricted:   make(map[catalog.Category]bool),
		professional: make(map[catalog.Category]bool),
	}
	for _, w := range rules.StopWords {
		a.stopWords[strings.ToLower(w)] = true
	}
	for _, rule := range rules.Categories {
		if len(rule.Related) > 0 {
			rel := make(map[catalog.Category]bool, len(rule.Related))
			for _, r := range rule.Related {
				rel[r] = true
			}
			a.related[rule.Category] = rel
		}
		if rule.Restricted {
			a.restricted[rule.Category] = true
		}
		if rule.Professional {
			a.professional[rule.Category] = true
		}
	}
	return a
}

// Analyze parses a query into an Intent. The query is lower-cased and trimmed
// first; every table is consulted by substring match against the normalized
// text.
func (a *Analyzer) Analyze(query string) *Intent {
	q := Normalize(query)
	in := &Intent{}
	if q == "" {
		return in
	}

	for _, rule := range a.rules.Categories {
		if matchAny(q, rule.Triggers) {
			in.Categories = append(in.Categories, rule.Category)
		}
	}

	in.Anchor = a.matchAnchor(q)

	for _, rule := range a.rules.PriceTiers {
		if matchAny(q, rule.Triggers) {
			in.Price = rule.Tier
			break
		}
	}

	for _, rule := range a.rules.Features {
		if matchAny(q, rule.Triggers) {
			in.MustHaveFeatures = append(in.MustHaveFeatures, rule.Feature)
		}
	}

	for _, rule := range a.rules.Activities {
		if matchAny(q, rule.Triggers) {
			in.ActivityType = rule.Activity
			break
		}
	}

	in.Keywords = a.extractKeywords(q)
	return in
}

// matchAnchor resolves the spatial anchor. The longest matching alias wins so
// that "west bay road" resolves to West Bay rather than a shorter overlap, and
// "near me" falls back to the default anchor.
func (a *Analyzer) matchAnchor(q string) *LocationAnchor {
	var best *LocationAnchor
	bestLen := 0
	for _, g := range a.rules.Gazetteer {
		for _, alias := range g.Aliases {
			if len(alias) > bestLen && strings.Contains(q, alias) {
				best = &LocationAnchor{Name: g.Name, Lat: g.Lat, Lng: g.Lng, RadiusKm: g.RadiusKm}
				bestLen = len(alias)
			}
		}
	}
	if best != nil {
		return best
	}
	if strings.Contains(q, "near me") || strings.Contains(q, "close by") || strings.Contains(q, "nearby") {
		anchor := a.rules.DefaultAnchor
		return &anchor
	}
	return nil
}

// extractKeywords returns the lower-cased tokens longer than two characters
// that are not stop words, deduplicated in first-seen order.
func (a *Analyzer) extractKeywords(q string) []string {
	tokens := strings.FieldsFunc(q, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	seen := make(map[string]bool, len(tokens))
	keywords := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) <= 2 || a.stopWords[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		keywords = append(keywords, tok)
	}
	return keywords
}

// Related reports whether entry's category is related to any intent category.
func (a *Analyzer) Related(entryCat catalog.Category, intentCats []catalog.Category) bool {
	for _, c := range intentCats {
		if rel, ok := a.related[c]; ok && rel[entryCat] {
			return true
		}
	}
	return false
}

// Restricted reports whether c is a restricted category (excluded from results
// unless the query explicitly triggered it).
func (a *Analyzer) Restricted(c catalog.Category) bool {
	return a.restricted[c]
}

// Professional reports whether c belongs to the professional-services group,
// which is granted a larger result window.
func (a *Analyzer) Professional(c catalog.Category) bool {
	return a.professional[c]
}

// ProfessionalQuery reports whether the intent targets professional services.
func (a *Analyzer) ProfessionalQuery(in *Intent) bool {
	for _, c := range in.Categories {
		if a.professional[c] {
			return true
		}
	}
	return false
}

// Normalize lower-cases and trims query text. The same normalization is
// applied before the text is sent to the embedding provider so that cached
// and analyzed forms agree.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// matchAny reports whether any trigger occurs in the normalized query.
func matchAny(q string, triggers []string) bool {
	for _, t := range triggers {
		if strings.Contains(q, t) {
			return true
		}
	}
	return false
}
