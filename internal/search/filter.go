package search

import (
	"sort"

	"github.com/islandhop/placesearch/internal/catalog"
	"github.com/islandhop/placesearch/internal/geo"
	"github.com/islandhop/placesearch/internal/intent"
	"github.com/islandhop/placesearch/internal/ranking"
)

// Thresholds are the resolved score floors for one call.
type Thresholds struct {
	MinScore         float64
	MinSemanticScore float64
	// VectorUsed gates the semantic floor; keyword-only results carry no
	// meaningful similarity to threshold.
	VectorUsed bool
}

// Filter drops candidates that miss a threshold or violate a hard
// constraint. Hard constraints cannot be bought back by high scores.
func Filter(in *intent.Intent, places []*ranking.ScoredPlace, th Thresholds, related ranking.RelatedFunc) []*ranking.ScoredPlace {
	out := make([]*ranking.ScoredPlace, 0, len(places))
	for _, p := range places {
		if p == nil || p.Entry == nil {
			continue
		}
		if p.TotalScore < th.MinScore {
			continue
		}
		if th.VectorUsed && p.SemanticScore < th.MinSemanticScore {
			continue
		}
		if !categoryAdmits(in, p.Entry, related) {
			continue
		}
		if !anchorAdmits(in, p.Entry) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// categoryAdmits applies the category hard constraint: once the query
// matched categories, only exact or related entries survive.
func categoryAdmits(in *intent.Intent, entry *catalog.Entry, related ranking.RelatedFunc) bool {
	if in == nil || len(in.Categories) == 0 {
		return true
	}
	if in.HasCategory(entry.Category) {
		return true
	}
	return related != nil && related(entry.Category, in.Categories)
}

// anchorAdmits applies the location hard constraint: with an anchor set,
// entries must lie within twice its radius. Entries without coordinates
// cannot satisfy a spatial constraint.
func anchorAdmits(in *intent.Intent, entry *catalog.Entry) bool {
	if in == nil || in.Anchor == nil || in.Anchor.RadiusKm <= 0 {
		return true
	}
	if !entry.HasCoordinates() {
		return false
	}
	dist := geo.HaversineKm(in.Anchor.Lat, in.Anchor.Lng, entry.Location.Lat, entry.Location.Lng)
	return dist <= 2*in.Anchor.RadiusKm
}

// Rank orders places by TotalScore descending with ties broken by id
// ascending, truncates to limit, and assigns 1-based ranks.
func Rank(places []*ranking.ScoredPlace, limit int) []*ranking.ScoredPlace {
	sort.Slice(places, func(i, j int) bool {
		if places[i].TotalScore != places[j].TotalScore {
			return places[i].TotalScore > places[j].TotalScore
		}
		return places[i].Entry.ID < places[j].Entry.ID
	})
	if limit > 0 && len(places) > limit {
		places = places[:limit]
	}
	for i, p := range places {
		p.Rank = i + 1
	}
	return places
}
