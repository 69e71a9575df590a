package search

import (
	"testing"

	"github.com/islandhop/placesearch/internal/catalog"
	"github.com/islandhop/placesearch/internal/intent"
	"github.com/islandhop/placesearch/internal/ranking"
)

func scoredPlace(id string, cat catalog.Category, total, semantic float64) *ranking.ScoredPlace {
	return &ranking.ScoredPlace{
		Entry:         &catalog.Entry{ID: id, Name: id, Category: cat},
		SemanticScore: semantic,
		TotalScore:    total,
	}
}

func filteredIDs(places []*ranking.ScoredPlace) []string {
	ids := make([]string, len(places))
	for i, p := range places {
		ids[i] = p.Entry.ID
	}
	return ids
}

func TestFilter_Thresholds(t *testing.T) {
	places := []*ranking.ScoredPlace{
		scoredPlace("a", catalog.CategoryBeach, 50, 0.9),
		scoredPlace("b", catalog.CategoryBeach, 10, 0.9),
		scoredPlace("c", catalog.CategoryBeach, 9.99, 0.9),
		scoredPlace("d", catalog.CategoryBeach, 50, 0.2),
	}

	tests := []struct {
		name string
		th   Thresholds
		want []string
	}{
		{
			name: "score floor is inclusive",
			th:   Thresholds{MinScore: 10},
			want: []string{"a", "b", "d"},
		},
		{
			name: "semantic floor applies in vector mode",
			th:   Thresholds{MinScore: 10, MinSemanticScore: 0.35, VectorUsed: true},
			want: []string{"a", "b"},
		},
		{
			name: "semantic floor ignored in keyword mode",
			th:   Thresholds{MinScore: 10, MinSemanticScore: 0.35, VectorUsed: false},
			want: []string{"a", "b", "d"},
		},
		{
			name: "zero thresholds keep everything",
			th:   Thresholds{},
			want: []string{"a", "b", "c", "d"},
		},
	}

	in := &intent.Intent{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filteredIDs(Filter(in, places, tt.th, nil))
			if len(got) != len(tt.want) {
				t.Fatalf("Filter() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Filter() = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestFilter_NilInputs(t *testing.T) {
	places := []*ranking.ScoredPlace{
		nil,
		{TotalScore: 100},
		scoredPlace("a", catalog.CategoryBeach, 50, 0.9),
	}

	got := Filter(nil, places, Thresholds{}, nil)
	if len(got) != 1 || got[0].Entry.ID != "a" {
		t.Errorf("Filter() = %v, want only %q", filteredIDs(got), "a")
	}
}

func TestFilter_CategoryConstraint(t *testing.T) {
	analyzer := intent.NewAnalyzer(intent.DefaultRules())
	places := []*ranking.ScoredPlace{
		scoredPlace("beach", catalog.CategoryBeach, 50, 0.9),
		scoredPlace("dive", catalog.CategoryDiving, 50, 0.9),
		scoredPlace("bank", catalog.CategoryFinancial, 50, 0.9),
	}

	tests := []struct {
		name       string
		categories []catalog.Category
		related    ranking.RelatedFunc
		want       []string
	}{
		{
			name: "no categories admits all",
			want: []string{"beach", "dive", "bank"},
		},
		{
			name:       "exact and related admitted, unrelated dropped",
			categories: []catalog.Category{catalog.CategoryBeach},
			related:    analyzer.Related,
			want:       []string{"beach", "dive"},
		},
		{
			name:       "nil related admits exact matches only",
			categories: []catalog.Category{catalog.CategoryBeach},
			want:       []string{"beach"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &intent.Intent{Categories: tt.categories}
			got := filteredIDs(Filter(in, places, Thresholds{}, tt.related))
			if len(got) != len(tt.want) {
				t.Fatalf("Filter() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Filter() = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestFilter_AnchorConstraint(t *testing.T) {
	near := scoredPlace("near", catalog.CategoryBeach, 50, 0.9)
	near.Entry.Location = catalog.Location{Lat: 19.3353, Lng: -81.3851}
	mid := scoredPlace("mid", catalog.CategoryBeach, 50, 0.9)
	mid.Entry.Location = catalog.Location{Lat: 19.2866, Lng: -81.3744}
	far := scoredPlace("far", catalog.CategoryBeach, 50, 0.9)
	far.Entry.Location = catalog.Location{Lat: 19.3690, Lng: -81.2750}
	noCoords := scoredPlace("nowhere", catalog.CategoryBeach, 50, 0.9)

	places := []*ranking.ScoredPlace{near, mid, far, noCoords}
	anchor := &intent.LocationAnchor{Name: "Seven Mile Beach", Lat: 19.3353, Lng: -81.3851, RadiusKm: 5}

	got := filteredIDs(Filter(&intent.Intent{Anchor: anchor}, places, Thresholds{}, nil))
	if len(got) != 2 || got[0] != "near" || got[1] != "mid" {
		t.Errorf("Filter() = %v, want [near mid]", got)
	}

	// Without a positive radius the anchor does not constrain.
	loose := &intent.LocationAnchor{Lat: 19.3353, Lng: -81.3851}
	got = filteredIDs(Filter(&intent.Intent{Anchor: loose}, places, Thresholds{}, nil))
	if len(got) != 4 {
		t.Errorf("Filter() with zero radius = %v, want all candidates", got)
	}
}

func TestRank(t *testing.T) {
	places := []*ranking.ScoredPlace{
		scoredPlace("c", catalog.CategoryBeach, 40, 0),
		scoredPlace("a", catalog.CategoryBeach, 90, 0),
		scoredPlace("b", catalog.CategoryBeach, 60, 0),
	}

	ranked := Rank(places, 0)
	want := []string{"a", "b", "c"}
	for i, id := range want {
		if ranked[i].Entry.ID != id {
			t.Fatalf("Rank() order = %v, want %v", filteredIDs(ranked), want)
		}
		if ranked[i].Rank != i+1 {
			t.Errorf("Rank for %s = %d, want %d", id, ranked[i].Rank, i+1)
		}
	}
}

func TestRank_TieBreakByID(t *testing.T) {
	places := []*ranking.ScoredPlace{
		scoredPlace("zeta", catalog.CategoryBeach, 50, 0),
		scoredPlace("alpha", catalog.CategoryBeach, 50, 0),
		scoredPlace("mike", catalog.CategoryBeach, 50, 0),
	}

	ranked := Rank(places, 0)
	want := []string{"alpha", "mike", "zeta"}
	for i, id := range want {
		if ranked[i].Entry.ID != id {
			t.Errorf("Rank() tie order = %v, want %v", filteredIDs(ranked), want)
			break
		}
	}
}

func TestRank_Truncates(t *testing.T) {
	places := []*ranking.ScoredPlace{
		scoredPlace("a", catalog.CategoryBeach, 90, 0),
		scoredPlace("b", catalog.CategoryBeach, 60, 0),
		scoredPlace("c", catalog.CategoryBeach, 40, 0),
	}

	ranked := Rank(places, 2)
	if len(ranked) != 2 {
		t.Fatalf("Rank() returned %d places, want 2", len(ranked))
	}
	if ranked[0].Entry.ID != "a" || ranked[1].Entry.ID != "b" {
		t.Errorf("Rank() = %v, want [a b]", filteredIDs(ranked))
	}
	if ranked[1].Rank != 2 {
		t.Errorf("Rank = %d, want 2", ranked[1].Rank)
	}
}
