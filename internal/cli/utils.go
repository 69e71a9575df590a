// Package cli provides output formatting for the placesearch CLI.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/islandhop/placesearch/internal/ranking"
	"github.com/islandhop/placesearch/internal/search"
)

// SearchOutputFormat is the format for search result output.
type SearchOutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText SearchOutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON SearchOutputFormat = "json"
)

// WriteSearchResults writes search results to w in the given format.
// Use OutputJSON for parseable output consumable by other apps.
func WriteSearchResults(w io.Writer, result *search.Result, format SearchOutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	default:
		writeSearchResultsText(w, result)
		return nil
	}
}

func writeSearchResultsText(w io.Writer, result *search.Result) {
	mode := "vector search"
	if !result.Diagnostics.VectorSearchUsed {
		mode = "keyword scoring"
		if result.Diagnostics.DegradedReason != "" {
			mode = "keyword scoring: " + result.Diagnostics.DegradedReason
		}
	}
	fmt.Fprintf(w, "\nFound %d places in %dms (%s)\n\n",
		len(result.Places), result.Diagnostics.QueryTimeMs, mode)

	for _, p := range result.Places {
		fmt.Fprintf(w, "%d. %s  [%s]  score %.1f", p.Rank, p.Entry.Name, p.Entry.Category, p.TotalScore)
		if result.Diagnostics.VectorSearchUsed {
			fmt.Fprintf(w, " (semantic %.2f)", p.SemanticScore)
		}
		fmt.Fprintln(w)
		if p.Entry.Location.District != "" {
			fmt.Fprintf(w, "   %s\n", p.Entry.Location.District)
		}
		if desc := entryDescription(p); desc != "" {
			fmt.Fprintf(w, "   %s\n", Truncate(desc, 160))
		}
		if p.Breakdown != nil {
			writeBreakdown(w, p.Breakdown)
		}
	}
}

func entryDescription(p *ranking.ScoredPlace) string {
	if p.Entry.ShortDescription != "" {
		return p.Entry.ShortDescription
	}
	return p.Entry.Description
}

func writeBreakdown(w io.Writer, b *ranking.Breakdown) {
	names := make([]string, 0, len(b.Components))
	for name := range b.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintf(w, "   semantic %.1f", b.SemanticWeighted)
	for _, name := range names {
		fmt.Fprintf(w, ", %s %.1f", name, b.Components[name])
	}
	fmt.Fprintln(w)
}

// Truncate truncates s to maxLen and appends "..." if truncated.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
