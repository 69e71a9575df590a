package search

import (
	"github.com/islandhop/placesearch/internal/intent"
	"github.com/islandhop/placesearch/internal/ranking"
)

// Result is the ordered outcome of one retrieval call.
type Result struct {
	Query       string                 `json:"query"`
	Places      []*ranking.ScoredPlace `json:"places"`
	Intent      *intent.Intent         `json:"intent,omitempty"`
	Diagnostics Diagnostics            `json:"diagnostics"`
}

// Diagnostics make degradations and ranking regressions observable without
// inspecting individual scores.
type Diagnostics struct {
	SearchID               string `json:"searchId"`
	VectorSearchUsed       bool   `json:"vectorSearchUsed"`
	DegradedReason         string `json:"degradedReason,omitempty"`
	CandidatesConsidered   int    `json:"candidatesConsidered"`
	CandidatesPassedFilter int    `json:"candidatesPassedFilter"`
	QueryTimeMs            int64  `json:"queryTimeMs"`
}
