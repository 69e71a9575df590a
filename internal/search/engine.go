// Package search provides the retrieval facade: intent analysis, vector
// similarity, hybrid scoring, and precision filtering behind one call.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/islandhop/placesearch/internal/catalog"
	"github.com/islandhop/placesearch/internal/config"
	"github.com/islandhop/placesearch/internal/embedding"
	"github.com/islandhop/placesearch/internal/intent"
	"github.com/islandhop/placesearch/internal/metrics"
	"github.com/islandhop/placesearch/internal/ranking"
	"github.com/islandhop/placesearch/internal/vector"
)

var (
	// ErrEmptyQuery is returned when the query text is blank.
	ErrEmptyQuery = errors.New("query cannot be empty")
	// ErrNoSeeds is returned when related search gets no usable seed ids.
	ErrNoSeeds = errors.New("no usable seed entries")
	// ErrVectorsUnavailable is returned when an operation needs the vector
	// store but it cannot be loaded.
	ErrVectorsUnavailable = errors.New("vector store unavailable")
)

// Engine is the retrieval facade. Provider or store failures degrade a call
// to keyword-only scoring; they never fail the call outright.
type Engine struct {
	catalog  *catalog.Catalog
	analyzer *intent.Analyzer
	scorer   *ranking.HybridScorer
	embedder embedding.Embedder
	vectors  *vector.Handle
	config   *config.SearchConfig
	logger   *zap.Logger
}

// NewEngine creates a search engine with the given dependencies. embedder
// and vectors may be nil, which pins the engine to keyword-only scoring.
func NewEngine(
	cat *catalog.Catalog,
	analyzer *intent.Analyzer,
	scorer *ranking.HybridScorer,
	embedder embedding.Embedder,
	vectors *vector.Handle,
	cfg *config.SearchConfig,
	logger *zap.Logger,
) *Engine {
	if cfg == nil {
		full := &config.Config{}
		config.ApplyDefaults(full)
		cfg = &full.Search
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		catalog:  cat,
		analyzer: analyzer,
		scorer:   scorer,
		embedder: embedder,
		vectors:  vectors,
		config:   cfg,
		logger:   logger,
	}
}

// Search analyzes the query, scores every admitted catalog entry, and
// returns the filtered, ranked results. An empty catalog yields an empty
// result, not an error.
func (e *Engine) Search(ctx context.Context, query string, opts Options) (*Result, error) {
	start := time.Now()
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	searchID := uuid.NewString()
	in := e.analyzer.Analyze(query)
	if opts.CategoryHint != "" {
		in.AddCategory(opts.CategoryHint)
	}

	admitted := e.admitted(in)
	semantic, vectorUsed, degradedReason := e.semanticScores(ctx, searchID, query)

	scored, err := e.scoreAll(ctx, in, admitted, semantic, vectorUsed, opts.IncludeBreakdown)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues(searchMode(vectorUsed), "error").Inc()
		return nil, fmt.Errorf("scoring aborted: %w", err)
	}

	th := Thresholds{
		MinScore:         e.config.MinScore,
		MinSemanticScore: e.config.MinSemanticScore,
		VectorUsed:       vectorUsed,
	}
	if opts.MinScore != nil {
		th.MinScore = *opts.MinScore
	}
	if opts.MinSemanticScore != nil {
		th.MinSemanticScore = *opts.MinSemanticScore
	}

	filtered := Filter(in, scored, th, e.analyzer.Related)
	passed := len(filtered)
	ranked := Rank(filtered, e.resolveLimit(in, opts))

	elapsed := time.Since(start)
	metrics.SearchRequestsTotal.WithLabelValues(searchMode(vectorUsed), "ok").Inc()
	metrics.SearchDuration.WithLabelValues(searchMode(vectorUsed)).Observe(elapsed.Seconds())
	metrics.SearchResultsReturned.Observe(float64(len(ranked)))

	e.logger.Debug("search completed",
		zap.String("search_id", searchID),
		zap.String("query", query),
		zap.Bool("vector_search", vectorUsed),
		zap.Int("candidates", len(admitted)),
		zap.Int("passed_filter", passed),
		zap.Int("results", len(ranked)),
		zap.Duration("elapsed", elapsed),
	)

	return &Result{
		Query:  query,
		Places: ranked,
		Intent: in,
		Diagnostics: Diagnostics{
			SearchID:               searchID,
			VectorSearchUsed:       vectorUsed,
			DegradedReason:         degradedReason,
			CandidatesConsidered:   len(admitted),
			CandidatesPassedFilter: passed,
			QueryTimeMs:            elapsed.Milliseconds(),
		},
	}, nil
}

// SearchRelated finds entries similar to a set of known-relevant seeds,
// using the average of their stored vectors as the query. Seeds are
// excluded from the result. Unlike Search this has no keyword fallback.
func (e *Engine) SearchRelated(ctx context.Context, ids []string, limit int) (*Result, error) {
	start := time.Now()
	if len(ids) == 0 {
		return nil, ErrNoSeeds
	}
	if e.vectors == nil {
		return nil, ErrVectorsUnavailable
	}
	store, err := e.vectors.Store()
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("related", "error").Inc()
		return nil, fmt.Errorf("%w: %w", ErrVectorsUnavailable, err)
	}

	seedVec, ok := store.AverageEmbedding(ids)
	if !ok {
		return nil, fmt.Errorf("%w: no stored vectors for seed ids", ErrNoSeeds)
	}

	if limit <= 0 {
		limit = e.config.MaxResults
	}

	matches, err := store.SearchSimilar(seedVec, store.Count())
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("related", "error").Inc()
		return nil, fmt.Errorf("similarity search failed: %w", err)
	}

	seeds := make(map[string]bool, len(ids))
	seedCats := make(map[catalog.Category]bool, len(ids))
	for _, id := range ids {
		seeds[id] = true
		if entry, ok := e.catalog.ByID(id); ok {
			seedCats[entry.Category] = true
		}
	}

	places := make([]*ranking.ScoredPlace, 0, limit)
	for _, m := range matches {
		if seeds[m.ID] {
			continue
		}
		entry, ok := e.catalog.ByID(m.ID)
		if !ok {
			continue
		}
		// Related expansion must not widen into restricted categories the
		// seeds themselves do not belong to.
		if e.analyzer.Restricted(entry.Category) && !seedCats[entry.Category] {
			continue
		}
		places = append(places, &ranking.ScoredPlace{
			Entry:         entry,
			SemanticScore: m.Score,
			TotalScore:    m.Score,
			Rank:          len(places) + 1,
		})
		if len(places) == limit {
			break
		}
	}

	elapsed := time.Since(start)
	metrics.SearchRequestsTotal.WithLabelValues("related", "ok").Inc()
	metrics.SearchDuration.WithLabelValues("related").Observe(elapsed.Seconds())
	metrics.SearchResultsReturned.Observe(float64(len(places)))

	return &Result{
		Places: places,
		Diagnostics: Diagnostics{
			SearchID:               uuid.NewString(),
			VectorSearchUsed:       true,
			CandidatesConsidered:   store.Count(),
			CandidatesPassedFilter: len(places),
			QueryTimeMs:            elapsed.Milliseconds(),
		},
	}, nil
}

// Status describes the readiness of the engine's components.
type Status struct {
	CatalogSize      int    `json:"catalogSize"`
	EmbedderReady    bool   `json:"embedderReady"`
	VectorStoreReady bool   `json:"vectorStoreReady"`
	VectorStoreError string `json:"vectorStoreError,omitempty"`
	VectorCount      int    `json:"vectorCount,omitempty"`
	Model            string `json:"model,omitempty"`
	Dimension        int    `json:"dimension,omitempty"`
}

// Status reports component readiness. Calling it triggers the one-shot
// store load if it has not run yet.
func (e *Engine) Status() Status {
	st := Status{
		CatalogSize:   e.catalog.Len(),
		EmbedderReady: e.embedder != nil,
	}
	if e.vectors == nil {
		return st
	}
	store, err := e.vectors.Store()
	if err != nil {
		st.VectorStoreError = err.Error()
		return st
	}
	st.VectorStoreReady = true
	st.VectorCount = store.Count()
	st.Model = store.Model()
	st.Dimension = store.Dimension()
	return st
}

// admitted applies the restricted-category gate. Restricted entries are
// dropped before scoring unless the query or a caller hint matched the
// category's own triggers.
func (e *Engine) admitted(in *intent.Intent) []*catalog.Entry {
	entries := e.catalog.Entries()
	out := make([]*catalog.Entry, 0, len(entries))
	for i := range entries {
		entry := &entries[i]
		if e.analyzer.Restricted(entry.Category) && !in.HasCategory(entry.Category) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// semanticScores embeds the query and collects per-entry similarity. Any
// failure degrades this call to keyword-only; a store load failure is
// terminal, so later calls take the degraded path immediately.
func (e *Engine) semanticScores(ctx context.Context, searchID, query string) (map[string]float64, bool, string) {
	if e.vectors == nil || e.embedder == nil {
		return nil, false, "vector search not configured"
	}

	store, err := e.vectors.Store()
	if err != nil {
		e.logger.Warn("embedding store unavailable, using keyword scoring",
			zap.String("search_id", searchID), zap.Error(err))
		return nil, false, "embedding store unavailable"
	}

	qv, err := e.embedder.Embed(ctx, intent.Normalize(query))
	if err != nil {
		e.logger.Warn("query embedding failed, using keyword scoring",
			zap.String("search_id", searchID), zap.Error(err))
		return nil, false, "embedding provider failed"
	}

	matches, err := store.SearchSimilar(qv, store.Count())
	if err != nil {
		e.logger.Warn("similarity search failed, using keyword scoring",
			zap.String("search_id", searchID), zap.Error(err))
		return nil, false, "similarity search failed"
	}

	scores := make(map[string]float64, len(matches))
	for _, m := range matches {
		scores[m.ID] = m.Score
	}
	return scores, true, ""
}

// scoreAll scores every admitted entry. Catalogs above the parallel
// threshold are scored in chunks; each goroutine writes a disjoint index
// range, so output is identical either way.
func (e *Engine) scoreAll(ctx context.Context, in *intent.Intent, entries []*catalog.Entry, semantic map[string]float64, vectorUsed, withBreakdown bool) ([]*ranking.ScoredPlace, error) {
	scored := make([]*ranking.ScoredPlace, len(entries))
	scoreRange := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			entry := entries[i]
			s := semantic[entry.ID]
			if withBreakdown {
				scored[i] = e.scorer.ScoreWithBreakdown(in, entry, s, vectorUsed)
			} else {
				scored[i] = e.scorer.Score(in, entry, s, vectorUsed)
			}
		}
	}

	chunk := e.config.ParallelThreshold
	if chunk <= 0 || len(entries) <= chunk {
		scoreRange(0, len(entries))
		return scored, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for lo := 0; lo < len(entries); lo += chunk {
		lo := lo
		hi := min(lo+chunk, len(entries))
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			scoreRange(lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scored, nil
}

// resolveLimit picks the result window: caller override first, then the
// professional window when the query matched a professional category.
func (e *Engine) resolveLimit(in *intent.Intent, opts Options) int {
	if opts.MaxResults > 0 {
		return opts.MaxResults
	}
	if e.analyzer.ProfessionalQuery(in) {
		return e.config.ProfessionalMaxResults
	}
	return e.config.MaxResults
}

func searchMode(vectorUsed bool) string {
	if vectorUsed {
		return "vector"
	}
	return "keyword"
}
