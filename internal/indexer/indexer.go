// Package indexer generates the embedding file pair consumed by the vector
// store. Generation is offline tooling; the serving path never writes.
package indexer

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/islandhop/placesearch/internal/catalog"
	"github.com/islandhop/placesearch/internal/embedding"
	"github.com/islandhop/placesearch/internal/vector"
)

// Generator embeds every catalog entry and writes the index/vector file
// pair. Entries are embedded concurrently through a bounded worker pool;
// the output rows always follow catalog order regardless of completion
// order.
type Generator struct {
	embedder embedding.Embedder
	model    string
	workers  int
	logger   *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithWorkers sets the embedding pool size. Values below 1 are raised to 1.
func WithWorkers(n int) Option {
	return func(g *Generator) {
		if n < 1 {
			n = 1
		}
		g.workers = n
	}
}

// WithLogger sets a logger for progress output.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGenerator creates a generator that embeds with the given provider.
// model is recorded in the index metadata so consumers can tell which
// provider produced the files.
func NewGenerator(embedder embedding.Embedder, model string, opts ...Option) *Generator {
	g := &Generator{
		embedder: embedder,
		model:    model,
		workers:  defaultWorkers(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func defaultWorkers() int {
	n := runtime.NumCPU() / 2
	if n < 1 {
		n = 1
	}
	return n
}

// Generate embeds every entry of cat and writes the file pair. The first
// failure aborts the run; partial output is never written. Every stored
// row is L2-normalized, so cosine against them reduces to a dot product.
func (g *Generator) Generate(ctx context.Context, cat *catalog.Catalog, indexPath, vectorPath string) error {
	start := time.Now()
	entries := cat.Entries()
	if len(entries) == 0 {
		return fmt.Errorf("catalog is empty")
	}

	pool, err := ants.NewPool(g.workers)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	rows := make([][]float32, len(entries))
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}
	failed := func() bool {
		mu.Lock()
		defer mu.Unlock()
		return firstErr != nil
	}

	for i := range entries {
		i := i
		entry := &entries[i]
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if failed() {
				return
			}
			if ctx.Err() != nil {
				fail(ctx.Err())
				return
			}
			vec, err := g.embedder.Embed(ctx, entry.EmbeddingText())
			if err != nil {
				fail(fmt.Errorf("embed %q: %w", entry.ID, err))
				return
			}
			normalized := vector.NormalizeL2(vec)
			if normalized == nil {
				fail(fmt.Errorf("embed %q: zero vector", entry.ID))
				return
			}
			rows[i] = normalized
			g.logger.Debug("entry embedded", zap.String("id", entry.ID))
		})
		if submitErr != nil {
			wg.Done()
			fail(fmt.Errorf("submit %q: %w", entry.ID, submitErr))
			break
		}
	}
	wg.Wait()
	if firstErr != nil {
		return firstErr
	}

	dim := len(rows[0])
	for i := range rows {
		if len(rows[i]) != dim {
			return fmt.Errorf("embed %q: dimension %d, want %d", entries[i].ID, len(rows[i]), dim)
		}
	}

	buf := make([]float32, 0, len(entries)*dim)
	idToIndex := make(map[string]int, len(entries))
	indexToID := make([]string, len(entries))
	for i := range entries {
		idToIndex[entries[i].ID] = i
		indexToID[i] = entries[i].ID
		buf = append(buf, rows[i]...)
	}

	meta := &vector.IndexMeta{
		Version:     vector.IndexVersion,
		Model:       g.model,
		Dimension:   dim,
		Count:       len(entries),
		GeneratedAt: time.Now().UTC(),
		IDToIndex:   idToIndex,
		IndexToID:   indexToID,
	}
	if err := vector.WriteFiles(indexPath, vectorPath, meta, buf); err != nil {
		return fmt.Errorf("write embedding files: %w", err)
	}

	g.logger.Info("embedding files generated",
		zap.Int("entries", len(entries)),
		zap.Int("dimension", dim),
		zap.String("model", g.model),
		zap.String("index_path", indexPath),
		zap.String("vector_path", vectorPath),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}
