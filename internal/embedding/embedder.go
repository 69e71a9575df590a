// Package embedding provides query embedding through an OpenAI-compatible
// API with caching, retry, and a deterministic mock for tests.
package embedding

import (
	"context"
	"errors"
)

var (
	// ErrProviderFailed reports that the embedding API could not produce a
	// vector after retries. Callers degrade to keyword-only search.
	ErrProviderFailed = errors.New("embedding provider failed")
	// ErrEmptyText reports an embedding request for empty text.
	ErrEmptyText = errors.New("text cannot be empty")
	// ErrDimensionMismatch reports a provider vector whose length does not
	// match the configured dimension.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)

// Embedder produces vector embeddings for text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Dimensions() int
}
