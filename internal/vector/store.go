// Package vector loads the precomputed embedding file pair and answers
// cosine-similarity queries over an immutable row-major float32 buffer.
package vector

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
)

var (
	// ErrNotFound reports that one of the embedding files is missing.
	ErrNotFound = errors.New("embedding files not found")
	// ErrCorruptIndex reports a malformed or internally inconsistent
	// embedding file pair.
	ErrCorruptIndex = errors.New("corrupt embedding index")
)

// Store is an immutable embedding store. All methods are safe for
// concurrent use; the buffer is never written after Load returns.
type Store struct {
	model     string
	dimension int
	count     int
	idToIndex map[string]int
	indexToID []string
	buf       []float32
}

// Match is one similarity hit returned by SearchSimilar.
type Match struct {
	ID    string
	Score float64
}

// Load builds a Store from the raw contents of the index and vector files.
// It validates the size invariant (count*dimension float32 values) and the
// mutual consistency of idToIndex and indexToId, returning ErrCorruptIndex
// when either fails.
func Load(indexBytes, vectorBytes []byte) (*Store, error) {
	meta, err := DecodeIndex(indexBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptIndex, err)
	}
	buf, err := DecodeVectors(vectorBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptIndex, err)
	}
	if meta.Dimension <= 0 {
		return nil, fmt.Errorf("%w: dimension %d", ErrCorruptIndex, meta.Dimension)
	}
	if meta.Count < 0 {
		return nil, fmt.Errorf("%w: count %d", ErrCorruptIndex, meta.Count)
	}
	if len(buf) != meta.Count*meta.Dimension {
		return nil, fmt.Errorf("%w: %d values for count %d x dimension %d", ErrCorruptIndex, len(buf), meta.Count, meta.Dimension)
	}
	if len(meta.IndexToID) != meta.Count || len(meta.IDToIndex) != meta.Count {
		return nil, fmt.Errorf("%w: id maps have %d and %d entries for count %d", ErrCorruptIndex, len(meta.IndexToID), len(meta.IDToIndex), meta.Count)
	}
	for i, id := range meta.IndexToID {
		if id == "" {
			return nil, fmt.Errorf("%w: empty id at row %d", ErrCorruptIndex, i)
		}
		if got, ok := meta.IDToIndex[id]; !ok || got != i {
			return nil, fmt.Errorf("%w: id %q maps to row %d but sits at row %d", ErrCorruptIndex, id, got, i)
		}
	}
	return &Store{
		model:     meta.Model,
		dimension: meta.Dimension,
		count:     meta.Count,
		idToIndex: meta.IDToIndex,
		indexToID: meta.IndexToID,
		buf:       buf,
	}, nil
}

// LoadFiles reads the file pair from disk and calls Load. A missing file
// yields ErrNotFound.
func LoadFiles(indexPath, vectorPath string) (*Store, error) {
	indexBytes, err := os.ReadFile(indexPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, indexPath)
		}
		return nil, fmt.Errorf("read index file: %w", err)
	}
	vectorBytes, err := os.ReadFile(vectorPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, vectorPath)
		}
		return nil, fmt.Errorf("read vector file: %w", err)
	}
	return Load(indexBytes, vectorBytes)
}

// Model returns the embedding model name recorded in the index.
func (s *Store) Model() string { return s.model }

// Dimension returns the vector dimension.
func (s *Store) Dimension() int { return s.dimension }

// Count returns the number of stored vectors.
func (s *Store) Count() int { return s.count }

// EmbeddingFor returns the stored vector for id as a view into the shared
// buffer. Callers must not modify the returned slice.
func (s *Store) EmbeddingFor(id string) ([]float32, bool) {
	i, ok := s.idToIndex[id]
	if !ok {
		return nil, false
	}
	return s.row(i), true
}

func (s *Store) row(i int) []float32 {
	return s.buf[i*s.dimension : (i+1)*s.dimension]
}

// SearchSimilar returns the topK stored vectors most similar to query by
// cosine similarity, highest first, ties broken by id ascending. The query
// norm is computed once and each row's dot product and norm are accumulated
// in a single pass over the buffer. A zero-norm query yields no matches.
func (s *Store) SearchSimilar(query []float32, topK int) ([]Match, error) {
	if len(query) != s.dimension {
		return nil, fmt.Errorf("query dimension %d, store dimension %d", len(query), s.dimension)
	}
	if topK <= 0 || s.count == 0 {
		return nil, nil
	}
	qNorm := L2Norm(query)
	if qNorm == 0 {
		return nil, nil
	}
	matches := make([]Match, 0, s.count)
	for i := 0; i < s.count; i++ {
		row := s.row(i)
		var dot, rowSq float64
		for j, v := range row {
			f := float64(v)
			dot += float64(query[j]) * f
			rowSq += f * f
		}
		if rowSq == 0 {
			continue
		}
		matches = append(matches, Match{
			ID:    s.indexToID[i],
			Score: dot / (qNorm * math.Sqrt(rowSq)),
		})
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].ID < matches[j].ID
	})
	if topK < len(matches) {
		matches = matches[:topK]
	}
	return matches, nil
}

// AverageEmbedding returns the L2-normalized mean of the stored vectors for
// the given ids. Ids without a vector are skipped. Returns false when no id
// has a vector or the mean has zero norm.
func (s *Store) AverageEmbedding(ids []string) ([]float32, bool) {
	sum := make([]float64, s.dimension)
	var n int
	for _, id := range ids {
		vec, ok := s.EmbeddingFor(id)
		if !ok {
			continue
		}
		for j, v := range vec {
			sum[j] += float64(v)
		}
		n++
	}
	if n == 0 {
		return nil, false
	}
	mean := make([]float32, s.dimension)
	for j, v := range sum {
		mean[j] = float32(v / float64(n))
	}
	out := NormalizeL2(mean)
	if out == nil {
		return nil, false
	}
	return out, true
}
