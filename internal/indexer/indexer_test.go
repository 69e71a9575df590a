package indexer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/islandhop/placesearch/internal/catalog"
	"github.com/islandhop/placesearch/internal/embedding"
	"github.com/islandhop/placesearch/internal/vector"
)

type failingEmbedder struct {
	err error
}

func (f *failingEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return nil, f.err
}

func (f *failingEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	return nil, f.err
}

func (f *failingEmbedder) Dimensions() int { return 8 }

func generatorCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Entry{
		{ID: "beach-seven-mile", Name: "Seven Mile Beach", Category: catalog.CategoryBeach,
			Tags: []string{"swimming", "sunset"}, ShortDescription: "White sand and calm water."},
		{ID: "rest-blue", Name: "Blue", Category: catalog.CategoryRestaurant,
			Tags: []string{"seafood"}, ShortDescription: "Tasting menus by the sea."},
		{ID: "dive-kittiwake", Name: "Kittiwake Wreck", Category: catalog.CategoryDiving,
			Tags: []string{"wreck", "snorkeling"}, ShortDescription: "Sunken vessel dive site."},
	})
	if err != nil {
		t.Fatal(err)
	}
	return cat
}

func TestGenerator_Generate(t *testing.T) {
	dir := t.TempDir()
	indexPath := filepath.Join(dir, "embeddings.json")
	vectorPath := filepath.Join(dir, "embeddings.bin")

	gen := NewGenerator(embedding.NewMockEmbedder(8), "mock-model", WithWorkers(2))
	if err := gen.Generate(context.Background(), generatorCatalog(t), indexPath, vectorPath); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	store, err := vector.NewHandle(indexPath, vectorPath).Store()
	if err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	if store.Count() != 3 {
		t.Errorf("Count() = %d, want 3", store.Count())
	}
	if store.Dimension() != 8 {
		t.Errorf("Dimension() = %d, want 8", store.Dimension())
	}
	if store.Model() != "mock-model" {
		t.Errorf("Model() = %q, want %q", store.Model(), "mock-model")
	}

	for _, id := range []string{"beach-seven-mile", "rest-blue", "dive-kittiwake"} {
		vec, ok := store.EmbeddingFor(id)
		if !ok {
			t.Fatalf("EmbeddingFor(%q) missing", id)
		}
		matches, err := store.SearchSimilar(vec, 1)
		if err != nil {
			t.Fatal(err)
		}
		if len(matches) != 1 || matches[0].ID != id {
			t.Errorf("SearchSimilar self match for %q = %+v", id, matches)
			continue
		}
		if matches[0].Score < 0.999 || matches[0].Score > 1.001 {
			t.Errorf("Self similarity for %q = %v, want ~1.0", id, matches[0].Score)
		}
	}
}

func TestGenerator_Generate_CatalogOrder(t *testing.T) {
	dir := t.TempDir()
	indexPath := filepath.Join(dir, "embeddings.json")
	vectorPath := filepath.Join(dir, "embeddings.bin")

	gen := NewGenerator(embedding.NewMockEmbedder(8), "mock-model", WithWorkers(3))
	if err := gen.Generate(context.Background(), generatorCatalog(t), indexPath, vectorPath); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	data, err := os.ReadFile(indexPath)
	if err != nil {
		t.Fatal(err)
	}
	meta, err := vector.DecodeIndex(data)
	if err != nil {
		t.Fatalf("DecodeIndex() error = %v", err)
	}

	want := []string{"beach-seven-mile", "rest-blue", "dive-kittiwake"}
	if len(meta.IndexToID) != len(want) {
		t.Fatalf("IndexToID = %v, want %v", meta.IndexToID, want)
	}
	for i, id := range want {
		if meta.IndexToID[i] != id {
			t.Errorf("IndexToID[%d] = %q, want %q", i, meta.IndexToID[i], id)
		}
		if meta.IDToIndex[id] != i {
			t.Errorf("IDToIndex[%q] = %d, want %d", id, meta.IDToIndex[id], i)
		}
	}
	if meta.Version != vector.IndexVersion {
		t.Errorf("Version = %d, want %d", meta.Version, vector.IndexVersion)
	}
}

func TestGenerator_Generate_EmptyCatalog(t *testing.T) {
	cat, err := catalog.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	gen := NewGenerator(embedding.NewMockEmbedder(8), "mock-model")

	err = gen.Generate(context.Background(), cat, filepath.Join(dir, "i.json"), filepath.Join(dir, "v.bin"))
	if err == nil {
		t.Fatal("Generate() on an empty catalog should fail")
	}
}

func TestGenerator_Generate_ProviderFailure(t *testing.T) {
	dir := t.TempDir()
	indexPath := filepath.Join(dir, "embeddings.json")
	vectorPath := filepath.Join(dir, "embeddings.bin")

	provider := &failingEmbedder{err: errors.New("provider down")}
	gen := NewGenerator(provider, "mock-model", WithWorkers(2))

	err := gen.Generate(context.Background(), generatorCatalog(t), indexPath, vectorPath)
	if err == nil {
		t.Fatal("Generate() should surface the provider failure")
	}
	for _, path := range []string{indexPath, vectorPath} {
		if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
			t.Errorf("Partial output written to %s", path)
		}
	}
}

func TestGenerator_Generate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	gen := NewGenerator(embedding.NewMockEmbedder(8), "mock-model", WithWorkers(1))

	err := gen.Generate(ctx, generatorCatalog(t), filepath.Join(dir, "i.json"), filepath.Join(dir, "v.bin"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Generate() error = %v, want context.Canceled", err)
	}
}

func TestGenerator_Generate_Deterministic(t *testing.T) {
	cat := generatorCatalog(t)
	load := func(workers int) *vector.Store {
		dir := t.TempDir()
		indexPath := filepath.Join(dir, "embeddings.json")
		vectorPath := filepath.Join(dir, "embeddings.bin")
		gen := NewGenerator(embedding.NewMockEmbedder(8), "mock-model", WithWorkers(workers))
		if err := gen.Generate(context.Background(), cat, indexPath, vectorPath); err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		store, err := vector.NewHandle(indexPath, vectorPath).Store()
		if err != nil {
			t.Fatal(err)
		}
		return store
	}

	serial := load(1)
	parallel := load(4)
	for _, id := range []string{"beach-seven-mile", "rest-blue", "dive-kittiwake"} {
		a, ok := serial.EmbeddingFor(id)
		if !ok {
			t.Fatalf("serial store missing %q", id)
		}
		b, ok := parallel.EmbeddingFor(id)
		if !ok {
			t.Fatalf("parallel store missing %q", id)
		}
		if len(a) != len(b) {
			t.Fatalf("dimension mismatch for %q", id)
		}
		for i := range a {
			if a[i] != b[i] {
				t.Errorf("Vector for %q differs at %d: %v vs %v", id, i, a[i], b[i])
				break
			}
		}
	}
}
