package e2e

import (
	"context"
	"math"
	"testing"

	"github.com/islandhop/placesearch/internal/embedding"
	"github.com/islandhop/placesearch/internal/vector"
)

func TestTopicEmbedder_Deterministic(t *testing.T) {
	emb := TopicEmbedder{}
	ctx := context.Background()
	a, err := emb.Embed(ctx, "snorkel trip to the reef")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	b, err := emb.Embed(ctx, "snorkel trip to the reef")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if len(a) != emb.Dimensions() {
		t.Fatalf("vector has %d dims, want %d", len(a), emb.Dimensions())
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same text produced different vectors at dim %d", i)
		}
	}
}

func TestTopicEmbedder_UnitNorm(t *testing.T) {
	emb := TopicEmbedder{}
	texts := []string{
		"beach sunset swimming",
		"corporate law firm",
		"no vocabulary overlap whatsoever",
	}
	for _, text := range texts {
		v, err := emb.Embed(context.Background(), text)
		if err != nil {
			t.Fatalf("Embed(%q): %v", text, err)
		}
		var sum float64
		for _, x := range v {
			sum += float64(x) * float64(x)
		}
		if norm := math.Sqrt(sum); math.Abs(norm-1) > 1e-5 {
			t.Errorf("Embed(%q) norm = %v, want 1", text, norm)
		}
	}
}

func TestTopicEmbedder_SameTopicCloserThanCrossTopic(t *testing.T) {
	emb := TopicEmbedder{}
	ctx := context.Background()
	embed := func(text string) []float32 {
		v, err := emb.Embed(ctx, text)
		if err != nil {
			t.Fatalf("Embed(%q): %v", text, err)
		}
		return v
	}

	query := embed("scuba diving on the wreck")
	dive := embed("guided scuba dives along the reef wall")
	lunch := embed("caribbean lunch menu on the waterfront")

	same := vector.Cosine(query, dive)
	cross := vector.Cosine(query, lunch)
	if same <= cross {
		t.Errorf("same-topic similarity %.3f not above cross-topic %.3f", same, cross)
	}
	if same < 0.9 {
		t.Errorf("same-topic similarity %.3f unexpectedly low", same)
	}
	if cross > 0.3 {
		t.Errorf("cross-topic similarity %.3f unexpectedly high", cross)
	}
}

func TestTopicEmbedder_EmptyText(t *testing.T) {
	emb := TopicEmbedder{}
	if _, err := emb.Embed(context.Background(), "   "); err != embedding.ErrEmptyText {
		t.Errorf("Embed(blank) error = %v, want ErrEmptyText", err)
	}
}

func TestTopicEmbedder_BatchMatchesSingle(t *testing.T) {
	emb := TopicEmbedder{}
	ctx := context.Background()
	texts := []string{"beach day", "espresso and smoothies"}
	batch, err := emb.EmbedBatch(ctx, texts)
	if err != nil {
		t.Fatalf("EmbedBatch: %v", err)
	}
	if len(batch) != len(texts) {
		t.Fatalf("EmbedBatch returned %d vectors, want %d", len(batch), len(texts))
	}
	for i, text := range texts {
		single, err := emb.Embed(ctx, text)
		if err != nil {
			t.Fatalf("Embed(%q): %v", text, err)
		}
		for d := range single {
			if batch[i][d] != single[d] {
				t.Fatalf("batch vector %d differs from single embed at dim %d", i, d)
			}
		}
	}
}
