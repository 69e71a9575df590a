// This file provides the deterministic embedder and catalog file helpers the
// e2e tests build their index from.
package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/islandhop/placesearch/internal/catalog"
	"github.com/islandhop/placesearch/internal/embedding"
	"github.com/islandhop/placesearch/internal/vector"
)

// topicGroups is the vocabulary TopicEmbedder projects onto, one axis per
// group plus a shared bias axis so no text maps to the zero vector. The
// groups mirror the catalog categories closely enough that texts about the
// same kind of place land near each other and unrelated texts stay close to
// orthogonal.
var topicGroups = [][]string{
	{"beach", "sand", "swim", "shore", "sunbathe", "starfish", "hammock"},
	{"restaurant", "dining", "seafood", "menu", "caribbean", "breakfast", "brunch", "lunch", "dinner", "food"},
	{"cocktail", "drinks", "nightlife", "tiki", "live music", "beach bar"},
	{"cafe", "coffee", "espresso", "smoothie", "juice", "baked", "vegan"},
	{"kayak", "paddleboard", "sail", "catamaran", "boat", "charter", "jet ski", "snorkel", "stingray"},
	{"dive", "diving", "scuba", "wreck", "reef", "grotto", "wall"},
	{"tour", "caves", "museum", "landmark", "turtle", "garden", "iguana", "viewpoint", "history", "conservation"},
	{"shopping", "duty free", "jewellery", "jewelry", "souvenir", "watches", "craft"},
	{"spa", "massage", "facial", "yoga", "wellness", "treatment"},
	{"hotel", "resort", "suite", "villa", "condo", "accommodation", "pool"},
	{"golf", "fairway", "tee time", "championship course"},
	{"medical", "clinic", "doctor", "hospital", "pharmacy", "urgent care", "prescription", "surgery"},
	{"law", "legal", "attorney", "notary"},
	{"bank", "banking", "wealth", "investment", "insurance", "financial"},
	{"real estate", "property", "realtor", "relocation", "rental", "housing", "residency"},
}

// TopicEmbedder is a deterministic embedder for tests. It counts which topic
// groups a text mentions and normalizes the result, so entry vectors and
// query vectors come from the same projection and cosine similarity behaves
// the way a real embedding provider's does, without the network.
type TopicEmbedder struct{}

// Dimensions returns the vector width, one axis per topic group plus bias.
func (TopicEmbedder) Dimensions() int { return len(topicGroups) + 1 }

// Embed projects text onto the topic axes.
func (TopicEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, embedding.ErrEmptyText
	}
	lower := strings.ToLower(text)
	vec := make([]float32, len(topicGroups)+1)
	for i, group := range topicGroups {
		for _, kw := range group {
			if strings.Contains(lower, kw) {
				vec[i]++
			}
		}
	}
	vec[len(topicGroups)] = 0.25
	return vector.NormalizeL2(vec), nil
}

// EmbedBatch embeds each text in order.
func (e TopicEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := e.Embed(ctx, t)
		if err != nil {
			return nil, fmt.Errorf("embed text %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// WriteCatalogFile writes entries to path in the catalog file format, a JSON
// array of entry objects.
func WriteCatalogFile(path string, entries []catalog.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
