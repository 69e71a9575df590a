package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/islandhop/placesearch/internal/geo"
)

// LoadFile reads a JSON catalog file and returns a validated Catalog.
// The file is an array of entries; see Entry for the field layout.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Load(data)
}

// Load parses and validates catalog JSON.
func Load(data []byte) (*Catalog, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for i := range entries {
		if err := validateEntry(&entries[i]); err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", entries[i].ID, err)
		}
	}
	return New(entries)
}

func validateEntry(e *Entry) error {
	if e.ID == "" {
		return fmt.Errorf("empty id")
	}
	if e.Name == "" {
		return fmt.Errorf("empty name")
	}
	if e.Category == "" {
		return fmt.Errorf("empty category")
	}
	if e.PriceTier < 0 || e.PriceTier > 4 {
		return fmt.Errorf("price tier %d out of range 0-4", e.PriceTier)
	}
	if e.Rating.Overall < 0 || e.Rating.Overall > 5 {
		return fmt.Errorf("rating %v out of range 0-5", e.Rating.Overall)
	}
	if e.QualityScore < 0 || e.QualityScore > 1 {
		return fmt.Errorf("quality score %v out of range 0-1", e.QualityScore)
	}
	if e.HasCoordinates() && !geo.ValidCoordinates(e.Location.Lat, e.Location.Lng) {
		return fmt.Errorf("invalid coordinates (%v, %v)", e.Location.Lat, e.Location.Lng)
	}
	return nil
}
