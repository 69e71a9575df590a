// Package catalog defines the immutable place records the engine searches over.
package catalog

import "strings"

// Category classifies a place. The set is fixed at build time; trigger tables
// that map query text onto categories live in the intent package.
type Category string

const (
	CategoryBeach      Category = "beach"
	CategoryRestaurant Category = "restaurant"
	CategoryBar        Category = "bar"
	CategoryCafe       Category = "cafe"
	CategoryWatersport Category = "watersports"
	CategoryDiving     Category = "diving"
	CategoryAttraction Category = "attraction"
	CategoryShopping   Category = "shopping"
	CategorySpa        Category = "spa"
	CategoryHotel      Category = "hotel"
	CategoryGolf       Category = "golf"
	CategoryMedical    Category = "medical"
	CategoryLegal      Category = "legal"
	CategoryFinancial  Category = "financial"
	CategoryRealEstate Category = "realestate"
)

// Location holds the fixed coordinates and locality of a place. Entries without
// known coordinates carry zero lat/lng.
type Location struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	District string  `json:"district,omitempty"`
	Island   string  `json:"island,omitempty"`
}

// Rating holds aggregate review data.
type Rating struct {
	Overall     float64 `json:"overall"`
	ReviewCount int     `json:"reviewCount"`
}

// Media holds presentation flags consumed by the response-composition layer.
type Media struct {
	ThumbnailPresent bool `json:"thumbnailPresent"`
}

// ContactFlags indicates which contact channels a place exposes.
type ContactFlags struct {
	HasWebsite bool `json:"hasWebsite"`
	HasPhone   bool `json:"hasPhone"`
	HasBooking bool `json:"hasBooking"`
}

// Entry is one searchable place. Entries are created at catalog load time and
// never mutated afterwards; every search shares them read-only.
type Entry struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Category         Category     `json:"category"`
	Subcategory      string       `json:"subcategory,omitempty"`
	Description      string       `json:"description"`
	ShortDescription string       `json:"shortDescription"`
	Tags             []string     `json:"tags"`
	Highlights       []string     `json:"highlights"`
	Location         Location     `json:"location"`
	PriceTier        int          `json:"priceTier"` // ordinal 1 (budget) .. 4 (ultra luxury)
	Rating           Rating       `json:"rating"`
	QualityScore     float64      `json:"qualityScore,omitempty"` // optional editorial score in [0,1]
	Media            Media        `json:"media"`
	ContactFlags     ContactFlags `json:"contactFlags"`
	IsFeatured       bool         `json:"isFeatured"`
	IsPremium        bool         `json:"isPremium"`
}

// HasCoordinates reports whether the entry carries usable coordinates.
// The zero lat/lng pair means "unknown", not a point in the Gulf of Guinea.
func (e *Entry) HasCoordinates() bool {
	return e.Location.Lat != 0 || e.Location.Lng != 0
}

// EmbeddingText returns the canonical text embedded for this entry. The offline
// generator and any re-embedding tooling must use the same composition so that
// stored vectors stay comparable across runs.
func (e *Entry) EmbeddingText() string {
	parts := make([]string, 0, 5+len(e.Tags)+len(e.Highlights))
	parts = append(parts, e.Name, string(e.Category))
	if e.Subcategory != "" {
		parts = append(parts, e.Subcategory)
	}
	parts = append(parts, e.Tags...)
	parts = append(parts, e.Highlights...)
	if e.ShortDescription != "" {
		parts = append(parts, e.ShortDescription)
	} else if e.Description != "" {
		parts = append(parts, e.Description)
	}
	return strings.Join(parts, ". ")
}
