package intent

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/islandhop/placesearch/internal/catalog"
)

// CategoryRule maps trigger phrases onto one category. Restricted categories
// are excluded from results unless the query matched one of their triggers;
// professional categories get the larger result window.
type CategoryRule struct {
	Category     catalog.Category   `yaml:"category"`
	Triggers     []string           `yaml:"triggers"`
	Related      []catalog.Category `yaml:"related,omitempty"`
	Restricted   bool               `yaml:"restricted,omitempty"`
	Professional bool               `yaml:"professional,omitempty"`
}

// GazetteerEntry is one named location with its anchor radius.
type GazetteerEntry struct {
	Name     string   `yaml:"name"`
	Aliases  []string `yaml:"aliases,omitempty"`
	Lat      float64  `yaml:"lat"`
	Lng      float64  `yaml:"lng"`
	RadiusKm float64  `yaml:"radius_km"`
}

// PriceRule maps trigger phrases onto one price tier. Rules are consulted in
// slice order, so the table encodes the tier priority.
type PriceRule struct {
	Tier     PriceTier `yaml:"tier"`
	Triggers []string  `yaml:"triggers"`
}

// FeatureRule maps trigger phrases onto one must-have feature name.
type FeatureRule struct {
	Feature  string   `yaml:"feature"`
	Triggers []string `yaml:"triggers"`
}

// ActivityRule maps trigger phrases onto one activity type. First match wins.
type ActivityRule struct {
	Activity string   `yaml:"activity"`
	Triggers []string `yaml:"triggers"`
}

// Rules bundles every table the analyzer consults. The built-in tables are
// defaults, not contracts: restricted trigger lists in particular are meant to
// be tuned through configuration rather than edited here.
type Rules struct {
	Categories    []CategoryRule   `yaml:"categories"`
	Gazetteer     []GazetteerEntry `yaml:"gazetteer"`
	PriceTiers    []PriceRule      `yaml:"price_tiers"`
	Features      []FeatureRule    `yaml:"features"`
	Activities    []ActivityRule   `yaml:"activities"`
	StopWords     []string         `yaml:"stop_words"`
	DefaultAnchor LocationAnchor   `yaml:"default_anchor"`
}

// DefaultRules returns the built-in rule tables for the Cayman Islands catalog.
func DefaultRules() *Rules {
	return &Rules{
		Categories: []CategoryRule{
			{
				Category: catalog.CategoryBeach,
				Triggers: []string{"beach", "beaches", "sand", "swim", "swimming", "sunbathe", "shore"},
				Related:  []catalog.Category{catalog.CategoryWatersport, catalog.CategoryDiving, catalog.CategoryAttraction},
			},
			{
				Category: catalog.CategoryRestaurant,
				Triggers: []string{"restaurant", "restaurants", "food", "dinner", "lunch", "breakfast", "brunch", "dining", "cuisine", "seafood"},
				Related:  []catalog.Category{catalog.CategoryBar, catalog.CategoryCafe},
			},
			{
				Category: catalog.CategoryBar,
				Triggers: []string{"bar", "bars", "drinks", "cocktail", "cocktails", "nightlife", "pub", "lounge"},
				Related:  []catalog.Category{catalog.CategoryRestaurant, catalog.CategoryCafe},
			},
			{
				Category: catalog.CategoryCafe,
				Triggers: []string{"cafe", "coffee", "espresso", "bakery", "smoothie"},
				Related:  []catalog.Category{catalog.CategoryRestaurant, catalog.CategoryBar},
			},
			{
				Category: catalog.CategoryWatersport,
				Triggers: []string{"kayak", "paddleboard", "jet ski", "jetski", "snorkel", "snorkeling", "sail", "sailing", "boat", "charter", "catamaran", "waverunner"},
				Related:  []catalog.Category{catalog.CategoryBeach, catalog.CategoryDiving},
			},
			{
				Category: catalog.CategoryDiving,
				Triggers: []string{"dive", "diving", "scuba", "wreck", "reef"},
				Related:  []catalog.Category{catalog.CategoryWatersport, catalog.CategoryBeach},
			},
			{
				Category: catalog.CategoryAttraction,
				Triggers: []string{"attraction", "attractions", "sightseeing", "museum", "tour", "tours", "landmark", "turtle", "crystal caves", "botanic"},
				Related:  []catalog.Category{catalog.CategoryBeach, catalog.CategoryWatersport},
			},
			{
				Category: catalog.CategoryShopping,
				Triggers: []string{"shopping", "boutique", "souvenir", "souvenirs", "duty free", "duty-free", "jewelry", "jewellery", "mall"},
				Related:  []catalog.Category{catalog.CategoryAttraction},
			},
			{
				Category: catalog.CategorySpa,
				Triggers: []string{"spa", "massage", "wellness", "facial", "yoga", "pilates"},
				Related:  []catalog.Category{catalog.CategoryHotel},
			},
			{
				Category: catalog.CategoryHotel,
				Triggers: []string{"hotel", "hotels", "resort", "resorts", "accommodation", "condo", "villa", "suite"},
				Related:  []catalog.Category{catalog.CategorySpa, catalog.CategoryRestaurant},
			},
			{
				Category: catalog.CategoryGolf,
				Triggers: []string{"golf", "fairway", "tee time", "driving range"},
				Related:  []catalog.Category{catalog.CategoryAttraction},
			},
			{
				Category:     catalog.CategoryMedical,
				Triggers:     []string{"doctor", "doctors", "clinic", "hospital", "pharmacy", "dentist", "medical", "physician", "urgent care"},
				Restricted:   true,
				Professional: true,
			},
			{
				Category:     catalog.CategoryLegal,
				Triggers:     []string{"lawyer", "lawyers", "attorney", "legal", "law firm", "notary"},
				Related:      []catalog.Category{catalog.CategoryFinancial},
				Restricted:   true,
				Professional: true,
			},
			{
				Category:     catalog.CategoryFinancial,
				Triggers:     []string{"bank", "banking", "accountant", "financial advisor", "insurance", "wealth management", "investment", "trust services"},
				Related:      []catalog.Category{catalog.CategoryLegal, catalog.CategoryRealEstate},
				Restricted:   true,
				Professional: true,
			},
			{
				Category:     catalog.CategoryRealEstate,
				Triggers:     []string{"real estate", "realtor", "property", "apartment", "relocate", "relocation", "residency", "housing"},
				Related:      []catalog.Category{catalog.CategoryFinancial, catalog.CategoryLegal},
				Professional: true,
			},
		},
		Gazetteer: []GazetteerEntry{
			{Name: "Seven Mile Beach", Aliases: []string{"seven mile beach", "seven mile", "smb"}, Lat: 19.3353, Lng: -81.3851, RadiusKm: 5},
			{Name: "George Town", Aliases: []string{"george town", "georgetown"}, Lat: 19.2866, Lng: -81.3744, RadiusKm: 4},
			{Name: "West Bay", Aliases: []string{"west bay"}, Lat: 19.3667, Lng: -81.4167, RadiusKm: 5},
			{Name: "Camana Bay", Aliases: []string{"camana bay"}, Lat: 19.3220, Lng: -81.3770, RadiusKm: 3},
			{Name: "Rum Point", Aliases: []string{"rum point"}, Lat: 19.3690, Lng: -81.2750, RadiusKm: 4},
			{Name: "Cayman Kai", Aliases: []string{"cayman kai", "kaibo"}, Lat: 19.3660, Lng: -81.2830, RadiusKm: 4},
			{Name: "Starfish Point", Aliases: []string{"starfish point"}, Lat: 19.3770, Lng: -81.2840, RadiusKm: 2},
			{Name: "Stingray City", Aliases: []string{"stingray city", "stingray sandbar"}, Lat: 19.3870, Lng: -81.3030, RadiusKm: 3},
			{Name: "East End", Aliases: []string{"east end"}, Lat: 19.3030, Lng: -81.1080, RadiusKm: 8},
			{Name: "North Side", Aliases: []string{"north side"}, Lat: 19.3500, Lng: -81.2000, RadiusKm: 8},
			{Name: "Bodden Town", Aliases: []string{"bodden town"}, Lat: 19.2800, Lng: -81.2500, RadiusKm: 6},
			{Name: "South Sound", Aliases: []string{"south sound"}, Lat: 19.2710, Lng: -81.3560, RadiusKm: 4},
			{Name: "Grand Cayman", Aliases: []string{"grand cayman"}, Lat: 19.3222, Lng: -81.2409, RadiusKm: 35},
			{Name: "Cayman Brac", Aliases: []string{"cayman brac", "the brac"}, Lat: 19.7190, Lng: -79.8800, RadiusKm: 20},
			{Name: "Little Cayman", Aliases: []string{"little cayman"}, Lat: 19.6890, Lng: -80.0650, RadiusKm: 15},
		},
		// Ordered by priority: the first matching rule wins, so double matches
		// like "ultra luxury" resolve to the stronger tier.
		PriceTiers: []PriceRule{
			{Tier: PriceTierUltraLuxury, Triggers: []string{"ultra luxury", "ultra-luxury", "finest", "exclusive", "world class", "world-class", "five star", "five-star"}},
			{Tier: PriceTierLuxury, Triggers: []string{"luxury", "upscale", "high end", "high-end", "fine dining", "fancy", "premium"}},
			{Tier: PriceTierMid, Triggers: []string{"mid range", "mid-range", "moderate", "reasonable", "casual"}},
			{Tier: PriceTierBudget, Triggers: []string{"cheap", "affordable", "budget", "inexpensive", "low cost", "low-cost"}},
		},
		Features: []FeatureRule{
			{Feature: "pool", Triggers: []string{"pool"}},
			{Feature: "beachfront", Triggers: []string{"beachfront", "oceanfront", "on the beach", "beach front"}},
			{Feature: "pet friendly", Triggers: []string{"pet friendly", "pet-friendly", "dog friendly", "dogs allowed"}},
			{Feature: "family friendly", Triggers: []string{"family friendly", "family-friendly", "kid friendly", "kid-friendly", "for kids", "with kids", "with children"}},
			{Feature: "wifi", Triggers: []string{"wifi", "wi-fi"}},
			{Feature: "parking", Triggers: []string{"parking"}},
			{Feature: "vegan", Triggers: []string{"vegan"}},
			{Feature: "vegetarian", Triggers: []string{"vegetarian"}},
			{Feature: "gluten free", Triggers: []string{"gluten free", "gluten-free"}},
			{Feature: "accessible", Triggers: []string{"wheelchair", "accessible"}},
			{Feature: "live music", Triggers: []string{"live music", "live band"}},
			{Feature: "ocean view", Triggers: []string{"ocean view", "sea view", "waterfront", "water view"}},
			{Feature: "air conditioning", Triggers: []string{"air conditioning", "air-conditioned"}},
		},
		Activities: []ActivityRule{
			{Activity: "diving", Triggers: []string{"scuba", "dive", "diving"}},
			{Activity: "snorkeling", Triggers: []string{"snorkel"}},
			{Activity: "sailing", Triggers: []string{"sail", "catamaran"}},
			{Activity: "fishing", Triggers: []string{"fishing", "deep sea"}},
			{Activity: "kayaking", Triggers: []string{"kayak", "paddleboard", "bioluminescent"}},
			{Activity: "golf", Triggers: []string{"golf"}},
			{Activity: "hiking", Triggers: []string{"hike", "hiking", "trail"}},
			{Activity: "nightlife", Triggers: []string{"nightlife", "club", "party"}},
			{Activity: "shopping", Triggers: []string{"shopping", "boutique"}},
		},
		StopWords: []string{
			"the", "and", "for", "with", "near", "nearby", "around", "where",
			"what", "which", "that", "this", "are", "can", "you", "your",
			"get", "like", "want", "need", "looking", "find", "show", "give",
			"best", "good", "great", "top", "nice", "some", "any", "most",
			"recommend", "recommended", "recommendation", "suggest", "please",
			"place", "places", "spot", "spots", "there", "here", "visit",
			"island", "islands",
		},
		// "near me" with no user location resolves to the tourist corridor.
		DefaultAnchor: LocationAnchor{Name: "Seven Mile Beach", Lat: 19.3353, Lng: -81.3851, RadiusKm: 5},
	}
}

// LoadRules reads a YAML rules file. The file replaces the built-in tables
// wholesale; partial overrides are not merged.
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules: %w", err)
	}

	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}
	return &rules, nil
}
