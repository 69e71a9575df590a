// Package e2e exercises the full retrieval pipeline end to end: catalog
// loading, offline embedding generation, the vector store, and the search
// engine with its intent analysis and hybrid ranking. The corpus below is a
// realistic slice of the Cayman Islands catalog, sized so that every category
// and every ranking signal has entries to act on.
package e2e

import (
	"github.com/islandhop/placesearch/internal/catalog"
)

// QueryTestCase pairs a query with the place ID(s) a correct ranking must
// surface. At least one of ExpectedIDs must appear inside the result window;
// exact ordering is asserted separately for a few unambiguous queries.
type QueryTestCase struct {
	Query       string
	ExpectedIDs []string
	Description string
}

// Corpus holds the shared e2e catalog entries and query test cases.
type Corpus struct {
	Entries   []catalog.Entry
	TestCases []QueryTestCase
}

// BuildCorpus returns the e2e catalog and its query cases. Coordinates sit
// inside the gazetteer radius of the district each entry names, so location
// anchored queries behave the same way they do against production data.
func BuildCorpus() *Corpus {
	entries := []catalog.Entry{
		// Beaches.
		{
			ID:               "seven-mile-beach",
			Name:             "Seven Mile Beach",
			Category:         catalog.CategoryBeach,
			Tags:             []string{"swimming", "sunset", "family friendly"},
			Highlights:       []string{"calm clear water", "white coral sand"},
			ShortDescription: "Seven miles of white coral sand with calm, clear water on the island's west coast.",
			Location:         catalog.Location{Lat: 19.3400, Lng: -81.3860, District: "Seven Mile Beach", Island: "Grand Cayman"},
			PriceTier:        1,
			Rating:           catalog.Rating{Overall: 4.9, ReviewCount: 2450},
			QualityScore:     0.95,
			Media:            catalog.Media{ThumbnailPresent: true},
			IsFeatured:       true,
		},
		{
			ID:               "governors-beach",
			Name:             "Governors Beach",
			Category:         catalog.CategoryBeach,
			Tags:             []string{"swimming", "picnic"},
			Highlights:       []string{"shaded casuarina trees"},
			ShortDescription: "Quiet public stretch of Seven Mile Beach beside the Governor's residence.",
			Location:         catalog.Location{Lat: 19.3310, Lng: -81.3830, District: "Seven Mile Beach", Island: "Grand Cayman"},
			PriceTier:        1,
			Rating:           catalog.Rating{Overall: 4.7, ReviewCount: 310},
		},
		{
			ID:               "starfish-point",
			Name:             "Starfish Point",
			Category:         catalog.CategoryBeach,
			Tags:             []string{"starfish", "shallow water", "family friendly"},
			ShortDescription: "Shallow, protected sand flat where red cushion starfish gather.",
			Location:         catalog.Location{Lat: 19.3770, Lng: -81.2840, District: "North Side", Island: "Grand Cayman"},
			PriceTier:        1,
			Rating:           catalog.Rating{Overall: 4.6, ReviewCount: 540},
			Media:            catalog.Media{ThumbnailPresent: true},
		},
		{
			ID:               "rum-point-beach",
			Name:             "Rum Point Beach",
			Category:         catalog.CategoryBeach,
			Tags:             []string{"hammocks", "swimming"},
			ShortDescription: "Casuarina-shaded beach with hammocks and a long shallow swim zone.",
			Location:         catalog.Location{Lat: 19.3690, Lng: -81.2750, District: "Rum Point", Island: "Grand Cayman"},
			PriceTier:        1,
			Rating:           catalog.Rating{Overall: 4.7, ReviewCount: 880},
		},
		{
			ID:               "smith-barcadere",
			Name:             "Smith Barcadere",
			Category:         catalog.CategoryBeach,
			Tags:             []string{"snorkeling", "cove", "sunset"},
			ShortDescription: "Small rocky cove south of George Town with easy shore snorkeling.",
			Location:         catalog.Location{Lat: 19.2780, Lng: -81.3920, District: "George Town", Island: "Grand Cayman"},
			PriceTier:        1,
			Rating:           catalog.Rating{Overall: 4.6, ReviewCount: 420},
		},
		{
			ID:               "spotts-beach",
			Name:             "Spotts Beach",
			Category:         catalog.CategoryBeach,
			Tags:             []string{"turtles", "snorkeling"},
			Highlights:       []string{"green sea turtles feed close to shore"},
			ShortDescription: "Narrow beach where green sea turtles graze on the seagrass most mornings.",
			Location:         catalog.Location{Lat: 19.2720, Lng: -81.3210, District: "Savannah", Island: "Grand Cayman"},
			PriceTier:        1,
			Rating:           catalog.Rating{Overall: 4.5, ReviewCount: 390},
		},
		{
			ID:               "point-of-sand",
			Name:             "Point of Sand",
			Category:         catalog.CategoryBeach,
			Tags:             []string{"secluded", "snorkeling"},
			ShortDescription: "Remote pink-tinged sand spit with views across to Cayman Brac.",
			Location:         catalog.Location{Lat: 19.6570, Lng: -79.9680, District: "Little Cayman", Island: "Little Cayman"},
			PriceTier:        1,
			Rating:           catalog.Rating{Overall: 4.8, ReviewCount: 95},
		},

		// Restaurants.
		{
			ID:               "blue-by-eric-ripert",
			Name:             "Blue by Eric Ripert",
			Category:         catalog.CategoryRestaurant,
			Subcategory:      "fine dining",
			Tags:             []string{"seafood", "fine dining", "wine"},
			Highlights:       []string{"tasting menus", "caught-to-order seafood"},
			ShortDescription: "Fine dining seafood tasting menus at the Ritz-Carlton.",
			Location:         catalog.Location{Lat: 19.3440, Lng: -81.3880, District: "Seven Mile Beach", Island: "Grand Cayman"},
			PriceTier:        4,
			Rating:           catalog.Rating{Overall: 4.8, ReviewCount: 640},
			QualityScore:     0.85,
			ContactFlags:     catalog.ContactFlags{HasWebsite: true, HasPhone: true, HasBooking: true},
			IsPremium:        true,
		},
		{
			ID:               "calypso-grill",
			Name:             "Calypso Grill",
			Category:         catalog.CategoryRestaurant,
			Tags:             []string{"seafood", "waterfront"},
			Highlights:       []string{"sticky toffee pudding"},
			ShortDescription: "Colourful waterfront dining room overlooking Morgan's Harbour.",
			Location:         catalog.Location{Lat: 19.3830, Lng: -81.4100, District: "West Bay", Island: "Grand Cayman"},
			PriceTier:        3,
			Rating:           catalog.Rating{Overall: 4.7, ReviewCount: 580},
			ContactFlags:     catalog.ContactFlags{HasWebsite: true, HasPhone: true, HasBooking: true},
		},
		{
			ID:               "vivines-kitchen",
			Name:             "Vivine's Kitchen",
			Category:         catalog.CategoryRestaurant,
			Subcategory:      "caribbean",
			Tags:             []string{"local food", "caribbean"},
			Highlights:       []string{"oxtail and rundown from a home kitchen"},
			ShortDescription: "Home-style Caymanian cooking served on a seaside porch in Gun Bay.",
			Location:         catalog.Location{Lat: 19.2950, Lng: -81.0880, District: "East End", Island: "Grand Cayman"},
			PriceTier:        1,
			Rating:           catalog.Rating{Overall: 4.6, ReviewCount: 210},
			ContactFlags:     catalog.ContactFlags{HasPhone: true},
		},
		{
			ID:               "agua-restaurant",
			Name:             "Agua Restaurant",
			Category:         catalog.CategoryRestaurant,
			Subcategory:      "seafood",
			Tags:             []string{"seafood", "ceviche"},
			ShortDescription: "Latin-leaning seafood and ceviche on the Camana Bay waterfront.",
			Location:         catalog.Location{Lat: 19.3230, Lng: -81.3760, District: "Camana Bay", Island: "Grand Cayman"},
			PriceTier:        3,
			Rating:           catalog.Rating{Overall: 4.6, ReviewCount: 470},
			ContactFlags:     catalog.ContactFlags{HasWebsite: true, HasBooking: true},
		},
		{
			ID:               "cimboco",
			Name:             "Cimboco",
			Category:         catalog.CategoryRestaurant,
			Subcategory:      "casual",
			Tags:             []string{"casual", "breakfast", "brunch"},
			ShortDescription: "Casual all-day Caribbean restaurant serving breakfast through dinner.",
			Location:         catalog.Location{Lat: 19.3260, Lng: -81.3800, District: "Seven Mile Beach", Island: "Grand Cayman"},
			PriceTier:        2,
			Rating:           catalog.Rating{Overall: 4.5, ReviewCount: 520},
		},

		// Bars.
		{
			ID:               "coccoloba",
			Name:             "Coccoloba Bar",
			Category:         catalog.CategoryBar,
			Subcategory:      "beach bar",
			Tags:             []string{"cocktails", "tacos", "sunset"},
			Highlights:       []string{"toes-in-the-sand cocktails"},
			ShortDescription: "Open-air beach bar with tacos and frozen cocktails at sunset.",
			Location:         catalog.Location{Lat: 19.3530, Lng: -81.3890, District: "Seven Mile Beach", Island: "Grand Cayman"},
			PriceTier:        2,
			Rating:           catalog.Rating{Overall: 4.7, ReviewCount: 430},
		},
		{
			ID:               "kaibo-beach-bar",
			Name:             "Kaibo Beach Bar",
			Category:         catalog.CategoryBar,
			Tags:             []string{"cocktails", "live music"},
			Highlights:       []string{"mudslides by the dock"},
			ShortDescription: "Barefoot bar and grill on the Cayman Kai waterfront, live music on weekends.",
			Location:         catalog.Location{Lat: 19.3640, Lng: -81.2860, District: "Cayman Kai", Island: "Grand Cayman"},
			PriceTier:        2,
			Rating:           catalog.Rating{Overall: 4.6, ReviewCount: 690},
		},
		{
			ID:               "macabuca",
			Name:             "Macabuca Tiki Bar",
			Category:         catalog.CategoryBar,
			Tags:             []string{"tiki", "nightlife", "oceanfront"},
			ShortDescription: "Oceanfront tiki bar with cliffside sunset drinks and weekend DJs.",
			Location:         catalog.Location{Lat: 19.3860, Lng: -81.4040, District: "West Bay", Island: "Grand Cayman"},
			PriceTier:        2,
			Rating:           catalog.Rating{Overall: 4.5, ReviewCount: 510},
		},

		// Cafes.
		{
			ID:               "bread-and-chocolate",
			Name:             "Bread & Chocolate",
			Category:         catalog.CategoryCafe,
			Subcategory:      "vegan",
			Tags:             []string{"vegan", "coffee", "brunch"},
			Highlights:       []string{"plant-based breakfast"},
			ShortDescription: "Vegan cafe in town known for coffee, baked goods and brunch.",
			Location:         catalog.Location{Lat: 19.2930, Lng: -81.3800, District: "George Town", Island: "Grand Cayman"},
			PriceTier:        2,
			Rating:           catalog.Rating{Overall: 4.6, ReviewCount: 380},
		},
		{
			ID:               "cafe-del-sol",
			Name:             "Cafe del Sol",
			Category:         catalog.CategoryCafe,
			Tags:             []string{"coffee", "espresso", "smoothies"},
			ShortDescription: "Island coffeehouse pouring espresso and smoothies by the harbour.",
			Location:         catalog.Location{Lat: 19.3215, Lng: -81.3765, District: "Camana Bay", Island: "Grand Cayman"},
			PriceTier:        1,
			Rating:           catalog.Rating{Overall: 4.4, ReviewCount: 260},
		},

		// Watersports operators.
		{
			ID:               "red-sail-sports",
			Name:             "Red Sail Sports",
			Category:         catalog.CategoryWatersport,
			Tags:             []string{"catamaran", "sailing", "snorkel trips"},
			Highlights:       []string{"sunset catamaran sails"},
			ShortDescription: "Catamaran charters, sailing and snorkel trips from Seven Mile Beach.",
			Location:         catalog.Location{Lat: 19.3460, Lng: -81.3880, District: "Seven Mile Beach", Island: "Grand Cayman"},
			PriceTier:        3,
			Rating:           catalog.Rating{Overall: 4.6, ReviewCount: 720},
			ContactFlags:     catalog.ContactFlags{HasWebsite: true, HasBooking: true},
		},
		{
			ID:               "cayman-kayaks",
			Name:             "Cayman Kayaks",
			Category:         catalog.CategoryWatersport,
			Subcategory:      "kayak tours",
			Tags:             []string{"kayak", "bioluminescent bay", "eco tour"},
			Highlights:       []string{"glowing bio bay after dark"},
			ShortDescription: "Guided kayak tours of the bioluminescent bay near Rum Point.",
			Location:         catalog.Location{Lat: 19.3640, Lng: -81.2700, District: "Rum Point", Island: "Grand Cayman"},
			PriceTier:        2,
			Rating:           catalog.Rating{Overall: 4.8, ReviewCount: 350},
			ContactFlags:     catalog.ContactFlags{HasWebsite: true, HasBooking: true},
		},
		{
			ID:               "stingray-city-charters",
			Name:             "Stingray City Charters",
			Category:         catalog.CategoryWatersport,
			Subcategory:      "boat tours",
			Tags:             []string{"stingray sandbar", "boat", "snorkel stops"},
			Highlights:       []string{"wade with southern stingrays"},
			ShortDescription: "Small-boat trips to the Stingray City sandbar with snorkel stops.",
			Location:         catalog.Location{Lat: 19.3860, Lng: -81.3050, District: "North Sound", Island: "Grand Cayman"},
			PriceTier:        2,
			Rating:           catalog.Rating{Overall: 4.7, ReviewCount: 910},
			Media:            catalog.Media{ThumbnailPresent: true},
			ContactFlags:     catalog.ContactFlags{HasWebsite: true, HasBooking: true},
			IsFeatured:       true,
		},
		{
			ID:               "white-sand-water-sports",
			Name:             "White Sand Water Sports",
			Category:         catalog.CategoryWatersport,
			Tags:             []string{"jet ski", "paddleboard"},
			ShortDescription: "Jet ski and paddleboard rentals from the public beach.",
			Location:         catalog.Location{Lat: 19.3380, Lng: -81.3855, District: "Seven Mile Beach", Island: "Grand Cayman"},
			PriceTier:        2,
			Rating:           catalog.Rating{Overall: 4.5, ReviewCount: 280},
		},

		// Dive operators.
		{
			ID:               "eden-rock-divers",
			Name:             "Eden Rock Dive Center",
			Category:         catalog.CategoryDiving,
			Tags:             []string{"shore diving", "reef", "grottoes"},
			Highlights:       []string{"swim-through grottoes off the ironshore"},
			ShortDescription: "Shore diving and snorkel access to the Eden Rock and Devil's Grotto reefs.",
			Location:         catalog.Location{Lat: 19.2900, Lng: -81.3870, District: "George Town", Island: "Grand Cayman"},
			PriceTier:        2,
			Rating:           catalog.Rating{Overall: 4.7, ReviewCount: 460},
			QualityScore:     0.7,
			ContactFlags:     catalog.ContactFlags{HasWebsite: true, HasPhone: true},
		},
		{
			ID:               "kittiwake-wreck-diving",
			Name:             "Kittiwake Shipwreck & Reef",
			Category:         catalog.CategoryDiving,
			Subcategory:      "wreck diving",
			Tags:             []string{"wreck", "scuba", "advanced"},
			Highlights:       []string{"purpose-sunk submarine rescue vessel"},
			ShortDescription: "Guided scuba dives on the Kittiwake wreck and the adjacent reef wall.",
			Location:         catalog.Location{Lat: 19.3620, Lng: -81.4010, District: "West Bay", Island: "Grand Cayman"},
			PriceTier:        3,
			Rating:           catalog.Rating{Overall: 4.9, ReviewCount: 830},
			QualityScore:     0.9,
			Media:            catalog.Media{ThumbnailPresent: true},
			ContactFlags:     catalog.ContactFlags{HasWebsite: true, HasBooking: true},
			IsFeatured:       true,
		},
		{
			ID:               "bloody-bay-wall",
			Name:             "Bloody Bay Wall Dives",
			Category:         catalog.CategoryDiving,
			Subcategory:      "wall diving",
			Tags:             []string{"wall diving", "scuba", "drop-off"},
			Highlights:       []string{"sheer mile-deep coral wall"},
			ShortDescription: "Boat dives along Little Cayman's sheer Bloody Bay Wall.",
			Location:         catalog.Location{Lat: 19.7000, Lng: -80.0800, District: "Little Cayman", Island: "Little Cayman"},
			PriceTier:        3,
			Rating:           catalog.Rating{Overall: 4.9, ReviewCount: 240},
			QualityScore:     0.85,
			ContactFlags:     catalog.ContactFlags{HasWebsite: true, HasBooking: true},
		},
		{
			ID:               "brac-reef-divers",
			Name:             "Brac Reef Divers",
			Category:         catalog.CategoryDiving,
			Tags:             []string{"scuba", "reef", "wreck"},
			ShortDescription: "Dive operator covering Cayman Brac's reefs and the Tibbetts wreck.",
			Location:         catalog.Location{Lat: 19.7110, Lng: -79.8830, District: "Cayman Brac", Island: "Cayman Brac"},
			PriceTier:        2,
			Rating:           catalog.Rating{Overall: 4.6, ReviewCount: 180},
			ContactFlags:     catalog.ContactFlags{HasPhone: true},
		},

		// Attractions.
		{
			ID:               "cayman-turtle-centre",
			Name:             "Cayman Turtle Centre",
			Category:         catalog.CategoryAttraction,
			Tags:             []string{"turtles", "conservation", "family friendly"},
			Highlights:       []string{"touch tanks and turtle lagoon", "snorkel lagoon with turtles"},
			ShortDescription: "Conservation park where visitors watch, and snorkel beside, green sea turtles.",
			Location:         catalog.Location{Lat: 19.3820, Lng: -81.4180, District: "West Bay", Island: "Grand Cayman"},
			PriceTier:        2,
			Rating:           catalog.Rating{Overall: 4.4, ReviewCount: 1320},
			Media:            catalog.Media{ThumbnailPresent: true},
			ContactFlags:     catalog.ContactFlags{HasWebsite: true, HasBooking: true},
		},
		{
			ID:               "crystal-caves",
			Name:             "Cayman Crystal Caves",
			Category:         catalog.CategoryAttraction,
			Tags:             []string{"caves", "guided tour", "stalagmites"},
			ShortDescription: "Guided tours through crystal-filled limestone caves under the tropical forest.",
			Location:         catalog.Location{Lat: 19.3420, Lng: -81.1950, District: "North Side", Island: "Grand Cayman"},
			PriceTier:        2,
			Rating:           catalog.Rating{Overall: 4.7, ReviewCount: 980},
			QualityScore:     0.8,
			ContactFlags:     catalog.ContactFlags{HasWebsite: true, HasBooking: true},
		},
		{
			ID:               "qe2-botanic-park",
			Name:             "Queen Elizabeth II Botanic Park",
			Category:         catalog.CategoryAttraction,
			Tags:             []string{"botanic garden", "blue iguana", "trails"},
			Highlights:       []string{"blue iguana habitat"},
			ShortDescription: "Botanic park with garden trails and the blue iguana breeding habitat.",
			Location:         catalog.Location{Lat: 19.3170, Lng: -81.1700, District: "North Side", Island: "Grand Cayman"},
			PriceTier:        1,
			Rating:           catalog.Rating{Overall: 4.8, ReviewCount: 760},
		},
		{
			ID:               "pedro-st-james",
			Name:             "Pedro St. James",
			Category:         catalog.CategoryAttraction,
			Subcategory:      "historic site",
			Tags:             []string{"history", "landmark", "great house"},
			ShortDescription: "Restored 18th-century great house and the birthplace of Caymanian democracy.",
			Location:         catalog.Location{Lat: 19.2680, Lng: -81.3060, District: "Savannah", Island: "Grand Cayman"},
			PriceTier:        1,
			Rating:           catalog.Rating{Overall: 4.5, ReviewCount: 410},
		},
		{
			ID:               "camana-bay-observation-tower",
			Name:             "Camana Bay Observation Tower",
			Category:         catalog.CategoryAttraction,
			Tags:             []string{"viewpoint", "landmark", "family friendly"},
			ShortDescription: "Spiral mosaic tower with 360-degree views over the North Sound.",
			Location:         catalog.Location{Lat: 19.3225, Lng: -81.3775, District: "Camana Bay", Island: "Grand Cayman"},
			PriceTier:        1,
			Rating:           catalog.Rating{Overall: 4.6, ReviewCount: 530},
		},

		// Shopping.
		{
			ID:               "kirk-freeport",
			Name:             "Kirk Freeport",
			Category:         catalog.CategoryShopping,
			Subcategory:      "duty free",
			Tags:             []string{"duty free", "jewelry", "watches"},
			Highlights:       []string{"duty-free watches and jewellery"},
			ShortDescription: "Duty-free jewellery, watch and fragrance galleries in the cruise port blocks.",
			Location:         catalog.Location{Lat: 19.2950, Lng: -81.3850, District: "George Town", Island: "Grand Cayman"},
			PriceTier:        3,
			Rating:           catalog.Rating{Overall: 4.3, ReviewCount: 290},
			QualityScore:     0.7,
			ContactFlags:     catalog.ContactFlags{HasWebsite: true, HasPhone: true},
			IsFeatured:       true,
		},
		{
			ID:               "cayman-craft-market",
			Name:             "Cayman Craft Market",
			Category:         catalog.CategoryShopping,
			Tags:             []string{"souvenirs", "local crafts"},
			ShortDescription: "Open-air waterfront stalls for souvenirs, carvings and thatch work.",
			Location:         catalog.Location{Lat: 19.2920, Lng: -81.3865, District: "George Town", Island: "Grand Cayman"},
			PriceTier:        1,
			Rating:           catalog.Rating{Overall: 4.2, ReviewCount: 240},
		},

		// Spas and wellness.
		{
			ID:               "silver-rain-spa",
			Name:             "Silver Rain Spa",
			Category:         catalog.CategorySpa,
			Tags:             []string{"massage", "luxury", "facials"},
			ShortDescription: "La Prairie treatments, massage and facials at the Ritz-Carlton.",
			Location:         catalog.Location{Lat: 19.3445, Lng: -81.3885, District: "Seven Mile Beach", Island: "Grand Cayman"},
			PriceTier:        4,
			Rating:           catalog.Rating{Overall: 4.7, ReviewCount: 190},
			ContactFlags:     catalog.ContactFlags{HasWebsite: true, HasBooking: true},
		},
		{
			ID:               "bliss-yoga",
			Name:             "Bliss Yoga Cayman",
			Category:         catalog.CategorySpa,
			Subcategory:      "yoga",
			Tags:             []string{"yoga", "wellness", "classes"},
			ShortDescription: "Daily yoga and wellness classes in a bright harbourside studio.",
			Location:         catalog.Location{Lat: 19.2940, Lng: -81.3790, District: "George Town", Island: "Grand Cayman"},
			PriceTier:        2,
			Rating:           catalog.Rating{Overall: 4.8, ReviewCount: 150},
		},

		// Hotels.
		{
			ID:               "ritz-carlton-grand-cayman",
			Name:             "The Ritz-Carlton, Grand Cayman",
			Category:         catalog.CategoryHotel,
			Subcategory:      "resort",
			Tags:             []string{"resort", "family friendly", "pool"},
			Highlights:       []string{"beachfront resort", "kids programme"},
			ShortDescription: "Beachfront luxury resort on Seven Mile Beach with pools, spa and kids programme.",
			Location:         catalog.Location{Lat: 19.3440, Lng: -81.3875, District: "Seven Mile Beach", Island: "Grand Cayman"},
			PriceTier:        4,
			Rating:           catalog.Rating{Overall: 4.8, ReviewCount: 1650},
			QualityScore:     0.9,
			Media:            catalog.Media{ThumbnailPresent: true},
			ContactFlags:     catalog.ContactFlags{HasWebsite: true, HasPhone: true, HasBooking: true},
			IsFeatured:       true,
			IsPremium:        true,
		},
		{
			ID:               "sunshine-suites",
			Name:             "Sunshine Suites Resort",
			Category:         catalog.CategoryHotel,
			Tags:             []string{"suites", "value", "pool"},
			ShortDescription: "Cheerful all-suite hotel a short walk from the public beach.",
			Location:         catalog.Location{Lat: 19.3390, Lng: -81.3820, District: "Seven Mile Beach", Island: "Grand Cayman"},
			PriceTier:        2,
			Rating:           catalog.Rating{Overall: 4.6, ReviewCount: 980},
			ContactFlags:     catalog.ContactFlags{HasWebsite: true, HasBooking: true},
		},
		{
			ID:               "southern-cross-club",
			Name:             "Southern Cross Club",
			Category:         catalog.CategoryHotel,
			Subcategory:      "dive resort",
			Tags:             []string{"dive resort", "bonefishing"},
			ShortDescription: "Barefoot beachfront resort with diving and bonefishing on Little Cayman.",
			Location:         catalog.Location{Lat: 19.6690, Lng: -80.0630, District: "Little Cayman", Island: "Little Cayman"},
			PriceTier:        3,
			Rating:           catalog.Rating{Overall: 4.9, ReviewCount: 210},
			ContactFlags:     catalog.ContactFlags{HasWebsite: true, HasBooking: true},
		},

		// Golf.
		{
			ID:               "north-sound-golf-club",
			Name:             "North Sound Golf Club",
			Category:         catalog.CategoryGolf,
			Tags:             []string{"18 holes", "tee times"},
			Highlights:       []string{"grass greens all year"},
			ShortDescription: "The island's 18-hole championship course beside the North Sound.",
			Location:         catalog.Location{Lat: 19.3560, Lng: -81.3740, District: "Seven Mile Beach", Island: "Grand Cayman"},
			PriceTier:        3,
			Rating:           catalog.Rating{Overall: 4.5, ReviewCount: 170},
			ContactFlags:     catalog.ContactFlags{HasWebsite: true, HasPhone: true, HasBooking: true},
		},

		// Medical.
		{
			ID:               "health-city-cayman-islands",
			Name:             "Health City Cayman Islands",
			Category:         catalog.CategoryMedical,
			Subcategory:      "hospital",
			Tags:             []string{"hospital", "surgery", "urgent care"},
			ShortDescription: "Accredited hospital campus in East End with urgent care around the clock.",
			Location:         catalog.Location{Lat: 19.2890, Lng: -81.1150, District: "East End", Island: "Grand Cayman"},
			Rating:           catalog.Rating{Overall: 4.8, ReviewCount: 310},
			QualityScore:     0.9,
			ContactFlags:     catalog.ContactFlags{HasWebsite: true, HasPhone: true},
			IsFeatured:       true,
		},
		{
			ID:               "seven-mile-medical",
			Name:             "Seven Mile Medical Clinic",
			Category:         catalog.CategoryMedical,
			Subcategory:      "clinic",
			Tags:             []string{"walk-in clinic", "doctors"},
			ShortDescription: "Walk-in clinic with same-day doctor appointments on West Bay Road.",
			Location:         catalog.Location{Lat: 19.3370, Lng: -81.3845, District: "Seven Mile Beach", Island: "Grand Cayman"},
			Rating:           catalog.Rating{Overall: 4.7, ReviewCount: 140},
			ContactFlags:     catalog.ContactFlags{HasPhone: true},
		},
		{
			ID:               "island-pharmacy",
			Name:             "Island Pharmacy",
			Category:         catalog.CategoryMedical,
			Subcategory:      "pharmacy",
			Tags:             []string{"pharmacy", "prescriptions"},
			ShortDescription: "Full-service pharmacy with prescriptions and travel health supplies.",
			Location:         catalog.Location{Lat: 19.2910, Lng: -81.3760, District: "George Town", Island: "Grand Cayman"},
			Rating:           catalog.Rating{Overall: 4.5, ReviewCount: 90},
			ContactFlags:     catalog.ContactFlags{HasPhone: true},
		},

		// Legal.
		{
			ID:               "harbour-legal-chambers",
			Name:             "Harbour Legal Chambers",
			Category:         catalog.CategoryLegal,
			Tags:             []string{"law firm", "corporate", "notary"},
			ShortDescription: "Corporate and private-client law firm in the George Town financial district.",
			Location:         catalog.Location{Lat: 19.2900, Lng: -81.3755, District: "George Town", Island: "Grand Cayman"},
			Rating:           catalog.Rating{Overall: 4.6, ReviewCount: 45},
			ContactFlags:     catalog.ContactFlags{HasWebsite: true, HasPhone: true},
		},

		// Financial services.
		{
			ID:               "cayman-national-bank",
			Name:             "Cayman National Bank",
			Category:         catalog.CategoryFinancial,
			Subcategory:      "banking",
			Tags:             []string{"bank", "accounts"},
			ShortDescription: "Full-service retail and private banking headquartered in George Town.",
			Location:         catalog.Location{Lat: 19.2935, Lng: -81.3765, District: "George Town", Island: "Grand Cayman"},
			Rating:           catalog.Rating{Overall: 4.1, ReviewCount: 160},
			ContactFlags:     catalog.ContactFlags{HasWebsite: true, HasPhone: true},
		},
		{
			ID:               "crown-wealth-advisors",
			Name:             "Crown Wealth Advisors",
			Category:         catalog.CategoryFinancial,
			Subcategory:      "wealth management",
			Tags:             []string{"wealth management", "investment"},
			ShortDescription: "Boutique investment and wealth management practice in Camana Bay.",
			Location:         catalog.Location{Lat: 19.3218, Lng: -81.3772, District: "Camana Bay", Island: "Grand Cayman"},
			Rating:           catalog.Rating{Overall: 4.7, ReviewCount: 38},
			ContactFlags:     catalog.ContactFlags{HasWebsite: true},
		},

		// Real estate.
		{
			ID:               "island-living-realty",
			Name:             "Island Living Realty",
			Category:         catalog.CategoryRealEstate,
			Tags:             []string{"real estate", "relocation", "rentals"},
			Highlights:       []string{"relocation specialists"},
			ShortDescription: "Residential sales, rentals and relocation support along Seven Mile Beach.",
			Location:         catalog.Location{Lat: 19.3405, Lng: -81.3840, District: "Seven Mile Beach", Island: "Grand Cayman"},
			Rating:           catalog.Rating{Overall: 4.8, ReviewCount: 88},
			ContactFlags:     catalog.ContactFlags{HasWebsite: true, HasPhone: true},
		},
		{
			ID:               "coral-stone-properties",
			Name:             "Coral Stone Properties",
			Category:         catalog.CategoryRealEstate,
			Tags:             []string{"property", "condos"},
			ShortDescription: "Boutique property agency for condos and waterfront homes.",
			Location:         catalog.Location{Lat: 19.3227, Lng: -81.3768, District: "Camana Bay", Island: "Grand Cayman"},
			Rating:           catalog.Rating{Overall: 4.6, ReviewCount: 62},
			ContactFlags:     catalog.ContactFlags{HasWebsite: true},
		},
	}

	cases := []QueryTestCase{
		{
			Query:       "white sand beach",
			ExpectedIDs: []string{"seven-mile-beach"},
			Description: "signature beach found by its sand",
		},
		{
			Query:       "snorkeling with turtles",
			ExpectedIDs: []string{"spotts-beach", "cayman-turtle-centre"},
			Description: "turtle snorkeling spans beach and attraction",
		},
		{
			Query:       "scuba diving the wreck",
			ExpectedIDs: []string{"kittiwake-wreck-diving"},
			Description: "wreck query lands on the wreck dive",
		},
		{
			Query:       "best place for cocktails at sunset",
			ExpectedIDs: []string{"coccoloba", "macabuca"},
			Description: "cocktail query surfaces the sunset bars",
		},
		{
			Query:       "coffee and smoothies",
			ExpectedIDs: []string{"cafe-del-sol", "bread-and-chocolate"},
			Description: "cafe query finds the coffeehouses",
		},
		{
			Query:       "vegan brunch",
			ExpectedIDs: []string{"bread-and-chocolate"},
			Description: "dietary keyword picks the vegan cafe",
		},
		{
			Query:       "romantic fine dining seafood",
			ExpectedIDs: []string{"blue-by-eric-ripert"},
			Description: "upscale dining query reaches the tasting menu",
		},
		{
			Query:       "cheap local caribbean food",
			ExpectedIDs: []string{"vivines-kitchen"},
			Description: "budget signal plus cuisine finds the local kitchen",
		},
		{
			Query:       "kayak tour of the bioluminescent bay",
			ExpectedIDs: []string{"cayman-kayaks"},
			Description: "activity query matches the kayak operator",
		},
		{
			Query:       "catamaran sunset sail",
			ExpectedIDs: []string{"red-sail-sports"},
			Description: "sailing query matches the catamaran operator",
		},
		{
			Query:       "swim with stingrays",
			ExpectedIDs: []string{"stingray-city-charters"},
			Description: "sandbar trip found by its activity",
		},
		{
			Query:       "duty free jewelry shopping",
			ExpectedIDs: []string{"kirk-freeport"},
			Description: "duty free query hits the jewellery galleries",
		},
		{
			Query:       "day spa massage",
			ExpectedIDs: []string{"silver-rain-spa"},
			Description: "spa query finds the treatment rooms",
		},
		{
			Query:       "family resort on seven mile beach",
			ExpectedIDs: []string{"ritz-carlton-grand-cayman", "sunshine-suites"},
			Description: "anchored hotel query stays on the beach strip",
		},
		{
			Query:       "tee time on a championship course",
			ExpectedIDs: []string{"north-sound-golf-club"},
			Description: "golf query finds the only course",
		},
		{
			Query:       "walk in clinic for a doctor visit",
			ExpectedIDs: []string{"seven-mile-medical"},
			Description: "clinic trigger unlocks the medical category",
		},
		{
			Query:       "urgent care hospital",
			ExpectedIDs: []string{"health-city-cayman-islands"},
			Description: "hospital query reaches the medical campus",
		},
		{
			Query:       "law firm in george town",
			ExpectedIDs: []string{"harbour-legal-chambers"},
			Description: "legal trigger unlocks the law firm",
		},
		{
			Query:       "offshore banking and wealth management",
			ExpectedIDs: []string{"cayman-national-bank", "crown-wealth-advisors"},
			Description: "financial trigger unlocks banking results",
		},
		{
			Query:       "real estate agent for relocation",
			ExpectedIDs: []string{"island-living-realty"},
			Description: "relocation query finds the realty office",
		},
		{
			Query:       "wall diving little cayman",
			ExpectedIDs: []string{"bloody-bay-wall"},
			Description: "sister island anchor keeps results on Little Cayman",
		},
		{
			Query:       "guided tour of the crystal caves",
			ExpectedIDs: []string{"crystal-caves"},
			Description: "named attraction found by its tour",
		},
		{
			Query:       "cocktails at rum point",
			ExpectedIDs: []string{"kaibo-beach-bar"},
			Description: "north coast anchor excludes the west side bars",
		},
		{
			Query:       "blue iguana botanic garden",
			ExpectedIDs: []string{"qe2-botanic-park"},
			Description: "wildlife query finds the botanic park",
		},
	}

	return &Corpus{Entries: entries, TestCases: cases}
}
