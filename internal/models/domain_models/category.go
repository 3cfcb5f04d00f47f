package domain_models

import "strings"

// categoryByType maps Google place types to display categories.
var categoryByType = map[string]string{
	"restaurant":         "Restaurant",
	"food":               "Food",
	"meal_takeaway":      "Takeaway",
	"cafe":               "Cafe",
	"coffee_shop":        "Coffee Shop",
	"bakery":             "Bakery",
	"bar":                "Bar",
	"night_club":         "Nightclub",
	"tourist_attraction": "Attraction",
	"museum":             "Museum",
	"art_gallery":        "Gallery",
	"park":               "Park",
	"zoo":                "Zoo",
	"aquarium":           "Aquarium",
	"lodging":            "Hotel",
	"hotel":              "Hotel",
	"shopping_mall":      "Shopping",
	"store":              "Store",
	"supermarket":        "Supermarket",
	"spa":                "Spa",
	"gym":                "Gym",
	"library":            "Library",
	"movie_theater":      "Cinema",
	"casino":             "Casino",
	"church":             "Church",
	"mosque":             "Mosque",
	"synagogue":          "Synagogue",
	"hindu_temple":       "Temple",
	"subway_station":     "Subway",
	"train_station":      "Train Station",
	"bus_station":        "Bus Station",
	"airport":            "Airport",
	"travel_agency":      "Travel Agency",
}

// CategoryFromTypes picks a display category for a place from its type list:
// the first exact match wins, then a few pattern fallbacks, then "Place".
func CategoryFromTypes(types []string) string {
	for _, t := range types {
		if c, ok := categoryByType[t]; ok {
			return c
		}
	}
	for _, t := range types {
		switch {
		case strings.Contains(t, "restaurant") || strings.Contains(t, "food"):
			return "Restaurant"
		case strings.Contains(t, "tourist") || strings.Contains(t, "attraction"):
			return "Attraction"
		case strings.Contains(t, "lodging") || strings.Contains(t, "hotel"):
			return "Hotel"
		case strings.Contains(t, "store") || strings.Contains(t, "shopping"):
			return "Shopping"
		case strings.Contains(t, "entertainment") || strings.Contains(t, "theater"):
			return "Entertainment"
		}
	}
	return "Place"
}
