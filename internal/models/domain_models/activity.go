package domain_models

// Activity is a confirmed itinerary entry, assigned to one calendar day of a
// plan. Coordinates of 0,0 mean the location was never resolved; suggestions
// accepted from chat keep that sentinel as-is.
type Activity struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Lat       float64  `json:"lat"`
	Lng       float64  `json:"lng"`
	Time      string   `json:"time,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	Tags      []Tag    `json:"tags"`
	Types     []string `json:"types,omitempty"`
	Category  string   `json:"category,omitempty"`
	DateKey   string   `json:"dateKey"`
	CreatedAt int64    `json:"createdAt"`
}
