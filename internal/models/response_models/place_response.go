package response_models

type PlaceSuggestion struct {
	ID            string `json:"id"`
	MainText      string `json:"mainText"`
	SecondaryText string `json:"secondaryText"`
}

type PlaceDetails struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Lat     float64  `json:"lat"`
	Lng     float64  `json:"lng"`
	Types   []string `json:"types,omitempty"`
}
