package response_models

type CityResult struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
	State   string `json:"state,omitempty"`
	Type    string `json:"type"`
}
