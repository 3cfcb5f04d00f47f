package response_models

type CityImage struct {
	URL          string `json:"url"`
	Alt          string `json:"alt"`
	Photographer string `json:"photographer"`
	SourceURL    string `json:"sourceUrl"`
}
