package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"plingplan/internal/models/response_models"
	"plingplan/pkg/utils"
)

const unsplashBaseURL = "https://api.unsplash.com"

type ImageServiceInterface interface {
	SearchCityImages(city, country, sortBy string, count int, ctx context.Context) ([]response_models.CityImage, error)
}

// ImageService fetches curated landscape photos for a city from Unsplash.
// One request, no retry, no caching; a failed or empty search is scoped to
// the image section of the UI and never touches plan state.
type ImageService struct {
	accessKey  string
	baseURL    string
	httpClient *http.Client
}

func NewImageService(accessKey string, httpClient *http.Client) ImageServiceInterface {
	return &ImageService{accessKey: accessKey, baseURL: unsplashBaseURL, httpClient: httpClient}
}

type unsplashSearchResponse struct {
	Total   int `json:"total"`
	Results []struct {
		AltDescription string `json:"alt_description"`
		URLs           struct {
			Regular string `json:"regular"`
		} `json:"urls"`
		User struct {
			Name string `json:"name"`
		} `json:"user"`
		Links struct {
			HTML string `json:"html"`
		} `json:"links"`
	} `json:"results"`
}

func (s *ImageService) SearchCityImages(city, country, sortBy string, count int, ctx context.Context) ([]response_models.CityImage, error) {
	if s.accessKey == "" || s.accessKey == "demo" {
		return nil, utils.NotConfigured("UNSPLASH_ACCESS_KEY")
	}

	perPage := 10
	if count > 1 {
		perPage = 30
	}
	query := city
	if country != "" {
		query += " " + country
	}
	orderBy := "curated"
	if sortBy == "latest" {
		orderBy = "latest"
	}
	endpoint := fmt.Sprintf(
		"%s/search/photos?query=%s&orientation=landscape&per_page=%d&order_by=%s",
		s.baseURL, url.QueryEscape(query), perPage, orderBy,
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Client-ID "+s.accessKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unsplash search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, upstreamError("unsplash search", resp)
	}

	var data unsplashSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("unsplash decode: %w", err)
	}
	if len(data.Results) == 0 {
		return nil, utils.ErrNoImagesFound
	}

	if count > len(data.Results) {
		count = len(data.Results)
	}
	images := make([]response_models.CityImage, 0, count)
	for _, photo := range data.Results[:count] {
		alt := photo.AltDescription
		if alt == "" {
			alt = city + " city view"
		}
		photographer := photo.User.Name
		if photographer == "" {
			photographer = "Unknown"
		}
		images = append(images, response_models.CityImage{
			URL:          photo.URLs.Regular,
			Alt:          alt,
			Photographer: photographer,
			SourceURL:    photo.Links.HTML,
		})
	}
	return images, nil
}
