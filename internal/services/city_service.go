package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"plingplan/internal/models/response_models"
)

const (
	nominatimBaseURL = "https://nominatim.openstreetmap.org"
	maxCityResults   = 8
)

type CityServiceInterface interface {
	SearchCities(query string, ctx context.Context) ([]response_models.CityResult, error)
}

// CityService resolves free-text city queries: Google Places first (when a
// key is configured), Nominatim as the fallback for errors, missing keys and
// empty result sets.
type CityService struct {
	placesAPIKey  string
	placesBaseURL string
	nominatimURL  string
	httpClient    *http.Client
}

func NewCityService(placesAPIKey string, httpClient *http.Client) CityServiceInterface {
	return &CityService{
		placesAPIKey:  placesAPIKey,
		placesBaseURL: placesBaseURL,
		nominatimURL:  nominatimBaseURL,
		httpClient:    httpClient,
	}
}

func (s *CityService) SearchCities(query string, ctx context.Context) ([]response_models.CityResult, error) {
	if len(query) < 2 {
		return []response_models.CityResult{}, nil
	}

	if s.placesAPIKey != "" {
		cities, err := s.searchWithGooglePlaces(query, ctx)
		if err == nil && len(cities) > 0 {
			return cities, nil
		}
		if err != nil {
			log.Printf("City search via Google Places failed, falling back to Nominatim: %v", err)
		}
	}

	return s.searchWithNominatim(query, ctx)
}

func (s *CityService) searchWithGooglePlaces(query string, ctx context.Context) ([]response_models.CityResult, error) {
	body := autocompleteRequest{
		Input:                   query,
		IncludedPrimaryTypes:    []string{"locality", "administrative_area_level_1", "country"},
		IncludeQueryPredictions: false,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.placesBaseURL+"/places:autocomplete", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", s.placesAPIKey)
	req.Header.Set("X-Goog-FieldMask", cityAutocompleteFields)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("city search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, upstreamError("city search", resp)
	}

	var result autocompleteResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("city search decode: %w", err)
	}

	cities := make([]response_models.CityResult, 0, maxCityResults)
	for _, sg := range result.Suggestions {
		p := sg.PlacePrediction
		if p == nil || !isCityType(p.Types) {
			continue
		}
		name := p.StructuredFormat.MainText.Text
		if name == "" {
			name = p.Text.Text
		}
		cityType := "unknown"
		if len(p.Types) > 0 {
			cityType = p.Types[0]
		}
		cities = append(cities, response_models.CityResult{
			ID:      p.PlaceID,
			Name:    name,
			Country: p.StructuredFormat.SecondaryText.Text,
			Type:    cityType,
		})
		if len(cities) == maxCityResults {
			break
		}
	}
	return cities, nil
}

func isCityType(types []string) bool {
	for _, t := range types {
		switch t {
		case "locality", "administrative_area_level_1", "country":
			return true
		}
	}
	return false
}

type nominatimPlace struct {
	PlaceID     int64  `json:"place_id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Type        string `json:"type"`
	Address     struct {
		Country string `json:"country"`
		State   string `json:"state"`
	} `json:"address"`
}

func (s *CityService) searchWithNominatim(query string, ctx context.Context) ([]response_models.CityResult, error) {
	endpoint := fmt.Sprintf(
		"%s/search?format=json&q=%s&addressdetails=1&limit=%d&featuretype=city&accept-language=en",
		s.nominatimURL, url.QueryEscape(query), maxCityResults,
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("city search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, upstreamError("city search", resp)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("city search decode: %w", err)
	}

	cities := make([]response_models.CityResult, 0, maxCityResults)
	for _, p := range places {
		switch p.Type {
		case "city", "administrative", "town":
		default:
			continue
		}
		name := p.Name
		if name == "" {
			name = firstSegment(p.DisplayName)
		}
		cities = append(cities, response_models.CityResult{
			ID:      strconv.FormatInt(p.PlaceID, 10),
			Name:    name,
			Country: p.Address.Country,
			State:   p.Address.State,
			Type:    p.Type,
		})
		if len(cities) == maxCityResults {
			break
		}
	}
	return cities, nil
}

func firstSegment(displayName string) string {
	for i := 0; i < len(displayName); i++ {
		if displayName[i] == ',' {
			return displayName[:i]
		}
	}
	return displayName
}
