package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"plingplan/internal/models/response_models"
	"plingplan/pkg/utils"
)

const (
	placesBaseURL          = "https://places.googleapis.com/v1"
	autocompleteFieldMask  = "suggestions.placePrediction.placeId,suggestions.placePrediction.text,suggestions.placePrediction.structuredFormat.mainText,suggestions.placePrediction.structuredFormat.secondaryText"
	cityAutocompleteFields = autocompleteFieldMask + ",suggestions.placePrediction.types"
)

type PlaceServiceInterface interface {
	SearchPlaces(input string, lat, lng *float64, ctx context.Context) ([]response_models.PlaceSuggestion, error)
	GetPlaceDetails(placeID string, ctx context.Context) (*response_models.PlaceDetails, error)
}

type PlaceService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewPlaceService(apiKey string, httpClient *http.Client) PlaceServiceInterface {
	return &PlaceService{apiKey: apiKey, baseURL: placesBaseURL, httpClient: httpClient}
}

// Google Places v1 wire shapes, reduced to what the proxies forward.
type placePrediction struct {
	PlaceID string `json:"placeId"`
	Text    struct {
		Text string `json:"text"`
	} `json:"text"`
	StructuredFormat struct {
		MainText struct {
			Text string `json:"text"`
		} `json:"mainText"`
		SecondaryText struct {
			Text string `json:"text"`
		} `json:"secondaryText"`
	} `json:"structuredFormat"`
	Types []string `json:"types"`
}

type autocompleteResponse struct {
	Suggestions []struct {
		PlacePrediction *placePrediction `json:"placePrediction"`
	} `json:"suggestions"`
}

type autocompleteRequest struct {
	Input                   string        `json:"input"`
	IncludedPrimaryTypes    []string      `json:"includedPrimaryTypes"`
	IncludeQueryPredictions bool          `json:"includeQueryPredictions"`
	LocationBias            *locationBias `json:"locationBias,omitempty"`
}

type locationBias struct {
	Circle struct {
		Center struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"center"`
		Radius float64 `json:"radius"`
	} `json:"circle"`
}

// SearchPlaces forwards one autocomplete request biased toward establishments
// and attractions, optionally within 50km of the given coordinates. An empty
// input returns an empty list without calling upstream.
func (s *PlaceService) SearchPlaces(input string, lat, lng *float64, ctx context.Context) ([]response_models.PlaceSuggestion, error) {
	if input == "" {
		return []response_models.PlaceSuggestion{}, nil
	}
	if s.apiKey == "" {
		return nil, utils.NotConfigured("GOOGLE_PLACES_API_KEY")
	}

	body := autocompleteRequest{
		Input:                   input,
		IncludedPrimaryTypes:    []string{"establishment", "tourist_attraction", "point_of_interest"},
		IncludeQueryPredictions: false,
	}
	if lat != nil && lng != nil {
		bias := &locationBias{}
		bias.Circle.Center.Latitude = *lat
		bias.Circle.Center.Longitude = *lng
		bias.Circle.Radius = 50000
		body.LocationBias = bias
	}

	var result autocompleteResponse
	if err := s.postAutocomplete(ctx, "places autocomplete", body, autocompleteFieldMask, &result); err != nil {
		return nil, err
	}

	suggestions := make([]response_models.PlaceSuggestion, 0, len(result.Suggestions))
	for _, sg := range result.Suggestions {
		p := sg.PlacePrediction
		if p == nil {
			continue
		}
		mainText := p.StructuredFormat.MainText.Text
		if mainText == "" {
			mainText = p.Text.Text
		}
		suggestions = append(suggestions, response_models.PlaceSuggestion{
			ID:            p.PlaceID,
			MainText:      mainText,
			SecondaryText: p.StructuredFormat.SecondaryText.Text,
		})
	}
	return suggestions, nil
}

func (s *PlaceService) GetPlaceDetails(placeID string, ctx context.Context) (*response_models.PlaceDetails, error) {
	if s.apiKey == "" {
		return nil, utils.NotConfigured("GOOGLE_PLACES_API_KEY")
	}

	endpoint := fmt.Sprintf("%s/places/%s?fields=id,displayName,formattedAddress,location,types", s.baseURL, url.PathEscape(placeID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Goog-Api-Key", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places details: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, upstreamError("places details", resp)
	}

	var data struct {
		ID          string `json:"id"`
		DisplayName struct {
			Text string `json:"text"`
		} `json:"displayName"`
		FormattedAddress string `json:"formattedAddress"`
		Location         struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"location"`
		Types []string `json:"types"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("places details decode: %w", err)
	}

	return &response_models.PlaceDetails{
		ID:      data.ID,
		Name:    data.DisplayName.Text,
		Address: data.FormattedAddress,
		Lat:     data.Location.Latitude,
		Lng:     data.Location.Longitude,
		Types:   data.Types,
	}, nil
}

func (s *PlaceService) postAutocomplete(ctx context.Context, service string, body autocompleteRequest, fieldMask string, out *autocompleteResponse) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/places:autocomplete", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", s.apiKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", service, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return upstreamError(service, resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s decode: %w", service, err)
	}
	return nil
}

func upstreamError(service string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &utils.UpstreamError{Service: service, StatusCode: resp.StatusCode, Body: string(body)}
}
