package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"plingplan/pkg/utils"
)

func newTestPlaceService(baseURL string) *PlaceService {
	return &PlaceService{apiKey: "test-key", baseURL: baseURL, httpClient: http.DefaultClient}
}

func TestSearchPlacesEmptyInput(t *testing.T) {
	svc := newTestPlaceService("http://unused")

	got, err := svc.SearchPlaces("", nil, nil, context.Background())
	if err != nil {
		t.Fatalf("SearchPlaces: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("empty input should return empty list, got %v", got)
	}
}

func TestSearchPlacesMissingKey(t *testing.T) {
	svc := &PlaceService{baseURL: "http://unused", httpClient: http.DefaultClient}

	_, err := svc.SearchPlaces("eiffel", nil, nil, context.Background())
	if !errors.Is(err, utils.ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

func TestSearchPlacesMapsPredictions(t *testing.T) {
	var gotReq autocompleteRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/places:autocomplete" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Header.Get("X-Goog-Api-Key") != "test-key" {
			t.Errorf("missing api key header")
		}
		if r.Header.Get("X-Goog-FieldMask") == "" {
			t.Errorf("missing field mask header")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(`{"suggestions":[
			{"placePrediction":{"placeId":"p1","structuredFormat":{"mainText":{"text":"Eiffel Tower"},"secondaryText":{"text":"Paris, France"}}}},
			{"placePrediction":{"placeId":"p2","text":{"text":"Louvre Museum"}}},
			{}
		]}`))
	}))
	defer server.Close()

	svc := newTestPlaceService(server.URL)
	lat, lng := 48.85, 2.35
	got, err := svc.SearchPlaces("eiffel", &lat, &lng, context.Background())
	if err != nil {
		t.Fatalf("SearchPlaces: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(got))
	}
	if got[0].ID != "p1" || got[0].MainText != "Eiffel Tower" || got[0].SecondaryText != "Paris, France" {
		t.Errorf("first suggestion = %+v", got[0])
	}
	if got[1].MainText != "Louvre Museum" {
		t.Errorf("fallback to full text failed: %+v", got[1])
	}

	if gotReq.Input != "eiffel" {
		t.Errorf("forwarded input = %q", gotReq.Input)
	}
	if gotReq.LocationBias == nil || gotReq.LocationBias.Circle.Radius != 50000 {
		t.Errorf("location bias = %+v", gotReq.LocationBias)
	}
}

func TestSearchPlacesUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"key not authorized"}`))
	}))
	defer server.Close()

	svc := newTestPlaceService(server.URL)
	_, err := svc.SearchPlaces("eiffel", nil, nil, context.Background())

	var upstream *utils.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("err = %v, want UpstreamError", err)
	}
	if upstream.StatusCode != http.StatusForbidden {
		t.Errorf("StatusCode = %d", upstream.StatusCode)
	}
	if upstream.Body != `{"error":"key not authorized"}` {
		t.Errorf("Body = %q", upstream.Body)
	}
}

func TestGetPlaceDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/places/p1" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.Query().Get("fields") == "" {
			t.Errorf("missing fields parameter")
		}
		w.Write([]byte(`{
			"id":"p1",
			"displayName":{"text":"Eiffel Tower"},
			"formattedAddress":"Champ de Mars, Paris",
			"location":{"latitude":48.8584,"longitude":2.2945},
			"types":["tourist_attraction"]
		}`))
	}))
	defer server.Close()

	svc := newTestPlaceService(server.URL)
	got, err := svc.GetPlaceDetails("p1", context.Background())
	if err != nil {
		t.Fatalf("GetPlaceDetails: %v", err)
	}

	if got.ID != "p1" || got.Name != "Eiffel Tower" || got.Address != "Champ de Mars, Paris" {
		t.Errorf("details = %+v", got)
	}
	if got.Lat != 48.8584 || got.Lng != 2.2945 {
		t.Errorf("coordinates = %v,%v", got.Lat, got.Lng)
	}
	if len(got.Types) != 1 || got.Types[0] != "tourist_attraction" {
		t.Errorf("types = %v", got.Types)
	}
}

func TestGetPlaceDetailsUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not found"}`))
	}))
	defer server.Close()

	svc := newTestPlaceService(server.URL)
	_, err := svc.GetPlaceDetails("missing", context.Background())

	var upstream *utils.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("err = %v, want UpstreamError", err)
	}
	if upstream.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d", upstream.StatusCode)
	}
}
