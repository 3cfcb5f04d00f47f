package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"plingplan/pkg/utils"
)

const unsplashPayload = `{"total":3,"results":[
	{"alt_description":"tram in lisbon","urls":{"regular":"https://img/1"},"user":{"name":"Ana"},"links":{"html":"https://unsplash.com/1"}},
	{"alt_description":"","urls":{"regular":"https://img/2"},"user":{"name":""},"links":{"html":"https://unsplash.com/2"}},
	{"alt_description":"rooftops","urls":{"regular":"https://img/3"},"user":{"name":"Rui"},"links":{"html":"https://unsplash.com/3"}}
]}`

func TestSearchCityImagesNotConfigured(t *testing.T) {
	for _, key := range []string{"", "demo"} {
		svc := &ImageService{accessKey: key, httpClient: http.DefaultClient}
		_, err := svc.SearchCityImages("Lisbon", "", "popular", 1, context.Background())
		if !errors.Is(err, utils.ErrNotConfigured) {
			t.Errorf("key %q: err = %v, want ErrNotConfigured", key, err)
		}
	}
}

func TestSearchCityImagesSingle(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Client-ID test-key" {
			t.Errorf("authorization header = %q", r.Header.Get("Authorization"))
		}
		gotQuery = r.URL.RawQuery
		w.Write([]byte(unsplashPayload))
	}))
	defer server.Close()

	svc := &ImageService{accessKey: "test-key", baseURL: server.URL, httpClient: http.DefaultClient}
	got, err := svc.SearchCityImages("Lisbon", "Portugal", "popular", 1, context.Background())
	if err != nil {
		t.Fatalf("SearchCityImages: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("got %d images, want 1", len(got))
	}
	img := got[0]
	if img.URL != "https://img/1" || img.Alt != "tram in lisbon" || img.Photographer != "Ana" || img.SourceURL != "https://unsplash.com/1" {
		t.Errorf("image = %+v", img)
	}
	if !strings.Contains(gotQuery, "query=Lisbon+Portugal") || !strings.Contains(gotQuery, "per_page=10") || !strings.Contains(gotQuery, "orientation=landscape") {
		t.Errorf("query = %q", gotQuery)
	}
}

func TestSearchCityImagesMultipleWithDefaults(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(unsplashPayload))
	}))
	defer server.Close()

	svc := &ImageService{accessKey: "test-key", baseURL: server.URL, httpClient: http.DefaultClient}
	got, err := svc.SearchCityImages("Lisbon", "", "popular", 3, context.Background())
	if err != nil {
		t.Fatalf("SearchCityImages: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("got %d images, want 3", len(got))
	}
	if got[1].Alt != "Lisbon city view" {
		t.Errorf("alt fallback = %q", got[1].Alt)
	}
	if got[1].Photographer != "Unknown" {
		t.Errorf("photographer fallback = %q", got[1].Photographer)
	}
	if !strings.Contains(gotQuery, "per_page=30") {
		t.Errorf("query = %q", gotQuery)
	}
}

func TestSearchCityImagesEmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total":0,"results":[]}`))
	}))
	defer server.Close()

	svc := &ImageService{accessKey: "test-key", baseURL: server.URL, httpClient: http.DefaultClient}
	_, err := svc.SearchCityImages("Nowhere", "", "popular", 1, context.Background())
	if !errors.Is(err, utils.ErrNoImagesFound) {
		t.Errorf("err = %v, want ErrNoImagesFound", err)
	}
}

func TestSearchCityImagesUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("Rate Limit Exceeded"))
	}))
	defer server.Close()

	svc := &ImageService{accessKey: "test-key", baseURL: server.URL, httpClient: http.DefaultClient}
	_, err := svc.SearchCityImages("Lisbon", "", "popular", 1, context.Background())

	var upstream *utils.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("err = %v, want UpstreamError", err)
	}
	if upstream.StatusCode != http.StatusTooManyRequests || upstream.Body != "Rate Limit Exceeded" {
		t.Errorf("upstream = %+v", upstream)
	}
}
