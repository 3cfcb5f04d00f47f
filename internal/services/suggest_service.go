package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"plingplan/internal/models/domain_models"
	"plingplan/internal/models/request_models"
	"plingplan/pkg/utils"
)

const suggestSystemPrompt = `You are a travel planning assistant. Generate 3-6 activities that fit the user's interests and destination. For each activity: include specific coordinates (lat/lng) when possible, detailed notes with practical information (hours, tips, requirements), and ALWAYS include a suggested start time (time field) based on the activity type. For example: morning (9:00 AM) for hikes and outdoor activities, afternoon (2:00 PM) for museums and indoor activities, evening (7:00 PM) for restaurants and nightlife. Focus on providing valuable, actionable information with realistic timing. Return a JSON object with an "activities" array; each activity has name (required), address, lat, lng, time, notes and tags.`

type SuggestServiceInterface interface {
	SuggestActivities(req request_models.SuggestActivitiesRequest, ctx context.Context) ([]domain_models.SuggestedActivity, error)
}

type SuggestService struct {
	aiClient    utils.AIClientInterface
	chatService ChatServiceInterface
}

func NewSuggestService(aiClient utils.AIClientInterface, chatService ChatServiceInterface) SuggestServiceInterface {
	return &SuggestService{aiClient: aiClient, chatService: chatService}
}

// SuggestActivities requests a structured candidate list from the model.
// Candidates without a name are discarded individually; an empty list means
// "no suggestions", not an error. When the request names a chat session, the
// session's suggestion surface is replaced with the result.
func (s *SuggestService) SuggestActivities(req request_models.SuggestActivitiesRequest, ctx context.Context) ([]domain_models.SuggestedActivity, error) {
	if err := s.aiClient.ConfigError(); err != nil {
		return nil, err
	}

	raw, err := s.aiClient.GenerateJSON(ctx, suggestSystemPrompt, buildSuggestPrompt(req))
	if err != nil {
		return nil, err
	}

	activities, err := parseSuggestedActivities(raw)
	if err != nil {
		return nil, err
	}

	if req.SessionID != "" {
		if err := s.chatService.ReplaceSuggestions(req.SessionID, activities, ctx); err != nil {
			return nil, err
		}
	}
	return activities, nil
}

func buildSuggestPrompt(req request_models.SuggestActivitiesRequest) string {
	destination := req.Destination
	if destination == "" {
		destination = "Unknown"
	}
	interests := req.Interests
	if interests == "" {
		interests = "General"
	}
	date := req.Date
	if date == "" {
		date = "Trip day"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Destination: %s\nInterests: %s\nDate: %s", destination, interests, date)
	if req.Context != "" {
		fmt.Fprintf(&sb, "\nContext from chat: %s", req.Context)
	}
	sb.WriteString("\n\nGenerate activities with specific coordinates when possible, detailed notes including practical information like hours, tips, requirements, and ALWAYS include a suggested start time for each activity. Return a JSON object only.")
	return sb.String()
}

// parseSuggestedActivities validates the model's {activities: [...]} shape.
// Optional fields default permissively; only a missing name drops that single
// candidate.
func parseSuggestedActivities(raw string) ([]domain_models.SuggestedActivity, error) {
	var envelope struct {
		Activities []json.RawMessage `json:"activities"`
	}
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return nil, fmt.Errorf("unexpected suggestion response shape: %w", err)
	}

	out := make([]domain_models.SuggestedActivity, 0, len(envelope.Activities))
	for _, item := range envelope.Activities {
		var a domain_models.SuggestedActivity
		if err := json.Unmarshal(item, &a); err != nil {
			continue
		}
		if strings.TrimSpace(a.Name) == "" {
			continue
		}
		if a.Tags == nil {
			a.Tags = []string{}
		}
		out = append(out, a)
	}
	return out, nil
}
