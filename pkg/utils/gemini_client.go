package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"plingplan/internal/models/domain_models"
)

// GeminiClient implements AIClientInterface using Google's Gemini models.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(apiKey, model string) (AIClientInterface, error) {
	if model == "" {
		model = "gemini-2.5-pro"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

func (c *GeminiClient) ConfigError() error { return nil }

func (c *GeminiClient) StreamChat(ctx context.Context, system string, messages []domain_models.ChatMessage, onDelta func(string)) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("no messages")
	}

	m := c.client.GenerativeModel(c.model)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}

	cs := m.StartChat()
	for _, msg := range messages[:len(messages)-1] {
		role := "user"
		if msg.Role == domain_models.RoleAssistant {
			role = "model"
		}
		cs.History = append(cs.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}

	var sb strings.Builder
	iter := cs.SendMessageStream(ctx, genai.Text(messages[len(messages)-1].Content))
	for {
		resp, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return sb.String(), fmt.Errorf("gemini stream: %w", err)
		}
		for _, cand := range resp.Candidates {
			if cand.Content == nil {
				continue
			}
			for _, part := range cand.Content.Parts {
				if txt, ok := part.(genai.Text); ok && len(txt) > 0 {
					sb.WriteString(string(txt))
					if onDelta != nil {
						onDelta(string(txt))
					}
				}
			}
		}
	}

	return sb.String(), nil
}

func (c *GeminiClient) GenerateJSON(ctx context.Context, system string, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.2)
	m.SetTopP(0.5)
	if system != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	// ResponseMIMEType is application/json, so this should already be clean.
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("model returned invalid json")
	}
	return content, nil
}
