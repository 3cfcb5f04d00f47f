package response_models

import "plingplan/internal/models/domain_models"

type ChatSessionResponse struct {
	ID          string                            `json:"id"`
	PlanID      string                            `json:"planId,omitempty"`
	Destination string                            `json:"destination,omitempty"`
	Messages    []domain_models.ChatMessage       `json:"messages"`
	Suggestions []domain_models.SuggestedActivity `json:"suggestions"`
}

type TagResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}
