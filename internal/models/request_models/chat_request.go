package request_models

import "plingplan/internal/models/domain_models"

// ChatRequest is the stateless chat completion input: the full message
// history of one widget turn.
type ChatRequest struct {
	Messages []domain_models.ChatMessage `json:"messages" binding:"required"`
	PlanID   string                      `json:"planId"`
}

type StartChatSessionRequest struct {
	PlanID      string `json:"planId"`
	Destination string `json:"destination"`
}

type SessionMessageRequest struct {
	Content string `json:"content" binding:"required"`
}
