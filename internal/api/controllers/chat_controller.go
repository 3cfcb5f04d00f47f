package controllers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"plingplan/internal/models/domain_models"
	"plingplan/internal/models/request_models"
	"plingplan/internal/models/response_models"
	"plingplan/internal/services"
	"plingplan/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{chatService: chatService}
}

// ChatHandler is the stateless chat completion endpoint: the full message
// history in, a streamed assistant turn out.
func (cc *ChatController) ChatHandler(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Messages) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "messages are required")
		return
	}

	if err := cc.chatService.ConfigError(); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	events := make(chan domain_models.StreamEvent, 16)
	go func() {
		if err := cc.chatService.StreamConversation(req.Messages, req.PlanID, events, c.Request.Context()); err != nil {
			log.Printf("/chat stream error: %v", err)
		}
	}()

	streamEvents(c, events)
}

func (cc *ChatController) StartSessionHandler(c *gin.Context) {
	var req request_models.StartChatSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	sess, err := cc.chatService.StartSession(req, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sessionResponse(sess), "Chat session started")
}

func (cc *ChatController) GetSessionHandler(c *gin.Context) {
	sess, err := cc.chatService.GetSession(c.Param("id"), c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sessionResponse(sess), "Chat session fetched")
}

// SendMessageHandler streams one assistant turn for a session.
func (cc *ChatController) SendMessageHandler(c *gin.Context) {
	sessionID := c.Param("id")
	var req request_models.SessionMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "content is required")
		return
	}

	if _, err := cc.chatService.GetSession(sessionID, c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if err := cc.chatService.ConfigError(); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	events := make(chan domain_models.StreamEvent, 16)
	go func() {
		if err := cc.chatService.SendSessionMessage(sessionID, req.Content, events, c.Request.Context()); err != nil {
			log.Printf("chat session %s stream error: %v", sessionID, err)
		}
	}()

	streamEvents(c, events)
}

// streamEvents writes each event as an SSE data line in arrival order, then
// a final [DONE] marker. This is the wire format the chat widget parses.
func streamEvents(c *gin.Context, events <-chan domain_models.StreamEvent) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		ev, ok := <-events
		if !ok {
			_, _ = io.WriteString(w, "data: [DONE]\n\n")
			return false
		}
		payload, err := json.Marshal(ev)
		if err != nil {
			log.Printf("stream event marshal: %v", err)
			return true
		}
		_, _ = io.WriteString(w, "data: "+string(payload)+"\n\n")
		return true
	})
}

func sessionResponse(sess *domain_models.ChatSession) response_models.ChatSessionResponse {
	return response_models.ChatSessionResponse{
		ID:          sess.ID,
		PlanID:      sess.PlanID,
		Destination: sess.Destination,
		Messages:    sess.Messages,
		Suggestions: sess.Suggestions,
	}
}
