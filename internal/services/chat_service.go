package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"plingplan/internal/models/domain_models"
	"plingplan/internal/models/request_models"
	"plingplan/pkg/utils"
)

const chatSystemPrompt = `You are a travel planning assistant. When users ask for activities, suggestions, or travel ideas, respond with ONLY a JSON array in this format: [{"name":"Activity Name","address":"Address","lat":36.1699,"lng":-115.1398,"time":"Specific time (e.g., 9:00 AM, 2:30 PM, 7:00 PM)","notes":"Practical info: hours, prices, tips, must-try items, hidden gems, local favorites","tags":["tag1","tag2"]}]. ALWAYS include coordinates. Time must be specific hours - NO day prefixes or general terms. For general questions, greetings, or non-activity requests, respond conversationally with short, quick answers in readable format.`

const chatErrorMessage = "Sorry, I encountered an error. Please try again."

type ChatServiceInterface interface {
	StartSession(req request_models.StartChatSessionRequest, ctx context.Context) (*domain_models.ChatSession, error)
	GetSession(sessionID string, ctx context.Context) (*domain_models.ChatSession, error)
	// StreamConversation runs one stateless assistant turn over the given
	// history, emitting stream events and closing the channel when done.
	StreamConversation(messages []domain_models.ChatMessage, planID string, events chan<- domain_models.StreamEvent, ctx context.Context) error
	// SendSessionMessage appends a user message to the session and runs a
	// turn; a completion superseded by a newer message no longer writes
	// back to the session.
	SendSessionMessage(sessionID string, content string, events chan<- domain_models.StreamEvent, ctx context.Context) error
	ReplaceSuggestions(sessionID string, suggestions []domain_models.SuggestedActivity, ctx context.Context) error
	Suggestion(sessionID string, index int, ctx context.Context) (domain_models.SuggestedActivity, error)
	ConfigError() error
}

type ChatService struct {
	aiClient    utils.AIClientInterface
	planService PlanServiceInterface
	sessions    *cache.Cache
	mu          sync.Mutex
}

func NewChatService(aiClient utils.AIClientInterface, planService PlanServiceInterface, sessionTTL time.Duration) ChatServiceInterface {
	return &ChatService{
		aiClient:    aiClient,
		planService: planService,
		sessions:    cache.New(sessionTTL, 10*time.Minute),
	}
}

func (s *ChatService) ConfigError() error {
	return s.aiClient.ConfigError()
}

func (s *ChatService) StartSession(req request_models.StartChatSessionRequest, ctx context.Context) (*domain_models.ChatSession, error) {
	sess := &domain_models.ChatSession{
		ID:          uuid.New().String(),
		PlanID:      req.PlanID,
		Destination: req.Destination,
		Messages:    []domain_models.ChatMessage{},
		Suggestions: []domain_models.SuggestedActivity{},
	}
	s.sessions.Set(sess.ID, sess, cache.DefaultExpiration)
	return s.snapshot(sess), nil
}

func (s *ChatService) GetSession(sessionID string, ctx context.Context) (*domain_models.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.lookup(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return s.snapshot(sess), nil
}

func (s *ChatService) StreamConversation(messages []domain_models.ChatMessage, planID string, events chan<- domain_models.StreamEvent, ctx context.Context) error {
	_, _, err := s.streamTurn(ctx, messages, planID, events)
	if err != nil {
		emitEvent(ctx, events, domain_models.StreamEvent{Type: domain_models.StreamEventError, Message: chatErrorMessage})
		close(events)
		return err
	}
	emitEvent(ctx, events, domain_models.StreamEvent{Type: domain_models.StreamEventDone})
	close(events)
	return nil
}

func (s *ChatService) SendSessionMessage(sessionID string, content string, events chan<- domain_models.StreamEvent, ctx context.Context) error {
	s.mu.Lock()
	sess, ok := s.lookup(sessionID)
	if !ok {
		s.mu.Unlock()
		close(events)
		return utils.ErrSessionNotFound
	}
	sess.Turn++
	gen := sess.Turn
	sess.Messages = append(sess.Messages, domain_models.ChatMessage{Role: domain_models.RoleUser, Content: content})
	history := append([]domain_models.ChatMessage(nil), sess.Messages...)
	planID := sess.PlanID
	s.mu.Unlock()

	display, suggestions, err := s.streamTurn(ctx, history, planID, events)
	s.finalizeTurn(sessionID, gen, display, suggestions, err)

	if err != nil {
		emitEvent(ctx, events, domain_models.StreamEvent{Type: domain_models.StreamEventError, Message: chatErrorMessage})
		close(events)
		return err
	}
	emitEvent(ctx, events, domain_models.StreamEvent{Type: domain_models.StreamEventDone})
	close(events)
	return nil
}

// streamTurn streams one assistant turn, then runs extraction exactly once on
// the fully accumulated text. It returns the message to display: either the
// verbatim conversational reply, or a short acknowledgment replacing raw
// suggestion JSON.
func (s *ChatService) streamTurn(ctx context.Context, messages []domain_models.ChatMessage, planID string, events chan<- domain_models.StreamEvent) (string, []domain_models.SuggestedActivity, error) {
	history := s.withDayContext(messages, planID, ctx)

	full, err := s.aiClient.StreamChat(ctx, chatSystemPrompt, history, func(delta string) {
		emitEvent(ctx, events, domain_models.StreamEvent{Type: domain_models.StreamEventDelta, Text: delta})
	})
	if err != nil {
		return "", nil, err
	}

	if suggestions, ok := ExtractSuggestions(full); ok {
		display := fmt.Sprintf("✨ I've found %d great activities for you! Check out the suggestions below.", len(suggestions))
		emitEvent(ctx, events, domain_models.StreamEvent{
			Type:        domain_models.StreamEventSuggestions,
			Message:     display,
			Suggestions: suggestions,
		})
		return display, suggestions, nil
	}
	return full, nil, nil
}

// finalizeTurn writes the turn's outcome back to the session unless a newer
// message superseded it meanwhile.
func (s *ChatService) finalizeTurn(sessionID string, gen int, display string, suggestions []domain_models.SuggestedActivity, turnErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.lookup(sessionID)
	if !ok || sess.Turn != gen {
		return
	}

	if turnErr != nil {
		sess.Messages = append(sess.Messages, domain_models.ChatMessage{Role: domain_models.RoleAssistant, Content: chatErrorMessage})
		return
	}
	sess.Messages = append(sess.Messages, domain_models.ChatMessage{Role: domain_models.RoleAssistant, Content: display})
	if suggestions != nil {
		sess.Suggestions = suggestions
	}
}

func (s *ChatService) ReplaceSuggestions(sessionID string, suggestions []domain_models.SuggestedActivity, ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.lookup(sessionID)
	if !ok {
		return utils.ErrSessionNotFound
	}
	sess.Suggestions = suggestions
	return nil
}

func (s *ChatService) Suggestion(sessionID string, index int, ctx context.Context) (domain_models.SuggestedActivity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.lookup(sessionID)
	if !ok {
		return domain_models.SuggestedActivity{}, utils.ErrSessionNotFound
	}
	if index < 0 || index >= len(sess.Suggestions) {
		return domain_models.SuggestedActivity{}, utils.ErrSuggestionIndex
	}
	return sess.Suggestions[index], nil
}

// withDayContext appends the current day's activities to the model-facing
// copy of the last user message, so the assistant can account for what is
// already planned. The stored transcript keeps the raw content.
func (s *ChatService) withDayContext(messages []domain_models.ChatMessage, planID string, ctx context.Context) []domain_models.ChatMessage {
	if planID == "" || len(messages) == 0 || s.planService == nil {
		return messages
	}

	plan, err := s.planService.GetPlan(planID, ctx)
	if err != nil {
		return messages
	}
	bucket := plan.DayBucket(plan.InsertDateKey())
	if len(bucket) == 0 {
		return messages
	}

	var lines []string
	for _, a := range bucket {
		line := "- " + a.Name
		if a.Time != "" {
			line += " (" + a.Time + ")"
		}
		if a.Address != "" {
			line += " at " + a.Address
		}
		lines = append(lines, line)
	}

	out := append([]domain_models.ChatMessage(nil), messages...)
	last := &out[len(out)-1]
	last.Content = last.Content + "\n\nCurrent day activities:\n" + strings.Join(lines, "\n")
	return out
}

// emitEvent sends unless the request context is gone. A disconnected SSE
// client stops draining the channel; without the ctx escape the producer
// goroutine would block on a full buffer for the life of the process.
func emitEvent(ctx context.Context, events chan<- domain_models.StreamEvent, ev domain_models.StreamEvent) bool {
	select {
	case events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

func (s *ChatService) lookup(sessionID string) (*domain_models.ChatSession, bool) {
	val, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, false
	}
	sess, ok := val.(*domain_models.ChatSession)
	return sess, ok
}

// snapshot copies session state so callers never race with an in-flight turn.
func (s *ChatService) snapshot(sess *domain_models.ChatSession) *domain_models.ChatSession {
	cp := &domain_models.ChatSession{
		ID:          sess.ID,
		PlanID:      sess.PlanID,
		Destination: sess.Destination,
		Messages:    append([]domain_models.ChatMessage{}, sess.Messages...),
		Suggestions: append([]domain_models.SuggestedActivity{}, sess.Suggestions...),
	}
	return cp
}
