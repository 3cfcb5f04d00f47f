package domain_models

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// SuggestedActivity is an AI- or search-originated candidate not yet accepted
// into a plan. Missing coordinates decode to 0,0 and are passed through
// unchanged on acceptance; downstream mapping treats that as "unresolved".
type SuggestedActivity struct {
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Lat     float64  `json:"lat"`
	Lng     float64  `json:"lng"`
	Time    string   `json:"time,omitempty"`
	Notes   string   `json:"notes,omitempty"`
	Tags    []string `json:"tags"`
}

// ChatSession owns one chat widget's state: the message transcript and the
// single most-recent suggestion list, replaced wholesale by each extraction
// or suggestion fetch. Turn is a monotonic generation counter; a completion
// whose turn is stale no longer writes to the session.
type ChatSession struct {
	ID          string              `json:"id"`
	PlanID      string              `json:"planId,omitempty"`
	Destination string              `json:"destination,omitempty"`
	Messages    []ChatMessage       `json:"messages"`
	Suggestions []SuggestedActivity `json:"suggestions"`
	Turn        int                 `json:"-"`
}

// Stream event types match the wire format the chat widget parses from the
// SSE data payload.
const (
	StreamEventDelta       = "text-delta"
	StreamEventSuggestions = "suggestions"
	StreamEventError       = "error"
	StreamEventDone        = "done"
)

type StreamEvent struct {
	Type        string              `json:"type"`
	Text        string              `json:"text,omitempty"`
	Message     string              `json:"message,omitempty"`
	Suggestions []SuggestedActivity `json:"suggestions,omitempty"`
}
