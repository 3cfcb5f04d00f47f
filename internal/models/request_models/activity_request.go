package request_models

type CreateActivityRequest struct {
	Name    string   `json:"name" binding:"required"`
	Address string   `json:"address"`
	Lat     float64  `json:"lat"`
	Lng     float64  `json:"lng"`
	Time    string   `json:"time"`
	Notes   string   `json:"notes"`
	Tags    []string `json:"tags"`
	Types   []string `json:"types"`
}

// AcceptSuggestionRequest inserts one chat-session suggestion into the plan.
type AcceptSuggestionRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Index     *int   `json:"index" binding:"required"`
}
