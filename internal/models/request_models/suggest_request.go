package request_models

type SuggestActivitiesRequest struct {
	Destination string `json:"destination"`
	Interests   string `json:"interests"`
	Date        string `json:"date"`
	Context     string `json:"context"`
	SessionID   string `json:"sessionId"`
}
