package services

import (
	"encoding/json"
	"strings"

	"plingplan/internal/models/domain_models"
)

// ExtractSuggestions interprets a completed assistant turn as either a
// machine-readable suggestion list or plain conversation. The text is
// trimmed, an optional markdown code fence is stripped, and the remainder is
// parsed as a JSON array. Candidates without a name are dropped one by one;
// anything that is not a JSON array falls back to (nil, false) so the text
// can be displayed verbatim. Parse failure is never an error past this
// boundary.
func ExtractSuggestions(text string) ([]domain_models.SuggestedActivity, bool) {
	trimmed := stripCodeFence(strings.TrimSpace(text))

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &items); err != nil {
		return nil, false
	}

	out := make([]domain_models.SuggestedActivity, 0, len(items))
	for _, item := range items {
		var s domain_models.SuggestedActivity
		if err := json.Unmarshal(item, &s); err != nil {
			continue
		}
		if strings.TrimSpace(s.Name) == "" {
			continue
		}
		if s.Tags == nil {
			s.Tags = []string{}
		}
		out = append(out, s)
	}
	return out, true
}

// stripCodeFence unwraps ```json ... ``` or ``` ... ``` blocks. Text fenced
// with any other language tag is left alone and will fail the array parse.
func stripCodeFence(s string) string {
	const fence = "```"
	switch {
	case strings.HasPrefix(s, fence+"json") && strings.HasSuffix(s, fence) && len(s) >= len(fence+"json")+len(fence):
		return strings.TrimSpace(s[len(fence+"json") : len(s)-len(fence)])
	case strings.HasPrefix(s, fence) && strings.HasSuffix(s, fence) && len(s) >= 2*len(fence):
		return strings.TrimSpace(s[len(fence) : len(s)-len(fence)])
	}
	return s
}
