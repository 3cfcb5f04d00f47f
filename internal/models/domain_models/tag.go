package domain_models

import "strings"

// Tag is one value from the fixed activity tag vocabulary.
type Tag string

const (
	TagMust      Tag = "must"
	TagOptional  Tag = "optional"
	TagLandmark  Tag = "landmark"
	TagPopular   Tag = "popular"
	TagHiddenGem Tag = "hidden_gem"
)

// AllTags lists the vocabulary in display order.
var AllTags = []Tag{TagMust, TagOptional, TagLandmark, TagPopular, TagHiddenGem}

var tagVocabulary = map[Tag]bool{
	TagMust:      true,
	TagOptional:  true,
	TagLandmark:  true,
	TagPopular:   true,
	TagHiddenGem: true,
}

// TagLabels maps each tag to its display label.
var TagLabels = map[Tag]string{
	TagMust:      "Must",
	TagOptional:  "Optional",
	TagLandmark:  "Landmark",
	TagPopular:   "Popular",
	TagHiddenGem: "Hidden gem",
}

func IsValidTag(t Tag) bool {
	return tagVocabulary[t]
}

// NormalizeTags filters arbitrary free-text strings (as returned by an AI
// model) down to the fixed vocabulary. Each input is lower-cased and internal
// spaces become underscores; anything that still does not match the
// vocabulary is dropped without error. Duplicates keep their first
// occurrence, relative input order is preserved.
func NormalizeTags(raw []string) []Tag {
	out := make([]Tag, 0, len(raw))
	seen := make(map[Tag]bool, len(raw))
	for _, r := range raw {
		candidate := Tag(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(r)), " ", "_"))
		if !tagVocabulary[candidate] || seen[candidate] {
			continue
		}
		seen[candidate] = true
		out = append(out, candidate)
	}
	return out
}
