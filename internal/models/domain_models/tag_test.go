package domain_models

import (
	"reflect"
	"testing"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []Tag
	}{
		{
			name: "lowercases and maps spaces to underscores",
			in:   []string{"Hidden Gem", "MUST"},
			want: []Tag{TagHiddenGem, TagMust},
		},
		{
			name: "drops values outside the vocabulary",
			in:   []string{"must", "romantic", "foodie", "popular"},
			want: []Tag{TagMust, TagPopular},
		},
		{
			name: "deduplicates keeping first occurrence order",
			in:   []string{"popular", "must", "Popular", "must"},
			want: []Tag{TagPopular, TagMust},
		},
		{
			name: "trims surrounding whitespace",
			in:   []string{"  landmark ", "\toptional\n"},
			want: []Tag{TagLandmark, TagOptional},
		},
		{
			name: "empty input yields empty output",
			in:   nil,
			want: []Tag{},
		},
		{
			name: "all invalid yields empty output",
			in:   []string{"", "  ", "scenic"},
			want: []Tag{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTags(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeTags(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeTagsIdempotent(t *testing.T) {
	in := []string{"Must", "hidden gem", "nonsense", "popular", "must"}
	once := NormalizeTags(in)

	asStrings := make([]string, len(once))
	for i, tag := range once {
		asStrings[i] = string(tag)
	}
	twice := NormalizeTags(asStrings)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("normalizing twice changed the result: %v vs %v", once, twice)
	}
}

func TestTagVocabularyHasLabels(t *testing.T) {
	for _, tag := range AllTags {
		if TagLabels[tag] == "" {
			t.Errorf("tag %q has no display label", tag)
		}
	}
}
