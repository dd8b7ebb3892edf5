package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClassification(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		want       ClassificationResponse
		wantErr    bool
	}{
		{
			name:    "plain json",
			content: `{"category": "Groceries", "confidence": 0.85}`,
			want:    ClassificationResponse{Category: "Groceries", Confidence: 0.85},
		},
		{
			name: "markdown fenced json",
			content: "```json\n" + `{"category": "Entertainment", "confidence": 0.9}` + "\n```",
			want: ClassificationResponse{Category: "Entertainment", Confidence: 0.9},
		},
		{
			name:    "surrounding whitespace",
			content: "  \n{\"category\": \"Transport\", \"confidence\": 0.7}\n  ",
			want:    ClassificationResponse{Category: "Transport", Confidence: 0.7},
		},
		{
			name:    "not json",
			content: "I think this is probably groceries.",
			wantErr: true,
		},
		{
			name:    "missing category",
			content: `{"confidence": 0.8}`,
			wantErr: true,
		},
		{
			name:    "confidence above one",
			content: `{"category": "Groceries", "confidence": 1.2}`,
			wantErr: true,
		},
		{
			name:    "negative confidence",
			content: `{"category": "Groceries", "confidence": -0.1}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseClassification(tt.content)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCleanMarkdownWrapper(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanMarkdownWrapper("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanMarkdownWrapper("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanMarkdownWrapper(`{"a":1}`))
}
