package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseClassification extracts category and confidence from the LLM response.
func parseClassification(content string) (ClassificationResponse, error) {
	var jsonResp struct {
		Category   string  `json:"category"`
		Confidence float64 `json:"confidence"`
	}

	content = cleanMarkdownWrapper(content)

	if err := json.Unmarshal([]byte(content), &jsonResp); err != nil {
		return ClassificationResponse{}, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if jsonResp.Category == "" {
		return ClassificationResponse{}, fmt.Errorf("no category found in response")
	}

	if jsonResp.Confidence < 0 || jsonResp.Confidence > 1 {
		return ClassificationResponse{}, fmt.Errorf("confidence %f outside [0,1]", jsonResp.Confidence)
	}

	return ClassificationResponse{
		Category:   jsonResp.Category,
		Confidence: jsonResp.Confidence,
	}, nil
}

// cleanMarkdownWrapper strips a ```json fenced block if the model wrapped its
// response in one.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		if idx := strings.Index(content, "\n"); idx >= 0 {
			content = content[idx+1:]
		}
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	}

	return strings.TrimSpace(content)
}
