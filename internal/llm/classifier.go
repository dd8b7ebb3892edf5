package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cinnamonledger/cinnamon/internal/model"
	"github.com/cinnamonledger/cinnamon/internal/score"
	"github.com/cinnamonledger/cinnamon/internal/service"
)

// Classifier adapts an LLM client to the engine's fallback-classifier
// contract. It rate-limits outbound calls; retry and budget policy belong to
// the engine.
type Classifier struct {
	client      Client
	logger      *slog.Logger
	rateLimiter *rateLimiter
}

// NewClassifier creates an LLM-backed fallback classifier.
func NewClassifier(cfg Config, logger *slog.Logger) (*Classifier, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return &Classifier{
		client:      client,
		logger:      logger,
		rateLimiter: newRateLimiter(cfg.RateLimit),
	}, nil
}

// Classify asks the LLM for a category suggestion for a merchant key.
func (c *Classifier) Classify(ctx context.Context, key model.MerchantKey, cc service.ClassifyContext) (service.Suggestion, error) {
	if err := c.rateLimiter.wait(ctx); err != nil {
		return service.Suggestion{}, fmt.Errorf("rate limit error: %w", err)
	}

	prompt := buildPrompt(key, cc)

	response, err := c.client.Classify(ctx, prompt)
	if err != nil {
		return service.Suggestion{}, fmt.Errorf("classification failed: %w", err)
	}

	c.logger.Debug("fallback classification",
		"merchant", key,
		"category", response.Category,
		"confidence", response.Confidence)

	return service.Suggestion{
		Category:   response.Category,
		Confidence: score.Clamp(response.Confidence),
	}, nil
}

// buildPrompt creates the prompt for merchant classification.
func buildPrompt(key model.MerchantKey, cc service.ClassifyContext) string {
	categoryList := ""
	for _, cat := range cc.Categories {
		categoryList += fmt.Sprintf("- %s: %s\n", cat.Name, cat.Description)
	}

	details := fmt.Sprintf("Merchant: %s\nAmount: $%.2f\nDate: %s\nDescriptor: %s",
		key,
		cc.Amount,
		cc.Date.Format("2006-01-02"),
		cc.Descriptor)

	return fmt.Sprintf(`Classify this merchant into the most appropriate spending category based solely on the transaction details.

Categories:
%s
Transaction Details:
%s

Respond with ONLY a JSON object in this exact shape:
{"category": "<category name from the list>", "confidence": <0.0-1.0>}

Classify by what the merchant IS, not assumptions about the purchase's purpose.`,
		categoryList,
		details)
}

// Close stops background goroutines and cleans up resources.
func (c *Classifier) Close() error {
	if c.rateLimiter != nil {
		c.rateLimiter.Close()
	}
	return nil
}
