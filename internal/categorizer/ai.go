package categorizer

import (
	"context"
	"fmt"
	"strings"

	"finledger/statement-parser/internal/currencyutils"
	"finledger/statement-parser/internal/logging"
	"finledger/statement-parser/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const aiConfidence = 0.75

// AIClient abstracts the external AI categorization service so the strategy
// chain can be tested without network calls.
type AIClient interface {
	// CategorizeDescription returns a category name for the description, or
	// an error if the service could not answer.
	CategorizeDescription(ctx context.Context, description string, amountMinorUnits int64, isCredit bool) (string, error)
}

// GeminiClient categorizes transactions through the Google Gemini API.
type GeminiClient struct {
	model  *genai.GenerativeModel
	logger logging.Logger
}

// NewGeminiClient dials the Gemini API with the given key.
func NewGeminiClient(ctx context.Context, apiKey string, logger logging.Logger) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	return &GeminiClient{
		model:  client.GenerativeModel("gemini-1.5-flash"),
		logger: logger,
	}, nil
}

// CategorizeDescription asks Gemini to pick one of the known categories.
func (c *GeminiClient) CategorizeDescription(ctx context.Context, description string, amountMinorUnits int64, isCredit bool) (string, error) {
	direction := "debit"
	if isCredit {
		direction = "credit"
	}
	prompt := fmt.Sprintf(`Categorize the following bank transaction:
Description: %s
Amount: %s
Direction: %s

Assign exactly one of the following categories:
%s

Respond in this format:
Category: [selected category name]`,
		description,
		currencyutils.FormatMinorUnits(amountMinorUnits),
		direction,
		strings.Join(models.AllCategories(), ", "))

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini API")
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return extractCategoryFromResponse(responseText), nil
}

// extractCategoryFromResponse parses the "Category: ..." line out of the
// model's reply, falling back to scanning for a known category name.
func extractCategoryFromResponse(response string) string {
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Category:") {
			return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "Category:")))
		}
	}
	lowered := strings.ToLower(response)
	for _, name := range models.AllCategories() {
		if strings.Contains(lowered, name) {
			return name
		}
	}
	return ""
}

// AIStrategy asks an external AI service for a category when the rule-based
// strategies all pass. It is optional: with a nil client it never matches,
// and any service error is logged and swallowed so classification stays
// offline-safe.
type AIStrategy struct {
	client AIClient
	logger logging.Logger
}

// NewAIStrategy creates an AIStrategy. A nil client disables it.
func NewAIStrategy(client AIClient, logger logging.Logger) *AIStrategy {
	return &AIStrategy{client: client, logger: logger}
}

// Name returns the strategy name for logging.
func (s *AIStrategy) Name() string {
	return "AI"
}

// Categorize delegates to the AI client and validates the returned category
// against the known set.
func (s *AIStrategy) Categorize(ctx context.Context, tx Transaction) (Classification, bool, error) {
	if s.client == nil {
		return Classification{}, false, nil
	}
	if strings.TrimSpace(tx.Description) == "" {
		return Classification{}, false, nil
	}

	category, err := s.client.CategorizeDescription(ctx, tx.Description, tx.AmountMinorUnits, tx.IsCredit)
	if err != nil {
		s.logger.WithError(err).WithFields(
			logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
			logging.Field{Key: logging.FieldDescription, Value: tx.Description},
		).Warn("AI categorization failed")
		return Classification{}, false, nil
	}

	if !models.IsKnownCategory(category) {
		s.logger.WithFields(
			logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
			logging.Field{Key: logging.FieldCategory, Value: category},
		).Debug("AI returned unknown category")
		return Classification{}, false, nil
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
		logging.Field{Key: logging.FieldCategory, Value: category},
	).Debug("AI categorized transaction")
	return Classification{Category: category, Confidence: aiConfidence}, true, nil
}
